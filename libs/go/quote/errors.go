package quote

import "errors"

var (
	ErrSessionNotFound     = errors.New("quote session not found")
	ErrItemNotFound        = errors.New("line item not found")
	ErrUnknownSection      = errors.New("unknown section")
	ErrEmptyRawInput       = errors.New("line item has no description to enhance")
	ErrEnhancementInFlight = errors.New("line item enhancement already in progress")
	ErrSessionLimit        = errors.New("too many open quote sessions")
	ErrSectionFull         = errors.New("section has reached its line item limit")
)
