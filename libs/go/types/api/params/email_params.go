package params

// TransactionalEmailParams contains parameters for a single outbound email
type TransactionalEmailParams struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
	Cc       []string
	Bcc      []string
	ReplyTo  string
	Headers  map[string]string
	Tags     map[string]string
}
