package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/interfaces"
	"github.com/handyline/handyline-api/libs/go/services"
	"github.com/handyline/handyline-api/libs/go/types/api/params"
)

// multipart framing allowance on top of the file itself
const multipartOverhead = 1 << 20

// AttachmentHandler accepts photos for line item descriptions
type AttachmentHandler struct {
	attachments interfaces.AttachmentService
}

func NewAttachmentHandler(attachments interfaces.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments}
}

// UploadAttachment godoc
// @Summary Upload a photo
// @Description Stores an image and returns its public URL for use as an enhancement attachment
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} responses.AttachmentResponse
// @Failure 400 {object} services.ValidationError
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	if h.attachments == nil {
		sendError(c, http.StatusServiceUnavailable, "Attachment uploads are not configured", nil)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxAttachmentSize+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleError(c, fmt.Errorf("%w: %w", services.ErrAttachmentTooLarge, err))
			return
		}
		HandleError(c, &services.ValidationError{Fields: []services.FieldError{{Field: "file", Message: "file is required"}}})
		return
	}

	file, err := header.Open()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	resp, err := h.attachments.Upload(c.Request.Context(), params.AttachmentUploadParams{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
