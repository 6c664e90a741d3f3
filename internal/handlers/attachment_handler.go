package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/httpresp"
	"github.com/bookwise-app/bookwise-server/internal/media"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AttachmentHandler struct {
	db    *gorm.DB
	media *media.Store
	audit *audit.Dispatcher
}

func NewAttachmentHandler(db *gorm.DB, mediaStore *media.Store, audit *audit.Dispatcher) *AttachmentHandler {
	return &AttachmentHandler{db: db, media: mediaStore, audit: audit}
}

// ======================================================
// UPLOAD
// ======================================================

func (h *AttachmentHandler) Upload(c *gin.Context) {
	appointmentID := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_load", "Failed to load the appointment.")
		return
	}

	if !h.media.Enabled() {
		httperr.Internal(c, "media_disabled", "Object storage is not configured.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file upload is required.")
		return
	}

	url, _, err := h.media.UploadAttachment(c.Request.Context(), fh)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to upload the attachment.")
		return
	}

	attachment := models.Attachment{
		ID:            uuid.NewString(),
		AppointmentID: ap.ID,
		Name:          fh.Filename,
		Size:          fh.Size,
		URL:           url,
		ContentType:   fh.Header.Get("Content-Type"),
	}
	if err := h.db.Create(&attachment).Error; err != nil {
		httperr.Internal(c, "failed_to_save", "Failed to save the attachment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "attachment_uploaded",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"attachment_id": attachment.ID, "name": attachment.Name},
	})

	httpresp.Created(c, attachment)
}
