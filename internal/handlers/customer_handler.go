package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/httpresp"
	"github.com/bookwise-app/bookwise-server/internal/media"
	"github.com/bookwise-app/bookwise-server/internal/models"
	"github.com/bookwise-app/bookwise-server/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	db    *gorm.DB
	media *media.Store
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, mediaStore *media.Store, audit *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{
		db:    db,
		media: mediaStore,
		audit: audit,
	}
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Customer{}).Order("name ASC")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		digits := validators.NormalizePhone(search)

		if digits != "" {
			q = q.Where(
				"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone_digits LIKE ?",
				like, like, "%"+digits+"%",
			)
		} else {
			q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
		}
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list customers.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// GET
// ======================================================

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	err := h.db.
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("CustomReminders").
		Preload("FollowUpReminders").
		First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_load", "Failed to load the customer.")
		return
	}

	httpresp.OK(c, customer)
}

// ======================================================
// PROFILE PICTURE
// ======================================================

func (h *CustomerHandler) UploadProfilePicture(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
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

	url, err := h.media.UploadProfilePicture(c.Request.Context(), customer.ID, fh)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The uploaded file is not a supported image.")
		return
	}

	customer.ProfilePictureURL = url
	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_save", "Failed to save the customer.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "profile_picture_updated",
		Entity:   "customer",
		EntityID: customer.ID,
	})

	httpresp.OK(c, gin.H{"profile_picture_url": url})
}
