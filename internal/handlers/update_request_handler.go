package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookwise-app/bookwise-server/internal/audit"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/httpresp"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type UpdateRequestHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUpdateRequestHandler(db *gorm.DB, audit *audit.Dispatcher) *UpdateRequestHandler {
	return &UpdateRequestHandler{db: db, audit: audit}
}

// ======================================================
// LIST
// ======================================================

func (h *UpdateRequestHandler) List(c *gin.Context) {
	q := h.db.Model(&models.CustomerUpdateRequest{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.CustomerUpdateRequest
	if err := q.Find(&requests).Error; err != nil {
		httperr.Internal(c, "failed_to_list", "Failed to list update requests.")
		return
	}

	httpresp.List(c, requests)
}

// ======================================================
// APPROVE
// ======================================================

// Approve applies the requested details to the customer record, writes
// history entries for each changed field, and propagates the new details
// onto the customer's future bookings. Pending is the only state the
// transition accepts.
func (h *UpdateRequestHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	var request models.CustomerUpdateRequest

	err := h.db.Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("request_not_found")
			}
			return err
		}

		if request.Status != models.UpdateStatusPending {
			return httperr.ErrBusiness("request_not_pending")
		}

		var customer models.Customer
		if err := tx.First(&customer, "id = ?", request.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("customer_not_found")
			}
			return err
		}

		var history []models.CustomerHistoryEntry

		if request.RequestedName != "" && request.RequestedName != customer.Name {
			history = append(history, models.CustomerHistoryEntry{
				CustomerID: customer.ID,
				Entry:      fmt.Sprintf("Name updated from %q to %q via approved request.", customer.Name, request.RequestedName),
			})
			customer.Name = request.RequestedName
		}

		if request.RequestedEmail != "" && request.RequestedEmail != customer.Email {
			history = append(history, models.CustomerHistoryEntry{
				CustomerID: customer.ID,
				Entry:      fmt.Sprintf("Email updated from %q to %q via approved request.", customer.Email, request.RequestedEmail),
			})
			customer.Email = request.RequestedEmail
		}

		if err := tx.Save(&customer).Error; err != nil {
			return err
		}

		if len(history) > 0 {
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}

		// Future bookings carry the customer snapshot, so the approved
		// details flow onto them. Past appointments keep what was true
		// at the time.
		updates := map[string]any{
			"customer_name": customer.Name,
			"email":         customer.Email,
		}
		if err := tx.Model(&models.Appointment{}).
			Where(
				"customer_id = ? AND kind = ? AND start_time > ?",
				customer.ID, models.KindBooking, time.Now(),
			).
			Updates(updates).Error; err != nil {
			return err
		}

		request.Status = models.UpdateStatusApproved
		return tx.Save(&request).Error
	})

	if err != nil {
		writeError(c, err, "failed_to_approve", "Failed to approve the update request.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "update_request_approved",
		Entity:   "customer_update_request",
		EntityID: request.ID,
	})

	httpresp.OK(c, request)
}

// ======================================================
// REJECT
// ======================================================

func (h *UpdateRequestHandler) Reject(c *gin.Context) {
	id := c.Param("id")

	var request models.CustomerUpdateRequest

	err := h.db.Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("request_not_found")
			}
			return err
		}

		if request.Status != models.UpdateStatusPending {
			return httperr.ErrBusiness("request_not_pending")
		}

		request.Status = models.UpdateStatusRejected
		return tx.Save(&request).Error
	})

	if err != nil {
		writeError(c, err, "failed_to_reject", "Failed to reject the update request.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "update_request_rejected",
		Entity:   "customer_update_request",
		EntityID: request.ID,
	})

	httpresp.OK(c, request)
}
