package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location) *AuditLogsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AuditLogsHandler{db: db, loc: loc}
}

// auditWindow resolves the from/to day filters into absolute bounds in
// the business timezone. A zero time means the filter is absent.
func auditWindow(fromStr, toStr string, loc *time.Location) (time.Time, time.Time) {
	var from, to time.Time

	if fromStr != "" {
		if t, err := time.ParseInLocation(dateLayout, fromStr, loc); err == nil {
			from = t
		}
	}

	if toStr != "" {
		if t, err := time.ParseInLocation(dateLayout, toStr, loc); err == nil {
			to = t.Add(24 * time.Hour)
		}
	}

	return from, to
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	from, to := auditWindow(fromStr, toStr, h.loc)
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Failed to count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
