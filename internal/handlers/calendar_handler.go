package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookwise-app/bookwise-server/internal/domain/schedule"
	"github.com/bookwise-app/bookwise-server/internal/httperr"
	"github.com/bookwise-app/bookwise-server/internal/httpresp"
	"github.com/bookwise-app/bookwise-server/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	sched      *schedule.Scheduler
	week       *scheduling.GetWeek
	blockSlot  *scheduling.BlockSlot
	blockDay   *scheduling.BlockDay
	unblockDay *scheduling.UnblockDay
}

func NewCalendarHandler(
	sched *schedule.Scheduler,
	week *scheduling.GetWeek,
	blockSlot *scheduling.BlockSlot,
	blockDay *scheduling.BlockDay,
	unblockDay *scheduling.UnblockDay,
) *CalendarHandler {
	return &CalendarHandler{
		sched:      sched,
		week:       week,
		blockSlot:  blockSlot,
		blockDay:   blockDay,
		unblockDay: unblockDay,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BlockSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type DayRequest struct {
	Date string `json:"date" binding:"required"`
}

// ======================================================
// WEEK VIEW
// ======================================================

func (h *CalendarHandler) Week(c *gin.Context) {
	anchor := time.Now().In(h.sched.Location())

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(dateLayout, dateStr, h.sched.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		anchor = parsed
	}

	week, err := h.week.Execute(c.Request.Context(), anchor)
	if err != nil {
		httperr.Internal(c, "failed_to_load_week", "Failed to load the weekly calendar.")
		return
	}

	httpresp.OK(c, week)
}

// ======================================================
// BLOCK SINGLE SLOT
// ======================================================

func (h *CalendarHandler) BlockSlot(c *gin.Context) {
	var req BlockSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	created, err := h.blockSlot.Execute(c.Request.Context(), scheduling.BlockSlotInput{
		Date: req.Date,
		Time: req.Time,
	})
	if err != nil {
		writeError(c, err, "failed_to_block_slot", "Failed to block the slot.")
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// BLOCK / UNBLOCK DAY
// ======================================================

func (h *CalendarHandler) BlockDay(c *gin.Context) {
	var req DayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	created, err := h.blockDay.Execute(c.Request.Context(), req.Date)
	if err != nil {
		writeError(c, err, "failed_to_block_day", "Failed to block the day.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":          req.Date,
		"blocked_slots": len(created),
		"appointments":  created,
	})
}

func (h *CalendarHandler) UnblockDay(c *gin.Context) {
	var req DayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	removed, err := h.unblockDay.Execute(c.Request.Context(), req.Date)
	if err != nil {
		writeError(c, err, "failed_to_unblock_day", "Failed to unblock the day.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":           req.Date,
		"removed_blocks": removed,
	})
}
