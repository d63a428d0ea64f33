package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
	"github.com/articard-dev/guard-journal/backend/internal/report"
	"github.com/articard-dev/guard-journal/backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date       string `json:"date" validate:"required"`
		ObjectName string `json:"objectName" validate:"required"`
		GuardName  string `json:"guardName" validate:"required"`
		StartTime  string `json:"startTime" validate:"required"`
		EndTime    string `json:"endTime" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		h.errorResponse(w, r, "date must be in yyyy-mm-dd format")
		return
	}
	startTime, err := utils.NormalizeTimeOfDay("startTime", req.StartTime)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	endTime, err := utils.NormalizeTimeOfDay("endTime", req.EndTime)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.Shift{
		ID:         uuid.NewString(),
		Date:       req.Date,
		ObjectName: req.ObjectName,
		GuardName:  req.GuardName,
		StartTime:  startTime,
		EndTime:    endTime,
		Incidents:  make([]domain.Incident, 0),
	}

	if err := h.repository.CreateShift(shift); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shift created", shift)
}

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "all shifts", shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	h.successResponse(w, r, "shift", shift)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		ObjectName *string `json:"objectName"`
		GuardName  *string `json:"guardName"`
		StartTime  *string `json:"startTime"`
		EndTime    *string `json:"endTime"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.ObjectName != nil {
		shift.ObjectName = *req.ObjectName
	}
	if req.GuardName != nil {
		shift.GuardName = *req.GuardName
	}
	if req.StartTime != nil {
		startTime, err := utils.NormalizeTimeOfDay("startTime", *req.StartTime)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		shift.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := utils.NormalizeTimeOfDay("endTime", *req.EndTime)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		shift.EndTime = endTime
	}

	if err := h.repository.UpdateShift(shift); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift updated", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift deleted", nil)
}

func monthParams(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, 0, errors.New("invalid year")
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		return 0, 0, errors.New("invalid month")
	}
	return year, month, nil
}

func (h *Handler) GetShiftsByMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	period, err := report.MonthPeriod(year, month)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shifts for month", report.Filter(shifts, period))
}

// DeleteShiftsByMonth deletes every shift of the month as a best-effort
// batch of independent deletes. A partial outcome is reported as such,
// never masked as full success.
func (h *Handler) DeleteShiftsByMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := monthParams(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	period, err := report.MonthPeriod(year, month)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	filtered := report.Filter(shifts, period)

	result := &domain.BatchDeleteResult{
		Requested: len(filtered),
	}
	for _, shift := range filtered {
		if err := h.repository.DeleteShift(shift.ID); err != nil {
			slog.Error("failed to delete shift in monthly batch", "shiftID", shift.ID, "error", err)
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, shift.ID)
			continue
		}
		result.Deleted++
	}

	if result.Failed > 0 {
		h.writeJSON(w, r, http.StatusOK, Response{
			Success: false,
			Message: fmt.Sprintf("deleted %d of %d shifts, %d failed", result.Deleted, result.Requested, result.Failed),
			Data:    result,
		})
		return
	}

	h.successResponse(w, r, fmt.Sprintf("deleted %d shifts", result.Deleted), result)
}
