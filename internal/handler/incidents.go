package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
	"github.com/articard-dev/guard-journal/backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// validAmount accepts a non-negative decimal string. Records written
// before this check existed may still carry anything; the aggregation
// degrades those to zero instead of failing.
func validAmount(amount string) bool {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

func (h *Handler) AddIncident(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Type            domain.IncidentType `json:"type" validate:"required,oneof=general theft"`
		Description     string              `json:"description" validate:"required"`
		IncidentTime    string              `json:"incidentTime"`
		G4SPatrolCalled bool                `json:"g4sPatrolCalled"`
		AmbulanceCalled bool                `json:"ambulanceCalled"`

		Gender           domain.Gender       `json:"gender" validate:"required_if=Type theft,omitempty,oneof=male female"`
		Amount           string              `json:"amount" validate:"required_if=Type theft"`
		SpecialToolsUsed bool                `json:"specialToolsUsed"`
		Outcome          domain.TheftOutcome `json:"outcome" validate:"required_if=Type theft,omitempty,oneof=released paid_and_released handed_to_police"`
		TheftPrevented   bool                `json:"theftPrevented"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		h.errorResponse(w, r, "description must not be empty")
		return
	}

	incident := &domain.Incident{
		ID:              uuid.NewString(),
		Type:            req.Type,
		Description:     description,
		G4SPatrolCalled: req.G4SPatrolCalled,
		AmbulanceCalled: req.AmbulanceCalled,
	}

	if req.IncidentTime != "" {
		incidentTime, err := utils.NormalizeTimeOfDay("incidentTime", req.IncidentTime)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		incident.IncidentTime = incidentTime
	}

	// theft fields are ignored for general incidents
	if req.Type == domain.IncidentTypeTheft {
		if !validAmount(req.Amount) {
			h.errorResponse(w, r, "amount must be a non-negative number")
			return
		}
		incident.Gender = req.Gender
		incident.Amount = req.Amount
		incident.SpecialToolsUsed = req.SpecialToolsUsed
		incident.Outcome = req.Outcome
		incident.TheftPrevented = req.TheftPrevented
	}

	if err := h.repository.AddIncident(shift.ID, incident); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "incident added", incident)
}

func (h *Handler) UpdateIncident(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	incidentID := chi.URLParam(r, "incidentID")
	var incident *domain.Incident
	for i := range shift.Incidents {
		if shift.Incidents[i].ID == incidentID {
			incident = &shift.Incidents[i]
			break
		}
	}
	if incident == nil {
		h.errorResponse(w, r, "incident not found")
		return
	}

	var req struct {
		Description     *string `json:"description"`
		IncidentTime    *string `json:"incidentTime"`
		G4SPatrolCalled *bool   `json:"g4sPatrolCalled"`
		AmbulanceCalled *bool   `json:"ambulanceCalled"`

		Gender           *domain.Gender       `json:"gender" validate:"omitempty,oneof=male female"`
		Amount           *string              `json:"amount"`
		SpecialToolsUsed *bool                `json:"specialToolsUsed"`
		Outcome          *domain.TheftOutcome `json:"outcome" validate:"omitempty,oneof=released paid_and_released handed_to_police"`
		TheftPrevented   *bool                `json:"theftPrevented"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			h.errorResponse(w, r, "description must not be empty")
			return
		}
		incident.Description = description
	}
	if req.IncidentTime != nil {
		incidentTime, err := utils.NormalizeTimeOfDay("incidentTime", *req.IncidentTime)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		incident.IncidentTime = incidentTime
	}
	if req.G4SPatrolCalled != nil {
		incident.G4SPatrolCalled = *req.G4SPatrolCalled
	}
	if req.AmbulanceCalled != nil {
		incident.AmbulanceCalled = *req.AmbulanceCalled
	}

	// the incident type is immutable; theft fields only apply to thefts
	if incident.Type == domain.IncidentTypeTheft {
		if req.Gender != nil {
			incident.Gender = *req.Gender
		}
		if req.Amount != nil {
			if !validAmount(*req.Amount) {
				h.errorResponse(w, r, "amount must be a non-negative number")
				return
			}
			incident.Amount = *req.Amount
		}
		if req.SpecialToolsUsed != nil {
			incident.SpecialToolsUsed = *req.SpecialToolsUsed
		}
		if req.Outcome != nil {
			incident.Outcome = *req.Outcome
		}
		if req.TheftPrevented != nil {
			incident.TheftPrevented = *req.TheftPrevented
		}
	}

	if err := h.repository.UpdateIncident(shift.ID, incident); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "incident not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "incident updated", incident)
}

func (h *Handler) RemoveIncident(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)
	incidentID := chi.URLParam(r, "incidentID")

	if err := h.repository.RemoveIncident(shift.ID, incidentID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "incident not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "incident removed", nil)
}
