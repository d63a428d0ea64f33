package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
	"github.com/articard-dev/guard-journal/backend/internal/report"
	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
)

// reportData is what a report renderer needs: the computed statistics and
// the filtered, date-sorted shifts of the period.
type reportData struct {
	Period     report.Period             `json:"period"`
	Statistics *domain.MonthlyStatistics `json:"statistics"`
	Shifts     []*domain.Shift           `json:"shifts"`
}

func (h *Handler) buildReport(period report.Period) (*reportData, error) {
	shifts, err := h.repository.GetAllShifts()
	if err != nil {
		return nil, err
	}

	filtered := report.Filter(shifts, period)

	return &reportData{
		Period:     period,
		Statistics: report.Aggregate(filtered, period),
		Shifts:     filtered,
	}, nil
}

func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
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

	data, err := h.buildReport(period)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "monthly report", data)
}

func (h *Handler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	day, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		h.errorResponse(w, r, "date must be in yyyy-mm-dd format")
		return
	}

	data, err := h.buildReport(report.DayPeriod(day))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "daily report", data)
}

// EmailMonthlyReport queues the month's summary for delivery by the mail
// worker. Values are display-formatted here; the worker only fills the
// template.
func (h *Handler) EmailMonthlyReport(w http.ResponseWriter, r *http.Request) {
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

	data, err := h.buildReport(period)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	stats := data.Statistics

	mailMessage := domain.MailMessage{
		Type: "monthly_report",
		To:   h.config.Report.Recipient,
		Data: domain.MonthlyReportMailData{
			Year:                 year,
			Month:                month,
			TotalShifts:          stats.TotalShifts,
			TotalHours:           fmt.Sprintf("%.1f", stats.TotalHours),
			TotalIncidents:       stats.TotalIncidents,
			TheftIncidentCount:   stats.TheftIncidentCount,
			TotalTheftAmount:     stats.TotalTheftAmount.StringFixed(2),
			PreventedTheftCount:  stats.PreventedTheftCount,
			PreventedTheftAmount: stats.PreventedTheftAmount.StringFixed(2),
			GuardCount:           len(stats.Guards),
			ObjectCount:          len(stats.Objects),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"report_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "monthly report queued for email delivery", nil)
}
