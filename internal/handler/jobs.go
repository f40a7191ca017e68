package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/millbrookfab/shop-planner/backend/internal/repository"
	"github.com/millbrookfab/shop-planner/backend/internal/scheduler"
	"github.com/millbrookfab/shop-planner/backend/internal/utils"
)

// normalizePreferredStart validates a preferred start date at the ingestion
// boundary. Weekend dates are snapped forward to the next Monday; the note
// tells the caller when that happened.
func normalizePreferredStart(date string) (normalized string, note string, err error) {
	if date == "" {
		return "", "", nil
	}

	t, parseErr := scheduler.ParseDay(date)
	if parseErr != nil {
		return "", "", fmt.Errorf("preferred start date %q is malformed, expected YYYY-MM-DD", date)
	}

	if scheduler.IsWeekend(t) {
		snapped := scheduler.FormatDay(scheduler.NextWeekday(t))
		return snapped, fmt.Sprintf("preferred start %s falls on a weekend and was moved to %s", date, snapped), nil
	}

	return date, "", nil
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name               string  `json:"name" validate:"required"`
		RequiredHours      float64 `json:"requiredHours" validate:"required,gt=0"`
		IsUrgent           bool    `json:"isUrgent"`
		ActivityType       string  `json:"activityType" validate:"required,oneof=machining fabrication assembly inspection repair other"`
		ActivityDetail     string  `json:"activityDetail"`
		QuoteNumber        string  `json:"quoteNumber"`
		PreferredStartDate string  `json:"preferredStartDate"`
		Color              string  `json:"color"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.ActivityType != string(domain.ActivityOther) && req.ActivityDetail != "" {
		h.badRequest(w, r, errors.New("activity detail is only allowed when the activity type is \"other\""))
		return
	}

	preferred, note, err := normalizePreferredStart(req.PreferredStartDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	color := req.Color
	if color == "" {
		color = utils.RandomJobColor()
	}

	job := &domain.Job{
		Name:               req.Name,
		RequiredHours:      req.RequiredHours,
		IsUrgent:           req.IsUrgent,
		ActivityType:       domain.ActivityType(req.ActivityType),
		ActivityDetail:     req.ActivityDetail,
		QuoteNumber:        req.QuoteNumber,
		PreferredStartDate: preferred,
		Color:              color,
	}

	if err := h.repository.CreateJob(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	msg := "job created"
	if note != "" {
		msg = "job created; " + note
	}
	h.successResponse(w, r, msg, job)
}

func (h *Handler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched job list", jobs)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	h.successResponse(w, r, "fetched job", job)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	var req struct {
		Name               *string  `json:"name" validate:"omitempty,min=1"`
		RequiredHours      *float64 `json:"requiredHours" validate:"omitempty,gt=0"`
		IsUrgent           *bool    `json:"isUrgent"`
		ActivityType       *string  `json:"activityType" validate:"omitempty,oneof=machining fabrication assembly inspection repair other"`
		ActivityDetail     *string  `json:"activityDetail"`
		QuoteNumber        *string  `json:"quoteNumber"`
		PreferredStartDate *string  `json:"preferredStartDate"`
		Color              *string  `json:"color"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		job.Name = *req.Name
	}
	if req.RequiredHours != nil {
		job.RequiredHours = *req.RequiredHours
	}
	if req.IsUrgent != nil {
		job.IsUrgent = *req.IsUrgent
	}
	if req.ActivityType != nil {
		job.ActivityType = domain.ActivityType(*req.ActivityType)
	}
	if req.ActivityDetail != nil {
		job.ActivityDetail = *req.ActivityDetail
	}
	if req.QuoteNumber != nil {
		job.QuoteNumber = *req.QuoteNumber
	}
	if req.Color != nil {
		job.Color = *req.Color
	}

	note := ""
	if req.PreferredStartDate != nil {
		preferred, snapNote, err := normalizePreferredStart(*req.PreferredStartDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		job.PreferredStartDate = preferred
		note = snapNote
	}

	if job.ActivityType != domain.ActivityOther && job.ActivityDetail != "" {
		h.badRequest(w, r, errors.New("activity detail is only allowed when the activity type is \"other\""))
		return
	}

	if err := h.repository.UpdateJob(job); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "job not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	msg := "job updated"
	if note != "" {
		msg = "job updated; " + note
	}
	h.successResponse(w, r, msg, job)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	if err := h.repository.DeleteJob(job.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "job not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "job deleted", nil)
}

// RescheduleJob is the drag-and-drop surface: dropping a job on a calendar
// day sets its preferred start date to that day.
func (h *Handler) RescheduleJob(w http.ResponseWriter, r *http.Request) {
	job := r.Context().Value(JobCtx).(*domain.Job)

	var req struct {
		TargetDate string `json:"targetDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	preferred, note, err := normalizePreferredStart(req.TargetDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	job.PreferredStartDate = preferred

	if err := h.repository.UpdateJob(job); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "job not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	msg := "job rescheduled"
	if note != "" {
		msg = "job rescheduled; " + note
	}
	h.successResponse(w, r, msg, job)
}
