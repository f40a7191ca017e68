package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/millbrookfab/shop-planner/backend/internal/optimizer"
	"github.com/millbrookfab/shop-planner/backend/internal/scheduler"
	"github.com/millbrookfab/shop-planner/backend/internal/utils"
)

// runAllocation recomputes the schedule for the session's jobs and settings
// and writes the recomputed segments back into the store.
func (h *Handler) runAllocation(planningStart string) (*scheduler.Result, error) {
	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		return nil, err
	}

	settings, err := h.repository.GetScheduleSettings()
	if err != nil {
		return nil, err
	}

	result := scheduler.Allocate(jobs, settings, planningStart)

	if err := utils.ValidateScheduleAgainstCapacity(result.Days, settings); err != nil {
		return nil, fmt.Errorf("allocation produced an inconsistent schedule: %w", err)
	}

	if err := h.repository.ReplaceJobSegments(result.Jobs); err != nil {
		return nil, err
	}

	return result, nil
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")

	// an unparsable start is recovered, not rejected: the allocator falls
	// back to today, weekday-normalized
	if start != "" {
		if _, err := scheduler.ParseDay(start); err != nil {
			slog.Warn("unparsable planning start date, falling back to today", "start", start)
			start = ""
		}
	}

	result, err := h.runAllocation(start)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// the calendar axis: the weekdays the UI renders, including empty ones
	calendarDays := make([]string, 0, h.config.Planner.CalendarWeekdays)
	for day := range scheduler.WeekdayRange(scheduler.DayOrToday(start), h.config.Planner.CalendarWeekdays) {
		calendarDays = append(calendarDays, day)
	}

	h.successResponse(w, r, "schedule computed", map[string]any{
		"days":         result.Days,
		"jobs":         result.Jobs,
		"warnings":     result.Warnings,
		"calendarDays": calendarDays,
	})
}

func (h *Handler) OptimizeSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlanningDate string `json:"planningDate"`
		Constraints  string `json:"constraints"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	jobs, err := h.repository.GetAllJobs()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	settings, err := h.repository.GetScheduleSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	payload := optimizer.BuildPayload(jobs, settings, req.PlanningDate, req.Constraints)

	optimized, err := h.optimizer.Optimize(r.Context(), payload)
	if err != nil {
		// the job list stays at its last known-good allocation
		h.errorResponse(w, r, fmt.Sprintf("the optimizer call failed: %v", err))
		return
	}

	// the optimizer's segments are treated as hints: merge them, store the
	// merged jobs, then re-run the allocator so the displayed schedule always
	// satisfies the capacity invariants
	merged := optimizer.MergeResult(jobs, optimized)
	if err := h.repository.ReplaceJobSegments(merged); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	result, err := h.runAllocation(payload.PlanningDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule optimized", map[string]any{
		"schedule":    result,
		"explanation": optimized.Explanation,
	})
}
