package handler

import (
	"net/http"

	"github.com/millbrookfab/shop-planner/backend/internal/domain"
	"github.com/millbrookfab/shop-planner/backend/internal/utils"
)

func (h *Handler) GetScheduleSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repository.GetScheduleSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "fetched schedule settings", settings)
}

func (h *Handler) UpdateScheduleSettings(w http.ResponseWriter, r *http.Request) {
	// DailyCapacity is the legacy single-number shape: one value fanned out
	// to all five weekdays. DailyCapacityByDay wins when both are present.
	var req struct {
		DailyCapacity      *float64                  `json:"dailyCapacity" validate:"omitempty,gte=0"`
		DailyCapacityByDay *[5]float64               `json:"dailyCapacityByDay"`
		CapacityOverrides  []domain.CapacityOverride `json:"capacityOverrides"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	settings, err := h.repository.GetScheduleSettings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	switch {
	case req.DailyCapacityByDay != nil:
		settings.DailyCapacityByDay = *req.DailyCapacityByDay
	case req.DailyCapacity != nil:
		for i := range settings.DailyCapacityByDay {
			settings.DailyCapacityByDay[i] = *req.DailyCapacity
		}
	}

	if req.CapacityOverrides != nil {
		settings.CapacityOverrides = req.CapacityOverrides
	}

	if err := utils.ValidateCapacityOverrides(settings); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateScheduleSettings(settings); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule settings updated", settings)
}
