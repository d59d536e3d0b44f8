package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	item, err := h.seasonService.GetSeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, item))
}

func (h *Handler) GetSeasonStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStatus")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	status, err := h.seasonService.Status(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season status failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := seasonStatusDTO{
		Season:            seasonToDTO(ctx, status.Season),
		TeamCount:         status.TeamCount,
		FixtureCount:      status.FixtureCount,
		CompletedFixtures: status.CompletedFixtures,
		CurrentMatchweek:  status.CurrentMatchweek,
	}
	if status.NextKickoff != nil {
		dto.NextKickoff = status.NextKickoff.UTC().Format(time.RFC3339)
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSummary")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	summary, err := h.summaryService.Get(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season summary failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummaryToDTO(ctx, summary))
}

func (h *Handler) UpdateSeasonEndDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeasonEndDate")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req updateSeasonEndDateRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	endDate, err := parseDateField("endDate", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.seasonService.UpdateEndDate(ctx, seasonID, endDate)
	if err != nil {
		h.logger.WarnContext(ctx, "update season end date failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, updated))
}

func (h *Handler) UpdateSeasonStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeasonStatus")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req updateSeasonStatusRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.seasonService.UpdateStatus(ctx, seasonID, req.Status)
	if err != nil {
		h.logger.WarnContext(ctx, "update season status failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, updated))
}
