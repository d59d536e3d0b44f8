package httpapi

import "net/http"

func (h *Handler) ListGameDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameDays")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	gameDays, err := h.scheduleService.GameDays(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list game days failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]string, 0, len(gameDays))
	for _, d := range gameDays {
		items = append(items, d.String())
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunAutoSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoSchedule")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	result, err := h.scheduleService.AutoSchedule(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "auto schedule failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, autoScheduleResultDTO{
		FixtureCount:   result.FixtureCount,
		Matchweeks:     result.Matchweeks,
		SlotsAvailable: result.SlotsAvailable,
		SlotsUsed:      result.SlotsUsed,
	})
}

func (h *Handler) RunScheduleAudit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScheduleAudit")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	report, err := h.auditService.Run(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "schedule audit failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auditReportToDTO(ctx, report))
}
