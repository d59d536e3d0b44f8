package httpapi

import "net/http"

func (h *Handler) ListHolidaysBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHolidaysBySeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	holidays, err := h.holidayService.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list holidays failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]holidayDTO, 0, len(holidays))
	for _, hd := range holidays {
		items = append(items, holidayToDTO(ctx, hd))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateHoliday")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req createHolidayRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startDate, err := parseDateField("startDate", req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endDate, err := parseDateField("endDate", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.holidayService.Create(ctx, seasonID, req.Name, startDate, endDate)
	if err != nil {
		h.logger.WarnContext(ctx, "create holiday failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, holidayToDTO(ctx, created))
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteHoliday")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	holidayID := r.PathValue("holidayID")
	if err := h.holidayService.Delete(ctx, seasonID, holidayID); err != nil {
		h.logger.WarnContext(ctx, "delete holiday failed", "season_id", seasonID, "holiday_id", holidayID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": holidayID})
}
