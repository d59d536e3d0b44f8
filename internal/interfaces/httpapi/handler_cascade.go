package httpapi

import "net/http"

func (h *Handler) PreviewCascade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewCascade")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req cascadePreviewRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	newDate, err := parseDateField("newDate", req.NewDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	preview, err := h.cascadeService.Compute(ctx, seasonID, req.FixtureID, newDate)
	if err != nil {
		h.logger.WarnContext(ctx, "cascade preview failed", "season_id", seasonID, "fixture_id", req.FixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cascadePreviewToDTO(ctx, preview))
}

func (h *Handler) RecheckCascadeRow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecheckCascadeRow")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req cascadeRecheckRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	newDate, err := parseDateField("newDate", req.NewDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	overrides, err := parseOverrides(req.Overrides)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	overrideDate, err := parseDateField("overrideDate", req.OverrideDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.cascadeService.Recheck(ctx, seasonID, req.FixtureID, newDate, overrides, req.RowFixtureID, overrideDate)
	if err != nil {
		h.logger.WarnContext(ctx, "cascade recheck failed", "season_id", seasonID, "fixture_id", req.FixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cascadeRowToDTO(ctx, row))
}

func (h *Handler) ConfirmCascade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmCascade")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req cascadeConfirmRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	newDate, err := parseDateField("newDate", req.NewDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	overrides, err := parseOverrides(req.Overrides)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.cascadeService.Confirm(ctx, seasonID, req.FixtureID, newDate, overrides)
	if err != nil {
		h.logger.WarnContext(ctx, "cascade confirm failed", "season_id", seasonID, "fixture_id", req.FixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cascadeConfirmDTO{UpdatedFixtures: updated})
}
