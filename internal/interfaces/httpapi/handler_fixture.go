package httpapi

import (
	"net/http"

	"github.com/ufaleague/league-api/internal/usecase"
)

func (h *Handler) ListFixturesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesBySeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtures, err := h.fixtureService.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(ctx, f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFixtureBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureBySeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtureID := r.PathValue("fixtureID")
	item, err := h.fixtureService.GetBySeason(ctx, seasonID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "season_id", seasonID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, item))
}

func (h *Handler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFixture")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req createFixtureRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateField("date", req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.fixtureService.Create(ctx, usecase.CreateFixtureInput{
		SeasonID:   seasonID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       date,
		Venue:      req.Venue,
		Matchweek:  req.Matchweek,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fixture failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fixtureToDTO(ctx, created))
}

func (h *Handler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFixture")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtureID := r.PathValue("fixtureID")
	var req updateFixtureRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	in := usecase.UpdateFixtureInput{
		SeasonID:   seasonID,
		FixtureID:  fixtureID,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Venue:      req.Venue,
		Matchweek:  req.Matchweek,
	}
	if req.Date != nil {
		date, err := parseDateField("date", *req.Date)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		in.Date = &date
	}

	updated, err := h.fixtureService.Update(ctx, in)
	if err != nil {
		h.logger.WarnContext(ctx, "update fixture failed", "season_id", seasonID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, updated))
}

func (h *Handler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFixture")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtureID := r.PathValue("fixtureID")
	if err := h.fixtureService.Delete(ctx, seasonID, fixtureID); err != nil {
		h.logger.WarnContext(ctx, "delete fixture failed", "season_id", seasonID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": fixtureID})
}

func (h *Handler) RecordFixtureResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordFixtureResult")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtureID := r.PathValue("fixtureID")
	var req recordResultRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.fixtureService.RecordResult(ctx, seasonID, fixtureID, req.HomeScore, req.AwayScore)
	if err != nil {
		h.logger.WarnContext(ctx, "record result failed", "season_id", seasonID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, updated))
}

func (h *Handler) ListMoveCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMoveCandidates")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtureID := r.PathValue("fixtureID")
	candidates, err := h.fixtureService.MoveCandidates(ctx, seasonID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "list move candidates failed", "season_id", seasonID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]moveCandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, moveCandidateDTO{
			Date:     c.Date.String(),
			Validity: string(c.Validity),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) MoveFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MoveFixture")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	fixtureID := r.PathValue("fixtureID")
	var req moveFixtureRequest
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

	updated, err := h.fixtureService.Move(ctx, seasonID, fixtureID, newDate)
	if err != nil {
		h.logger.WarnContext(ctx, "move fixture failed", "season_id", seasonID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, updated))
}
