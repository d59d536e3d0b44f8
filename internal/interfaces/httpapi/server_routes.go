package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/status", handler.GetSeasonStatus)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/summary", handler.GetSeasonSummary)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/teams", handler.ListTeamsBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/holidays", handler.ListHolidaysBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/fixtures", handler.ListFixturesBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/fixtures/{fixtureID}", handler.GetFixtureBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/game-days", handler.ListGameDays)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/schedule/audit", handler.RunScheduleAudit)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("PATCH /v1/seasons/{seasonID}/end-date", admin(handler.UpdateSeasonEndDate))
	mux.Handle("PATCH /v1/seasons/{seasonID}/status", admin(handler.UpdateSeasonStatus))

	mux.Handle("PATCH /v1/seasons/{seasonID}/teams/{teamID}/name", admin(handler.RenameTeam))
	mux.Handle("PATCH /v1/seasons/{seasonID}/teams/{teamID}/draft-position", admin(handler.SetTeamDraftPosition))

	mux.Handle("POST /v1/seasons/{seasonID}/holidays", admin(handler.CreateHoliday))
	mux.Handle("DELETE /v1/seasons/{seasonID}/holidays/{holidayID}", admin(handler.DeleteHoliday))

	mux.Handle("POST /v1/seasons/{seasonID}/fixtures", admin(handler.CreateFixture))
	mux.Handle("PATCH /v1/seasons/{seasonID}/fixtures/{fixtureID}", admin(handler.UpdateFixture))
	mux.Handle("DELETE /v1/seasons/{seasonID}/fixtures/{fixtureID}", admin(handler.DeleteFixture))
	mux.Handle("POST /v1/seasons/{seasonID}/fixtures/{fixtureID}/result", admin(handler.RecordFixtureResult))
	mux.Handle("GET /v1/seasons/{seasonID}/fixtures/{fixtureID}/move-candidates", admin(handler.ListMoveCandidates))
	mux.Handle("POST /v1/seasons/{seasonID}/fixtures/{fixtureID}/move", admin(handler.MoveFixture))

	mux.Handle("POST /v1/seasons/{seasonID}/schedule/auto", admin(handler.RunAutoSchedule))
	mux.Handle("POST /v1/seasons/{seasonID}/schedule/cascade", admin(handler.PreviewCascade))
	mux.Handle("POST /v1/seasons/{seasonID}/schedule/cascade/recheck", admin(handler.RecheckCascadeRow))
	mux.Handle("POST /v1/seasons/{seasonID}/schedule/cascade/confirm", admin(handler.ConfirmCascade))
}
