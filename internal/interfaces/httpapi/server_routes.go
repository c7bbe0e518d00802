package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-dashboard/internal/platform/logging"
	"github.com/riskibarqy/league-dashboard/internal/platform/metrics"
)

type routes struct {
	mux      *http.ServeMux
	handler  *Handler
	verifier TokenVerifier
	logger   *logging.Logger
	metrics  *metrics.Manager
}

// handle registers pattern with per-route metrics labelled by the pattern.
func (rt *routes) handle(pattern string, h http.Handler) {
	rt.mux.Handle(pattern, instrumentRoute(rt.metrics, pattern, h))
}

func (rt *routes) admin(pattern string, fn http.HandlerFunc) {
	rt.handle(pattern, RequireAdmin(rt.verifier, rt.logger, fn))
}

func (rt *routes) registerSystemRoutes(swaggerEnabled bool) {
	rt.mux.HandleFunc("GET /healthz", rt.handler.Healthz)
	if rt.metrics != nil {
		rt.mux.Handle("GET /metrics", rt.metrics.Handler())
	}
	if !swaggerEnabled {
		return
	}
	rt.mux.HandleFunc("GET /openapi.yaml", rt.handler.OpenAPI)
	rt.mux.HandleFunc("GET /docs", rt.handler.SwaggerUI)
}

func (rt *routes) registerPublicRoutes() {
	h := rt.handler
	rt.handle("GET /v1/divisions", http.HandlerFunc(h.ListDivisions))
	rt.handle("GET /v1/divisions/active", http.HandlerFunc(h.ResolveActiveDivision))
	rt.handle("GET /v1/divisions/{divisionID}/standings", http.HandlerFunc(h.Standings))
	rt.handle("GET /v1/divisions/{divisionID}/leaderboard", http.HandlerFunc(h.Leaderboard))
	rt.handle("GET /v1/divisions/{divisionID}/stats", http.HandlerFunc(h.DivisionStats))
	rt.handle("GET /v1/divisions/{divisionID}/overview", http.HandlerFunc(h.DivisionOverview))
	rt.handle("GET /v1/divisions/{divisionID}/teams", http.HandlerFunc(h.ListTeamsByDivision))
	rt.handle("GET /v1/divisions/{divisionID}/headlines", http.HandlerFunc(h.ListHeadlinesByDivision))
	rt.handle("GET /v1/teams/{teamID}", http.HandlerFunc(h.GetTeamPage))
	rt.handle("GET /v1/matches", http.HandlerFunc(h.ListLatestResults))
	rt.handle("POST /v1/corrections", http.HandlerFunc(h.SubmitCorrection))
}

func (rt *routes) registerAdminRoutes() {
	h := rt.handler
	rt.admin("GET /v1/admin/divisions/{divisionID}/matches", h.AdminListMatches)
	rt.admin("GET /v1/admin/matches/{matchID}", h.AdminGetMatch)
	rt.admin("POST /v1/admin/matches", h.AdminCreateMatch)
	rt.admin("PUT /v1/admin/matches/{matchID}", h.AdminUpdateMatch)
	rt.admin("DELETE /v1/admin/matches/{matchID}", h.AdminDeleteMatch)

	rt.admin("GET /v1/admin/divisions/{divisionID}/players", h.AdminListPlayers)
	rt.admin("POST /v1/admin/players", h.AdminCreatePlayer)
	rt.admin("PUT /v1/admin/players/{playerID}", h.AdminUpdatePlayer)
	rt.admin("DELETE /v1/admin/players/{playerID}", h.AdminDeletePlayer)

	rt.admin("POST /v1/admin/headlines", h.AdminCreateHeadline)
	rt.admin("PUT /v1/admin/headlines/{headlineID}", h.AdminUpdateHeadline)
	rt.admin("DELETE /v1/admin/headlines/{headlineID}", h.AdminDeleteHeadline)

	rt.admin("GET /v1/admin/corrections", h.AdminListCorrections)
	rt.admin("PATCH /v1/admin/corrections/{correctionID}", h.AdminUpdateCorrection)
}

func (rt *routes) registerInternalJobRoutes(internalJobToken string) {
	rt.handle("POST /v1/internal/jobs/recompute-standings",
		RequireInternalJobToken(internalJobToken, http.HandlerFunc(rt.handler.RunRecomputeJob)))
}
