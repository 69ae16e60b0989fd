package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/participants", handler.ListMatchParticipants)
	mux.HandleFunc("GET /v1/matches/{matchID}/participants/count", handler.CountMatchParticipants)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamName}/players", handler.ListTeamPlayers)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/matches/{matchID}/team", RequireAuth(verifier, http.HandlerFunc(handler.GetMyTeam)))
	mux.Handle("PUT /v1/matches/{matchID}/team", RequireAuth(verifier, http.HandlerFunc(handler.SaveMyTeam)))

	mux.Handle("POST /v1/matches/{matchID}/sessions", RequireAuth(verifier, http.HandlerFunc(handler.StartSession)))
	mux.Handle("GET /v1/sessions/{sessionID}", RequireAuth(verifier, http.HandlerFunc(handler.GetSession)))
	mux.Handle("POST /v1/sessions/{sessionID}/players", RequireAuth(verifier, http.HandlerFunc(handler.AddSessionPlayer)))
	mux.Handle("POST /v1/sessions/{sessionID}/players/{playerID}/return", RequireAuth(verifier, http.HandlerFunc(handler.ReturnSessionPlayer)))
	mux.Handle("POST /v1/sessions/{sessionID}/reorder", RequireAuth(verifier, http.HandlerFunc(handler.ReorderSession)))
	mux.Handle("POST /v1/sessions/{sessionID}/finalize", RequireAuth(verifier, http.HandlerFunc(handler.FinalizeSession)))
}
