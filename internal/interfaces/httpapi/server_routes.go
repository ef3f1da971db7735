package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/holes", handler.ListHolesByEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/events/{eventID}/results", handler.GetEventResults)
	mux.HandleFunc("GET /v1/events/{eventID}/stream", handler.StreamEventChanges)
	mux.HandleFunc("GET /v1/holes/{holeID}", handler.GetHole)
	mux.HandleFunc("GET /v1/holes/{holeID}/groups", handler.ListGroupsByHole)
	mux.HandleFunc("GET /v1/holes/{holeID}/clubs", handler.ListHoleClubs)
	mux.HandleFunc("GET /v1/holes/{holeID}/scoreboard", handler.GetHoleScoreboard)
	mux.HandleFunc("GET /v1/groups/{groupID}", handler.GetGroup)
	mux.HandleFunc("GET /v1/groups/{groupID}/members", handler.ListGroupMembers)
	mux.HandleFunc("GET /v1/members", handler.ListMembers)
	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminPIN string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminPIN(adminPIN, h)
	}

	mux.Handle("POST /v1/admin/verify", admin(handler.AdminVerify))

	mux.Handle("POST /v1/events", admin(handler.CreateEvent))
	mux.Handle("PUT /v1/events/{eventID}", admin(handler.UpdateEvent))
	mux.Handle("DELETE /v1/events/{eventID}", admin(handler.ArchiveEvent))

	mux.Handle("POST /v1/events/{eventID}/holes", admin(handler.CreateHole))
	mux.Handle("PUT /v1/holes/{holeID}", admin(handler.UpdateHole))
	mux.Handle("DELETE /v1/holes/{holeID}", admin(handler.ArchiveHole))
	mux.Handle("PUT /v1/holes/{holeID}/clubs", admin(handler.ReplaceHoleClubs))
	mux.Handle("PUT /v1/holes/{holeID}/scores", admin(handler.SaveHoleScores))

	mux.Handle("POST /v1/holes/{holeID}/groups", admin(handler.CreateGroup))
	mux.Handle("PUT /v1/groups/{groupID}", admin(handler.UpdateGroup))
	mux.Handle("DELETE /v1/groups/{groupID}", admin(handler.ArchiveGroup))

	mux.Handle("POST /v1/members", admin(handler.CreateMember))
	mux.Handle("PUT /v1/members/{memberID}", admin(handler.UpdateMember))
	mux.Handle("DELETE /v1/members/{memberID}", admin(handler.ArchiveMember))

	mux.Handle("POST /v1/clubs", admin(handler.CreateClub))
	mux.Handle("PUT /v1/clubs/{clubID}", admin(handler.UpdateClub))
	mux.Handle("DELETE /v1/clubs/{clubID}", admin(handler.ArchiveClub))
}
