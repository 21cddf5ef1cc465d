package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}/scores", handler.ListPlayerScores)
	mux.HandleFunc("POST /v1/players/{playerID}/scores", handler.RecordPlayerScore)
	mux.HandleFunc("GET /v1/players/{playerID}/summary", handler.GetPlayerSummary)
	mux.HandleFunc("GET /v1/players/{playerID}/reward", handler.GetPlayerReward)
	mux.HandleFunc("POST /v1/rewards/preview", handler.PreviewReward)
	mux.HandleFunc("GET /v1/boards", handler.ListBoards)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-feed", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunFeedSyncJob)))
}
