package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.HandleInfo)
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("GET /history", handler.HandleHistory)
	mux.HandleFunc("DELETE /history/{id}", handler.HandleDelete)
	mux.HandleFunc("GET /analytics", handler.HandleAnalytics)
}
