package api

import (
	"net/http"
)

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Middleware chain
	chain := Chain(
		Recovery(h.logger),
		Logging(h.logger),
	)

	// Flowers
	mux.Handle("GET /api/v1/flowers", chain(http.HandlerFunc(h.ListFlowers)))
	mux.Handle("GET /api/v1/flowers/stats", chain(http.HandlerFunc(h.GetStat)))
	mux.Handle("GET /api/v1/flowers/summary", chain(http.HandlerFunc(h.GetSummary)))
	mux.Handle("GET /api/v1/flowers/{id}", chain(http.HandlerFunc(h.GetFlower)))

	// Species
	mux.Handle("GET /api/v1/species", chain(http.HandlerFunc(h.ListSpecies)))
	mux.Handle("GET /api/v1/species/{name}/summary", chain(http.HandlerFunc(h.GetSpeciesSummary)))

	// Documentation
	mux.Handle("GET /api/v1/openapi.json", chain(http.HandlerFunc(h.GetOpenAPI)))
	mux.Handle("GET /docs", chain(http.HandlerFunc(h.GetDocs)))
}
