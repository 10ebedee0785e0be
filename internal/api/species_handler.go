package api

import (
	"net/http"

	"github.com/shaiso/iris-api/internal/query"
)

// ListSpecies возвращает каталог видов.
// GET /api/v1/species
func (h *Handler) ListSpecies(w http.ResponseWriter, r *http.Request) {
	species, err := h.species.ListSpecies(r.Context())
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	List(w, species, len(species))
}

// GetSpeciesSummary возвращает сводку по одному виду.
// GET /api/v1/species/{name}/summary
func (h *Handler) GetSpeciesSummary(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	all, err := h.flowers.List(r.Context())
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	summary, ok := query.SummarizeSpecies(all, name)
	if !ok {
		NotFound(w, "species '"+name+"' not found")
		return
	}

	Success(w, summary)
}
