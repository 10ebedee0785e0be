package api

import (
	"net/http"
	"strconv"

	"github.com/shaiso/iris-api/internal/query"
)

// ListFlowers возвращает записи, удовлетворяющие фильтру.
// GET /api/v1/flowers?species=...&min_<attr>=...&max_<attr>=...&sort_by=...&sort_order=...&limit=...
func (h *Handler) ListFlowers(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	limit, err := limitFromQuery(r.URL.Query())
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	all, err := h.flowers.List(r.Context())
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	flowers, err := query.Apply(all, filter)
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	sortBy := r.URL.Query().Get("sort_by")
	sortOrder := r.URL.Query().Get("sort_order")
	if err := query.Sort(flowers, sortBy, sortOrder); HandleQueryError(w, h.logger, err, "") {
		return
	}

	if limit > 0 && limit < len(flowers) {
		flowers = flowers[:limit]
	}

	result := make([]FlowerResponse, len(flowers))
	for i, fl := range flowers {
		result[i] = FlowerFromDomain(fl)
	}

	List(w, result, len(result))
}

// GetFlower возвращает запись по ID.
// GET /api/v1/flowers/{id}
func (h *Handler) GetFlower(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		BadRequest(w, "invalid flower id")
		return
	}

	fl, err := h.flowers.GetByID(r.Context(), id)
	if HandleQueryError(w, h.logger, err, "flower not found") {
		return
	}

	Success(w, FlowerFromDomain(*fl))
}

// GetStat вычисляет скалярную статистику по атрибуту.
// GET /api/v1/flowers/stats?attribute=...&stat=...&p=...&species=...&min_<attr>=...
func (h *Handler) GetStat(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	attribute := values.Get("attribute")
	if attribute == "" {
		BadRequest(w, "attribute is required")
		return
	}

	statStr := values.Get("stat")
	if statStr == "" {
		BadRequest(w, "stat is required")
		return
	}
	stat, err := query.ParseStat(statStr)
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	var p float64
	var pPtr *float64
	if stat == query.StatQuantile {
		pStr := values.Get("p")
		if pStr == "" {
			BadRequest(w, "p is required for stat=quantile")
			return
		}
		p, err = strconv.ParseFloat(pStr, 64)
		if err != nil {
			BadRequest(w, "p must be a number")
			return
		}
		pPtr = &p
	}

	filter, err := filterFromQuery(values)
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	all, err := h.flowers.List(r.Context())
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	population, err := query.Apply(all, filter)
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	value, err := query.Compute(population, attribute, stat, p)
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	Success(w, StatResponse{
		Attribute: attribute,
		Stat:      string(stat),
		P:         pPtr,
		Count:     len(population),
		Value:     value,
	})
}

// GetSummary возвращает сводку по всему датасету.
// GET /api/v1/flowers/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	all, err := h.flowers.List(r.Context())
	if HandleQueryError(w, h.logger, err, "") {
		return
	}

	Success(w, query.Summarize(all))
}
