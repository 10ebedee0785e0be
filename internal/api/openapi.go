package api

import (
	"net/http"

	"github.com/shaiso/iris-api/internal/domain"
	"github.com/shaiso/iris-api/internal/query"
)

// Типы OpenAPI 3 документа. Покрывают только то подмножество
// спецификации, которое нужно этому API.

type openAPIDoc struct {
	OpenAPI    string                 `json:"openapi"`
	Info       openAPIInfo            `json:"info"`
	Paths      map[string]pathItem    `json:"paths"`
	Components map[string]schemaGroup `json:"components,omitempty"`
}

type openAPIInfo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

type pathItem struct {
	Get *operation `json:"get,omitempty"`
}

type operation struct {
	Summary    string              `json:"summary"`
	Parameters []parameter         `json:"parameters,omitempty"`
	Responses  map[string]response `json:"responses"`
}

type parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Required    bool   `json:"required,omitempty"`
	Description string `json:"description,omitempty"`
	Schema      schema `json:"schema"`
}

type response struct {
	Description string `json:"description"`
}

type schema struct {
	Type string   `json:"type,omitempty"`
	Enum []string `json:"enum,omitempty"`
}

type schemaGroup map[string]schema

// buildOpenAPI собирает OpenAPI документ из тех же определений,
// что использует движок запросов: список атрибутов и видов статистик
// не дублируется, а берётся из domain и query.
func buildOpenAPI() openAPIDoc {
	attrEnum := make([]string, 0, len(domain.Attributes()))
	for _, a := range domain.Attributes() {
		attrEnum = append(attrEnum, string(a))
	}

	filterParams := []parameter{
		{Name: "species", In: "query", Description: "Exact species match", Schema: schema{Type: "string"}},
	}
	for _, a := range attrEnum {
		filterParams = append(filterParams,
			parameter{Name: "min_" + a, In: "query", Description: "Lower bound for " + a, Schema: schema{Type: "number"}},
			parameter{Name: "max_" + a, In: "query", Description: "Upper bound for " + a, Schema: schema{Type: "number"}},
		)
	}

	listParams := append(append([]parameter{}, filterParams...),
		parameter{Name: "sort_by", In: "query", Description: "Sort field (attribute or species)", Schema: schema{Type: "string", Enum: append(attrEnum, query.SortBySpecies)}},
		parameter{Name: "sort_order", In: "query", Schema: schema{Type: "string", Enum: []string{query.SortAsc, query.SortDesc}}},
		parameter{Name: "limit", In: "query", Description: "Maximum number of records", Schema: schema{Type: "integer"}},
	)

	statParams := append([]parameter{
		{Name: "attribute", In: "query", Required: true, Schema: schema{Type: "string", Enum: attrEnum}},
		{Name: "stat", In: "query", Required: true, Schema: schema{Type: "string", Enum: []string{
			string(query.StatMin), string(query.StatMax), string(query.StatMean),
			string(query.StatMedian), string(query.StatQuantile),
		}}},
		{Name: "p", In: "query", Description: "Quantile level in [0,1], required for stat=quantile", Schema: schema{Type: "number"}},
	}, filterParams...)

	ok := map[string]response{"200": {Description: "OK"}}
	okBad := map[string]response{
		"200": {Description: "OK"},
		"400": {Description: "Invalid filter, attribute or argument"},
	}
	statResponses := map[string]response{
		"200": {Description: "OK"},
		"400": {Description: "Invalid filter, attribute or argument"},
		"422": {Description: "Filter matches zero records"},
	}

	return openAPIDoc{
		OpenAPI: "3.0.3",
		Info: openAPIInfo{
			Title:       "Iris Dataset API",
			Description: "Read-only querying, filtering and descriptive statistics over the classic Iris flower dataset.",
			Version:     "1.0.0",
		},
		Paths: map[string]pathItem{
			"/api/v1/flowers": {Get: &operation{
				Summary:    "List flower records matching the filter",
				Parameters: listParams,
				Responses:  okBad,
			}},
			"/api/v1/flowers/{id}": {Get: &operation{
				Summary: "Get a single flower record",
				Parameters: []parameter{
					{Name: "id", In: "path", Required: true, Schema: schema{Type: "integer"}},
				},
				Responses: map[string]response{
					"200": {Description: "OK"},
					"404": {Description: "Record not found"},
				},
			}},
			"/api/v1/flowers/stats": {Get: &operation{
				Summary:    "Compute a scalar statistic over a (filtered) population",
				Parameters: statParams,
				Responses:  statResponses,
			}},
			"/api/v1/flowers/summary": {Get: &operation{
				Summary:   "Dataset summary: species distribution and per-attribute statistics",
				Responses: ok,
			}},
			"/api/v1/species": {Get: &operation{
				Summary:   "List distinct species labels",
				Responses: ok,
			}},
			"/api/v1/species/{name}/summary": {Get: &operation{
				Summary: "Per-species summary",
				Parameters: []parameter{
					{Name: "name", In: "path", Required: true, Schema: schema{Type: "string"}},
				},
				Responses: map[string]response{
					"200": {Description: "OK"},
					"404": {Description: "Species not present in the dataset"},
				},
			}},
		},
	}
}

// openAPI — документ собирается один раз: маршруты статичны.
var openAPI = buildOpenAPI()

// GetOpenAPI отдаёт OpenAPI документ.
// GET /api/v1/openapi.json
func (h *Handler) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, openAPI)
}

// docsHTML — интерактивная документация поверх /api/v1/openapi.json.
const docsHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Iris Dataset API</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
  <script>
    SwaggerUIBundle({url: "/api/v1/openapi.json", dom_id: "#swagger-ui"});
  </script>
</body>
</html>`

// GetDocs отдаёт страницу интерактивной документации.
// GET /docs
func (h *Handler) GetDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsHTML))
}
