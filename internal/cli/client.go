package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// FlowerResponse — запись датасета из API.
type FlowerResponse struct {
	ID                      int     `json:"id"`
	SepalLength             float64 `json:"sepal_length"`
	SepalWidth              float64 `json:"sepal_width"`
	PetalLength             float64 `json:"petal_length"`
	PetalWidth              float64 `json:"petal_width"`
	SepalArea               float64 `json:"sepal_area"`
	PetalArea               float64 `json:"petal_area"`
	SepalToPetalAreaRatio   float64 `json:"sepal_to_petal_area_ratio"`
	SepalToPetalLengthRatio float64 `json:"sepal_to_petal_length_ratio"`
	SepalToPetalWidthRatio  float64 `json:"sepal_to_petal_width_ratio"`
	Species                 string  `json:"species"`
}

// StatResponse — результат статистики из API.
type StatResponse struct {
	Attribute string   `json:"attribute"`
	Stat      string   `json:"stat"`
	P         *float64 `json:"p,omitempty"`
	Count     int      `json:"count"`
	Value     float64  `json:"value"`
}

// AttributeSummary — сводка по атрибуту из API.
type AttributeSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
}

// DatasetSummary — сводка по датасету из API.
type DatasetSummary struct {
	TotalRecords        int                         `json:"total_records"`
	SpeciesDistribution map[string]int              `json:"species_distribution"`
	Measurements        map[string]AttributeSummary `json:"measurements"`
}

// SpeciesSummary — сводка по виду из API.
type SpeciesSummary struct {
	Species      string                      `json:"species"`
	TotalRecords int                         `json:"total_records"`
	Measurements map[string]AttributeSummary `json:"measurements"`
}

// FilterOpts — параметры фильтрации записей.
type FilterOpts struct {
	Species string
	Min     []string // пары attr=value
	Max     []string // пары attr=value
}

// ListFlowersOpts — параметры команды flower list.
type ListFlowersOpts struct {
	FilterOpts
	SortBy    string
	SortOrder string
	Limit     int
}

// StatOpts — параметры команды stats.
type StatOpts struct {
	FilterOpts
	Attribute string
	Stat      string
	P         float64
	HasP      bool
}

// --- API response wrappers ---

type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type listResponse struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для Iris API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// filterParams переводит FilterOpts в query-параметры.
// Пары attr=value из --min/--max становятся min_<attr>/max_<attr>.
func filterParams(opts FilterOpts) (url.Values, error) {
	params := url.Values{}
	if opts.Species != "" {
		params.Set("species", opts.Species)
	}
	for prefix, pairs := range map[string][]string{"min_": opts.Min, "max_": opts.Max} {
		for _, pair := range pairs {
			attr, value, ok := strings.Cut(pair, "=")
			if !ok || attr == "" || value == "" {
				return nil, fmt.Errorf("bound must be attr=value, got %q", pair)
			}
			params.Set(prefix+attr, value)
		}
	}
	return params, nil
}

// ListFlowers возвращает записи, удовлетворяющие фильтру.
func (c *Client) ListFlowers(opts ListFlowersOpts) ([]FlowerResponse, error) {
	params, err := filterParams(opts.FilterOpts)
	if err != nil {
		return nil, err
	}
	if opts.SortBy != "" {
		params.Set("sort_by", opts.SortBy)
	}
	if opts.SortOrder != "" {
		params.Set("sort_order", opts.SortOrder)
	}
	if opts.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}

	var flowers []FlowerResponse
	err = c.list("/api/v1/flowers", params, &flowers)
	return flowers, err
}

// GetFlower возвращает запись по ID.
func (c *Client) GetFlower(id string) (*FlowerResponse, error) {
	var flower FlowerResponse
	err := c.get("/api/v1/flowers/"+id, nil, &flower)
	return &flower, err
}

// GetStat вычисляет статистику.
func (c *Client) GetStat(opts StatOpts) (*StatResponse, error) {
	params, err := filterParams(opts.FilterOpts)
	if err != nil {
		return nil, err
	}
	params.Set("attribute", opts.Attribute)
	params.Set("stat", opts.Stat)
	if opts.HasP {
		params.Set("p", fmt.Sprintf("%g", opts.P))
	}

	var stat StatResponse
	err = c.get("/api/v1/flowers/stats", params, &stat)
	return &stat, err
}

// GetSummary возвращает сводку по датасету.
func (c *Client) GetSummary() (*DatasetSummary, error) {
	var summary DatasetSummary
	err := c.get("/api/v1/flowers/summary", nil, &summary)
	return &summary, err
}

// ListSpecies возвращает каталог видов.
func (c *Client) ListSpecies() ([]string, error) {
	var species []string
	err := c.list("/api/v1/species", nil, &species)
	return species, err
}

// GetSpeciesSummary возвращает сводку по виду.
func (c *Client) GetSpeciesSummary(name string) (*SpeciesSummary, error) {
	var summary SpeciesSummary
	err := c.get("/api/v1/species/"+url.PathEscape(name)+"/summary", nil, &summary)
	return &summary, err
}

// --- HTTP helpers ---

func (c *Client) get(path string, params url.Values, result any) error {
	resp, err := c.do(path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var dr dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return json.Unmarshal(dr.Data, result)
}

func (c *Client) list(path string, params url.Values, result any) error {
	resp, err := c.do(path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return json.Unmarshal(lr.Data, result)
}

func (c *Client) do(path string, params url.Values) (*http.Response, error) {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error.Message != "" {
		return fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
