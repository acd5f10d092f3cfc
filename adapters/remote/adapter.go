// Package remote is the client of the inventory/config persistence service.
// Every call is a single request: a non-2xx response is a hard failure and
// nothing is retried here.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"pcbuild/api/v1/mapping"
	apitypes "pcbuild/api/v1/types"
	"pcbuild/core/catalog"
	"pcbuild/core/types"
	"pcbuild/internal/errors"
)

// AdminHeader carries the shared admin secret
const AdminHeader = "X-Admin-Password"

// Config configures the client
type Config struct {
	// BaseURL of the persistence service
	BaseURL string `json:"base_url"`

	// Password is the shared admin secret sent on mutations
	Password string `json:"password"`

	// Headers to include on every request
	Headers map[string]string `json:"headers"`

	// Timeout for requests
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
		Headers: make(map[string]string),
	}
}

// Adapter talks to one persistence service
type Adapter struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client. A nil logger logs nothing.
func New(config *Config, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// FetchInventory returns every stored record (GET /inventory)
func (a *Adapter) FetchInventory(ctx context.Context) (types.Catalog, error) {
	var body apitypes.InventoryDTO
	if err := a.do(ctx, "fetch-inventory", "inventory", http.MethodGet, "/inventory", nil, false, &body); err != nil {
		return nil, err
	}
	return mapping.CatalogFromDTO(body), nil
}

// UpsertRecord creates or replaces one record (POST /inventory)
func (a *Adapter) UpsertRecord(ctx context.Context, category types.Category, rec types.ComponentRecord) error {
	req := apitypes.InventoryUpsertRequest{Category: string(category), Record: mapping.RecordToDTO(rec)}
	return a.do(ctx, "upsert-record", category.String()+"/"+rec.ID, http.MethodPost, "/inventory", req, true, nil)
}

// DeleteRecord removes one record (DELETE /inventory/{cat}/{id})
func (a *Adapter) DeleteRecord(ctx context.Context, category types.Category, id string) error {
	path := "/inventory/" + url.PathEscape(category.String()) + "/" + url.PathEscape(id)
	return a.do(ctx, "delete-record", category.String()+"/"+id, http.MethodDelete, path, nil, true, nil)
}

// FetchTemplates returns every stored template triple (GET /configs)
func (a *Adapter) FetchTemplates(ctx context.Context) (types.ConfigTemplate, error) {
	var body apitypes.ConfigsDTO
	if err := a.do(ctx, "fetch-configs", "configs", http.MethodGet, "/configs", nil, false, &body); err != nil {
		return nil, err
	}
	return mapping.TemplatesFromDTO(body), nil
}

// UpsertTemplate creates or replaces one triple (POST /configs)
func (a *Adapter) UpsertTemplate(ctx context.Context, brand types.Brand, game, budgetKey string, sel types.Selection) error {
	req := apitypes.ConfigUpsertRequest{
		CPUBrand:  brand.String(),
		Game:      game,
		BudgetKey: budgetKey,
		Selection: mapping.SelectionToDTO(sel),
	}
	return a.do(ctx, "upsert-config", templateKey(brand, game, budgetKey), http.MethodPost, "/configs", req, true, nil)
}

// DeleteTemplate removes one triple (DELETE /configs/{cpuBrand}/{game}/{budgetKey})
func (a *Adapter) DeleteTemplate(ctx context.Context, brand types.Brand, game, budgetKey string) error {
	path := "/configs/" + url.PathEscape(brand.String()) + "/" + url.PathEscape(game) + "/" + url.PathEscape(budgetKey)
	return a.do(ctx, "delete-config", templateKey(brand, game, budgetKey), http.MethodDelete, path, nil, true, nil)
}

// Overrides implements catalog.OverrideSource; remote records are full
// records, so each one replaces its baseline counterpart entirely
func (a *Adapter) Overrides(ctx context.Context) (types.Overrides, error) {
	inv, err := a.FetchInventory(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.RecordOverrides(inv), nil
}

// Templates implements catalog.TemplateSource
func (a *Adapter) Templates(ctx context.Context) (types.ConfigTemplate, error) {
	return a.FetchTemplates(ctx)
}

func templateKey(brand types.Brand, game, budgetKey string) string {
	return brand.String() + "/" + game + "/" + budgetKey
}

func (a *Adapter) do(ctx context.Context, op, key, method, path string, in interface{}, admin bool, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Persistence(op, key, 0, fmt.Errorf("failed to encode request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(a.config.BaseURL, "/")+path, body)
	if err != nil {
		return errors.Persistence(op, key, 0, fmt.Errorf("failed to create request: %w", err))
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range a.config.Headers {
		req.Header.Set(k, v)
	}
	if admin {
		req.Header.Set(AdminHeader, a.config.Password)
	}

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Warn("persistence request failed", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return errors.Persistence(op, key, 0, err)
	}
	defer resp.Body.Close()

	a.logger.Debug("persistence request",
		zap.String("op", op),
		zap.String("key", key),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Persistence(op, key, resp.StatusCode, fmt.Errorf("status %d: %s", resp.StatusCode, errorMessage(resp.Body)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Persistence(op, key, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// errorMessage extracts the service's error message, falling back to the raw body
func errorMessage(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 4096))
	var envelope apitypes.ErrorResponse
	if json.Unmarshal(data, &envelope) == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(data))
}
