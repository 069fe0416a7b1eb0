package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/utils"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] rooted at cfg.HTTPAddress. A scheme-less address is treated
// as plain HTTP.
//
// Returns [ErrEmptyAddress] if cfg.HTTPAddress is blank.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	address := strings.TrimSpace(cfg.HTTPAddress)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	client := utils.NewHTTPClient(address, cfg.RequestTimeout)
	logger.Debug().Str("base_url", client.BaseURL).Msg("http server adapter created")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// Transform implements [ServerAdapter] via POST /api/transform.
func (h *httpServerAdapter) Transform(ctx context.Context, req models.TransformRequest) (models.TransformResult, error) {
	var result models.TransformResult

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/transform")
	if err != nil {
		return models.TransformResult{}, fmt.Errorf("transform request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransformResult{}, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.TransformResult{}, fmt.Errorf("decode transform response: %w", err)
	}

	return result, nil
}

// Strength implements [ServerAdapter] via POST /api/strength.
func (h *httpServerAdapter) Strength(ctx context.Context, req models.StrengthRequest) (int, error) {
	var result models.StrengthResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/strength")
	if err != nil {
		return 0, fmt.Errorf("strength request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return 0, fmt.Errorf("decode strength response: %w", err)
	}

	return result.Strength, nil
}

// Methods implements [ServerAdapter] via GET /api/methods.
func (h *httpServerAdapter) Methods(ctx context.Context) ([]models.MethodInfo, error) {
	resp, err := h.request(ctx).Get("/api/methods")
	if err != nil {
		return nil, fmt.Errorf("methods request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var methods []models.MethodInfo
	if err = json.Unmarshal(resp.Body(), &methods); err != nil {
		return nil, fmt.Errorf("decode methods response: %w", err)
	}

	return methods, nil
}

// History implements [ServerAdapter] via GET /api/history.
func (h *httpServerAdapter) History(ctx context.Context) ([]models.HistoryEntry, error) {
	resp, err := h.request(ctx).Get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.HistoryEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}

	return entries, nil
}

// ClearHistory implements [ServerAdapter] via DELETE /api/history.
func (h *httpServerAdapter) ClearHistory(ctx context.Context) error {
	resp, err := h.request(ctx).Delete("/api/history")
	if err != nil {
		return fmt.Errorf("clear history request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// request starts a request bound to ctx, forwarding the caller's trace ID.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}
