// Package http contains the catalog HTTP API handlers
package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/entities"
	"github.com/bibegs/dramawallah-bot/internal/domain/catalog/usecase/buissines"
)

// requestTimeout bounds store lookups behind one HTTP request
const requestTimeout = 10 * time.Second

// dataResponse wraps a successful API payload
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorResponse wraps a failed API call
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Handlers contains the status and catalog API handlers
type Handlers struct {
	uc     *buissines.UseCase
	logger zerolog.Logger
}

// NewHandlers creates new HTTP handlers
func NewHandlers(uc *buissines.UseCase, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		logger: logger,
	}
}

// RegisterRoutes registers the API routes on the shared router
func (h *Handlers) RegisterRoutes(rt *router.Router) {
	rt.GET("/", h.HandleHome)
	rt.GET("/health", h.HandleHealth)
	rt.GET("/api/dramas", h.HandleDramas)
	rt.GET("/api/ongoing", h.HandleOngoing)
	rt.GET("/api/news", h.HandleNews)

	h.logger.Info().Msg("HTTP API routes registered")
}

// HandleHome reports that the bot is up
func (h *Handlers) HandleHome(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{
		"status":  "dramawallah bot is running",
		"version": "1.0",
	})
}

// HandleHealth is the liveness endpoint
func (h *Handlers) HandleHealth(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "healthy"})
}

// HandleDramas lists finished drama records
func (h *Handlers) HandleDramas(ctx *fasthttp.RequestCtx) {
	h.handleList(ctx, entities.KindDrama)
}

// HandleOngoing lists ongoing drama records
func (h *Handlers) HandleOngoing(ctx *fasthttp.RequestCtx) {
	h.handleList(ctx, entities.KindOngoing)
}

func (h *Handlers) handleList(ctx *fasthttp.RequestCtx, kind entities.DramaKind) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	dramas, err := h.uc.ListDramas(reqCtx, kind)
	if err != nil {
		h.logger.Error().Err(err).Str("kind", string(kind)).Msg("Failed to list records for API")
		h.writeJSON(ctx, fasthttp.StatusInternalServerError, errorResponse{Success: false, Error: err.Error()})
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, dataResponse{Success: true, Data: dramas})
}

// HandleNews lists the most recent news items
func (h *Handlers) HandleNews(ctx *fasthttp.RequestCtx) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	news, err := h.uc.RecentNews(reqCtx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list news for API")
		h.writeJSON(ctx, fasthttp.StatusInternalServerError, errorResponse{Success: false, Error: err.Error()})
		return
	}

	h.writeJSON(ctx, fasthttp.StatusOK, dataResponse{Success: true, Data: news})
}

func (h *Handlers) writeJSON(ctx *fasthttp.RequestCtx, statusCode int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode API response")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	// the website frontend fetches the API cross-origin
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(statusCode)
	ctx.SetBody(body)
}
