package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaoheizi112/Weather-Forecast/internal/parser"
	"github.com/xiaoheizi112/Weather-Forecast/internal/render"
	"github.com/xiaoheizi112/Weather-Forecast/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	service     *service.Service
	logger      *zap.Logger
	chartWidth  int
	chartHeight int
}

func NewHandler(svc *service.Service, chartWidth, chartHeight int, logger *zap.Logger) *Handler {
	return &Handler{
		service:     svc,
		logger:      logger,
		chartWidth:  chartWidth,
		chartHeight: chartHeight,
	}
}

// Refresh handles POST /api/v1/weather/refresh
func (h *Handler) Refresh(c *fiber.Ctx) error {
	city := c.Query("city")

	h.logger.Info("Refresh requested", zap.String("city", city))

	err := h.service.Refresh(c.Context(), city)
	switch {
	case errors.Is(err, service.ErrCityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "请输入正确的城市名称",
			"city":  city,
		})
	case errors.Is(err, service.ErrFetchInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A fetch is already in flight",
		})
	case errors.Is(err, parser.ErrMalformedPayload):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Upstream returned a malformed payload",
			"details": err.Error(),
		})
	case err != nil:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "网络请求失败",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "updated",
		"city":   city,
	})
}

// GetSummary handles GET /api/v1/weather/summary
func (h *Handler) GetSummary(c *fiber.Ctx) error {
	forecast, ok := h.service.Current()
	if !ok {
		return noForecast(c)
	}
	return c.JSON(render.BuildSummary(forecast))
}

// GetStrip handles GET /api/v1/weather/strip
func (h *Handler) GetStrip(c *fiber.Ctx) error {
	forecast, ok := h.service.Current()
	if !ok {
		return noForecast(c)
	}
	return c.JSON(fiber.Map{
		"days": render.BuildStrip(forecast),
	})
}

// GetCharts handles GET /api/v1/weather/charts
func (h *Handler) GetCharts(c *fiber.Ctx) error {
	forecast, ok := h.service.Current()
	if !ok {
		return noForecast(c)
	}

	height := h.chartHeight
	if v := c.Query("height"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "height must be a positive integer",
			})
		}
		height = parsed
	}

	return c.JSON(render.BuildCharts(forecast, h.chartWidth, height))
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
		"stats":     h.service.Stats(),
	})
}

// GetMetrics handles GET /api/v1/metrics
func (h *Handler) GetMetrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"metrics":   h.service.Stats(),
		"timestamp": time.Now(),
	})
}

func noForecast(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "No forecast fetched yet",
	})
}

var startTime = time.Now()
