package http

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	// Registers the Swagger document served under /swagger.
	_ "orders/internal/generated/docs"
	"orders/internal/generated/servers"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig configures the operational parts of the router.
type RouterConfig struct {
	ServiceName  string
	AllowOrigins []string
	// Now stamps health responses. Defaults to time.Now.
	Now func() time.Time
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Service   string    `json:"service"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// RouteResponse describes one registered route in GET /debug/routes.
type RouteResponse struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// NewRouter wires the order API and the operational endpoints onto a fresh echo
// instance.
func NewRouter(cfg RouterConfig, server *Server, m *metrics.ServerMetrics, logger *slog.Logger) *echo.Echo {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger = logger.With("component", "router")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/swagger")
		},
	}))
	e.Use(middleware.Recover())
	e.Use(metricsMiddleware(m))
	e.Use(requestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Idempotency-Key"},
	}))

	e.GET("/health", health(cfg))
	e.GET("/debug/routes", routes(e))
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if swagger, err := servers.GetSwagger(); err != nil {
		logger.Error("openapi document unavailable", "error", err)
	} else {
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.JSON(http.StatusOK, swagger)
		})
	}

	servers.RegisterHandlers(e, server)

	return e
}

// health godoc
//
//	@Summary	Liveness check
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	http.HealthResponse
//	@Router		/health [get]
func health(cfg RouterConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Service:   cfg.ServiceName,
			Status:    "ok",
			Timestamp: cfg.Now().UTC(),
		})
	}
}

func routes(e *echo.Echo) echo.HandlerFunc {
	return func(c echo.Context) error {
		registered := e.Routes()
		response := make([]RouteResponse, 0, len(registered))
		for _, r := range registered {
			response = append(response, RouteResponse{Method: r.Method, Path: r.Path})
		}
		sort.Slice(response, func(i, j int) bool {
			if response[i].Path != response[j].Path {
				return response[i].Path < response[j].Path
			}
			return response[i].Method < response[j].Method
		})
		return c.JSON(http.StatusOK, response)
	}
}
