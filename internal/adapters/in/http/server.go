// Package http is the REST adapter of the marketplace. It resolves the
// requester from a bearer token, validates requests against the embedded
// OpenAPI document and delegates to the application use cases.
package http

import (
	"log/slog"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder        commands.CreateOrderCommandHandler
	TransitionOrder    commands.TransitionOrderStatusCommandHandler
	CreateShop         commands.CreateShopCommandHandler
	UpdateShop         commands.UpdateShopCommandHandler
	ShopServices       commands.ShopServiceCommandHandler
	CreateTicket       commands.CreateTicketCommandHandler
	UpdateTicketStatus commands.UpdateTicketStatusCommandHandler

	// Query handlers
	GetOrder           queries.GetOrderQueryHandler
	ListCustomerOrders queries.ListCustomerOrdersQueryHandler
	ListShopOrders     queries.ListShopOrdersQueryHandler
	GetShop            queries.GetShopQueryHandler
	ListActiveShops    queries.ListActiveShopsQueryHandler
	FindNearbyShops    queries.FindNearbyShopsQueryHandler
	ListShopServices   queries.ListShopServicesQueryHandler
	ShopStats          queries.GetShopStatsQueryHandler
	Dashboard          queries.GetDashboardStatsQueryHandler
	Tickets            queries.TicketQueryHandler
}

// Server maps HTTP requests onto the application use cases.
type Server struct {
	h Handlers
}

// NewServer creates a Server over the use case handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Options configures the echo instance built by NewEcho.
type Options struct {
	AllowOrigins []string
	Logger       *slog.Logger
}

// NewEcho builds the echo instance with the middleware chain and every route.
func NewEcho(server *Server, auth *Authenticator, opts Options) (*echo.Echo, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	RegisterSwagger(doc)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))
	e.Use(middleware.Recover())
	if len(opts.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: opts.AllowOrigins,
			AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
		}))
	}
	e.Use(auth.Middleware())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.RegisterRoutes(e.Group("/api/v1"))
	return e, nil
}

// RegisterRoutes mounts the API on g.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders", s.ListOrders)
	g.GET("/orders/:orderId", s.GetOrder)
	g.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)

	g.GET("/shops", s.ListShops)
	g.POST("/shops", s.CreateShop)
	g.GET("/shops/nearby", s.FindNearbyShops)
	g.GET("/shops/:shopId", s.GetShop)
	g.PATCH("/shops/:shopId", s.UpdateShop)
	g.GET("/shops/:shopId/orders", s.ListShopOrders)
	g.GET("/shops/:shopId/services", s.ListShopServices)
	g.POST("/shops/:shopId/services", s.AddShopService)
	g.PATCH("/shops/:shopId/services/:serviceId", s.UpdateShopService)
	g.DELETE("/shops/:shopId/services/:serviceId", s.RemoveShopService)
	g.GET("/shops/:shopId/stats", s.GetShopStats)
	g.GET("/shops/:shopId/dashboard", s.GetShopDashboard)

	g.POST("/tickets", s.CreateTicket)
	g.GET("/tickets", s.ListTickets)
	g.GET("/tickets/:ticketId", s.GetTicket)
	g.PATCH("/tickets/:ticketId/status", s.UpdateTicketStatus)
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.RequestID != "" {
				attrs = append(attrs, "request_id", v.RequestID)
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}
}
