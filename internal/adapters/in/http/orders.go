package http

import (
	"net/http"
	"strings"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return err
	}

	shopID, err := kernel.ParseID("shopId", body.ShopID)
	if err != nil {
		return err
	}
	total, err := kernel.NewMoney(body.TotalAmount)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateOrderCommand(requester, shopID, body.itemInputs(),
		body.PickupDate, body.PickupAddress, body.SpecialInstructions, total)
	if err != nil {
		return err
	}

	id, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// ListOrders handles GET /api/v1/orders, the customer's own orders.
func (s *Server) ListOrders(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	filter, err := filterFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListCustomerOrdersQuery(requester, filter)
	if err != nil {
		return err
	}

	orders, err := s.h.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.ParseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(requester, orderID)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.ParseID("orderId", c.Param("orderId"))
	if err != nil {
		return err
	}
	var body StatusChange
	if err := c.Bind(&body); err != nil {
		return err
	}
	next, err := order.StatusFromString(body.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewTransitionOrderStatusCommand(requester, orderID, next)
	if err != nil {
		return err
	}

	o, err := s.h.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// ListShopOrders handles GET /api/v1/shops/:shopId/orders, the owner's order board.
func (s *Server) ListShopOrders(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return err
	}
	filter, err := filterFrom(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListShopOrdersQuery(requester, shopID, filter)
	if err != nil {
		return err
	}

	resp, err := s.h.ListShopOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ShopOrders{
		Orders: toOrders(resp.Orders),
		Counts: OrderGroupCounts{
			New:        resp.Counts.New,
			Processing: resp.Counts.Processing,
			Ready:      resp.Counts.Ready,
			History:    resp.Counts.History,
		},
	})
}

// filterFrom reads ?group= and ?status=. status may repeat or hold a comma separated list.
func filterFrom(c echo.Context) (order.Filter, error) {
	var statuses []string
	for _, v := range c.QueryParams()["status"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	return order.NewFilter(c.QueryParam("group"), statuses)
}
