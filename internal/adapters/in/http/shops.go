package http

import (
	"errors"
	"net/http"
	"strconv"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// DefaultNearbyRadiusKm is used when /shops/nearby is called without ?distance=.
const DefaultNearbyRadiusKm = 5.0

// ListShops handles GET /api/v1/shops. It is public.
func (s *Server) ListShops(c echo.Context) error {
	shops, err := s.h.ListActiveShops.Handle(c.Request().Context(), queries.NewListActiveShopsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShops(shops))
}

// CreateShop handles POST /api/v1/shops.
func (s *Server) CreateShop(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	var body NewShop
	if err := c.Bind(&body); err != nil {
		return err
	}

	profile, err := body.profile()
	if err != nil {
		return err
	}
	services, err := drafts(body.Services)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateShopCommand(requester, profile, services)
	if err != nil {
		return err
	}

	id, err := s.h.CreateShop.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, Created{ID: id.String()})
}

// FindNearbyShops handles GET /api/v1/shops/nearby?lat=&lng=&distance=.
// radius is accepted as an alias of distance; sending both is invalid.
func (s *Server) FindNearbyShops(c echo.Context) error {
	if _, err := requesterFrom(c); err != nil {
		return err
	}
	lat, err := floatParam(c, "lat", nil)
	if err != nil {
		return err
	}
	lng, err := floatParam(c, "lng", nil)
	if err != nil {
		return err
	}
	radiusParam := "distance"
	if c.QueryParam("radius") != "" {
		if c.QueryParam("distance") != "" {
			return errs.NewValueIsInvalidErrorWithCause("distance",
				errors.New("distance and radius are mutually exclusive"))
		}
		radiusParam = "radius"
	}
	defaultRadius := DefaultNearbyRadiusKm
	radius, err := floatParam(c, radiusParam, &defaultRadius)
	if err != nil {
		return err
	}

	origin, err := kernel.NewGeoPoint(lng, lat)
	if err != nil {
		return err
	}
	query, err := queries.NewFindNearbyShopsQuery(origin, radius)
	if err != nil {
		return err
	}

	ranked, err := s.h.FindNearbyShops.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNearby(ranked))
}

// GetShop handles GET /api/v1/shops/:shopId.
func (s *Server) GetShop(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return err
	}
	query, err := queries.NewGetShopQuery(requester, shopID)
	if err != nil {
		return err
	}

	found, err := s.h.GetShop.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShop(found))
}

// UpdateShop handles PATCH /api/v1/shops/:shopId.
func (s *Server) UpdateShop(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return err
	}
	var body ShopPatch
	if err := c.Bind(&body); err != nil {
		return err
	}
	patch, err := body.patch()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateShopCommand(requester, shopID, patch)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateShop.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShop(updated))
}

// ListShopServices handles GET /api/v1/shops/:shopId/services.
func (s *Server) ListShopServices(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return err
	}
	query, err := queries.NewListShopServicesQuery(requester, shopID)
	if err != nil {
		return err
	}

	items, err := s.h.ListShopServices.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toServices(items))
}

// AddShopService handles POST /api/v1/shops/:shopId/services.
func (s *Server) AddShopService(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return err
	}
	var body NewService
	if err := c.Bind(&body); err != nil {
		return err
	}
	draft, err := body.draft()
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddShopServiceCommand(requester, shopID, draft)
	if err != nil {
		return err
	}

	item, err := s.h.ShopServices.HandleAdd(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toService(item))
}

// UpdateShopService handles PATCH /api/v1/shops/:shopId/services/:serviceId.
func (s *Server) UpdateShopService(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, serviceID, err := serviceRef(c)
	if err != nil {
		return err
	}
	var body ServicePatch
	if err := c.Bind(&body); err != nil {
		return err
	}
	update, err := body.update()
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateShopServiceCommand(requester, shopID, serviceID, update)
	if err != nil {
		return err
	}

	item, err := s.h.ShopServices.HandleUpdate(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toService(item))
}

// RemoveShopService handles DELETE /api/v1/shops/:shopId/services/:serviceId.
func (s *Server) RemoveShopService(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, serviceID, err := serviceRef(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveShopServiceCommand(requester, shopID, serviceID)
	if err != nil {
		return err
	}

	if err := s.h.ShopServices.HandleRemove(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetShopStats handles GET /api/v1/shops/:shopId/stats.
func (s *Server) GetShopStats(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return err
	}
	query, err := queries.NewGetShopStatsQuery(requester, shopID)
	if err != nil {
		return err
	}

	stats, err := s.h.ShopStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShopStats(stats))
}

// GetShopDashboard handles GET /api/v1/shops/:shopId/dashboard?timeRange=week|month|year.
func (s *Server) GetShopDashboard(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return err
	}
	query, err := queries.NewGetDashboardStatsQuery(requester, shopID, c.QueryParam("timeRange"))
	if err != nil {
		return err
	}

	stats, err := s.h.Dashboard.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboard(stats))
}

func serviceRef(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	shopID, err := kernel.ParseID("shopId", c.Param("shopId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	serviceID, err := kernel.ParseID("serviceId", c.Param("serviceId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return shopID, serviceID, nil
}

// floatParam parses a query parameter. A missing parameter is an error unless def is set.
func floatParam(c echo.Context, name string, def *float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		if def != nil {
			return *def, nil
		}
		return 0, errs.NewValueIsRequiredError(name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}
