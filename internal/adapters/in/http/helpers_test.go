package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundry/internal/adapters/out/memory"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testAPI struct {
	e    *echo.Echo
	auth *Authenticator
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	orders, shops, tickets := store.OrderRepository(), store.ShopRepository(), store.TicketRepository()
	var clock kernel.Clock
	logger := discardLogger()

	server := NewServer(Handlers{
		CreateOrder:        commands.NewCreateOrderCommandHandler(orders, shops, clock, logger),
		TransitionOrder:    commands.NewTransitionOrderStatusCommandHandler(orders, shops, clock),
		CreateShop:         commands.NewCreateShopCommandHandler(commands.ShopUoWFactoryFrom(factory), nil, clock, logger),
		UpdateShop:         commands.NewUpdateShopCommandHandler(commands.ShopUoWFactoryFrom(factory), nil, clock, logger),
		ShopServices:       commands.NewShopServiceCommandHandler(commands.ShopUoWFactoryFrom(factory), clock),
		CreateTicket:       commands.NewCreateTicketCommandHandler(commands.TicketUoWFactoryFrom(factory), clock),
		UpdateTicketStatus: commands.NewUpdateTicketStatusCommandHandler(commands.TicketUoWFactoryFrom(factory), clock),
		GetOrder:           queries.NewGetOrderQueryHandler(orders, shops),
		ListCustomerOrders: queries.NewListCustomerOrdersQueryHandler(orders),
		ListShopOrders:     queries.NewListShopOrdersQueryHandler(orders, shops),
		GetShop:            queries.NewGetShopQueryHandler(shops),
		ListActiveShops:    queries.NewListActiveShopsQueryHandler(shops),
		FindNearbyShops:    queries.NewFindNearbyShopsQueryHandler(shops, nil, logger),
		ListShopServices:   queries.NewListShopServicesQueryHandler(shops),
		ShopStats:          queries.NewGetShopStatsQueryHandler(orders, shops),
		Dashboard:          queries.NewGetDashboardStatsQueryHandler(orders, shops, clock),
		Tickets:            queries.NewTicketQueryHandler(tickets),
	})

	auth, err := NewAuthenticator(testSecret, time.Hour)
	require.NoError(t, err)
	e, err := NewEcho(server, auth, Options{Logger: logger})
	require.NoError(t, err)
	return &testAPI{e: e, auth: auth}
}

func (a *testAPI) token(t *testing.T, role kernel.Role) string {
	t.Helper()
	requester, err := kernel.NewRequester(kernel.NewUUID(), role)
	require.NoError(t, err)
	token, err := a.auth.IssueToken(requester)
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}

func shopBody(name string, lat, lng float64) map[string]any {
	return map[string]any{
		"name":            name,
		"address":         map[string]any{"street": "1 Main St", "city": "New York"},
		"location":        map[string]any{"lat": lat, "lng": lng},
		"serviceRadiusKm": 5,
		"services": []map[string]any{
			{"serviceType": "wash_fold", "price": 12.5},
			{"serviceType": "dry_clean", "price": 20},
		},
		"businessHours": map[string]any{"monday": map[string]any{"open": "08:00", "close": "20:00"}},
		"contactInfo":   map[string]any{"phone": "+1 555 0100"},
	}
}

func orderBody(shopID string) map[string]any {
	return map[string]any{
		"shopId":      shopID,
		"items":       []map[string]any{{"serviceType": "wash_fold", "count": 2}},
		"pickupDate":  time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
		"totalAmount": 25,
	}
}

func (a *testAPI) createShop(t *testing.T, token, name string, lat, lng float64) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/shops", token, shopBody(name, lat, lng))
	requireStatus(t, rec, http.StatusCreated)
	return decode[Created](t, rec).ID
}

func (a *testAPI) createOrder(t *testing.T, token, shopID string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/orders", token, orderBody(shopID))
	requireStatus(t, rec, http.StatusCreated)
	return decode[Created](t, rec).ID
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(a *testAPI, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}
