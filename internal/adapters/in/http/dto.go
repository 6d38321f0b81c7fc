package http

import (
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/model/ticket"
	"laundry/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// Request bodies. Amounts are decoded as decimals so that JSON numbers and
// quoted decimal strings are both accepted without float rounding.
type (
	OrderItem struct {
		ServiceType string `json:"serviceType"`
		Count       int    `json:"count"`
	}

	NewOrder struct {
		ShopID              string          `json:"shopId"`
		Items               []OrderItem     `json:"items"`
		PickupDate          time.Time       `json:"pickupDate"`
		PickupAddress       *kernel.Address `json:"pickupAddress,omitempty"`
		SpecialInstructions string          `json:"specialInstructions,omitempty"`
		TotalAmount         decimal.Decimal `json:"totalAmount"`
	}

	StatusChange struct {
		Status string `json:"status"`
	}

	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	NewService struct {
		ServiceType string          `json:"serviceType"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description,omitempty"`
	}

	ServicePatch struct {
		ServiceType *string          `json:"serviceType,omitempty"`
		Price       *decimal.Decimal `json:"price,omitempty"`
		Description *string          `json:"description,omitempty"`
	}

	NewShop struct {
		Name            string             `json:"name"`
		Description     string             `json:"description,omitempty"`
		Address         kernel.Address     `json:"address"`
		Location        Location           `json:"location"`
		ServiceRadiusKm float64            `json:"serviceRadiusKm"`
		Services        []NewService       `json:"services"`
		BusinessHours   shop.BusinessHours `json:"businessHours"`
		ContactInfo     shop.ContactInfo   `json:"contactInfo"`
	}

	// ShopPatch lists the fields an owner may change. Other fields in the
	// body are ignored by the decoder.
	ShopPatch struct {
		Name            *string             `json:"name,omitempty"`
		Description     *string             `json:"description,omitempty"`
		Address         *kernel.Address     `json:"address,omitempty"`
		Location        *Location           `json:"location,omitempty"`
		ServiceRadiusKm *float64            `json:"serviceRadiusKm,omitempty"`
		Services        *[]NewService       `json:"services,omitempty"`
		BusinessHours   *shop.BusinessHours `json:"businessHours,omitempty"`
		ContactInfo     *shop.ContactInfo   `json:"contactInfo,omitempty"`
		Status          *string             `json:"status,omitempty"`
	}

	NewTicket struct {
		Type    string `json:"type"`
		Subject string `json:"subject"`
		Message string `json:"message"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone,omitempty"`
	}
)

// Response bodies.
type (
	Created struct {
		ID string `json:"id"`
	}

	Order struct {
		ID                  string          `json:"id"`
		CustomerID          string          `json:"customerId"`
		ShopID              string          `json:"shopId"`
		Items               []OrderItem     `json:"items"`
		PickupDate          time.Time       `json:"pickupDate"`
		PickupAddress       *kernel.Address `json:"pickupAddress,omitempty"`
		SpecialInstructions string          `json:"specialInstructions,omitempty"`
		TotalAmount         float64         `json:"totalAmount"`
		Status              string          `json:"status"`
		CreatedAt           time.Time       `json:"createdAt"`
		UpdatedAt           time.Time       `json:"updatedAt"`
	}

	OrderGroupCounts struct {
		New        int `json:"new"`
		Processing int `json:"processing"`
		Ready      int `json:"ready"`
		History    int `json:"history"`
	}

	ShopOrders struct {
		Orders []Order          `json:"orders"`
		Counts OrderGroupCounts `json:"counts"`
	}

	Service struct {
		ID          string    `json:"id"`
		ServiceType string    `json:"serviceType"`
		Price       float64   `json:"price"`
		Description string    `json:"description,omitempty"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	Shop struct {
		ID              string             `json:"id"`
		OwnerID         string             `json:"ownerId"`
		Name            string             `json:"name"`
		Description     string             `json:"description,omitempty"`
		Address         kernel.Address     `json:"address"`
		Location        Location           `json:"location"`
		ServiceRadiusKm float64            `json:"serviceRadiusKm"`
		Services        []Service          `json:"services"`
		BusinessHours   shop.BusinessHours `json:"businessHours"`
		ContactInfo     shop.ContactInfo   `json:"contactInfo"`
		Status          string             `json:"status"`
		Rating          float64            `json:"rating"`
		TotalOrders     int                `json:"totalOrders"`
		CreatedAt       time.Time          `json:"createdAt"`
		UpdatedAt       time.Time          `json:"updatedAt"`
	}

	NearbyShop struct {
		Shop
		DistanceKm float64 `json:"distanceKm"`
	}

	ShopStats struct {
		TotalOrders     int     `json:"totalOrders"`
		PendingOrders   int     `json:"pendingOrders"`
		CompletedOrders int     `json:"completedOrders"`
		TotalRevenue    float64 `json:"totalRevenue"`
	}

	Overview struct {
		TotalOrders      int     `json:"totalOrders"`
		TotalRevenue     float64 `json:"totalRevenue"`
		NewOrders        int     `json:"newOrders"`
		ProcessingOrders int     `json:"processingOrders"`
		ReadyOrders      int     `json:"readyOrders"`
		HistoryOrders    int     `json:"historyOrders"`
	}

	DailyRevenue struct {
		Date    string  `json:"date"`
		Revenue float64 `json:"revenue"`
	}

	StatusCount struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}

	ServiceCount struct {
		ServiceType string `json:"serviceType"`
		Count       int    `json:"count"`
	}

	Dashboard struct {
		TimeRange      string         `json:"timeRange"`
		From           time.Time      `json:"from"`
		To             time.Time      `json:"to"`
		Overview       Overview       `json:"overview"`
		RevenueByDay   []DailyRevenue `json:"revenueByDay"`
		OrdersByStatus []StatusCount  `json:"ordersByStatus"`
		TopServices    []ServiceCount `json:"topServices"`
	}

	Ticket struct {
		ID        string    `json:"id"`
		UserID    string    `json:"userId"`
		Type      string    `json:"type"`
		Subject   string    `json:"subject"`
		Message   string    `json:"message"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone,omitempty"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
)

func (r NewOrder) itemInputs() []commands.ItemInput {
	items := make([]commands.ItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.ItemInput{ServiceType: it.ServiceType, Count: it.Count}
	}
	return items
}

func (l Location) geoPoint() (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(l.Lng, l.Lat)
}

func (s NewService) draft() (shop.ServiceDraft, error) {
	price, err := kernel.NewMoney(s.Price)
	if err != nil {
		return shop.ServiceDraft{}, err
	}
	return shop.ServiceDraft{ServiceType: s.ServiceType, Price: price, Description: s.Description}, nil
}

func drafts(services []NewService) ([]shop.ServiceDraft, error) {
	out := make([]shop.ServiceDraft, 0, len(services))
	for _, s := range services {
		d, err := s.draft()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (p ServicePatch) update() (shop.ServiceUpdate, error) {
	update := shop.ServiceUpdate{ServiceType: p.ServiceType, Description: p.Description}
	if p.Price != nil {
		price, err := kernel.NewMoney(*p.Price)
		if err != nil {
			return shop.ServiceUpdate{}, err
		}
		update.Price = &price
	}
	return update, nil
}

func (r NewShop) profile() (shop.Profile, error) {
	location, err := r.Location.geoPoint()
	if err != nil {
		return shop.Profile{}, err
	}
	return shop.Profile{
		Name:            r.Name,
		Description:     r.Description,
		Address:         r.Address,
		Location:        location,
		ServiceRadiusKm: r.ServiceRadiusKm,
		BusinessHours:   r.BusinessHours,
		Contact:         r.ContactInfo,
	}, nil
}

func (p ShopPatch) patch() (shop.Patch, error) {
	patch := shop.Patch{
		Name:            p.Name,
		Description:     p.Description,
		Address:         p.Address,
		ServiceRadiusKm: p.ServiceRadiusKm,
		BusinessHours:   p.BusinessHours,
		Contact:         p.ContactInfo,
	}
	if p.Location != nil {
		location, err := p.Location.geoPoint()
		if err != nil {
			return shop.Patch{}, err
		}
		patch.Location = &location
	}
	if p.Services != nil {
		ds, err := drafts(*p.Services)
		if err != nil {
			return shop.Patch{}, err
		}
		patch.Services = &ds
	}
	if p.Status != nil {
		status, err := shop.StatusFromString(*p.Status)
		if err != nil {
			return shop.Patch{}, err
		}
		patch.Status = &status
	}
	return patch, nil
}

func toOrder(o *order.Order) Order {
	items := make([]OrderItem, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = OrderItem{ServiceType: it.ServiceType(), Count: it.Count()}
	}
	return Order{
		ID:                  o.ID().String(),
		CustomerID:          o.CustomerID().String(),
		ShopID:              o.ShopID().String(),
		Items:               items,
		PickupDate:          o.PickupDate(),
		PickupAddress:       o.PickupAddress(),
		SpecialInstructions: o.SpecialInstructions(),
		TotalAmount:         o.TotalAmount().Float64(),
		Status:              o.Status().String(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	return out
}

func toService(s shop.ServiceItem) Service {
	return Service{
		ID:          s.ID().String(),
		ServiceType: s.ServiceType(),
		Price:       s.Price().Float64(),
		Description: s.Description(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func toServices(items []shop.ServiceItem) []Service {
	out := make([]Service, len(items))
	for i, s := range items {
		out[i] = toService(s)
	}
	return out
}

func toShop(s *shop.Shop) Shop {
	return Shop{
		ID:              s.ID().String(),
		OwnerID:         s.OwnerID().String(),
		Name:            s.Name(),
		Description:     s.Description(),
		Address:         s.Address(),
		Location:        Location{Lat: s.Location().Lat(), Lng: s.Location().Lon()},
		ServiceRadiusKm: s.ServiceRadiusKm(),
		Services:        toServices(s.Services()),
		BusinessHours:   s.BusinessHours(),
		ContactInfo:     s.Contact(),
		Status:          s.Status().String(),
		Rating:          s.Rating(),
		TotalOrders:     s.TotalOrders(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func toShops(shops []*shop.Shop) []Shop {
	out := make([]Shop, len(shops))
	for i, s := range shops {
		out[i] = toShop(s)
	}
	return out
}

func toNearby(ranked []services.ShopDistance) []NearbyShop {
	out := make([]NearbyShop, len(ranked))
	for i, r := range ranked {
		out[i] = NearbyShop{Shop: toShop(r.Shop), DistanceKm: r.DistanceKm}
	}
	return out
}

func toShopStats(s services.ShopStats) ShopStats {
	return ShopStats{
		TotalOrders:     s.TotalOrders,
		PendingOrders:   s.PendingOrders,
		CompletedOrders: s.CompletedOrders,
		TotalRevenue:    s.TotalRevenue.Float64(),
	}
}

func toDashboard(d services.DashboardStats) Dashboard {
	out := Dashboard{
		TimeRange: string(d.Window),
		From:      d.From,
		To:        d.To,
		Overview: Overview{
			TotalOrders:      d.Overview.TotalOrders,
			TotalRevenue:     d.Overview.TotalRevenue.Float64(),
			NewOrders:        d.Overview.NewOrders,
			ProcessingOrders: d.Overview.ProcessingOrders,
			ReadyOrders:      d.Overview.ReadyOrders,
			HistoryOrders:    d.Overview.HistoryOrders,
		},
		RevenueByDay:   make([]DailyRevenue, len(d.RevenueByDay)),
		OrdersByStatus: make([]StatusCount, len(d.OrdersByStatus)),
		TopServices:    make([]ServiceCount, len(d.TopServices)),
	}
	for i, r := range d.RevenueByDay {
		out.RevenueByDay[i] = DailyRevenue{Date: r.Date, Revenue: r.Revenue.Float64()}
	}
	for i, s := range d.OrdersByStatus {
		out.OrdersByStatus[i] = StatusCount{Status: s.Status.String(), Count: s.Count}
	}
	for i, s := range d.TopServices {
		out.TopServices[i] = ServiceCount{ServiceType: s.ServiceType, Count: s.Count}
	}
	return out
}

func toTicket(t *ticket.Ticket) Ticket {
	contact := t.Contact()
	return Ticket{
		ID:        t.ID().String(),
		UserID:    t.UserID().String(),
		Type:      t.Type().String(),
		Subject:   t.Subject(),
		Message:   t.Message(),
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func toTickets(tickets []*ticket.Ticket) []Ticket {
	out := make([]Ticket, len(tickets))
	for i, t := range tickets {
		out[i] = toTicket(t)
	}
	return out
}
