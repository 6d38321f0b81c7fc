package memory

import (
	"slices"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/core/domain/model/ticket"
)

func cloneOrder(o *order.Order) (*order.Order, error) {
	return cloneOrderWithStatus(o, o.Status(), o.UpdatedAt())
}

func cloneOrderWithStatus(o *order.Order, status order.Status, updatedAt time.Time) (*order.Order, error) {
	var address *kernel.Address
	if src := o.PickupAddress(); src != nil {
		cp := *src
		address = &cp
	}
	return order.RestoreOrder(o.ID(), o.CustomerID(), o.ShopID(), order.Details{
		Items:               slices.Clone(o.Items()),
		PickupDate:          o.PickupDate(),
		PickupAddress:       address,
		SpecialInstructions: o.SpecialInstructions(),
		TotalAmount:         o.TotalAmount(),
	}, status, o.CreatedAt(), updatedAt)
}

func cloneShop(s *shop.Shop, totalOrders int) (*shop.Shop, error) {
	return shop.RestoreShop(s.ID(), s.OwnerID(), shop.Profile{
		Name:            s.Name(),
		Description:     s.Description(),
		Address:         s.Address(),
		Location:        s.Location(),
		ServiceRadiusKm: s.ServiceRadiusKm(),
		BusinessHours:   s.BusinessHours(),
		Contact:         s.Contact(),
	}, s.Services(), s.Status(), s.Rating(), totalOrders, s.CreatedAt(), s.UpdatedAt())
}

func cloneTicket(t *ticket.Ticket) (*ticket.Ticket, error) {
	return ticket.RestoreTicket(t.ID(), t.UserID(), t.Type(), t.Subject(), t.Message(), t.Contact(),
		t.Status(), t.CreatedAt(), t.UpdatedAt())
}
