// Package orderrepo persists order aggregates with gorm.
// Items and the pickup address are stored as jsonb; the amount as numeric(12,2).
package orderrepo

import (
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_customer_created,priority:1"`
	ShopID              uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_shop_created,priority:1"`
	Items               datatypes.JSON  `gorm:"type:jsonb;not null"`
	PickupDate          time.Time       `gorm:"not null"`
	PickupAddress       datatypes.JSON  `gorm:"type:jsonb"`
	SpecialInstructions string          `gorm:"type:text;not null;default:''"`
	Status              string          `gorm:"type:varchar(16);not null;index"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt           time.Time       `gorm:"not null;index:idx_orders_customer_created,priority:2;index:idx_orders_shop_created,priority:2"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName maps OrderDTO to the orders table.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items jsonb array.
type ItemDTO struct {
	ServiceType string `json:"serviceType"`
	Count       int    `json:"count"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{ServiceType: item.ServiceType(), Count: item.Count()})
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	var rawAddress datatypes.JSON
	if address := o.PickupAddress(); address != nil {
		if rawAddress, err = json.Marshal(address); err != nil {
			return OrderDTO{}, err
		}
	}

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		CustomerID:          o.CustomerID().Bytes(),
		ShopID:              o.ShopID().Bytes(),
		Items:               rawItems,
		PickupDate:          o.PickupDate().UTC(),
		PickupAddress:       rawAddress,
		SpecialInstructions: o.SpecialInstructions(),
		Status:              o.Status().String(),
		TotalAmount:         o.TotalAmount().Decimal(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	var rawItems []ItemDTO
	if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItem(raw.ServiceType, raw.Count)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var address *kernel.Address
	if len(dto.PickupAddress) > 0 && string(dto.PickupAddress) != "null" {
		address = &kernel.Address{}
		if err = json.Unmarshal(dto.PickupAddress, address); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, customerID, shopID, order.Details{
		Items:               items,
		PickupDate:          dto.PickupDate.UTC(),
		PickupAddress:       address,
		SpecialInstructions: dto.SpecialInstructions,
		TotalAmount:         amount,
	}, status, dto.CreatedAt, dto.UpdatedAt)
}
