// Package shoprepo persists shop aggregates and their service catalog with gorm.
package shoprepo

import (
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ShopDTO is the row of the shops table.
type ShopDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name            string         `gorm:"type:varchar(120);not null;uniqueIndex:uq_shops_name"`
	Description     string         `gorm:"type:text;not null;default:''"`
	Address         datatypes.JSON `gorm:"type:jsonb;not null"`
	Location        LocationDTO    `gorm:"embedded;embeddedPrefix:location_"`
	ServiceRadiusKm float64        `gorm:"not null"`
	BusinessHours   datatypes.JSON `gorm:"type:jsonb;not null"`
	ContactPhone    string         `gorm:"type:varchar(64);not null;default:''"`
	ContactEmail    string         `gorm:"type:varchar(255);not null;default:''"`
	Status          string         `gorm:"type:varchar(16);not null;index"`
	Rating          float64        `gorm:"not null;default:0"`
	TotalOrders     int            `gorm:"not null;default:0"`
	CreatedAt       time.Time      `gorm:"not null"`
	UpdatedAt       time.Time      `gorm:"not null"`
	Services        []ServiceDTO   `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName maps ShopDTO to the shops table.
func (ShopDTO) TableName() string {
	return "shops"
}

// LocationDTO stores the shop coordinates in degrees.
type LocationDTO struct {
	Lon float64 `gorm:"not null"`
	Lat float64 `gorm:"not null"`
}

// ServiceDTO is the row of the shop_services table. Position keeps catalog order.
type ServiceDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_shop_services_type,priority:1"`
	ServiceType string          `gorm:"type:varchar(64);not null;uniqueIndex:uq_shop_services_type,priority:2"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	Position    int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName maps ServiceDTO to the shop_services table.
func (ServiceDTO) TableName() string {
	return "shop_services"
}

func fromDomain(s *shop.Shop) (ShopDTO, error) {
	address, err := json.Marshal(s.Address())
	if err != nil {
		return ShopDTO{}, err
	}
	hours := s.BusinessHours()
	if hours == nil {
		hours = shop.BusinessHours{}
	}
	rawHours, err := json.Marshal(hours)
	if err != nil {
		return ShopDTO{}, err
	}

	shopID := s.ID().Bytes()
	services := make([]ServiceDTO, 0, len(s.Services()))
	for i, item := range s.Services() {
		services = append(services, ServiceDTO{
			ID:          item.ID().Bytes(),
			ShopID:      shopID,
			ServiceType: item.ServiceType(),
			Price:       item.Price().Decimal(),
			Description: item.Description(),
			Position:    i,
			CreatedAt:   item.CreatedAt(),
			UpdatedAt:   item.UpdatedAt(),
		})
	}

	return ShopDTO{
		ID:              shopID,
		OwnerID:         s.OwnerID().Bytes(),
		Name:            s.Name(),
		Description:     s.Description(),
		Address:         address,
		Location:        LocationDTO{Lon: s.Location().Lon(), Lat: s.Location().Lat()},
		ServiceRadiusKm: s.ServiceRadiusKm(),
		BusinessHours:   rawHours,
		ContactPhone:    s.Contact().Phone,
		ContactEmail:    s.Contact().Email,
		Status:          s.Status().String(),
		Rating:          s.Rating(),
		TotalOrders:     s.TotalOrders(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
		Services:        services,
	}, nil
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	status, err := shop.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Location.Lon, dto.Location.Lat)
	if err != nil {
		return nil, err
	}

	var address kernel.Address
	if err = json.Unmarshal(dto.Address, &address); err != nil {
		return nil, err
	}
	var hours shop.BusinessHours
	if len(dto.BusinessHours) > 0 {
		if err = json.Unmarshal(dto.BusinessHours, &hours); err != nil {
			return nil, err
		}
	}

	services := make([]shop.ServiceItem, 0, len(dto.Services))
	for _, sd := range dto.Services {
		serviceID, idErr := kernel.UUIDFromBytes(sd.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, moneyErr := kernel.NewMoney(sd.Price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		services = append(services,
			shop.RestoreServiceItem(serviceID, sd.ServiceType, price, sd.Description, sd.CreatedAt, sd.UpdatedAt))
	}

	return shop.RestoreShop(id, ownerID, shop.Profile{
		Name:            dto.Name,
		Description:     dto.Description,
		Address:         address,
		Location:        location,
		ServiceRadiusKm: dto.ServiceRadiusKm,
		BusinessHours:   hours,
		Contact:         shop.ContactInfo{Phone: dto.ContactPhone, Email: dto.ContactEmail},
	}, services, status, dto.Rating, dto.TotalOrders, dto.CreatedAt, dto.UpdatedAt)
}
