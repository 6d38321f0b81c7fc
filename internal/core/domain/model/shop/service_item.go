package shop

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ServiceDraft is the caller-supplied part of a catalog entry.
type ServiceDraft struct {
	ServiceType string
	Price       kernel.Money
	Description string
}

func (d ServiceDraft) validate() error {
	var errList []error
	if strings.TrimSpace(d.ServiceType) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("serviceType"))
	}
	if err := d.Price.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("price", err))
	}
	return errors.Join(errList...)
}

// ServiceUpdate changes selected fields of a catalog entry. Nil fields are kept.
type ServiceUpdate struct {
	ServiceType *string
	Price       *kernel.Money
	Description *string
}

// ServiceItem is one priced entry of a shop's service catalog.
type ServiceItem struct {
	id          kernel.UUID
	serviceType string
	price       kernel.Money
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func newServiceItem(id kernel.UUID, draft ServiceDraft, now time.Time) (ServiceItem, error) {
	if err := errors.Join(id.Validate(), draft.validate()); err != nil {
		return ServiceItem{}, err
	}
	return ServiceItem{
		id:          id,
		serviceType: strings.TrimSpace(draft.ServiceType),
		price:       draft.Price,
		description: draft.Description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestoreServiceItem rebuilds a catalog entry loaded from storage.
func RestoreServiceItem(
	id kernel.UUID, serviceType string, price kernel.Money, description string, createdAt, updatedAt time.Time,
) ServiceItem {
	return ServiceItem{
		id:          id,
		serviceType: serviceType,
		price:       price,
		description: description,
		createdAt:   createdAt.UTC(),
		updatedAt:   updatedAt.UTC(),
	}
}

// ID returns the identifier of the catalog entry.
func (s ServiceItem) ID() kernel.UUID {
	return s.id
}

// ServiceType returns the service key, unique within the shop.
func (s ServiceItem) ServiceType() string {
	return s.serviceType
}

// Price returns the price per unit.
func (s ServiceItem) Price() kernel.Money {
	return s.price
}

// Description returns the free-text description, possibly empty.
func (s ServiceItem) Description() string {
	return s.description
}

// CreatedAt returns when the entry was added.
func (s ServiceItem) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the entry last changed.
func (s ServiceItem) UpdatedAt() time.Time {
	return s.updatedAt
}
