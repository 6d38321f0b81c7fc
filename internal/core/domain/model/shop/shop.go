package shop

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

const (
	// MaxNameLength bounds the trimmed shop name.
	MaxNameLength = 120
	// MaxRating is the top of the rating scale.
	MaxRating = 5.0
)

// ErrShopIsNotConstructed is returned when a Shop was not created through NewShop or RestoreShop.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")

// Profile holds the descriptive fields an owner supplies for a shop.
type Profile struct {
	Name            string
	Description     string
	Address         kernel.Address
	Location        kernel.GeoPoint
	ServiceRadiusKm float64
	BusinessHours   BusinessHours
	Contact         ContactInfo
}

// Patch lists the fields an owner may change. Nil fields are left untouched.
type Patch struct {
	Name            *string
	Description     *string
	Address         *kernel.Address
	Location        *kernel.GeoPoint
	ServiceRadiusKm *float64
	Services        *[]ServiceDraft
	BusinessHours   *BusinessHours
	Contact         *ContactInfo
	Status          *Status
}

// Shop is the aggregate root of the shop directory. It is mutated by its
// owner only, except for totalOrders which follows order creation.
//
// Shop follows these invariants:
//   - Has exactly one owner
//   - Service catalog is never empty and service types are unique
//   - Service radius is positive
//   - At least one contact channel is present
type Shop struct {
	id      kernel.UUID
	ownerID kernel.UUID
	profile Profile

	services    []ServiceItem
	status      Status
	rating      float64
	totalOrders int

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShop creates an active shop with the given catalog. This is the only way
// to create a new Shop; storage adapters use RestoreShop instead.
//
// Parameters:
//   - id: identifier of the new shop
//   - ownerID: user id of the shop owner creating it
//   - profile: name, address, location, service radius, hours and contact
//   - services: at least one priced service; service types must be unique
//   - now: creation time, stored in UTC
//
// Returns:
//   - *Shop: an Active shop with zero totalOrders and rating
//   - error: every profile and catalog violation joined, all matching
//     errs.ErrInvalidInput
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(12.5)
//	s, err := shop.NewShop(kernel.NewUUID(), owner.UserID, profile,
//	    []shop.ServiceDraft{{ServiceType: "wash_fold", Price: price}}, clock.Now())
func NewShop(id, ownerID kernel.UUID, profile Profile, services []ServiceDraft, now time.Time) (*Shop, error) {
	now = now.UTC()
	s := &Shop{
		status:        Active,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		errsWithParam("ownerId", ownerID.Validate()),
		validateProfile(profile),
	); err != nil {
		return nil, err
	}
	if err := s.replaceServices(services, now); err != nil {
		return nil, err
	}

	s.id = id
	s.ownerID = ownerID
	s.profile = normalizeProfile(profile)
	return s, nil
}

// RestoreShop rebuilds a shop loaded from storage without re-running creation rules.
func RestoreShop(
	id, ownerID kernel.UUID,
	profile Profile,
	services []ServiceItem,
	status Status,
	rating float64,
	totalOrders int,
	createdAt, updatedAt time.Time,
) (*Shop, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	profile.BusinessHours = profile.BusinessHours.clone()
	return &Shop{
		id:            id,
		ownerID:       ownerID,
		profile:       profile,
		services:      slices.Clone(services),
		status:        status,
		rating:        rating,
		totalOrders:   totalOrders,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Shop was created through NewShop or RestoreShop.
//
// Returns:
//   - nil if the shop is valid
//   - ErrShopIsNotConstructed for a nil or zero-value shop
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the user id of the owner.
func (s *Shop) OwnerID() kernel.UUID {
	return s.ownerID
}

// Name returns the trimmed display name.
func (s *Shop) Name() string {
	return s.profile.Name
}

// Description returns the free-text description.
func (s *Shop) Description() string {
	return s.profile.Description
}

// Address returns the postal address.
func (s *Shop) Address() kernel.Address {
	return s.profile.Address
}

// Location returns the point nearby searches measure from.
func (s *Shop) Location() kernel.GeoPoint {
	return s.profile.Location
}

// ServiceRadiusKm returns how far the shop picks up orders.
func (s *Shop) ServiceRadiusKm() float64 {
	return s.profile.ServiceRadiusKm
}

// BusinessHours returns the weekly opening hours.
func (s *Shop) BusinessHours() BusinessHours {
	return s.profile.BusinessHours.clone()
}

// Contact returns the phone and email of the shop.
func (s *Shop) Contact() ContactInfo {
	return s.profile.Contact
}

// Status returns the directory status of the shop.
func (s *Shop) Status() Status {
	return s.status
}

// Rating returns the average rating on a 0 to MaxRating scale.
func (s *Shop) Rating() float64 {
	return s.rating
}

// TotalOrders returns the order counter. It is incremented on order creation
// and recomputed by the reconciliation job.
func (s *Shop) TotalOrders() int {
	return s.totalOrders
}

// CreatedAt returns the creation time in UTC.
func (s *Shop) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the time of the last mutation in UTC.
func (s *Shop) UpdatedAt() time.Time {
	return s.updatedAt
}

// Services returns a copy of the catalog.
func (s *Shop) Services() []ServiceItem {
	return slices.Clone(s.services)
}

// IsActive reports whether the shop is listed and searchable.
func (s *Shop) IsActive() bool {
	return s.status == Active
}

// IsOwnedBy reports whether userID owns the shop.
func (s *Shop) IsOwnedBy(userID kernel.UUID) bool {
	return s.ownerID.IsEqual(userID)
}

// PriceFor returns the catalog price of serviceType.
func (s *Shop) PriceFor(serviceType string) (kernel.Money, bool) {
	for _, item := range s.services {
		if item.serviceType == serviceType {
			return item.price, true
		}
	}
	return kernel.Money{}, false
}

// Service returns the catalog entry with the given id.
func (s *Shop) Service(serviceID kernel.UUID) (ServiceItem, bool) {
	i := s.serviceIndex(serviceID)
	if i < 0 {
		return ServiceItem{}, false
	}
	return s.services[i], true
}

// Apply changes the allow-listed fields of patch. Either every field is applied or none.
func (s *Shop) Apply(patch Patch, now time.Time) error {
	now = now.UTC()
	next := s.profile
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Address != nil {
		next.Address = *patch.Address
	}
	if patch.Location != nil {
		next.Location = *patch.Location
	}
	if patch.ServiceRadiusKm != nil {
		next.ServiceRadiusKm = *patch.ServiceRadiusKm
	}
	if patch.BusinessHours != nil {
		next.BusinessHours = patch.BusinessHours.clone()
	}
	if patch.Contact != nil {
		next.Contact = *patch.Contact
	}

	var errList []error
	errList = append(errList, validateProfile(next))
	status := s.status
	if patch.Status != nil {
		status = *patch.Status
		errList = append(errList, status.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if patch.Services != nil {
		if err := s.replaceServices(*patch.Services, now); err != nil {
			return err
		}
	}

	s.profile = normalizeProfile(next)
	s.status = status
	s.updatedAt = now
	return nil
}

// AddService appends a catalog entry.
//
// Parameters:
//   - id: identifier of the new entry
//   - draft: service type, price and description
//   - now: refreshes updatedAt
//
// Returns:
//   - ServiceItem: the stored entry
//   - error: ErrInvalidInput for a bad draft, ErrConflict when the service
//     type is already offered
//
// Example:
//
//	item, err := s.AddService(kernel.NewUUID(), shop.ServiceDraft{ServiceType: "ironing", Price: price}, now)
func (s *Shop) AddService(id kernel.UUID, draft ServiceDraft, now time.Time) (ServiceItem, error) {
	now = now.UTC()
	item, err := newServiceItem(id, draft, now)
	if err != nil {
		return ServiceItem{}, err
	}
	if _, exists := s.PriceFor(item.serviceType); exists {
		return ServiceItem{}, errs.NewConflictErrorWithCause("serviceType",
			fmt.Errorf("%q is already offered", item.serviceType))
	}
	s.services = append(s.services, item)
	s.updatedAt = now
	return item, nil
}

// UpdateService changes one catalog entry.
func (s *Shop) UpdateService(serviceID kernel.UUID, update ServiceUpdate, now time.Time) (ServiceItem, error) {
	now = now.UTC()
	i := s.serviceIndex(serviceID)
	if i < 0 {
		return ServiceItem{}, errs.NewObjectNotFoundError("serviceId", serviceID.String())
	}
	item := s.services[i]
	draft := ServiceDraft{ServiceType: item.serviceType, Price: item.price, Description: item.description}
	if update.ServiceType != nil {
		draft.ServiceType = *update.ServiceType
	}
	if update.Price != nil {
		draft.Price = *update.Price
	}
	if update.Description != nil {
		draft.Description = *update.Description
	}
	if err := draft.validate(); err != nil {
		return ServiceItem{}, err
	}
	draft.ServiceType = strings.TrimSpace(draft.ServiceType)
	for j, other := range s.services {
		if j != i && other.serviceType == draft.ServiceType {
			return ServiceItem{}, errs.NewConflictErrorWithCause("serviceType",
				fmt.Errorf("%q is already offered", draft.ServiceType))
		}
	}

	item.serviceType = draft.ServiceType
	item.price = draft.Price
	item.description = draft.Description
	item.updatedAt = now
	s.services[i] = item
	s.updatedAt = now
	return item, nil
}

// RemoveService deletes one catalog entry.
//
// Returns:
//   - nil on success
//   - ErrObjectNotFound for an unknown serviceID
//   - ErrInvalidInput when it is the last entry, since a shop always
//     offers at least one service
func (s *Shop) RemoveService(serviceID kernel.UUID, now time.Time) error {
	i := s.serviceIndex(serviceID)
	if i < 0 {
		return errs.NewObjectNotFoundError("serviceId", serviceID.String())
	}
	if len(s.services) == 1 {
		return errs.NewValueIsInvalidErrorWithCause("services", errors.New("a shop must offer at least one service"))
	}
	s.services = slices.Delete(slices.Clone(s.services), i, i+1)
	s.updatedAt = now.UTC()
	return nil
}

func (s *Shop) serviceIndex(serviceID kernel.UUID) int {
	return slices.IndexFunc(s.services, func(item ServiceItem) bool {
		return item.id.IsEqual(serviceID)
	})
}

func (s *Shop) replaceServices(drafts []ServiceDraft, now time.Time) error {
	if len(drafts) == 0 {
		return errs.NewValueIsRequiredError("services")
	}
	items := make([]ServiceItem, 0, len(drafts))
	seen := make(map[string]struct{}, len(drafts))
	var errList []error
	for _, draft := range drafts {
		id := kernel.NewUUID()
		if existing := s.findByType(strings.TrimSpace(draft.ServiceType)); existing != nil {
			id = existing.id
		}
		item, err := newServiceItem(id, draft, now)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if _, dup := seen[item.serviceType]; dup {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("services",
				fmt.Errorf("%q is listed twice", item.serviceType)))
			continue
		}
		seen[item.serviceType] = struct{}{}
		if existing := s.findByType(item.serviceType); existing != nil {
			item.createdAt = existing.createdAt
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	s.services = items
	return nil
}

func (s *Shop) findByType(serviceType string) *ServiceItem {
	for i := range s.services {
		if s.services[i].serviceType == serviceType {
			return &s.services[i]
		}
	}
	return nil
}

func validateProfile(p Profile) error {
	var errList []error
	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	case len(name) > MaxNameLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError("name length", len(name), 1, MaxNameLength))
	}
	errList = append(errList, p.Address.Validate("address"))
	if err := p.Location.Validate(); err != nil {
		errList = append(errList, errsWithParam("location", err))
	}
	if math.IsNaN(p.ServiceRadiusKm) || p.ServiceRadiusKm <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("serviceRadiusKm",
			fmt.Errorf("%v is not greater than 0", p.ServiceRadiusKm)))
	}
	errList = append(errList, p.BusinessHours.Validate(), p.Contact.Validate())
	return errors.Join(errList...)
}

func normalizeProfile(p Profile) Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.BusinessHours = p.BusinessHours.clone()
	return p
}

func errsWithParam(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(param, err)
}
