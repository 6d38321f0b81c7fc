package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"
)

// AccessPolicy decides which requester may read or mutate an order or a shop.
//
// Business rules:
//   - Only customers place orders and list "their" orders
//   - A customer sees only the orders they placed
//   - A shop owner sees the orders of shops they own
//   - Shops are mutated by their owner only
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// RequireCustomer returns a ForbiddenError unless the requester is a customer.
func (AccessPolicy) RequireCustomer(r kernel.Requester) error {
	if !r.IsCustomer() {
		return errs.NewForbiddenError("only customers can perform this action")
	}
	return nil
}

// RequireShopOwner returns a ForbiddenError unless the requester is a shop owner.
func (AccessPolicy) RequireShopOwner(r kernel.Requester) error {
	if !r.IsShopOwner() {
		return errs.NewForbiddenError("only shop owners can perform this action")
	}
	return nil
}

// RequireShopOwnership checks that the requester is a shop owner and owns s.
func (p AccessPolicy) RequireShopOwnership(r kernel.Requester, s *shop.Shop) error {
	if err := p.RequireShopOwner(r); err != nil {
		return err
	}
	if !s.IsOwnedBy(r.UserID) {
		return errs.NewForbiddenError("shop belongs to another owner")
	}
	return nil
}

// CanAccessOrder checks read and transition rights on o. s is the shop the order
// references; it is only consulted for shop owners and may be nil for customers.
func (AccessPolicy) CanAccessOrder(r kernel.Requester, o *order.Order, s *shop.Shop) error {
	switch r.Role {
	case kernel.Customer:
		if o.CustomerID().IsEqual(r.UserID) {
			return nil
		}
		return errs.NewForbiddenError("order belongs to another customer")
	case kernel.ShopOwner:
		if s != nil && s.ID().IsEqual(o.ShopID()) && s.IsOwnedBy(r.UserID) {
			return nil
		}
		return errs.NewForbiddenError("order belongs to another shop")
	case kernel.UnknownRole:
	}
	return errs.NewForbiddenError("unknown role")
}
