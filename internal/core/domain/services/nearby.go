package services

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/shop"
	"laundry/internal/pkg/errs"
)

// DistanceToleranceKm absorbs floating point differences between the store's
// proximity operator and the haversine computed here.
const DistanceToleranceKm = 1e-9

// ShopDistance is a shop with its distance from the search origin.
type ShopDistance struct {
	Shop       *shop.Shop
	DistanceKm float64
}

// NearbyRanker filters proximity candidates and orders them for display.
//
// The store only pre-selects candidates; the distance reported to callers is
// always recomputed here, so a shop is returned iff its reported distance is
// within the radius.
type NearbyRanker struct{}

// NewNearbyRanker creates a NearbyRanker.
func NewNearbyRanker() NearbyRanker {
	return NearbyRanker{}
}

// ValidateRadius requires a finite positive radius.
func ValidateRadius(radiusKm float64) error {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("radius", fmt.Errorf("%v is not greater than 0", radiusKm))
	}
	return nil
}

// Rank keeps active candidates within radiusKm of origin and sorts them by
// distance, then by name.
func (NearbyRanker) Rank(origin kernel.GeoPoint, radiusKm float64, candidates []*shop.Shop) ([]ShopDistance, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateRadius(radiusKm); err != nil {
		return nil, err
	}

	ranked := make([]ShopDistance, 0, len(candidates))
	seen := make(map[kernel.UUID]struct{}, len(candidates))
	for _, s := range candidates {
		if s == nil || !s.IsActive() {
			continue
		}
		if _, dup := seen[s.ID()]; dup {
			continue
		}
		d, err := origin.DistanceKm(s.Location())
		if err != nil {
			return nil, err
		}
		if d > radiusKm+DistanceToleranceKm {
			continue
		}
		seen[s.ID()] = struct{}{}
		ranked = append(ranked, ShopDistance{Shop: s, DistanceKm: d})
	}

	slices.SortStableFunc(ranked, func(a, b ShopDistance) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.Shop.Name(), b.Shop.Name())
	})
	return ranked, nil
}
