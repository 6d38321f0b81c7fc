// Package shop provides the Shop aggregate: a laundry business with its
// location, service catalog, opening hours and discovery status.
package shop
