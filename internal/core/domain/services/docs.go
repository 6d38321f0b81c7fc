// Package services provides domain services of the laundry marketplace: rules
// that span more than one aggregate or operate on collections of them.
//
// The package includes:
//   - AccessPolicy: role and ownership checks for orders and shops
//   - StatisticsCalculator: lifetime shop stats and windowed dashboards
//   - NearbyRanker: distance filtering and ordering of proximity candidates
package services
