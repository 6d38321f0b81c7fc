// Package kernel provides the value objects shared by every aggregate of the
// laundry marketplace.
//
// The package includes:
//   - UUID: identifiers of orders, shops, tickets and users
//   - GeoPoint: a (longitude, latitude) pair with haversine distance
//   - Address: the structured postal address of shops and pickups
//   - Money: non-negative decimal amounts with cent precision
//   - Requester and Role: the identity each core operation is evaluated against
//
// Constructed values are immutable and safe for concurrent use.
package kernel
