// Package queries contains the read side of the marketplace: order lookups,
// shop discovery, owner statistics and support tickets.
//
// Queries never write. Authorization happens in the handler, against the
// requester carried by the query, before any data is returned.
package queries
