// Package geoindex keeps active shop locations in a Redis geo set and answers
// radius searches with GEOSEARCH.
package geoindex

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKey = "laundry:shops:geo"
	resource   = "redis"

	// redisEarthRadiusKm is the radius Redis uses for GEODIST and GEOSEARCH.
	redisEarthRadiusKm = 6372.797560856
	// geohashSlackKm covers the position error of the 52-bit geohash members
	// are stored as.
	geohashSlackKm = 0.01
)

// Index implements ports.ShopGeoIndex. Members are shop ids.
type Index struct {
	client redis.Cmdable
	key    string
}

// NewClient opens a go-redis client; the connection is established lazily.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// New returns an index stored under key, or DefaultKey when key is empty.
func New(client redis.Cmdable, key string) *Index {
	if key == "" {
		key = DefaultKey
	}
	return &Index{client: client, key: key}
}

// Put adds or moves a shop in the index.
func (i *Index) Put(ctx context.Context, id kernel.UUID, point kernel.GeoPoint) error {
	if err := i.client.GeoAdd(ctx, i.key, location(id, point)).Err(); err != nil {
		return errs.NewUnavailableError(resource, err)
	}
	return nil
}

// Remove drops a shop from the index. Unknown ids are ignored.
func (i *Index) Remove(ctx context.Context, id kernel.UUID) error {
	if err := i.client.ZRem(ctx, i.key, id.String()).Err(); err != nil {
		return errs.NewUnavailableError(resource, err)
	}
	return nil
}

// Search returns the members within radiusKm, nearest first. The search is
// slightly wider than radiusKm as measured by GeoPoint.DistanceKm, so callers
// must filter the candidates with their own distance computation.
func (i *Index) Search(ctx context.Context, point kernel.GeoPoint, radiusKm float64) ([]kernel.UUID, error) {
	members, err := i.client.GeoSearch(ctx, i.key, searchQuery(point, radiusKm)).Result()
	if err != nil {
		return nil, errs.NewUnavailableError(resource, err)
	}
	ids, err := parseMembers(members)
	if err != nil {
		return nil, errs.NewUnavailableError(resource, err)
	}
	return ids, nil
}

// Replace swaps the whole set in one MULTI/EXEC.
func (i *Index) Replace(ctx context.Context, points map[kernel.UUID]kernel.GeoPoint) error {
	locations := make([]*redis.GeoLocation, 0, len(points))
	for id, p := range points {
		locations = append(locations, location(id, p))
	}

	_, err := i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, i.key)
		if len(locations) > 0 {
			pipe.GeoAdd(ctx, i.key, locations...)
		}
		return nil
	})
	if err != nil {
		return errs.NewUnavailableError(resource, err)
	}
	return nil
}

func location(id kernel.UUID, p kernel.GeoPoint) *redis.GeoLocation {
	return &redis.GeoLocation{
		Name:      id.String(),
		Longitude: p.Lon(),
		Latitude:  p.Lat(),
	}
}

// searchRadiusKm converts a radius measured on a sphere of kernel.EarthRadiusKm
// into the larger sphere Redis measures on.
func searchRadiusKm(radiusKm float64) float64 {
	return radiusKm*redisEarthRadiusKm/kernel.EarthRadiusKm + geohashSlackKm
}

func searchQuery(p kernel.GeoPoint, radiusKm float64) *redis.GeoSearchQuery {
	return &redis.GeoSearchQuery{
		Longitude:  p.Lon(),
		Latitude:   p.Lat(),
		Radius:     searchRadiusKm(radiusKm),
		RadiusUnit: "km",
		Sort:       "ASC",
	}
}

func parseMembers(members []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(members))
	for _, m := range members {
		id, err := kernel.UUIDFromString(m)
		if err != nil {
			return nil, fmt.Errorf("geo member %q: %w", m, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
