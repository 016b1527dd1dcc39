// Package catalog fetches the place list from the service and serves it to
// every view that needs place data: home recommendations, catalog browsing,
// the reservation form, and the wishlist.
package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/comunitur/comunitur/internal/api"
)

var ErrPlaceNotFound = errors.New("place not found")

// PlaceLister is the slice of the service client the reader needs.
type PlaceLister interface {
	ListPlaces(ctx context.Context) ([]api.Place, error)
}

// Reader caches the fetched catalog. A refresh replaces the whole snapshot;
// readers always see a consistent list.
type Reader struct {
	client PlaceLister

	mu     sync.RWMutex
	places []api.Place
	loaded bool
}

// NewReader creates a catalog reader over the service client.
func NewReader(client PlaceLister) *Reader {
	return &Reader{client: client}
}

// Refresh fetches the catalog and replaces the cached snapshot.
func (r *Reader) Refresh(ctx context.Context) error {
	places, err := r.client.ListPlaces(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.places = places
	r.loaded = true
	r.mu.Unlock()
	return nil
}

// Loaded reports whether a refresh has completed since startup.
func (r *Reader) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// All returns the cached places.
func (r *Reader) All() []api.Place {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]api.Place, len(r.places))
	copy(out, r.places)
	return out
}

// ByID returns one place from the snapshot.
func (r *Reader) ByID(id int64) (*api.Place, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.places {
		if r.places[i].ID == id {
			p := r.places[i]
			return &p, nil
		}
	}
	return nil, ErrPlaceNotFound
}

// ByCategory filters the snapshot by exact category. An empty category
// returns everything.
func (r *Reader) ByCategory(category string) []api.Place {
	if category == "" {
		return r.All()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []api.Place
	for _, p := range r.places {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in the snapshot, sorted.
func (r *Reader) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, p := range r.places {
		key := strings.ToLower(p.Category)
		if _, ok := seen[key]; ok || p.Category == "" {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Search matches name, description, and location, case-insensitively.
func (r *Reader) Search(query string) []api.Place {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.All()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []api.Place
	for _, p := range r.places {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Location), query) {
			out = append(out, p)
		}
	}
	return out
}

// Recommended returns up to n places for the home screen, cheapest first.
func (r *Reader) Recommended(n int) []api.Place {
	all := r.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PricePerPerson < all[j].PricePerPerson
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
