package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/comunitur/comunitur/internal/api"
)

type fakeLister struct {
	places []api.Place
	err    error
	calls  int
}

func (f *fakeLister) ListPlaces(ctx context.Context) ([]api.Place, error) {
	f.calls++
	return f.places, f.err
}

func testPlaces() []api.Place {
	return []api.Place{
		{ID: 1, Name: "Cascada Azul", Description: "Waterfall hike", Location: "Baños", Category: "Aventura", PricePerPerson: 25},
		{ID: 2, Name: "Mercado Artesanal", Description: "Craft market tour", Location: "Otavalo", Category: "Cultura", PricePerPerson: 10},
		{ID: 3, Name: "Laguna Quilotoa", Description: "Crater lake trek", Location: "Cotopaxi", Category: "Aventura", PricePerPerson: 40},
	}
}

func newLoadedReader(t *testing.T) *Reader {
	t.Helper()
	r := NewReader(&fakeLister{places: testPlaces()})
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return r
}

func TestRefreshAndAll(t *testing.T) {
	r := newLoadedReader(t)
	if !r.Loaded() {
		t.Fatal("expected loaded after refresh")
	}
	if got := len(r.All()); got != 3 {
		t.Fatalf("expected 3 places, got %d", got)
	}
}

func TestRefreshErrorKeepsSnapshot(t *testing.T) {
	lister := &fakeLister{places: testPlaces()}
	r := NewReader(lister)
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	lister.err = errors.New("boom")
	if err := r.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if got := len(r.All()); got != 3 {
		t.Fatalf("failed refresh must keep the old snapshot, got %d places", got)
	}
}

func TestByID(t *testing.T) {
	r := newLoadedReader(t)

	p, err := r.ByID(2)
	if err != nil {
		t.Fatalf("byid: %v", err)
	}
	if p.Name != "Mercado Artesanal" {
		t.Fatalf("unexpected place: %+v", p)
	}

	if _, err := r.ByID(99); !errors.Is(err, ErrPlaceNotFound) {
		t.Fatalf("expected ErrPlaceNotFound, got %v", err)
	}
}

func TestByCategory(t *testing.T) {
	r := newLoadedReader(t)

	adventure := r.ByCategory("aventura")
	if len(adventure) != 2 {
		t.Fatalf("expected 2 adventure places, got %d", len(adventure))
	}
	if got := len(r.ByCategory("")); got != 3 {
		t.Fatalf("empty category returns everything, got %d", got)
	}
}

func TestCategories(t *testing.T) {
	r := newLoadedReader(t)
	got := r.Categories()
	if len(got) != 2 || got[0] != "Aventura" || got[1] != "Cultura" {
		t.Fatalf("unexpected categories: %v", got)
	}
}

func TestSearch(t *testing.T) {
	r := newLoadedReader(t)

	if got := r.Search("laguna"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("search by name failed: %v", got)
	}
	if got := r.Search("otavalo"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("search by location failed: %v", got)
	}
	if got := r.Search("  "); len(got) != 3 {
		t.Fatalf("blank search returns everything, got %d", len(got))
	}
}

func TestRecommendedCheapestFirst(t *testing.T) {
	r := newLoadedReader(t)

	got := r.Recommended(2)
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("expected cheapest first, got %v", got)
	}
}
