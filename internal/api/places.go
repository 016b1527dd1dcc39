package api

import (
	"context"
	"fmt"
)

// Place is a bookable destination (lugar) as the service serves it.
type Place struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	PricePerPerson float64 `json:"pricePerPerson"`
	Location       string  `json:"location"`
	Category       string  `json:"category"`
	GuideID        int64   `json:"guideId"`
	ImageURL       string  `json:"imageUrl"`
	// Occupancy is the recommended range as "min-max persons", parsed on
	// demand; empty when the guide declared none.
	Occupancy string `json:"occupancy,omitempty"`
}

// PlaceRequest is the create/update payload for guide and admin roles.
type PlaceRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=150"`
	Description    string  `json:"description" validate:"required"`
	PricePerPerson float64 `json:"pricePerPerson" validate:"gte=0"`
	Location       string  `json:"location" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	ImageURL       string  `json:"imageUrl" validate:"omitempty,url"`
	Occupancy      string  `json:"occupancy" validate:"omitempty"`
}

// ListPlaces returns every place in the catalog.
func (c *Client) ListPlaces(ctx context.Context) ([]Place, error) {
	var places []Place
	if err := c.get(ctx, "/lugares", nil, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// GetPlace returns a single place by id.
func (c *Client) GetPlace(ctx context.Context, id int64) (*Place, error) {
	var place Place
	if err := c.get(ctx, fmt.Sprintf("/lugares/%d", id), nil, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// CreatePlace creates a place; the service enforces the guide/admin role.
func (c *Client) CreatePlace(ctx context.Context, req PlaceRequest) (*Place, error) {
	var place Place
	if err := c.post(ctx, "/lugares", req, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// UpdatePlace updates an existing place.
func (c *Client) UpdatePlace(ctx context.Context, id int64, req PlaceRequest) (*Place, error) {
	var place Place
	if err := c.put(ctx, fmt.Sprintf("/lugares/%d", id), req, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// DeletePlace removes a place.
func (c *Client) DeletePlace(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/lugares/%d", id))
}
