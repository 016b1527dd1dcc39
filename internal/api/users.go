package api

import (
	"context"
	"fmt"
)

// User is the service's account record.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// ProfileUpdateRequest is the PUT /usuarios/{id} payload.
type ProfileUpdateRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"fullName" validate:"required,min=2,max=120"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// GetUser returns a user's profile.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/usuarios/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates the user's own profile.
func (c *Client) UpdateUser(ctx context.Context, id int64, req ProfileUpdateRequest) (*User, error) {
	var user User
	if err := c.put(ctx, fmt.Sprintf("/usuarios/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListWishlist returns the ids of the places on the user's wishlist.
func (c *Client) ListWishlist(ctx context.Context, userID int64) ([]int64, error) {
	var placeIDs []int64
	if err := c.get(ctx, fmt.Sprintf("/usuarios/%d/wishlist", userID), nil, &placeIDs); err != nil {
		return nil, err
	}
	return placeIDs, nil
}

// AddToWishlist puts a place on the user's wishlist.
func (c *Client) AddToWishlist(ctx context.Context, userID, placeID int64) error {
	return c.post(ctx, fmt.Sprintf("/usuarios/%d/wishlist/%d", userID, placeID), nil, nil)
}

// RemoveFromWishlist takes a place off the user's wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, userID, placeID int64) error {
	return c.delete(ctx, fmt.Sprintf("/usuarios/%d/wishlist/%d", userID, placeID))
}
