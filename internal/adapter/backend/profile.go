package backend

import (
	"context"
	"net/http"
)

type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Profile struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type ProfileUpdateResult struct {
	Message string   `json:"message,omitempty"`
	User    *Profile `json:"user,omitempty"`
}

// UpdateProfile forwards a partial profile update to the identity service.
func (c *Client) UpdateProfile(ctx context.Context, accessToken string, in ProfileUpdate) (*ProfileUpdateResult, error) {
	var result ProfileUpdateResult
	if err := c.doJSON(ctx, http.MethodPatch, "/update-profile", accessToken, in, &result, c.requestTimeout); err != nil {
		return nil, err
	}
	return &result, nil
}
