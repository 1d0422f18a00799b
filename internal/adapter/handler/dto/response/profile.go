package response

import "github.com/bookline/gateway/internal/adapter/backend"

type ProfileResponse struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type ProfileUpdateResponse struct {
	Message string           `json:"message"`
	User    *ProfileResponse `json:"user,omitempty"`
}

func ProfileUpdateFromResult(r *backend.ProfileUpdateResult) ProfileUpdateResponse {
	resp := ProfileUpdateResponse{Message: r.Message}
	if resp.Message == "" {
		resp.Message = "Profile updated successfully"
	}
	if r.User != nil {
		resp.User = &ProfileResponse{
			FirstName: r.User.FirstName,
			LastName:  r.User.LastName,
			Phone:     r.User.Phone,
			Email:     r.User.Email,
		}
	}
	return resp
}
