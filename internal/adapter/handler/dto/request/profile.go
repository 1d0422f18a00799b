package request

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"omitempty,max=100"`
	LastName  string `json:"lastName" binding:"omitempty,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

// HasChanges reports whether at least one field was supplied.
func (r UpdateProfileRequest) HasChanges() bool {
	return r.FirstName != "" || r.LastName != "" || r.Phone != ""
}
