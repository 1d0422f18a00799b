package entity

// Business is a marketplace listing served by the upstream catalog.
type Business struct {
	ID         FlexID `json:"id"`
	PublicID   string `json:"public_id,omitempty"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ObjectName string `json:"object_name,omitempty"`
}

// Service is a bookable offering attached to a business.
type Service struct {
	ID              FlexID  `json:"id"`
	BusinessID      FlexID  `json:"business_id,omitempty"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
}
