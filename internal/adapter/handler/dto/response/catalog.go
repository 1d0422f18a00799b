package response

import "github.com/bookline/gateway/internal/domain/entity"

type BusinessResponse struct {
	ID         string `json:"id"`
	PublicID   string `json:"public_id,omitempty"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ObjectName string `json:"object_name,omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
}

type BusinessesListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

type BusinessDetailResponse struct {
	Business BusinessResponse  `json:"business"`
	Services []ServiceResponse `json:"services"`
}

type UnavailableTimesResponse struct {
	Times []string `json:"times"`
}

func BusinessFromEntity(b *entity.Business) BusinessResponse {
	return BusinessResponse{
		ID:         b.ID.String(),
		PublicID:   b.PublicID,
		Name:       b.Name,
		Category:   b.Category,
		City:       b.City,
		Country:    b.Country,
		Address:    b.Address,
		Phone:      b.Phone,
		ObjectName: b.ObjectName,
	}
}

func BusinessesFromEntities(businesses []entity.Business) []BusinessResponse {
	result := make([]BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		result = append(result, BusinessFromEntity(&b))
	}
	return result
}

func ServicesFromEntities(services []entity.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, ServiceResponse{
			ID:              s.ID.String(),
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return result
}
