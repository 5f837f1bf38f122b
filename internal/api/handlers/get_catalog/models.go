package get_catalog

import "github.com/m04kA/SMC-ReservationEngine/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
	Deposit         *float64 `json:"deposit,omitempty"`
}

// ProfessionalResponse специалист
type ProfessionalResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Services      []ServiceResponse      `json:"services"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromDomainCatalog конвертирует каталог в HTTP response
func FromDomainCatalog(c domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Services:      make([]ServiceResponse, len(c.Services)),
		Professionals: make([]ProfessionalResponse, len(c.Professionals)),
	}

	for i, s := range c.Services {
		resp.Services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Deposit:         s.Deposit,
		}
	}

	for i, p := range c.Professionals {
		resp.Professionals[i] = ProfessionalResponse{
			ID:     p.ID,
			Name:   p.Name,
			Role:   p.Role,
			Rating: p.Rating,
		}
	}

	return resp
}
