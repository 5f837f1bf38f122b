package domain

// Service услуга каталога
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           *float64 // nil: цена не задана, доход при подтверждении не создаётся
	Deposit         *float64
}

// HasPrice returns true if the service has a price
func (s *Service) HasPrice() bool {
	return s.Price != nil
}

// Professional специалист
type Professional struct {
	ID     string
	Name   string
	Role   string
	Rating float64
}

// Catalog снимок каталога услуг и специалистов
type Catalog struct {
	Services      []Service
	Professionals []Professional
}

// ServiceByName ищет услугу по названию
func (c *Catalog) ServiceByName(name string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// ProfessionalByID ищет специалиста по идентификатору
func (c *Catalog) ProfessionalByID(id string) (*Professional, bool) {
	for i := range c.Professionals {
		if c.Professionals[i].ID == id {
			return &c.Professionals[i], true
		}
	}
	return nil, false
}
