package catalog

import (
	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Service каталог услуг и специалистов. Каталог задаётся конфигурацией и не меняется во время работы
type Service struct {
	catalog domain.Catalog
}

// NewService создает каталог из снимка конфигурации
func NewService(catalog domain.Catalog) *Service {
	return &Service{catalog: catalog}
}

// Get возвращает копию каталога
func (s *Service) Get() domain.Catalog {
	services := make([]domain.Service, len(s.catalog.Services))
	copy(services, s.catalog.Services)

	professionals := make([]domain.Professional, len(s.catalog.Professionals))
	copy(professionals, s.catalog.Professionals)

	return domain.Catalog{Services: services, Professionals: professionals}
}

// ServiceByName ищет услугу по названию
func (s *Service) ServiceByName(name string) (*domain.Service, error) {
	service, ok := s.catalog.ServiceByName(name)
	if !ok {
		return nil, ErrServiceNotFound
	}
	result := *service
	return &result, nil
}

// CheckProfessional проверяет, что специалист есть в каталоге. Пустой идентификатор допустим
func (s *Service) CheckProfessional(id string) error {
	if id == "" {
		return nil
	}
	if _, ok := s.catalog.ProfessionalByID(id); !ok {
		return ErrProfessionalNotFound
	}
	return nil
}
