package get_catalog

import "github.com/m04kA/SMC-ReservationEngine/internal/domain"

type CatalogService interface {
	Get() domain.Catalog
}

type Logger interface {
	Info(format string, v ...interface{})
}
