package sqlite

import "errors"

// Ошибки "не найдено" и конфликтов возвращаются теми же sentinel-ошибками,
// что и у репозиториев PostgreSQL, чтобы use case не зависели от драйвера
var (
	// ErrMigrate возвращается, когда не удалось открыть базу или применить схему
	ErrMigrate = errors.New("sqlite.storage: failed to migrate")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sqlite.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sqlite.storage: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sqlite.storage: failed to scan row")
)
