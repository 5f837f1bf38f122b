package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
	"github.com/m04kA/SMC-ReservationEngine/pkg/types"
)

// Переменные окружения, перекрывающие секреты из файла
const (
	EnvConfigPath      = "CONFIG_PATH"
	EnvDBPassword      = "DB_PASSWORD"
	EnvRedisPassword   = "REDIS_PASSWORD"
	EnvSMSGatewayToken = "SMS_GATEWAY_TOKEN"
	EnvOperatorToken   = "OPERATOR_TOKEN"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Каналы уведомлений
const (
	ProviderLog   = "log"
	ProviderSMS   = "sms"
	ProviderKafka = "kafka"
)

var (
	// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Storage       StorageConfig       `toml:"storage"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Engine        EngineConfig        `toml:"engine"`
	Reminders     RemindersConfig     `toml:"reminders"`
	Redis         RedisConfig         `toml:"redis"`
	Notifications NotificationsConfig `toml:"notifications"`
	SMSGateway    SMSGatewayConfig    `toml:"sms_gateway"`
	Kafka         KafkaConfig         `toml:"kafka"`
	Operator      OperatorConfig      `toml:"operator"`
	Calendar      CalendarConfig      `toml:"calendar"`
	Catalog       CatalogConfig       `toml:"catalog"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type StorageConfig struct {
	Driver     string `toml:"driver"`      // postgres или sqlite
	SQLitePath string `toml:"sqlite_path"` // файл базы для sqlite
}

type LogsConfig struct {
	File  string `toml:"file"` // пусто: только stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type EngineConfig struct {
	Timezone               string `toml:"timezone"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	HoldTTLMinutes         int    `toml:"hold_ttl_minutes"`
	HoldSweepSchedule      string `toml:"hold_sweep_schedule"`
	JobTimeoutSeconds      int    `toml:"job_timeout_seconds"`
}

type RemindersConfig struct {
	Enabled        bool   `toml:"enabled"`
	Schedule       string `toml:"schedule"`
	WindowMinutes  int    `toml:"window_minutes"`
	LockTTLSeconds int    `toml:"lock_ttl_seconds"`
}

type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	LockPrefix string `toml:"lock_prefix"`
}

type NotificationsConfig struct {
	Provider       string          `toml:"provider"` // log, sms или kafka
	Workers        int             `toml:"workers"`
	TimeoutSeconds int             `toml:"timeout_seconds"`
	CountryCode    string          `toml:"country_code"`
	Templates      TemplatesConfig `toml:"templates"`
}

type TemplatesConfig struct {
	Confirmed  string `toml:"confirmed"`
	Cancelled  string `toml:"cancelled"`
	Reminder   string `toml:"reminder"`
	DateLayout string `toml:"date_layout"`
}

type SMSGatewayConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

type OperatorConfig struct {
	Token string `toml:"token"`
}

type IntervalConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

type DayConfig struct {
	IsOpen    bool             `toml:"is_open"`
	Intervals []IntervalConfig `toml:"intervals"`
}

// CalendarConfig расписание по умолчанию, пока оператор не сохранил своё
type CalendarConfig struct {
	Monday    *DayConfig `toml:"monday"`
	Tuesday   *DayConfig `toml:"tuesday"`
	Wednesday *DayConfig `toml:"wednesday"`
	Thursday  *DayConfig `toml:"thursday"`
	Friday    *DayConfig `toml:"friday"`
	Saturday  *DayConfig `toml:"saturday"`
	Sunday    *DayConfig `toml:"sunday"`
}

type ServiceConfig struct {
	ID              string   `toml:"id"`
	Name            string   `toml:"name"`
	Description     string   `toml:"description"`
	DurationMinutes int      `toml:"duration_minutes"`
	Price           *float64 `toml:"price"`
	Deposit         *float64 `toml:"deposit"`
}

type ProfessionalConfig struct {
	ID     string  `toml:"id"`
	Name   string  `toml:"name"`
	Role   string  `toml:"role"`
	Rating float64 `toml:"rating"`
}

type CatalogConfig struct {
	Services      []ServiceConfig      `toml:"services"`
	Professionals []ProfessionalConfig `toml:"professionals"`
}

// Load читает .env (если есть), затем TOML файл. Путь из CONFIG_PATH имеет приоритет
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: load .env: %v", ErrInvalidConfig, err)
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverPostgres
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = "reservations.db"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "reservation_engine"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Engine.Timezone == "" {
		c.Engine.Timezone = domain.DefaultTimezone
	}
	setDefault(&c.Engine.SlotGranularityMinutes, domain.DefaultSlotGranularityMinutes)
	setDefault(&c.Engine.HoldTTLMinutes, int(domain.DefaultHoldTTL/time.Minute))
	setDefault(&c.Engine.JobTimeoutSeconds, 50)
	if c.Engine.HoldSweepSchedule == "" {
		c.Engine.HoldSweepSchedule = domain.DefaultHoldSweepSchedule
	}

	if c.Reminders.Schedule == "" {
		c.Reminders.Schedule = domain.DefaultReminderSchedule
	}
	setDefault(&c.Reminders.WindowMinutes, int(domain.DefaultReminderWindow/time.Minute))
	setDefault(&c.Reminders.LockTTLSeconds, 55)

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if c.Notifications.Provider == "" {
		c.Notifications.Provider = ProviderLog
	}
	setDefault(&c.Notifications.Workers, 8)
	setDefault(&c.Notifications.TimeoutSeconds, 10)
	setDefault(&c.SMSGateway.Timeout, 5)

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "appointment-notifications"
	}

	c.Calendar.applyDefaults()

	if len(c.Catalog.Services) == 0 {
		c.Catalog.Services = defaultServices()
	}
}

func (c *Config) applyEnv() {
	overrideFromEnv(&c.Database.Password, EnvDBPassword)
	overrideFromEnv(&c.Redis.Password, EnvRedisPassword)
	overrideFromEnv(&c.SMSGateway.Token, EnvSMSGatewayToken)
	overrideFromEnv(&c.Operator.Token, EnvOperatorToken)
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	var problems []string

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for postgres")
		}
	case DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage.driver %q", c.Storage.Driver))
	}

	if _, err := time.LoadLocation(c.Engine.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("engine.timezone: %v", err))
	}
	if g := c.Engine.SlotGranularityMinutes; g < domain.MinSlotGranularityMinutes || g > domain.MaxSlotGranularityMinutes {
		problems = append(problems, fmt.Sprintf("engine.slot_granularity_minutes must be %d..%d",
			domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes))
	}
	if c.Engine.HoldTTLMinutes < 1 {
		problems = append(problems, "engine.hold_ttl_minutes must be positive")
	}

	switch c.Notifications.Provider {
	case ProviderLog:
	case ProviderSMS:
		if c.SMSGateway.URL == "" {
			problems = append(problems, "sms_gateway.url is required for the sms provider")
		}
	case ProviderKafka:
		if len(c.Kafka.Brokers) == 0 {
			problems = append(problems, "kafka.brokers is required for the kafka provider")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown notifications.provider %q", c.Notifications.Provider))
	}

	if c.Operator.Token == "" {
		problems = append(problems, "operator.token is required (or OPERATOR_TOKEN)")
	}

	if _, err := c.Calendar.ToDomain(); err != nil {
		problems = append(problems, fmt.Sprintf("calendar: %v", err))
	}

	seen := make(map[string]bool, len(c.Catalog.Services))
	for _, s := range c.Catalog.Services {
		if s.Name == "" || seen[s.Name] {
			problems = append(problems, fmt.Sprintf("catalog: service name %q is empty or duplicated", s.Name))
		}
		seen[s.Name] = true
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Location часовой пояс бизнеса. Вызывать после Validate
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Engine.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HoldTTL время жизни холда
func (c *Config) HoldTTL() time.Duration {
	return time.Duration(c.Engine.HoldTTLMinutes) * time.Minute
}

// ToDomain строит и проверяет недельное расписание
func (c CalendarConfig) ToDomain() (domain.CalendarConfiguration, error) {
	var cfg domain.CalendarConfiguration

	days := map[time.Weekday]*DayConfig{
		time.Monday:    c.Monday,
		time.Tuesday:   c.Tuesday,
		time.Wednesday: c.Wednesday,
		time.Thursday:  c.Thursday,
		time.Friday:    c.Friday,
		time.Saturday:  c.Saturday,
		time.Sunday:    c.Sunday,
	}

	for weekday, day := range days {
		if day == nil {
			continue
		}

		schedule := domain.DaySchedule{IsOpen: day.IsOpen}
		for i, interval := range day.Intervals {
			start, err := types.NewTimeStringFromString(interval.Start)
			if err != nil {
				return cfg, fmt.Errorf("%s interval #%d start: %w", weekday, i+1, err)
			}
			end, err := types.NewTimeStringFromString(interval.End)
			if err != nil {
				return cfg, fmt.Errorf("%s interval #%d end: %w", weekday, i+1, err)
			}
			schedule.Intervals = append(schedule.Intervals, domain.TimeInterval{Start: start, End: end})
		}
		cfg.SetWeekday(weekday, schedule)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ToDomain строит каталог
func (c CatalogConfig) ToDomain() domain.Catalog {
	catalog := domain.Catalog{
		Services:      make([]domain.Service, len(c.Services)),
		Professionals: make([]domain.Professional, len(c.Professionals)),
	}

	for i, s := range c.Services {
		catalog.Services[i] = domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Deposit:         s.Deposit,
		}
	}

	for i, p := range c.Professionals {
		catalog.Professionals[i] = domain.Professional{
			ID:     p.ID,
			Name:   p.Name,
			Role:   p.Role,
			Rating: p.Rating,
		}
	}

	return catalog
}

// ProfessionalNames id специалиста -> имя, для шаблонов уведомлений
func (c CatalogConfig) ProfessionalNames() map[string]string {
	names := make(map[string]string, len(c.Professionals))
	for _, p := range c.Professionals {
		names[p.ID] = p.Name
	}
	return names
}

// applyDefaults: если не задан ни один день, используется расписание по умолчанию
func (c *CalendarConfig) applyDefaults() {
	if c.Monday != nil || c.Tuesday != nil || c.Wednesday != nil || c.Thursday != nil ||
		c.Friday != nil || c.Saturday != nil || c.Sunday != nil {
		return
	}

	weekday := func() *DayConfig {
		return &DayConfig{IsOpen: true, Intervals: []IntervalConfig{{Start: "09:00", End: "18:00"}}}
	}

	c.Monday = weekday()
	c.Tuesday = weekday()
	c.Wednesday = weekday()
	c.Thursday = weekday()
	c.Friday = weekday()
	c.Saturday = &DayConfig{IsOpen: true, Intervals: []IntervalConfig{{Start: "09:00", End: "14:00"}}}
	c.Sunday = &DayConfig{IsOpen: false}
}

func defaultServices() []ServiceConfig {
	price := func(v float64) *float64 { return &v }

	return []ServiceConfig{
		{ID: "1", Name: "Corte Masculino", Description: "Corte moderno com tesoura ou máquina, lavagem e finalização.",
			DurationMinutes: 30, Price: price(45), Deposit: price(10)},
		{ID: "2", Name: "Barba Modelada", Description: "Barba feita com toalha quente, navalha e hidratação.",
			DurationMinutes: 30, Price: price(35), Deposit: price(10)},
		{ID: "3", Name: "Combo (Corte + Barba)", Description: "Serviço completo de corte e barba com desconto especial.",
			DurationMinutes: 60, Price: price(70), Deposit: price(20)},
		{ID: "4", Name: "Acabamento / Pezinho", Description: "Apenas os contornos do cabelo e barba.",
			DurationMinutes: 15, Price: price(20), Deposit: price(5)},
		{ID: "5", Name: "Sobrancelha", Description: "Design de sobrancelha na navalha ou pinça.",
			DurationMinutes: 15, Price: price(15), Deposit: price(5)},
	}
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func overrideFromEnv(v *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*v = value
	}
}
