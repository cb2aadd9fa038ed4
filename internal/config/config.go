// Package config предоставляет структуры и функцию для парсинга и загрузки конфига витрины
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Виды стратегий хранения.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	BasePath        string `yaml:"base_path" env:"BASE_PATH" env-default:"/saree-shop/"`
	Storage         `yaml:"storage"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	Session         `yaml:"session"`
	Cart            `yaml:"cart"`
	JWTToken        `yaml:"jwttoken"`
	Analytics       `yaml:"analytics"`
	RateLimit       `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage выбирает стратегию хранения для каждого вида состояния.
type Storage struct {
	Users           string        `yaml:"users" env:"STORAGE_USERS" env-default:"memory"`
	Sessions        string        `yaml:"sessions" env:"STORAGE_SESSIONS" env-default:"memory"`
	Carts           string        `yaml:"carts" env:"STORAGE_CARTS" env-default:"memory"`
	SQLitePath      string        `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"storefront.db"`
	PostgresDSN     string        `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
	SessionScopeTTL time.Duration `yaml:"session_scope_ttl" env-default:"24h"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	Addr        string        `yaml:"addressredis" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Timeout     time.Duration `yaml:"timeoutredis"`
}

// Session настройки сессии посетителя
type Session struct {
	Timeout      time.Duration `yaml:"timeout" env-default:"30m"`
	CookieName   string        `yaml:"cookie_name" env-default:"apsara_visitor"`
	CookieSecret string        `yaml:"cookie_secret" env:"COOKIE_SECRET" env-required:"true"`
	IdleTTL      time.Duration `yaml:"visitor_idle_ttl" env-default:"2h"`
}

// Cart настройки корзины
type Cart struct {
	MaxAge           time.Duration `yaml:"max_age" env-default:"24h"`
	AutosaveInterval time.Duration `yaml:"autosave_interval" env-default:"30s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY" env-required:"true"`
}

// Analytics настройки публикации событий рекомендаций в RabbitMQ.
// Пустой URL отключает публикацию, события только логируются.
type Analytics struct {
	AMQPURL  string        `yaml:"amqp_url" env:"AMQP_URL"`
	Exchange string        `yaml:"exchange" env-default:"storefront.analytics"`
	Retries  int           `yaml:"retries" env-default:"5"`
	Delay    time.Duration `yaml:"retry_delay" env-default:"2s"`

	// Параметры обработчика очереди аналитики (cmd/analytics-worker).
	Workers       int    `yaml:"workers" env-default:"4"`
	WorkerAddress string `yaml:"worker_address" env:"ANALYTICS_WORKER_ADDRESS" env-default:":9091"`
}

// RateLimit ограничение частоты запросов к маршрутам авторизации
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

// MustLoad функция для загрузки конфига, завершает процесс при ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	return &cfg
}

// Validate проверяет выбранные стратегии хранения и их параметры.
func (c *Config) Validate() error {
	for name, kind := range map[string]string{
		"users":    c.Storage.Users,
		"sessions": c.Storage.Sessions,
		"carts":    c.Storage.Carts,
	} {
		switch kind {
		case StorageMemory, StorageRedis, StorageSQLite:
		case StoragePostgres:
			if c.PostgresDSN == "" {
				return fmt.Errorf("storage.%s: postgres_dsn is required", name)
			}
		default:
			return fmt.Errorf("storage.%s: unknown strategy %q", name, kind)
		}
	}
	if c.Session.Timeout <= 0 {
		return fmt.Errorf("session.timeout must be positive")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"BasePath: %s\n"+
			"Storage:\n"+
			"  Users: %s\n"+
			"  Sessions: %s\n"+
			"  Carts: %s\n"+
			"  SQLitePath: %s\n"+
			"  SessionScopeTTL: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Session:\n"+
			"  Timeout: %s\n"+
			"  CookieName: %s\n"+
			"  IdleTTL: %s\n"+
			"Cart:\n"+
			"  MaxAge: %s\n"+
			"  AutosaveInterval: %s\n"+
			"Analytics:\n"+
			"  Enabled: %t\n"+
			"  Exchange: %s\n",
		c.Env,
		c.BasePath,
		c.Storage.Users,
		c.Storage.Sessions,
		c.Storage.Carts,
		c.SQLitePath,
		c.SessionScopeTTL,
		c.Addr,
		c.User,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Session.Timeout,
		c.CookieName,
		c.IdleTTL,
		c.MaxAge,
		c.AutosaveInterval,
		c.AMQPURL != "",
		c.Exchange,
	)
}
