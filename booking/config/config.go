package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/court-booking/pkg/kafka"
	"github.com/Astemirdum/court-booking/pkg/logger"
	"github.com/Astemirdum/court-booking/pkg/postgres"
	"github.com/Astemirdum/court-booking/pkg/sqlite"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKING_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKING_HTTP_PORT" default:"5000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Storage struct {
	Driver string `yaml:"driver" envconfig:"STORAGE_DRIVER" default:"postgres"`
	// Fallback switches to SQLite when PostgreSQL cannot be reached at startup.
	Fallback bool `yaml:"fallback" envconfig:"STORAGE_FALLBACK" default:"true"`
}

type Booking struct {
	OpenHour     int `yaml:"openHour" envconfig:"BOOKING_OPEN_HOUR" default:"8"`
	CloseHour    int `yaml:"closeHour" envconfig:"BOOKING_CLOSE_HOUR" default:"24"`
	CodeAttempts int `yaml:"codeAttempts" envconfig:"BOOKING_CODE_ATTEMPTS" default:"100"`
}

type Config struct {
	Server   HTTPServer    `yaml:"server"`
	Storage  Storage       `yaml:"storage"`
	Database postgres.DB   `yaml:"db"`
	SQLite   sqlite.Config `yaml:"sqlite"`
	Kafka    kafka.Config  `yaml:"kafka"`
	Booking  Booking       `yaml:"booking"`
	Log      logger.Log    `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
