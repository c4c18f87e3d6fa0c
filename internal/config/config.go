package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App      App      `env-prefix:"APP_"`
		Logger   Logger   `env-prefix:"LOGGER_"`
		Storage  Storage  `env-prefix:"STORAGE_"`
		Postgres Postgres `env-prefix:"DB_"`
		HTTP     HTTP     `env-prefix:"HTTP_"`
		Mail     Mail     `env-prefix:"MAIL_"`
		Metrics  Metrics  `env-prefix:"METRICS_"`
		Env      string   `                      env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `env:"NAME"    env-default:"escova-order-service" validate:"required"`
		Version string `env:"VERSION" env-default:"1.0.0"               validate:"required"`
	}

	// Storage selects the backing collection for orders. The memory driver
	// keeps orders in process and is meant for local runs and tests.
	Storage struct {
		Driver string `env:"DRIVER" env-default:"postgres" validate:"oneof=memory postgres"`
	}

	Postgres struct {
		Host           string        `env:"HOST"             env-default:"localhost"`
		Port           string        `env:"PORT"             env-default:"5432"      validate:"required,gte=1,lte=65535"`
		Name           string        `env:"NAME"             env-default:"escova"`
		User           string        `env:"USER"             env-default:"postgres"`
		Password       string        `env:"PASSWORD"`
		SSLMode        string        `env:"SSL_MODE"         env-default:"disable"`
		PoolMax        int32         `env:"POOL_MAX"         env-default:"20"        validate:"min=1,max=100"`
		ConnAttempts   int           `env:"CONN_ATTEMPTS"    env-default:"5"         validate:"min=1,max=10"`
		BaseRetryDelay time.Duration `env:"BASE_RETRY_DELAY" env-default:"100ms"     validate:"gte=10ms,lte=10s"`
		MaxRetryDelay  time.Duration `env:"MAX_RETRY_DELAY"  env-default:"5s"        validate:"gte=100ms,lte=30s,gtefield=BaseRetryDelay"`
	}

	HTTP struct {
		Host              string        `env:"HOST"                env-default:"0.0.0.0" validate:"required"`
		Port              string        `env:"PORT"                env-default:"8080"    validate:"required,gte=1,lte=65535"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        env-default:"5s"      validate:"gte=10ms,lte=30s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       env-default:"5s"      validate:"gte=10ms,lte=30s"`
		IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        env-default:"60s"     validate:"gte=10ms,lte=120s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    env-default:"10s"     validate:"gte=10ms,lte=30s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" env-default:"5s"      validate:"gte=10ms,lte=30s"`
	}

	// Mail configures the notification side-channel. AdminEmail falls back to
	// the shop owner's historical address when unset.
	Mail struct {
		APIKey     string        `env:"API_KEY"     validate:"required"`
		From       string        `env:"FROM"        env-default:"PetBrush <onboarding@resend.dev>" validate:"required"`
		AdminEmail string        `env:"ADMIN_EMAIL" env-default:"trocame@teuemail.pt"              validate:"required"`
		Timeout    time.Duration `env:"TIMEOUT"     env-default:"10s"                              validate:"gte=1s,lte=30s"`
	}

	Metrics struct {
		Host              string        `env:"HOST"                env-default:"0.0.0.0" validate:"required"`
		Port              string        `env:"PORT"                env-default:"9090"    validate:"required,gte=1,lte=65535"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        env-default:"5s"      validate:"gte=10ms,lte=30s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       env-default:"5s"      validate:"gte=10ms,lte=30s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" env-default:"5s"      validate:"gte=10ms,lte=30s"`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"                    validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/escova.log"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"100"                     validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"                       validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"                      validate:"min=1,max=365"`
	}
)

// Load reads configuration from the file named by -config/CONFIG_PATH when
// one is given, falling back to environment variables alone otherwise.
func Load() (*Config, error) {
	path := fetchConfigPath()
	if path == "" {
		return loadEnv()
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func loadEnv() (*Config, error) {
	const op = "config.loadEnv"

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: read env: %w", op, err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	validate := validator.New()

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msgs := make([]string, 0, len(validationErrs))
		for _, ve := range validationErrs {
			msgs = append(msgs,
				fmt.Sprintf("%s=%v must satisfy '%s'", ve.Field(), ve.Value(), ve.Tag()))
		}
		return fmt.Errorf("config validation: %v", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("config validation: %w", err)
}

func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "Path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
