package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nikolayk812/shopcart/internal/apiclient"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const envPrefix = "SHOPCART"

type API struct {
	BaseURL string            `mapstructure:"base_url"`
	Timeout time.Duration     `mapstructure:"timeout"`
	Headers map[string]string `mapstructure:"headers"`
}

type Cart struct {
	InitLimit    int    `mapstructure:"init_limit"`
	InitCategory string `mapstructure:"init_category"`
	Currency     string `mapstructure:"currency"`
}

type Config struct {
	Environment    string `mapstructure:"environment"`
	LogLevel       string `mapstructure:"log_level"`
	HTTPServerAddr string `mapstructure:"http_server_addr"`
	API            API    `mapstructure:"api"`
	Cart           Cart   `mapstructure:"cart"`
}

// Load reads configuration from, in increasing priority: defaults, the
// optional file given by --config, SHOPCART_* environment variables and
// command line flags.
func Load(args []string) (Config, error) {
	return LoadFlagSet(pflag.NewFlagSet("shopcart", pflag.ContinueOnError), args)
}

// LoadFlagSet works like Load but registers the configuration flags on fs,
// so a command can parse its own flags in the same pass.
func LoadFlagSet(fs *pflag.FlagSet, args []string) (Config, error) {
	configFile := fs.String("config", "", "config file (yaml, json, toml or env)")
	fs.String("api-base-url", "", "product API base URL")
	fs.String("addr", "", "HTTP server address")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("environment", "", "development or production")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("fs.Parse: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"api.base_url":     "api-base-url",
		"http_server_addr": "addr",
		"log_level":        "log-level",
		"environment":      "environment",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("v.BindPFlag[%s]: %w", key, err)
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("v.ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("v.Unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("api.base_url", "https://fakestoreapi.com")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.headers", map[string]string{})
	v.SetDefault("cart.init_limit", 5)
	v.SetDefault("cart.init_category", "")
	v.SetDefault("cart.currency", "GBP")
}

func (c Config) Validate() error {
	var errs []error

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, errors.New("api.timeout is negative"))
	}
	if c.Cart.InitLimit < 0 {
		errs = append(errs, errors.New("cart.init_limit is negative"))
	}
	if _, err := domain.ParseCategory(c.Cart.InitCategory); err != nil {
		errs = append(errs, fmt.Errorf("cart.init_category: %w", err))
	}
	if _, err := currency.ParseISO(c.Cart.Currency); err != nil {
		errs = append(errs, fmt.Errorf("cart.currency[%s] is not valid: %w", c.Cart.Currency, err))
	}

	return errors.Join(errs...)
}

// CurrencyUnit must only be called on a validated Config.
func (c Config) CurrencyUnit() currency.Unit {
	return currency.MustParseISO(c.Cart.Currency)
}

// InitCategory must only be called on a validated Config.
func (c Config) InitCategory() domain.Category {
	category, _ := domain.ParseCategory(c.Cart.InitCategory)
	return category
}

// ClientOptions turns the API section into options for apiclient.New.
func (a API) ClientOptions(logger *zap.Logger) []apiclient.Option {
	opts := []apiclient.Option{
		apiclient.WithTimeout(a.Timeout),
		apiclient.WithLogger(logger),
	}
	for key, value := range a.Headers {
		opts = append(opts, apiclient.WithHeader(key, value))
	}
	return opts
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
