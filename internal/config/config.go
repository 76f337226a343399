// Package config loads tprofile settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-tprofile/dsp/filter/savgol"
	"github.com/cwbudde/algo-tprofile/profile"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("odd", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 != 0
	})
	return v
}

// Config holds the settings of one tprofile run.
type Config struct {
	InputGlob   string `validate:"required"`
	OutputDir   string `validate:"required"`
	Suffix      string
	HasHeader   bool
	WriteHeader bool

	Degree    int    `validate:"gte=0"`
	Window    int    `validate:"gt=0,odd,gtfield=PolyOrder"`
	PolyOrder int    `validate:"gte=0"`
	Boundary  string `validate:"oneof=nearest mirror constant wrap"`

	Workers  int           `validate:"gte=1"`
	Compress string        `validate:"omitempty,oneof=gzip zstd s2 lz4"`
	Watch    time.Duration `validate:"gte=0"` // 0 = run once
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	return &Config{
		InputGlob:   "./input/*.dat",
		OutputDir:   "./output",
		Suffix:      "_spline5",
		HasHeader:   true,
		WriteHeader: true,
		Degree:      profile.DefaultDegree,
		Window:      profile.DefaultWindow,
		PolyOrder:   profile.DefaultPolyOrder,
		Boundary:    savgol.ModeNearest.String(),
		Workers:     runtime.NumCPU(),
	}
}

// Load reads configuration from a .env file and TPROFILE_* environment
// variables on top of Defaults. It does not validate; callers apply their
// own overrides and then call Validate.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	return fromEnv(Defaults())
}

func fromEnv(cfg *Config) (*Config, error) {
	cfg.InputGlob = getenvDefault("TPROFILE_INPUT", cfg.InputGlob)
	cfg.OutputDir = getenvDefault("TPROFILE_OUTPUT", cfg.OutputDir)
	cfg.Suffix = getenvDefault("TPROFILE_SUFFIX", cfg.Suffix)
	cfg.Boundary = getenvDefault("TPROFILE_BOUNDARY", cfg.Boundary)
	cfg.Compress = getenvDefault("TPROFILE_COMPRESS", cfg.Compress)

	var err error
	if cfg.HasHeader, err = getenvBool("TPROFILE_HAS_HEADER", cfg.HasHeader); err != nil {
		return nil, err
	}
	if cfg.WriteHeader, err = getenvBool("TPROFILE_WRITE_HEADER", cfg.WriteHeader); err != nil {
		return nil, err
	}
	if cfg.Degree, err = getenvInt("TPROFILE_DEGREE", cfg.Degree); err != nil {
		return nil, err
	}
	if cfg.Window, err = getenvInt("TPROFILE_WINDOW", cfg.Window); err != nil {
		return nil, err
	}
	if cfg.PolyOrder, err = getenvInt("TPROFILE_POLY_ORDER", cfg.PolyOrder); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getenvInt("TPROFILE_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}

	watch := getenvDefault("TPROFILE_WATCH", cfg.Watch.String())
	if cfg.Watch, err = time.ParseDuration(watch); err != nil {
		return nil, fmt.Errorf("invalid TPROFILE_WATCH: %w", err)
	}

	return cfg, nil
}

// Validate checks every field against its range.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EngineOptions translates the numeric settings into profile options.
func (c *Config) EngineOptions() ([]profile.Option, error) {
	mode, err := savgol.ParseMode(c.Boundary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return []profile.Option{
		profile.WithDegree(c.Degree),
		profile.WithWindow(c.Window),
		profile.WithPolyOrder(c.PolyOrder),
		profile.WithBoundary(mode),
	}, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
