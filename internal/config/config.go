package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "TRIPPLANNER_"

type Application struct {
	Host      string    `koanf:"host"`
	Port      int       `koanf:"port"`
	Server    Server    `koanf:"server"`
	Cors      Cors      `koanf:"cors"`
	RateLimit RateLimit `koanf:"ratelimit"`
	Planner   Planner   `koanf:"planner"`
	Catalog   Catalog   `koanf:"catalog"`
	Database  Database  `koanf:"db"`
}

type Server struct {
	ReadTimeout     time.Duration `koanf:"readtimeout"`
	WriteTimeout    time.Duration `koanf:"writetimeout"`
	IdleTimeout     time.Duration `koanf:"idletimeout"`
	ShutdownTimeout time.Duration `koanf:"shutdowntimeout"`
}

type Cors struct {
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type RateLimit struct {
	Enabled           bool    `koanf:"enabled"`
	RequestsPerSecond float64 `koanf:"requestspersecond"`
	Burst             int     `koanf:"burst"`
}

type Planner struct {
	ActivitiesPerDay int    `koanf:"activitiesperday"`
	SelectionMode    string `koanf:"selectionmode"`
	MaxDuration      int    `koanf:"maxduration"`
}

// Catalog points at an optional YAML catalog. The built-in catalog is used when Path is empty.
type Catalog struct {
	Path string `koanf:"path"`
}

// Database is only used when Enabled is set; plans and bookings are kept in memory otherwise.
type Database struct {
	Enabled bool   `koanf:"enabled"`
	Host    string `koanf:"host"`
	Port    int    `koanf:"port"`
	User    string `koanf:"user"`
	Pass    string `koanf:"pass"`
	Name    string `koanf:"name"`
	Schema  string `koanf:"schema"`
}

func Defaults() Application {
	return Application{
		Host: "http://localhost:5173",
		Port: 8181,
		Server: Server{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Cors: Cors{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		RateLimit: RateLimit{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Planner: Planner{
			ActivitiesPerDay: 2,
			SelectionMode:    "wrap_around",
			MaxDuration:      30,
		},
		Database: Database{
			Enabled: false,
			Host:    "localhost",
			Port:    5432,
			User:    "tripplanner",
			Pass:    "",
			Name:    "tripplanner",
			Schema:  "public",
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			if k == "cors.allowedorigins" {
				return k, splitList(v)
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if err := app.Validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (a Application) Validate() error {
	var errs []error
	if a.Port <= 0 || a.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", a.Port))
	}
	if a.Planner.ActivitiesPerDay <= 0 {
		errs = append(errs, fmt.Errorf("planner.activitiesperday must be positive, got %d", a.Planner.ActivitiesPerDay))
	}
	if a.Planner.MaxDuration <= 0 {
		errs = append(errs, fmt.Errorf("planner.maxduration must be positive, got %d", a.Planner.MaxDuration))
	}
	switch a.Planner.SelectionMode {
	case "", "wrap_around", "no_repeat":
	default:
		errs = append(errs, fmt.Errorf("planner.selectionmode must be wrap_around or no_repeat, got %q", a.Planner.SelectionMode))
	}
	if a.RateLimit.Enabled && (a.RateLimit.RequestsPerSecond <= 0 || a.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("ratelimit.requestspersecond and ratelimit.burst must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
