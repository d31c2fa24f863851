package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application level configuration loaded from environment
// variables, plus the access rules and hours roster loaded once at startup.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string

	// AccessFile optionally overrides the built-in rule sets and roster.
	AccessFile string

	Access Access
}

// Person is one member of the hours roster.
type Person struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Access holds the static rule sets and the hours roster. These are
// configuration data consulted read-only after startup, never mutated.
type Access struct {
	Approved      []string          `yaml:"approved"`
	PasswordGated map[string]string `yaml:"password_gated"`
	Restricted    []string          `yaml:"restricted"`
	HoursAdmin    []string          `yaml:"hours_admin"`
	HoursLimited  []string          `yaml:"hours_limited"`

	People    []Person          `yaml:"people"`
	Endpoints map[string]string `yaml:"endpoints"`
	Timezone  string            `yaml:"timezone"`
	RowLimit  int               `yaml:"row_limit"`
}

// Load builds Config from environment with sensible defaults, then applies
// the optional access file on top.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/stagevault?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		AccessFile:  os.Getenv("STAGEVAULT_ACCESS_FILE"),
		Access:      defaultAccess(),
	}

	if cfg.AccessFile != "" {
		data, err := os.ReadFile(cfg.AccessFile)
		if err != nil {
			return nil, fmt.Errorf("read access file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg.Access); err != nil {
			return nil, fmt.Errorf("parse access file: %w", err)
		}
	}
	if cfg.Access.Timezone == "" {
		cfg.Access.Timezone = "Asia/Dubai"
	}
	if cfg.Access.RowLimit <= 0 {
		cfg.Access.RowLimit = 500
	}

	return cfg, nil
}

// defaultAccess mirrors the rule sets the dashboard shipped with, so the
// service runs without an access file. Production deployments override these.
func defaultAccess() Access {
	return Access{
		Approved: []string{
			"cp2532", "eg129", "pb139", "rs5186", "st110", "gr73", "js9640",
			"tt2571", "lc4938", "ch4360", "jp4854", "bl2580", "lg3115",
			"ma10073", "sam9644", "ld72", "sa9252",
		},
		PasswordGated: map[string]string{
			"js9640": "change-me",
		},
		Restricted:   []string{"cp2532", "js9640", "gr73"},
		HoursAdmin:   []string{"js9640"},
		HoursLimited: []string{"cp2532", "gr73"},
		People: []Person{
			{ID: "estelle", Label: "Estelle"},
			{ID: "liriana", Label: "Liriana"},
			{ID: "roger", Label: "Roger"},
			{ID: "subin", Label: "Subin"},
			{ID: "philip", Label: "Philip"},
			{ID: "gareth", Label: "Gareth"},
			{ID: "josie", Label: "Josie"},
			{ID: "tim", Label: "Tim"},
			{ID: "sabr", Label: "Sabr"},
		},
		Endpoints: map[string]string{},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
