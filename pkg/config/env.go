package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds the process-level settings read from the environment.
// Numeric fields are zero when unset.
type Env struct {
	Components   string // DISTILL_COMPONENTS, component table path
	LogLevel     string // DISTILL_LOG_LEVEL
	Addr         string // DISTILL_ADDR, HTTP listen address
	Case         string // DISTILL_CASE, case file path
	Pressure     float64
	RefluxFactor float64
	Gilliland    string
}

// LoadEnv loads the given dotenv files (".env" when none) without
// overriding variables already set, then reads the DISTILL_* variables.
func LoadEnv(files ...string) Env {
	_ = godotenv.Load(files...)

	return Env{
		Components:   getEnv("DISTILL_COMPONENTS", ""),
		LogLevel:     getEnv("DISTILL_LOG_LEVEL", "info"),
		Addr:         getEnv("DISTILL_ADDR", ":8080"),
		Case:         getEnv("DISTILL_CASE", ""),
		Pressure:     getEnvFloat("DISTILL_PRESSURE_ATM", 0),
		RefluxFactor: getEnvFloat("DISTILL_REFLUX_FACTOR", 0),
		Gilliland:    getEnv("DISTILL_GILLILAND", ""),
	}
}

// Apply copies the operating settings that are set in e onto c.
func (e Env) Apply(c *Case) {
	if e.Pressure > 0 {
		c.Operation.Pressure = e.Pressure
	}
	if e.RefluxFactor > 0 {
		c.Operation.RefluxFactor = e.RefluxFactor
	}
	if e.Gilliland != "" {
		c.Operation.Gilliland = e.Gilliland
	}
	if e.Components != "" {
		c.Components = e.Components
	}
}

// BaseCase returns the default case with the environment applied, the
// base that case files are read over.
func (e Env) BaseCase() Case {
	c := DefaultCase()
	e.Apply(&c)
	return c
}

// ParseLevel maps a level name to slog.Level; unknown names mean info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
