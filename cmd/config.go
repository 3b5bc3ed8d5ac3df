package cmd

import (
	"fmt"
	"time"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// GatewaySecret keys the HMAC verification of payment callbacks.
	GatewaySecret string `env:"GATEWAY_SECRET,required"`

	// GatewayBaseURL is where refund instructions are sent.
	GatewayBaseURL string        `env:"GATEWAY_BASE_URL,required"`
	GatewayTimeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`

	// AssignmentSchedule is a six-field cron expression for the courier
	// assignment sweep. Empty means the job default (once a minute).
	AssignmentSchedule string `env:"ASSIGNMENT_SCHEDULE"`

	// Eligibility windows: how long an order must sit confirmed before the
	// sweep may bind a courier. Zero means the policy defaults.
	FirstOrderDelay  time.Duration `env:"FIRST_ORDER_DELAY"`
	RepeatOrderDelay time.Duration `env:"REPEAT_ORDER_DELAY"`
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
