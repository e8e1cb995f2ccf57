/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"os"

	"github.com/suparena/tablekit/errors"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvRegion      = "TABLEKIT_AWS_REGION"
	EnvAccessKey   = "TABLEKIT_AWS_ACCESS_KEY"
	EnvSecretKey   = "TABLEKIT_AWS_SECRET_KEY"
	EnvTablePrefix = "TABLEKIT_TABLE_PREFIX"
)

// Config holds the settings the DynamoDB provider needs. Credentials may be
// empty, in which case the default AWS credential chain applies.
type Config struct {
	Region      string
	AccessKey   string
	SecretKey   string
	TablePrefix string
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.Region == "" {
		return errors.NewConfigurationError("ddb", "region is required")
	}
	return nil
}

// ConfigFromEnv builds a Config from the environment. Call godotenv.Load
// first if settings live in a .env file.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Region:      os.Getenv(EnvRegion),
		AccessKey:   os.Getenv(EnvAccessKey),
		SecretKey:   os.Getenv(EnvSecretKey),
		TablePrefix: os.Getenv(EnvTablePrefix),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
