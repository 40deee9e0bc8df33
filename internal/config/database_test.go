// internal/config/database_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "app",
		Password: "s3cret",
		Database: "storefront",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "user=app")
	assert.Contains(t, dsn, "dbname=storefront")
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "password=s3cret")
	assert.Contains(t, dsn, "TimeZone=UTC")
}

func TestDSNOmitsEmptyPassword(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Database: "storefront",
		SSLMode:  "disable",
	}

	assert.NotContains(t, cfg.DSN(), "password=")
}
