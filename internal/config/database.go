// internal/config/database.go
package config

import "strings"

// DSN renders the keyword/value connection string the postgres driver
// expects. The password is omitted entirely when empty so local trust-auth
// setups work, and TimeZone pins timestamps to UTC regardless of the server
// locale.
func (d *DatabaseConfig) DSN() string {
	parts := []string{
		"host=" + d.Host,
		"port=" + d.Port,
		"user=" + d.User,
		"dbname=" + d.Database,
		"sslmode=" + d.SSLMode,
		"TimeZone=UTC",
	}
	if d.Password != "" {
		parts = append(parts, "password="+d.Password)
	}
	return strings.Join(parts, " ")
}
