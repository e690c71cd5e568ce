package config

const (
	defaultServerPort   = 8080
	defaultMaxFormBytes = 1 << 20

	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 28

	defaultSQLMaxOpenConns = 10
	defaultSQLMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults is the lowest configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",
		"server.max_form_bytes":  defaultMaxFormBytes,

		"log.level":             "info",
		"log.format":            "json",
		"log.file.path":         "",
		"log.file.max_size_mb":  defaultLogMaxSizeMB,
		"log.file.max_backups":  defaultLogMaxBackups,
		"log.file.max_age_days": defaultLogMaxAgeDays,
		"log.file.compress":     false,

		"store.driver":                "memory",
		"store.seed":                  true,
		"store.sql.dialect":           "sqlite",
		"store.sql.dsn":               "file:items.db?_foreign_keys=on",
		"store.sql.max_open_conns":    defaultSQLMaxOpenConns,
		"store.sql.max_idle_conns":    defaultSQLMaxIdleConns,
		"store.sql.conn_max_lifetime": "30m",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0.0,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "item-service",

		"messages.default_locale": "en",
	}
}
