package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks every section and joins all problems found.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Client.validate(c.Store.Driver == DriverRemote),
		c.Telemetry.validate(),
		c.Messages.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.MaxFormBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_form_bytes must be positive, got %d", s.MaxFormBytes))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	if l.File.Path != "" && l.File.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("log.file.max_size_mb must be >= 1, got %d", l.File.MaxSizeMB))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case DriverMemory, DriverRemote:
		return nil
	case DriverSQL:
	default:
		return fmt.Errorf("store.driver must be one of: memory, sql, remote; got %q", s.Driver)
	}

	var errs []error
	switch s.SQL.Dialect {
	case DialectSQLite, DialectPostgres, DialectMySQL:
	default:
		errs = append(errs, fmt.Errorf("store.sql.dialect must be one of: sqlite, postgres, mysql; got %q", s.SQL.Dialect))
	}
	if strings.TrimSpace(s.SQL.DSN) == "" {
		errs = append(errs, errors.New("store.sql.dsn must not be empty when store.driver is sql"))
	}
	if s.SQL.MaxOpenConns < 0 || s.SQL.MaxIdleConns < 0 {
		errs = append(errs, errors.New("store.sql connection limits must not be negative"))
	}
	return errors.Join(errs...)
}

// validate checks the client section. The base URL is only required when the
// remote store is selected.
func (cl *ClientConfig) validate(required bool) error {
	var errs []error

	if required && cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty when store.driver is remote"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("client.rate_limit.requests_per_second must not be negative"))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (m *MessagesConfig) validate() error {
	switch m.DefaultLocale {
	case "en", "ko":
		return nil
	}
	return fmt.Errorf("messages.default_locale must be one of: en, ko; got %q", m.DefaultLocale)
}
