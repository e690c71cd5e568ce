package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach the
// log. The request logging middleware consults the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// dsnPassword matches the credential part of URL style DSNs such as
// postgres://user:pw@host/db and user:pw@tcp(host)/db.
var dsnPassword = regexp.MustCompile(`[^\s:/@]+:[^\s:/@]+@`)

var bearerToken = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+6)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("dsn"),
		masq.WithFieldName("api_key"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(dsnPassword),
		masq.WithRegex(bearerToken),
	)

	return masq.New(opts...)
}
