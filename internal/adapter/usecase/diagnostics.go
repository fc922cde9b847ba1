package usecase

import (
	"context"
	"log/slog"

	"agency-campaigns/internal/core/port"
)

const (
	maxDiagnosticCollections = 10
	maxDiagnosticError       = 50
)

// Diagnostics reports whether the store answers and which collections it
// holds. Failures are summarised inline instead of returned.
func (u *AgencyUseCase) Diagnostics(ctx context.Context) port.Diagnostics {
	d := port.Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if u.urlSet {
		d.DatabaseURL = "set"
	}
	if u.probe == nil {
		d.Database = "available but not initialized"
		return d
	}

	name := u.probe.Name()
	d.DatabaseName = &name
	if err := u.probe.Ping(ctx); err != nil {
		u.logger.Warn("diagnostics ping failed", slog.Any("error", err))
		d.Database = "error: " + truncate(err.Error(), maxDiagnosticError)
		return d
	}
	d.Database = "available"
	d.ConnectionStatus = "connected"

	names, err := u.probe.ListCollectionNames(ctx)
	if err != nil {
		u.logger.Warn("diagnostics list collections failed", slog.Any("error", err))
		d.Database = "connected but error: " + truncate(err.Error(), maxDiagnosticError)
		return d
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	d.Collections = names
	d.Database = "connected and working"
	return d
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
