// Package observability starts the optional telemetry sidecars of the hub:
// Uptrace tracing, Pyroscope profiling and a pprof listener.
package observability

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

const upstreamProvider = "football-data.org"

// InitUptrace installs the global tracer provider. The returned shutdown
// flushes pending spans and is a no-op when tracing is off.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	noop := func(context.Context) error { return nil }
	if !cfg.UptraceEnabled {
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noop, nil
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noop, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(resourceAttributes(cfg)...),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
		"upstream", upstreamProvider,
	)

	return uptrace.Shutdown, nil
}

// resourceAttributes tags every span with the upstream it relays for.
func resourceAttributes(cfg config.Config) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("upstream.provider", upstreamProvider),
	}
	if base := strings.TrimSpace(cfg.FootballAPIBaseURL); base != "" {
		attrs = append(attrs, attribute.String("upstream.base_url", base))
	}
	return attrs
}
