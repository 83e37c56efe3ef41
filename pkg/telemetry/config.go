// Package telemetry provides local, in-process span instrumentation for
// pipeline stages. There is no network exporter: spans are formatted as
// structured progress lines through pkg/utils.Logger, never shipped to a
// collector.
package telemetry

// Config holds telemetry configuration. Unlike most OpenTelemetry setups,
// it is never read from OTEL_* environment variables, since the pipeline
// never reads its environment; the kclique CLI passes DefaultConfig().
type Config struct {
	// Enabled indicates whether span instrumentation runs at all. When
	// false, the global TracerProvider stays the OTel no-op default.
	Enabled bool

	// ServiceName identifies the run in emitted span log lines.
	ServiceName string

	// ServiceVersion tags emitted span log lines.
	ServiceVersion string

	// Sampler selects the trace sampler. Supported: always_on, always_off,
	// traceidratio, parentbased_always_on, parentbased_always_off,
	// parentbased_traceidratio. Defaults to always_on.
	Sampler string

	// SamplerArg is the sampler argument (e.g. ratio for traceidratio).
	SamplerArg string
}

// DefaultConfig returns a Config with always-on local span logging disabled
// by default, matching a library that should stay silent unless asked.
func DefaultConfig() *Config {
	return &Config{
		Enabled:        false,
		ServiceName:    "kclique",
		ServiceVersion: "unknown",
		Sampler:        "always_on",
	}
}
