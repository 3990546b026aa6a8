// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// TuneIn Provider Credentials - these keys gate the availability of the TuneIn radio provider.
const (
	TuneInEnabled  = "tunein.enabled"
	TuneInUsername = "tunein.username"
	TuneInPassword = "tunein.password"
)

// Response Caching - these keys govern the persistence of remote API envelopes.
const (
	CacheTTLDays = "cache.ttl_days"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal output behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)
