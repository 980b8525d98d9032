package exitcode

// Exit codes for the solar report CLI.
// The CI scheduler can use these to decide whether a rerun makes sense.
const (
	// Success - report delivered to every webhook
	Success = 0

	// ConfigError - missing or invalid configuration
	// Don't rerun: fix the env vars first
	ConfigError = 1

	// NetworkError - transient network failure (timeout, DNS, etc.)
	// Safe to rerun
	NetworkError = 2

	// APIError - the forecast provider returned an error status
	// Check logs, may need manual intervention
	APIError = 3

	// StorageError - report was delivered but archiving the artifact failed
	// Rerun would notify again; inspect the archive instead
	StorageError = 4

	// DataError - provider response was missing or unparseable fields
	// Don't rerun: investigate the response
	DataError = 5

	// NotifyError - a webhook rejected the notification
	// Check the webhook configuration
	NotifyError = 6
)
