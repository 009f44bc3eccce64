package notifier

// Channel names used in logs and errors
const (
	ChannelWebhook = "webhook"
	ChannelNtfy    = "ntfy"
	ChannelNop     = "none"
)

// TerminatingPrefix marks the last error notification before a watch gives up.
const TerminatingPrefix = "[TERMINATING!] "
