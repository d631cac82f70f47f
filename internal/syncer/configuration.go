package syncer

import "strings"

const (
	defaultRemoteNameConstant            = "origin"
	defaultFallbackBranchConstant        = "main"
	defaultMessagePrefixConstant         = "Auto sync"
	defaultNetworkTimeoutSecondsConstant = 300
	remoteConfigurationKeyConstant       = "sync.remote"
	fallbackBranchConfigurationKey       = "sync.fallback_branch"
	messagePrefixConfigurationKey        = "sync.message_prefix"
	dashboardURLConfigurationKeyConstant = "sync.dashboard_url"
	haltOnSyncFailureConfigurationKey    = "sync.halt_on_sync_failure"
	networkTimeoutConfigurationKey       = "sync.network_timeout_seconds"
	pauseBeforeExitConfigurationKey      = "sync.pause_before_exit"
)

// CommandConfiguration captures the tunable behavior of the synchronization pipeline.
type CommandConfiguration struct {
	Remote                string `mapstructure:"remote"`
	FallbackBranch        string `mapstructure:"fallback_branch"`
	MessagePrefix         string `mapstructure:"message_prefix"`
	DashboardURL          string `mapstructure:"dashboard_url"`
	HaltOnSyncFailure     bool   `mapstructure:"halt_on_sync_failure"`
	NetworkTimeoutSeconds int    `mapstructure:"network_timeout_seconds"`
	PauseBeforeExit       bool   `mapstructure:"pause_before_exit"`
}

// DefaultCommandConfiguration returns the configuration applied when no overrides exist.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Remote:                defaultRemoteNameConstant,
		FallbackBranch:        defaultFallbackBranchConstant,
		MessagePrefix:         defaultMessagePrefixConstant,
		NetworkTimeoutSeconds: defaultNetworkTimeoutSecondsConstant,
	}
}

// Sanitize trims textual values and substitutes defaults for unusable entries.
// A zero timeout is preserved because it disables the network bound.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Remote = strings.TrimSpace(sanitized.Remote)
	if len(sanitized.Remote) == 0 {
		sanitized.Remote = defaultRemoteNameConstant
	}
	sanitized.FallbackBranch = strings.TrimSpace(sanitized.FallbackBranch)
	if len(sanitized.FallbackBranch) == 0 {
		sanitized.FallbackBranch = defaultFallbackBranchConstant
	}
	sanitized.MessagePrefix = strings.TrimSpace(sanitized.MessagePrefix)
	if len(sanitized.MessagePrefix) == 0 {
		sanitized.MessagePrefix = defaultMessagePrefixConstant
	}
	sanitized.DashboardURL = strings.TrimSpace(sanitized.DashboardURL)
	if sanitized.NetworkTimeoutSeconds < 0 {
		sanitized.NetworkTimeoutSeconds = defaultNetworkTimeoutSecondsConstant
	}
	return sanitized
}

// DefaultConfigurationValues exposes the defaults keyed for the configuration loader.
func DefaultConfigurationValues() map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		remoteConfigurationKeyConstant:       defaults.Remote,
		fallbackBranchConfigurationKey:       defaults.FallbackBranch,
		messagePrefixConfigurationKey:        defaults.MessagePrefix,
		dashboardURLConfigurationKeyConstant: defaults.DashboardURL,
		haltOnSyncFailureConfigurationKey:    defaults.HaltOnSyncFailure,
		networkTimeoutConfigurationKey:       defaults.NetworkTimeoutSeconds,
		pauseBeforeExitConfigurationKey:      defaults.PauseBeforeExit,
	}
}
