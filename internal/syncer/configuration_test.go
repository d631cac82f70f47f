package syncer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/autosync/internal/syncer"
)

func TestSanitize(testInstance *testing.T) {
	testCases := []struct {
		name     string
		input    syncer.CommandConfiguration
		expected syncer.CommandConfiguration
	}{
		{
			name:  "empty_textual_values_receive_defaults",
			input: syncer.CommandConfiguration{NetworkTimeoutSeconds: 120},
			expected: syncer.CommandConfiguration{
				Remote:                "origin",
				FallbackBranch:        "main",
				MessagePrefix:         "Auto sync",
				NetworkTimeoutSeconds: 120,
			},
		},
		{
			name:  "zero_timeout_preserved_to_disable_bound",
			input: syncer.CommandConfiguration{NetworkTimeoutSeconds: 0},
			expected: syncer.CommandConfiguration{
				Remote:                "origin",
				FallbackBranch:        "main",
				MessagePrefix:         "Auto sync",
				NetworkTimeoutSeconds: 0,
			},
		},
		{
			name: "whitespace_values_replaced_and_trimmed",
			input: syncer.CommandConfiguration{
				Remote:                "  upstream  ",
				FallbackBranch:        "   ",
				MessagePrefix:         "\tDeploy\t",
				DashboardURL:          " https://dashboard.example.com ",
				NetworkTimeoutSeconds: -5,
			},
			expected: syncer.CommandConfiguration{
				Remote:                "upstream",
				FallbackBranch:        "main",
				MessagePrefix:         "Deploy",
				DashboardURL:          "https://dashboard.example.com",
				NetworkTimeoutSeconds: 300,
			},
		},
		{
			name: "valid_configuration_unchanged",
			input: syncer.CommandConfiguration{
				Remote:                "origin",
				FallbackBranch:        "trunk",
				MessagePrefix:         "Auto sync",
				HaltOnSyncFailure:     true,
				NetworkTimeoutSeconds: 60,
				PauseBeforeExit:       true,
			},
			expected: syncer.CommandConfiguration{
				Remote:                "origin",
				FallbackBranch:        "trunk",
				MessagePrefix:         "Auto sync",
				HaltOnSyncFailure:     true,
				NetworkTimeoutSeconds: 60,
				PauseBeforeExit:       true,
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expected, testCase.input.Sanitize())
		})
	}
}

func TestDefaultConfigurationValues(testInstance *testing.T) {
	defaults := syncer.DefaultConfigurationValues()

	require.Equal(testInstance, "origin", defaults["sync.remote"])
	require.Equal(testInstance, "main", defaults["sync.fallback_branch"])
	require.Equal(testInstance, "Auto sync", defaults["sync.message_prefix"])
	require.Equal(testInstance, 300, defaults["sync.network_timeout_seconds"])
	require.Equal(testInstance, false, defaults["sync.halt_on_sync_failure"])
	require.Equal(testInstance, false, defaults["sync.pause_before_exit"])
}
