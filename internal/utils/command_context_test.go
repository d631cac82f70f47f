package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/autosync/internal/utils"
)

const (
	testConfigurationFilePathConstant = "/etc/autosync/config.yaml"
)

func TestCommandContextAccessorRoundTrip(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	updatedContext := accessor.WithConfigurationFilePath(context.Background(), testConfigurationFilePathConstant)

	configurationFilePath, available := accessor.ConfigurationFilePath(updatedContext)
	require.True(testInstance, available)
	require.Equal(testInstance, testConfigurationFilePathConstant, configurationFilePath)
}

func TestCommandContextAccessorReportsMissingValue(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	configurationFilePath, available := accessor.ConfigurationFilePath(context.Background())
	require.False(testInstance, available)
	require.Empty(testInstance, configurationFilePath)
}
