package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/autosync/cmd/cli"
)

const (
	syncCommandNameConstant   = "sync"
	submitCommandNameConstant = "submit"
)

func TestEmbeddedDefaultConfigurationDecodes(testInstance *testing.T) {
	embeddedContent, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	var rawConfiguration map[string]any
	require.NoError(testInstance, yaml.Unmarshal(embeddedContent, &rawConfiguration))

	var applicationConfiguration cli.ApplicationConfiguration
	require.NoError(testInstance, mapstructure.Decode(rawConfiguration, &applicationConfiguration))

	require.Equal(testInstance, "info", applicationConfiguration.Common.LogLevel)
	require.Equal(testInstance, "structured", applicationConfiguration.Common.LogFormat)
	require.Equal(testInstance, "origin", applicationConfiguration.Sync.Remote)
	require.Equal(testInstance, "main", applicationConfiguration.Sync.FallbackBranch)
	require.Equal(testInstance, "Auto sync", applicationConfiguration.Sync.MessagePrefix)
	require.Equal(testInstance, 300, applicationConfiguration.Sync.NetworkTimeoutSeconds)
	require.False(testInstance, applicationConfiguration.Sync.HaltOnSyncFailure)
	require.False(testInstance, applicationConfiguration.Sync.PauseBeforeExit)
}

func TestNewApplicationRegistersSynchronizationCommands(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()
	require.NotNil(testInstance, rootCommand)

	registeredCommandNames := map[string]bool{}
	for _, registeredCommand := range rootCommand.Commands() {
		registeredCommandNames[registeredCommand.Name()] = true
	}

	require.True(testInstance, registeredCommandNames[syncCommandNameConstant])
	require.True(testInstance, registeredCommandNames[submitCommandNameConstant])
}

func TestRootCommandDisplaysHelpWithoutArguments(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	outputBuffer := &bytes.Buffer{}
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs([]string{})
	rootCommand.SetContext(context.Background())

	require.NoError(testInstance, rootCommand.Execute())
	require.Contains(testInstance, outputBuffer.String(), syncCommandNameConstant)
	require.Contains(testInstance, outputBuffer.String(), submitCommandNameConstant)
}
