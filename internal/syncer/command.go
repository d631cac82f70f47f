package syncer

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/autosync/internal/execshell"
	"github.com/temirov/autosync/internal/gitrepo"
	"github.com/temirov/autosync/internal/ui"
	"github.com/temirov/autosync/internal/utils"
	pathutils "github.com/temirov/autosync/internal/utils/path"
)

const (
	syncCommandUseConstant          = "sync"
	syncCommandShortDescription     = "Commit local changes and push them with an auto-generated message"
	syncCommandLongDescription      = "Sync pulls the tracked branch with rebase, stages every change, commits with a timestamped message, and pushes to the remote."
	submitCommandUseConstant        = "submit"
	submitCommandShortDescription   = "Commit local changes and push them with an operator-provided message"
	submitCommandLongDescription    = "Submit stages every change, prompts for a commit message, commits, and pushes to the remote."
	directoryFlagNameConstant       = "directory"
	directoryFlagDescriptionConst   = "Repository directory to synchronize (defaults to the current working directory)"
	workingDirectoryErrorTemplate   = "failed to determine working directory: %w"
	configurationFileLogMessage     = "using configuration file"
	configurationFileLogFieldName   = "config_file"
	executorConstructionErrorFormat = "failed to construct git executor: %w"
	managerConstructionErrorFormat  = "failed to construct repository manager: %w"
	serviceConstructionErrorFormat  = "failed to construct synchronization service: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the effective command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandEventsObserverProvider supplies the observer mirroring command lifecycle events to the console.
type CommandEventsObserverProvider func() execshell.CommandEventObserver

// CommandBuilder assembles a synchronization cobra command with configurable dependencies.
type CommandBuilder struct {
	Variant                       Variant
	LoggerProvider                LoggerProvider
	ConfigurationProvider         ConfigurationProvider
	CommandEventsObserverProvider CommandEventsObserverProvider
	Repository                    Repository
	Banners                       BannerRenderer
	Prompter                      MessagePrompter
	Clock                         Clock
	HomeExpander                  *pathutils.HomeExpander
}

// Build constructs the cobra command for the configured variant.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	commandUse := syncCommandUseConstant
	commandShort := syncCommandShortDescription
	commandLong := syncCommandLongDescription
	if builder.Variant == VariantInteractive {
		commandUse = submitCommandUseConstant
		commandShort = submitCommandShortDescription
		commandLong = submitCommandLongDescription
	}

	command := &cobra.Command{
		Use:   commandUse,
		Short: commandShort,
		Long:  commandLong,
		RunE:  builder.run,
	}

	command.Flags().String(directoryFlagNameConstant, "", directoryFlagDescriptionConst)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	repositoryPath, pathError := builder.resolveRepositoryPath(command)
	if pathError != nil {
		return pathError
	}

	logger := builder.resolveLogger()
	builder.logConfigurationFile(command, logger)
	repository, repositoryError := builder.resolveRepository(logger)
	if repositoryError != nil {
		return repositoryError
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	service, serviceError := NewService(ServiceDependencies{
		Logger:     logger,
		Repository: repository,
		Banners:    builder.resolveBanners(),
		Prompter:   builder.resolvePrompter(command, outputWriter),
		Output:     outputWriter,
		Clock:      builder.Clock,
	})
	if serviceError != nil {
		return fmt.Errorf(serviceConstructionErrorFormat, serviceError)
	}

	_, runError := service.Run(command.Context(), Options{
		RepositoryPath: repositoryPath,
		Variant:        builder.Variant,
		Configuration:  builder.resolveConfiguration(),
	})
	return runError
}

func (builder *CommandBuilder) logConfigurationFile(command *cobra.Command, logger *zap.Logger) {
	contextAccessor := utils.NewCommandContextAccessor()
	configurationFilePath, configurationFileAvailable := contextAccessor.ConfigurationFilePath(command.Context())
	if !configurationFileAvailable || len(configurationFilePath) == 0 {
		return
	}
	logger.Debug(configurationFileLogMessage, zap.String(configurationFileLogFieldName, configurationFilePath))
}

func (builder *CommandBuilder) resolveRepositoryPath(command *cobra.Command) (string, error) {
	directoryFlagValue, _ := command.Flags().GetString(directoryFlagNameConstant)
	if len(directoryFlagValue) > 0 {
		return builder.resolveHomeExpander().Expand(directoryFlagValue), nil
	}
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return "", fmt.Errorf(workingDirectoryErrorTemplate, workingDirectoryError)
	}
	return workingDirectory, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveRepository(logger *zap.Logger) (Repository, error) {
	if builder.Repository != nil {
		return builder.Repository, nil
	}

	shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
	if executorError != nil {
		return nil, fmt.Errorf(executorConstructionErrorFormat, executorError)
	}
	if builder.CommandEventsObserverProvider != nil {
		if commandEventsObserver := builder.CommandEventsObserverProvider(); commandEventsObserver != nil {
			shellExecutor.SetCommandEventObserver(commandEventsObserver)
		}
	}

	repositoryManager, managerError := gitrepo.NewRepositoryManager(shellExecutor, execshell.NewOSExecutableFinder())
	if managerError != nil {
		return nil, fmt.Errorf(managerConstructionErrorFormat, managerError)
	}
	return repositoryManager, nil
}

func (builder *CommandBuilder) resolveBanners() BannerRenderer {
	if builder.Banners != nil {
		return builder.Banners
	}
	return ui.NewBannerRenderer()
}

func (builder *CommandBuilder) resolvePrompter(command *cobra.Command, outputWriter io.Writer) MessagePrompter {
	if builder.Prompter != nil {
		return builder.Prompter
	}
	return NewIOMessagePrompter(command.InOrStdin(), outputWriter)
}

func (builder *CommandBuilder) resolveHomeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander != nil {
		return builder.HomeExpander
	}
	return pathutils.NewHomeExpander()
}
