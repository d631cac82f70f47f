package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/autosync/internal/execshell"
)

const (
	gitExecutorMissingMessageConstant        = "git executor not configured"
	executableFinderMissingMessageConstant   = "executable finder not configured"
	gitExecutableNameConstant                = "git"
	gitExecutableLookupErrorTemplateConstant = "git executable not found on the search path: %w"
	workTreeCheckErrorTemplateConstant       = "failed to inspect working tree: %w"
	branchDetectionErrorTemplateConstant     = "failed to detect current branch: %w"
	pullErrorTemplateConstant                = "failed to pull %s from %s: %w"
	stageErrorTemplateConstant               = "failed to stage changes: %w"
	stagedComparisonErrorTemplateConstant    = "failed to compare staged changes: %w"
	commitErrorTemplateConstant              = "failed to create commit: %w"
	pushErrorTemplateConstant                = "failed to push %s to %s: %w"
	workTreeAffirmativeOutputConstant        = "true"
	detachedHeadOutputConstant               = "HEAD"
	gitRevParseSubcommandConstant            = "rev-parse"
	gitWorkTreeFlagConstant                  = "--is-inside-work-tree"
	gitAbbrevRefFlagConstant                 = "--abbrev-ref"
	gitHeadReferenceConstant                 = "HEAD"
	gitPullSubcommandConstant                = "pull"
	gitPullRebaseFlagConstant                = "--rebase"
	gitAddSubcommandConstant                 = "add"
	gitAddAllFlagConstant                    = "-A"
	gitDiffSubcommandConstant                = "diff"
	gitDiffCachedFlagConstant                = "--cached"
	gitDiffQuietFlagConstant                 = "--quiet"
	gitCommitSubcommandConstant              = "commit"
	gitMessageFlagConstant                   = "-m"
	gitPushSubcommandConstant                = "push"
	gitSetUpstreamFlagConstant               = "--set-upstream"
	gitTerminalPromptEnvironmentNameConstant = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableValue = "0"
	stagedChangesPresentExitCodeConstant     = 1
)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// ErrExecutableFinderNotConfigured indicates the executable finder dependency was missing.
var ErrExecutableFinderNotConfigured = errors.New(executableFinderMissingMessageConstant)

// GitExecutor exposes the subset of shell execution used by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ExecutableFinder resolves executables on the process search path.
type ExecutableFinder interface {
	FindExecutable(executableName string) (string, error)
}

// RepositoryManager performs repository-level git operations through the shell executor.
type RepositoryManager struct {
	executor GitExecutor
	finder   ExecutableFinder
}

// NewRepositoryManager constructs a RepositoryManager from the provided collaborators.
func NewRepositoryManager(executor GitExecutor, finder ExecutableFinder) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if finder == nil {
		return nil, ErrExecutableFinderNotConfigured
	}
	return &RepositoryManager{executor: executor, finder: finder}, nil
}

// EnsureGitAvailable verifies the git executable is reachable on the search path.
func (manager *RepositoryManager) EnsureGitAvailable() error {
	if _, lookupError := manager.finder.FindExecutable(gitExecutableNameConstant); lookupError != nil {
		return fmt.Errorf(gitExecutableLookupErrorTemplateConstant, lookupError)
	}
	return nil
}

// IsWorkingTree reports whether the directory belongs to an initialized repository.
func (manager *RepositoryManager) IsWorkingTree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitWorkTreeFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		commandFailure := execshell.CommandFailedError{}
		if errors.As(executionError, &commandFailure) {
			return false, nil
		}
		return false, fmt.Errorf(workTreeCheckErrorTemplateConstant, executionError)
	}

	return strings.TrimSpace(executionResult.StandardOutput) == workTreeAffirmativeOutputConstant, nil
}

// CurrentBranch returns the checked-out branch name, or an empty string for detached or undetectable states.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return "", fmt.Errorf(branchDetectionErrorTemplateConstant, executionError)
	}

	branchName := firstOutputLine(executionResult.StandardOutput)
	if strings.EqualFold(branchName, detachedHeadOutputConstant) {
		return "", nil
	}
	return branchName, nil
}

// PullRebase synchronizes the branch with the remote using rebase semantics.
func (manager *RepositoryManager) PullRebase(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitPullSubcommandConstant, gitPullRebaseFlagConstant, remoteName, branchName},
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: nonInteractiveGitEnvironment(),
	})
	if executionError != nil {
		return fmt.Errorf(pullErrorTemplateConstant, branchName, remoteName, executionError)
	}
	return nil
}

// StageAll stages every addition, modification, and deletion in the working tree.
func (manager *RepositoryManager) StageAll(executionContext context.Context, repositoryPath string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitAddSubcommandConstant, gitAddAllFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return fmt.Errorf(stageErrorTemplateConstant, executionError)
	}
	return nil
}

// HasStagedChanges reports whether the staged tree differs from the last commit.
func (manager *RepositoryManager) HasStagedChanges(executionContext context.Context, repositoryPath string) (bool, error) {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitDiffSubcommandConstant, gitDiffCachedFlagConstant, gitDiffQuietFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if executionError == nil {
		return false, nil
	}

	commandFailure := execshell.CommandFailedError{}
	if errors.As(executionError, &commandFailure) && commandFailure.Result.ExitCode == stagedChangesPresentExitCodeConstant {
		return true, nil
	}

	return false, fmt.Errorf(stagedComparisonErrorTemplateConstant, executionError)
}

// Commit records the staged changes with the provided message passed as a discrete argument.
func (manager *RepositoryManager) Commit(executionContext context.Context, repositoryPath string, commitMessage string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitMessageFlagConstant, commitMessage},
		WorkingDirectory: repositoryPath,
	})
	if executionError != nil {
		return fmt.Errorf(commitErrorTemplateConstant, executionError)
	}
	return nil
}

// Push publishes the branch to the remote and records the upstream tracking reference.
func (manager *RepositoryManager) Push(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitPushSubcommandConstant, gitSetUpstreamFlagConstant, remoteName, branchName},
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: nonInteractiveGitEnvironment(),
	})
	if executionError != nil {
		return fmt.Errorf(pushErrorTemplateConstant, branchName, remoteName, executionError)
	}
	return nil
}

func nonInteractiveGitEnvironment() map[string]string {
	return map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableValue}
}

func firstOutputLine(commandOutput string) string {
	for _, outputLine := range strings.Split(commandOutput, "\n") {
		trimmedLine := strings.TrimSpace(outputLine)
		if len(trimmedLine) > 0 {
			return trimmedLine
		}
	}
	return ""
}
