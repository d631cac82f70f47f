package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForWorkTreeCheckNamesRepository(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"rev-parse", "--is-inside-work-tree"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Analyzing repository at /workspace/repo", message)
}

func TestBuildSuccessMessageForBranchDetectionIncludesBranch(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"rev-parse", "--abbrev-ref", "HEAD"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildSuccessMessage(command, ExecutionResult{StandardOutput: "main\n"})

	require.Equal(t, "Current branch in /workspace/repo is main", message)
}

func TestBuildSuccessMessageForDetachedHeadUsesDetachedLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"rev-parse", "--abbrev-ref", "HEAD"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildSuccessMessage(command, ExecutionResult{StandardOutput: "HEAD\n"})

	require.Equal(t, "/workspace/repo is in a detached HEAD state", message)
}

func TestBuildStartedMessageForPullIncludesRemoteAndBranch(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"pull", "--rebase", "origin", "main"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Pulling main from origin into /workspace/repo", message)
}

func TestBuildStartedMessageForStageAllUsesAllChangesLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"add", "-A"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Staging all changes in /workspace/repo", message)
}

func TestBuildFailureMessageForPushIncludesExitCodeAndStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"push", "--set-upstream", "origin", "main"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 128, StandardError: "fatal: could not read from remote"})

	require.Equal(t, "Failed to push main to origin from /workspace/repo (exit code 128: fatal: could not read from remote)", message)
}

func TestBuildStartedMessageForCommitQuotesMessage(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"commit", "-m", "Auto sync: 2026-08-31 10:15:00"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, `Creating commit in /workspace/repo with message "Auto sync: 2026-08-31 10:15:00"`, message)
}

func TestBuildExecutionFailureMessageFallsBackToGenericLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"gc"},
		},
	}

	message := formatter.BuildExecutionFailureMessage(command, errors.New("binary vanished"))

	require.Equal(t, "git gc failed: binary vanished", message)
}
