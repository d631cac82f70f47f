package syncer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

const (
	loggerMissingMessageConstant      = "logger not configured"
	repositoryMissingMessageConstant  = "repository manager not configured"
	bannersMissingMessageConstant     = "banner renderer not configured"
	outputMissingMessageConstant      = "output writer not configured"
	prompterMissingMessageConstant    = "message prompter not configured"
	toolNotFoundMessageConstant       = "git is not installed or not on the PATH"
	notARepositoryMessageConstant     = "directory is not a git repository"
	emptyCommitMessageMessageConstant = "Commit message cannot be empty"
	remoteSyncHaltedMessageConstant   = "remote synchronization failed"
	pushFailedMessageConstant         = "push was rejected by the remote"

	toolNotFoundErrorTemplateConstant      = "%w: %v"
	notARepositoryErrorTemplateConstant    = "%w: %s"
	remoteSyncHaltedErrorTemplateConstant  = "%w: %v"
	pushFailedErrorTemplateConstant        = "%w: %v"
	branchResolutionErrorTemplateConstant  = "failed to resolve branch: %w"
	stagingErrorTemplateConstant           = "failed to stage working tree: %w"
	changeDetectionErrorTemplateConstant   = "failed to detect staged changes: %w"
	commitErrorTemplateConstant            = "failed to record commit: %w"
	promptErrorTemplateConstant            = "failed to acquire commit message: %w"
	acknowledgementErrorTemplateConstant   = "failed to await acknowledgement: %w"
	workTreeInspectionErrorTemplate        = "failed to inspect directory: %w"
	commitMessageTimestampLayoutConstant   = "2006-01-02 15:04:05"
	autonomousMessageTemplateConstant      = "%s: %s"
	bannerWriteErrorTemplateConstant       = "failed to write outcome report: %w"
	toolRemedyLineConstant                 = "Install git and ensure it is on your PATH."
	repositoryRemedyLineConstant           = "Run this command inside an initialized repository, or run git init first."
	nothingToPushHeadlineConstant          = "NOTHING NEW TO PUSH"
	nothingToPushDetailLineConstant        = "The working tree matches the last commit."
	pushSuccessHeadlineConstant            = "PUSH SUCCESSFUL"
	pushSuccessDetailTemplateConstant      = "Branch %s is up to date on %s."
	dashboardLineTemplateConstant          = "Dashboard: %s"
	pushFailureHeadlineConstant            = "PUSH FAILED"
	pushFailureRemedyLineConstant          = "Check your internet connection or credentials."
	remoteSyncFailureHeadlineConstant      = "REMOTE SYNC FAILED"
	remoteSyncFailureRemedyLineConstant    = "Resolve the rebase conflict or check the remote, then run again."
	repositoryFieldNameConstant            = "repository"
	branchFieldNameConstant                = "branch"
	remoteFieldNameConstant                = "remote"
	outcomeFieldNameConstant               = "outcome"
	acknowledgementFailureLogMessage       = "operator acknowledgement failed"
	fallbackAppliedLogMessageConstant      = "branch detection returned nothing, using fallback"
	remoteSyncWarningLogMessageConstant    = "remote synchronization failed, continuing with local state"
	sessionCompletedLogMessageConstant     = "synchronization session completed"
)

// ErrToolNotFound indicates the git executable could not be located.
var ErrToolNotFound = errors.New(toolNotFoundMessageConstant)

// ErrNotARepository indicates the working directory is outside any git work tree.
var ErrNotARepository = errors.New(notARepositoryMessageConstant)

// ErrEmptyCommitMessage indicates the operator supplied a blank commit message.
var ErrEmptyCommitMessage = errors.New(emptyCommitMessageMessageConstant)

// ErrRemoteSyncHalted indicates a pull failure while the synchronization gate is enabled.
var ErrRemoteSyncHalted = errors.New(remoteSyncHaltedMessageConstant)

// ErrPushFailed indicates the remote rejected the final push.
var ErrPushFailed = errors.New(pushFailedMessageConstant)

// Variant selects between the autonomous and interactive pipelines.
type Variant string

const (
	// VariantAutonomous synthesizes the commit message and reports a dashboard URL.
	VariantAutonomous Variant = "autonomous"
	// VariantInteractive prompts the operator for the commit message.
	VariantInteractive Variant = "interactive"
)

// Repository exposes the git operations the pipeline drives.
type Repository interface {
	EnsureGitAvailable() error
	IsWorkingTree(executionContext context.Context, repositoryPath string) (bool, error)
	CurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	PullRebase(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
	StageAll(executionContext context.Context, repositoryPath string) error
	HasStagedChanges(executionContext context.Context, repositoryPath string) (bool, error)
	Commit(executionContext context.Context, repositoryPath string, commitMessage string) error
	Push(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
}

// BannerRenderer draws the operator-facing outcome banners.
type BannerRenderer interface {
	RenderSuccess(bannerLines ...string) string
	RenderFailure(bannerLines ...string) string
	RenderNotice(bannerLines ...string) string
}

// MessagePrompter gathers interactive operator input.
type MessagePrompter interface {
	PromptCommitMessage() (string, error)
	AwaitAcknowledgement() error
}

// Clock supplies the current time for generated commit messages.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// ServiceDependencies lists the collaborators the service requires.
type ServiceDependencies struct {
	Logger     *zap.Logger
	Repository Repository
	Banners    BannerRenderer
	Prompter   MessagePrompter
	Output     io.Writer
	Clock      Clock
}

// Options describes a single synchronization run.
type Options struct {
	RepositoryPath string
	Variant        Variant
	Configuration  CommandConfiguration
}

// Result reports the terminal state of a completed run.
type Result struct {
	Outcome       Outcome
	BranchName    string
	CommitMessage string
}

// Service orchestrates the synchronization pipeline.
type Service struct {
	dependencies ServiceDependencies
}

// NewService validates dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, errors.New(loggerMissingMessageConstant)
	}
	if dependencies.Repository == nil {
		return nil, errors.New(repositoryMissingMessageConstant)
	}
	if dependencies.Banners == nil {
		return nil, errors.New(bannersMissingMessageConstant)
	}
	if dependencies.Output == nil {
		return nil, errors.New(outputMissingMessageConstant)
	}
	if dependencies.Clock == nil {
		dependencies.Clock = systemClock{}
	}
	return &Service{dependencies: dependencies}, nil
}

// Run executes the pipeline for the provided options and reports the outcome.
func (service *Service) Run(executionContext context.Context, options Options) (Result, error) {
	configuration := options.Configuration.Sanitize()
	session := NewSession(options.RepositoryPath)

	if availabilityError := service.dependencies.Repository.EnsureGitAvailable(); availabilityError != nil {
		service.printBanner(service.dependencies.Banners.RenderFailure(availabilityError.Error(), toolRemedyLineConstant))
		service.pauseAfterFailureReport(configuration)
		return Result{}, fmt.Errorf(toolNotFoundErrorTemplateConstant, ErrToolNotFound, availabilityError)
	}

	insideWorkTree, inspectionError := service.dependencies.Repository.IsWorkingTree(executionContext, session.RepositoryPath)
	if inspectionError != nil {
		return Result{}, fmt.Errorf(workTreeInspectionErrorTemplate, inspectionError)
	}
	if !insideWorkTree {
		service.printBanner(service.dependencies.Banners.RenderFailure(notARepositoryMessageConstant, repositoryRemedyLineConstant))
		service.pauseAfterFailureReport(configuration)
		return Result{}, fmt.Errorf(notARepositoryErrorTemplateConstant, ErrNotARepository, session.RepositoryPath)
	}
	session.State = SessionStateRepositoryVerified

	if resolutionError := service.resolveBranch(executionContext, session, configuration); resolutionError != nil {
		return Result{}, resolutionError
	}

	if options.Variant == VariantAutonomous {
		if syncError := service.synchronizeRemote(executionContext, session, configuration); syncError != nil {
			return Result{}, syncError
		}
	}

	if stagingError := service.dependencies.Repository.StageAll(executionContext, session.RepositoryPath); stagingError != nil {
		return Result{}, fmt.Errorf(stagingErrorTemplateConstant, stagingError)
	}
	session.State = SessionStateChangesStaged

	if options.Variant == VariantAutonomous {
		stagedChangesPresent, detectionError := service.dependencies.Repository.HasStagedChanges(executionContext, session.RepositoryPath)
		if detectionError != nil {
			return Result{}, fmt.Errorf(changeDetectionErrorTemplateConstant, detectionError)
		}
		if !stagedChangesPresent {
			session.Outcome = OutcomeNothingToPush
			service.printBanner(service.dependencies.Banners.RenderNotice(nothingToPushHeadlineConstant, nothingToPushDetailLineConstant))
			service.logCompletion(session, configuration)
			if pauseError := service.pauseIfConfigured(configuration); pauseError != nil {
				return Result{}, pauseError
			}
			return Result{Outcome: OutcomeNothingToPush, BranchName: session.BranchName}, nil
		}
	}

	if messageError := service.acquireCommitMessage(session, options.Variant, configuration); messageError != nil {
		return Result{}, messageError
	}

	if commitError := service.dependencies.Repository.Commit(executionContext, session.RepositoryPath, session.CommitMessage); commitError != nil {
		return Result{}, fmt.Errorf(commitErrorTemplateConstant, commitError)
	}
	session.State = SessionStateCommitted

	if pushError := service.pushWithTimeout(executionContext, session, configuration); pushError != nil {
		session.Outcome = OutcomePushFailed
		service.printBanner(service.dependencies.Banners.RenderFailure(pushFailureHeadlineConstant, pushFailureRemedyLineConstant))
		service.logCompletion(session, configuration)
		service.pauseAfterFailureReport(configuration)
		return Result{Outcome: OutcomePushFailed, BranchName: session.BranchName, CommitMessage: session.CommitMessage},
			fmt.Errorf(pushFailedErrorTemplateConstant, ErrPushFailed, pushError)
	}
	session.State = SessionStatePushed
	session.Outcome = OutcomePushed

	service.printBanner(service.dependencies.Banners.RenderSuccess(service.successBannerLines(session, options.Variant, configuration)...))
	service.logCompletion(session, configuration)
	if pauseError := service.pauseIfConfigured(configuration); pauseError != nil {
		return Result{}, pauseError
	}

	return Result{Outcome: OutcomePushed, BranchName: session.BranchName, CommitMessage: session.CommitMessage}, nil
}

func (service *Service) resolveBranch(executionContext context.Context, session *Session, configuration CommandConfiguration) error {
	detectedBranch, detectionError := service.dependencies.Repository.CurrentBranch(executionContext, session.RepositoryPath)
	if detectionError != nil {
		return fmt.Errorf(branchResolutionErrorTemplateConstant, detectionError)
	}
	if len(detectedBranch) == 0 {
		session.BranchName = configuration.FallbackBranch
		session.BranchFellBack = true
		service.dependencies.Logger.Info(fallbackAppliedLogMessageConstant,
			zap.String(repositoryFieldNameConstant, session.RepositoryPath),
			zap.String(branchFieldNameConstant, session.BranchName))
	} else {
		session.BranchName = detectedBranch
	}
	session.State = SessionStateBranchResolved
	return nil
}

func (service *Service) synchronizeRemote(executionContext context.Context, session *Session, configuration CommandConfiguration) error {
	timeoutContext, cancelTimeout := service.networkContext(executionContext, configuration)
	defer cancelTimeout()

	pullError := service.dependencies.Repository.PullRebase(timeoutContext, session.RepositoryPath, configuration.Remote, session.BranchName)
	if pullError == nil {
		session.State = SessionStateRemoteSynchronized
		return nil
	}

	session.RemoteSyncFailure = pullError
	if configuration.HaltOnSyncFailure {
		service.printBanner(service.dependencies.Banners.RenderFailure(remoteSyncFailureHeadlineConstant, remoteSyncFailureRemedyLineConstant))
		service.pauseAfterFailureReport(configuration)
		return fmt.Errorf(remoteSyncHaltedErrorTemplateConstant, ErrRemoteSyncHalted, pullError)
	}

	service.dependencies.Logger.Warn(remoteSyncWarningLogMessageConstant,
		zap.String(repositoryFieldNameConstant, session.RepositoryPath),
		zap.String(remoteFieldNameConstant, configuration.Remote),
		zap.String(branchFieldNameConstant, session.BranchName),
		zap.Error(pullError))
	session.State = SessionStateRemoteSynchronized
	return nil
}

func (service *Service) acquireCommitMessage(session *Session, variant Variant, configuration CommandConfiguration) error {
	if variant == VariantAutonomous {
		timestamp := service.dependencies.Clock.Now().Format(commitMessageTimestampLayoutConstant)
		session.CommitMessage = fmt.Sprintf(autonomousMessageTemplateConstant, configuration.MessagePrefix, timestamp)
		return nil
	}

	if service.dependencies.Prompter == nil {
		return errors.New(prompterMissingMessageConstant)
	}
	commitMessage, promptError := service.dependencies.Prompter.PromptCommitMessage()
	if promptError != nil {
		return fmt.Errorf(promptErrorTemplateConstant, promptError)
	}
	if len(commitMessage) == 0 {
		service.printBanner(service.dependencies.Banners.RenderFailure(emptyCommitMessageMessageConstant))
		service.pauseAfterFailureReport(configuration)
		return ErrEmptyCommitMessage
	}
	session.CommitMessage = commitMessage
	return nil
}

func (service *Service) pushWithTimeout(executionContext context.Context, session *Session, configuration CommandConfiguration) error {
	timeoutContext, cancelTimeout := service.networkContext(executionContext, configuration)
	defer cancelTimeout()
	return service.dependencies.Repository.Push(timeoutContext, session.RepositoryPath, configuration.Remote, session.BranchName)
}

func (service *Service) networkContext(executionContext context.Context, configuration CommandConfiguration) (context.Context, context.CancelFunc) {
	if configuration.NetworkTimeoutSeconds <= 0 {
		return context.WithCancel(executionContext)
	}
	return context.WithTimeout(executionContext, time.Duration(configuration.NetworkTimeoutSeconds)*time.Second)
}

func (service *Service) successBannerLines(session *Session, variant Variant, configuration CommandConfiguration) []string {
	bannerLines := []string{
		pushSuccessHeadlineConstant,
		fmt.Sprintf(pushSuccessDetailTemplateConstant, session.BranchName, configuration.Remote),
	}
	if variant == VariantAutonomous && len(configuration.DashboardURL) > 0 {
		bannerLines = append(bannerLines, fmt.Sprintf(dashboardLineTemplateConstant, configuration.DashboardURL))
	}
	return bannerLines
}

// pauseAfterFailureReport honors the pause on failure paths without masking the primary error.
func (service *Service) pauseAfterFailureReport(configuration CommandConfiguration) {
	if pauseError := service.pauseIfConfigured(configuration); pauseError != nil {
		service.dependencies.Logger.Warn(acknowledgementFailureLogMessage, zap.Error(pauseError))
	}
}

func (service *Service) pauseIfConfigured(configuration CommandConfiguration) error {
	if !configuration.PauseBeforeExit || service.dependencies.Prompter == nil {
		return nil
	}
	if acknowledgementError := service.dependencies.Prompter.AwaitAcknowledgement(); acknowledgementError != nil {
		return fmt.Errorf(acknowledgementErrorTemplateConstant, acknowledgementError)
	}
	return nil
}

func (service *Service) printBanner(renderedBanner string) {
	if _, writeError := fmt.Fprintln(service.dependencies.Output, renderedBanner); writeError != nil {
		service.dependencies.Logger.Error(fmt.Errorf(bannerWriteErrorTemplateConstant, writeError).Error())
	}
}

func (service *Service) logCompletion(session *Session, configuration CommandConfiguration) {
	service.dependencies.Logger.Info(sessionCompletedLogMessageConstant,
		zap.String(repositoryFieldNameConstant, session.RepositoryPath),
		zap.String(branchFieldNameConstant, session.BranchName),
		zap.String(remoteFieldNameConstant, configuration.Remote),
		zap.String(outcomeFieldNameConstant, string(session.Outcome)))
}
