package syncer

// SessionState identifies the pipeline stage a session last completed.
type SessionState string

const (
	// SessionStateInitialized marks a session that has not executed any stage yet.
	SessionStateInitialized SessionState = "initialized"
	// SessionStateRepositoryVerified marks a session whose directory passed the work-tree check.
	SessionStateRepositoryVerified SessionState = "repository_verified"
	// SessionStateBranchResolved marks a session with a usable branch name.
	SessionStateBranchResolved SessionState = "branch_resolved"
	// SessionStateRemoteSynchronized marks a session after the pull attempt completed.
	SessionStateRemoteSynchronized SessionState = "remote_synchronized"
	// SessionStateChangesStaged marks a session after staging ran.
	SessionStateChangesStaged SessionState = "changes_staged"
	// SessionStateCommitted marks a session that recorded a commit.
	SessionStateCommitted SessionState = "committed"
	// SessionStatePushed marks a session whose push succeeded.
	SessionStatePushed SessionState = "pushed"
)

// Outcome classifies how a completed session ended.
type Outcome string

const (
	// OutcomePushed indicates new work reached the remote.
	OutcomePushed Outcome = "pushed"
	// OutcomeNothingToPush indicates the working tree held no changes to publish.
	OutcomeNothingToPush Outcome = "nothing_to_push"
	// OutcomePushFailed indicates the final push was rejected or unreachable.
	OutcomePushFailed Outcome = "push_failed"
)

// Session tracks the mutable state of a single synchronization run.
type Session struct {
	RepositoryPath    string
	BranchName        string
	BranchFellBack    bool
	CommitMessage     string
	RemoteSyncFailure error
	State             SessionState
	Outcome           Outcome
}

// NewSession constructs a session rooted at the provided repository directory.
func NewSession(repositoryPath string) *Session {
	return &Session{RepositoryPath: repositoryPath, State: SessionStateInitialized}
}
