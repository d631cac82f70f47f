package execshell

import "os/exec"

// ExecutableLookup resolves an executable name against the process search path.
type ExecutableLookup func(executableName string) (string, error)

// OSExecutableFinder locates executables using the operating system search path.
type OSExecutableFinder struct {
	lookup ExecutableLookup
}

// NewOSExecutableFinder constructs a finder backed by exec.LookPath.
func NewOSExecutableFinder() *OSExecutableFinder {
	return NewOSExecutableFinderWithLookup(exec.LookPath)
}

// NewOSExecutableFinderWithLookup constructs a finder with a custom lookup function.
func NewOSExecutableFinderWithLookup(lookup ExecutableLookup) *OSExecutableFinder {
	if lookup == nil {
		lookup = exec.LookPath
	}
	return &OSExecutableFinder{lookup: lookup}
}

// FindExecutable returns the resolved path of the named executable.
func (finder *OSExecutableFinder) FindExecutable(executableName string) (string, error) {
	return finder.lookup(executableName)
}
