package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/autosync/internal/utils/path"
)

const (
	testHomeDirectoryConstant = "/home/operator"
)

func TestExpandResolvesTildePrefixes(testInstance *testing.T) {
	testCases := []struct {
		name          string
		candidatePath string
		expectedPath  string
	}{
		{name: "bare_tilde", candidatePath: "~", expectedPath: testHomeDirectoryConstant},
		{name: "tilde_with_segment", candidatePath: "~/projects/site", expectedPath: filepath.Join(testHomeDirectoryConstant, "projects", "site")},
		{name: "absolute_path_untouched", candidatePath: "/var/repositories", expectedPath: "/var/repositories"},
		{name: "relative_path_untouched", candidatePath: "projects/site", expectedPath: "projects/site"},
		{name: "empty_path_untouched", candidatePath: "", expectedPath: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
				return testHomeDirectoryConstant, nil
			})

			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.candidatePath))
		})
	}
}

func TestExpandLeavesPathWhenHomeLookupFails(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("home unavailable")
	})

	require.Equal(testInstance, "~/projects", expander.Expand("~/projects"))
}
