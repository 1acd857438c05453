package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/ghzero/internal/utils/path"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	providerCalls := 0
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		providerCalls++
		return "/home/octocat", nil
	})

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde_only", input: "~", expected: "/home/octocat"},
		{name: "tilde_path", input: "~/projects/hello", expected: filepath.Join("/home/octocat", "projects/hello")},
		{name: "surrounding_whitespace", input: "  ~/config.yaml ", expected: filepath.Join("/home/octocat", "config.yaml")},
		{name: "other_user_untouched", input: "~hubot/config.yaml", expected: "~hubot/config.yaml"},
		{name: "relative_untouched", input: "hello-world", expected: "hello-world"},
		{name: "empty", input: "", expected: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, expander.Expand(testCase.input))
		})
	}
	require.Equal(testInstance, 1, providerCalls)
}

func TestHomeExpanderWithoutHomeDirectory(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("no home")
	})
	require.Equal(testInstance, "~/config.yaml", expander.Expand("~/config.yaml"))

	var nilExpander *pathutils.HomeExpander
	require.Equal(testInstance, "~/config.yaml", nilExpander.Expand(" ~/config.yaml"))
}
