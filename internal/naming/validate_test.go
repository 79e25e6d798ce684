package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsValidNames(t *testing.T) {
	names := []string{
		"my-haluka-app",
		"app",
		"some.app",
		"app_2",
		"@haluker/app",
		"a",
		strings.Repeat("a", 214),
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			result := Validate(name)
			require.Truef(t, result.Valid, "expected %q to be valid, problems: %v", name, result.Problems)
			require.Nil(t, result.Problems)
			require.NoError(t, result.Err(name))
		})
	}
}

func TestValidate_RejectsInvalidNames(t *testing.T) {
	tests := []struct {
		name    string
		problem string
	}{
		{"", "name length must be greater than zero"},
		{".hidden", "name cannot start with a period"},
		{"_private", "name cannot start with an underscore"},
		{" padded", "name cannot contain leading or trailing spaces"},
		{"node_modules", "node_modules is a blacklisted name"},
		{"favicon.ico", "favicon.ico is a blacklisted name"},
		{"http", "http is a core module name"},
		{"fs", "fs is a core module name"},
		{strings.Repeat("a", 215), "name can no longer contain more than 214 characters"},
		{"MyApp", "name can no longer contain capital letters"},
		{"wow!", `name can no longer contain special characters ("~'!()*")`},
		{"my app", "name can only contain URL-friendly characters"},
		{"café", "name can only contain URL-friendly characters"},
		{"@scope/with space", "name can only contain URL-friendly characters"},
		{"a/b", "name can only contain URL-friendly characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.name)
			require.False(t, result.Valid)
			require.NotEmpty(t, result.Problems)
			require.Contains(t, result.Problems, tt.problem)
		})
	}
}

func TestValidate_ErrorsPrecedeWarnings(t *testing.T) {
	result := Validate("My App")
	require.Equal(t, []string{
		"name can only contain URL-friendly characters",
		"name can no longer contain capital letters",
	}, result.Problems)
}

func TestValidationResult_Err(t *testing.T) {
	result := Validate("my app")

	err := result.Err("my app")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "my app", verr.Name)
	require.Equal(t, result.Problems, verr.Problems)
	require.Contains(t, err.Error(), "URL-friendly")
}
