package cmd

import (
	"strings"
	"testing"

	"github.com/killallgit/vidcode-api/pkg/version"
)

func TestVersionCommand(t *testing.T) {
	original := version.Version
	version.Version = "1.4.0"
	defer func() { version.Version = original }()

	tests := []struct {
		name        string
		args        []string
		checkOutput func(string) bool
	}{
		{
			name: "version command shows version info",
			args: []string{"version"},
			checkOutput: func(output string) bool {
				return strings.Contains(output, "Video Coding API") &&
					strings.Contains(output, "Version:      v1.4.0") &&
					strings.Contains(output, "OS/Arch:")
			},
		},
		{
			name: "version command with --short flag",
			args: []string{"version", "--short"},
			checkOutput: func(output string) bool {
				return output == "v1.4.0\n"
			},
		},
		{
			name: "version command with -s flag",
			args: []string{"version", "-s"},
			checkOutput: func(output string) bool {
				return output == "v1.4.0\n"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !tt.checkOutput(output) {
				t.Errorf("Unexpected output %q", output)
			}
		})
	}
}
