package cmd

import (
	"strings"
	"testing"
)

func TestMigrateCommandHelp(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{
			name:           "migrate command with help",
			args:           []string{"migrate", "--help"},
			expectedOutput: "Manage the database schema",
		},
		{
			name:           "migrate up subcommand",
			args:           []string{"migrate", "up", "--help"},
			expectedOutput: "Apply all pending database migrations",
		},
		{
			name:           "migrate status subcommand",
			args:           []string{"migrate", "status", "--help"},
			expectedOutput: "Display the current status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(output, tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, output)
			}
		})
	}
}

func TestMigrateStatusAndUp(t *testing.T) {
	isolate(t)

	output, err := executeCommand(t, "migrate", "status")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	if !strings.Contains(output, "projects") || !strings.Contains(output, "missing") {
		t.Errorf("Expected missing tables before migrating, got %q", output)
	}

	output, err = executeCommand(t, "migrate", "up")
	if err != nil {
		t.Fatalf("up error = %v", err)
	}
	if !strings.Contains(output, "Migrations applied") || strings.Contains(output, "missing") {
		t.Errorf("Expected every table present after migrating, got %q", output)
	}

	output, err = executeCommand(t, "migrate", "status")
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	for _, table := range []string{"coders", "project_files", "projects", "results"} {
		if !strings.Contains(output, table) {
			t.Errorf("Expected %s in status output %q", table, output)
		}
	}
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	isolate(t)
	t.Setenv("VIDCODE_DATABASE_DRIVER", "oracle")

	if _, err := executeCommand(t, "migrate", "status"); err == nil {
		t.Error("Expected an error for an unsupported driver")
	}
}
