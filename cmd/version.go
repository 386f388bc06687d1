package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/killallgit/vidcode-api/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Display detailed version information about the Video Coding API.

This includes the version number, git commit hash, build time,
and runtime information.`,
		Run: runVersion,
	}
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	return versionCmd
}

func runVersion(cmd *cobra.Command, args []string) {
	short, _ := cmd.Flags().GetBool("short")

	out := cmd.OutOrStdout()
	if short {
		fmt.Fprintf(out, "v%s\n", version.Version)
		return
	}
	printVersion(out)
}

func printVersion(out io.Writer) {
	fmt.Fprintln(out, version.Name)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Version:      v%s\n", version.Version)
	fmt.Fprintf(out, "Git Commit:   %s\n", version.GitCommit)
	fmt.Fprintf(out, "Build Time:   %s\n", version.BuildTime)
	fmt.Fprintf(out, "Go Version:   %s\n", version.GoVersion)
	fmt.Fprintf(out, "OS/Arch:      %s/%s\n", version.OS, version.Arch)
	fmt.Fprintln(out, strings.Repeat("-", 40))
}
