// Package commands implements the CLI commands for the lockdiff tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lockdiff/internal/app"
	"go.trai.ch/lockdiff/internal/build"
	"go.trai.ch/lockdiff/internal/core/domain"
)

// CLI represents the command line interface for lockdiff.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, specA, specB domain.SideSpec, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "lockdiff <lockfile-a> <lockfile-b>",
		Short: "Compare two dependency lockfiles for version parity",
		Long: "lockdiff compares two lockfiles and reports whether a chosen subset of\n" +
			"each dependency graph resolves to identical package versions. Lockfiles\n" +
			"may be local paths, file:// URLs or http(s):// URLs.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runCompare,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.Flags().String("pkg-hash-a", "", "Limit first lockfile to the package tree rooted at this hash (git commit or crate checksum)")
	rootCmd.Flags().String("pkg-hash-b", "", "Limit second lockfile to the package tree rooted at this hash (git commit or crate checksum)")
	rootCmd.Flags().String("pkg-name-a", "", "Limit first lockfile to the package tree rooted at this package name")
	rootCmd.Flags().String("pkg-name-b", "", "Limit second lockfile to the package tree rooted at this package name")
	rootCmd.Flags().StringSlice("exclude-pkg-a", nil, "Package names to exclude from the first lockfile (comma-separated)")
	rootCmd.Flags().StringSlice("exclude-pkg-b", nil, "Package names to exclude from the second lockfile (comma-separated)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Print matching packages and per-side details while running")
	rootCmd.Flags().Bool("strict", false, "Require exactly one version per side for a package to count as same")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.MarkFlagsMutuallyExclusive("pkg-hash-a", "pkg-name-a")
	rootCmd.MarkFlagsMutuallyExclusive("pkg-hash-b", "pkg-name-b")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// runCompare builds the two side specs from flags and runs the comparison.
func (c *CLI) runCompare(cmd *cobra.Command, args []string) error {
	specA := sideSpecFromFlags(cmd, args[0], "a")
	specB := sideSpecFromFlags(cmd, args[1], "b")

	verbose, _ := cmd.Flags().GetBool("verbose")
	strict, _ := cmd.Flags().GetBool("strict")

	return c.app.Run(cmd.Context(), specA, specB, app.RunOptions{
		Verbose: verbose,
		Strict:  strict,
	})
}

// sideSpecFromFlags assembles one side's spec from the suffixed flag set.
func sideSpecFromFlags(cmd *cobra.Command, source, suffix string) domain.SideSpec {
	hash, _ := cmd.Flags().GetString("pkg-hash-" + suffix)
	name, _ := cmd.Flags().GetString("pkg-name-" + suffix)
	exclude, _ := cmd.Flags().GetStringSlice("exclude-pkg-" + suffix)

	spec := domain.SideSpec{
		Source:  source,
		Exclude: exclude,
	}
	switch {
	case hash != "":
		spec.Root = domain.RootByHash(hash)
	case name != "":
		spec.Root = domain.RootByName(name)
	}
	return spec
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
