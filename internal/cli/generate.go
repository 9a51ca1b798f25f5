package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/config"
	"github.com/stencil-labs/stencil/internal/scaffold"
	"github.com/stencil-labs/stencil/internal/toolchain"
)

var (
	genDescription string
	genPkgVersion  string
	genOutputDir   string
	genWithMCP     bool
	genSkipVerify  bool
)

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, generateWorkspaceCmd} {
		cmd.Flags().StringVar(&genDescription, "description", "", "Project description for the manifest")
		cmd.Flags().StringVar(&genPkgVersion, "pkg-version", "", "Initial manifest version (default 0.1.0)")
		cmd.Flags().StringVar(&genOutputDir, "output-dir", "", "Target directory (default ./<name>)")
		cmd.Flags().BoolVar(&genWithMCP, "with-mcp", false, "Include the MCP server subsystem")
		cmd.Flags().BoolVar(&genSkipVerify, "skip-verify", false, "Write the tree without running the toolchain")
		rootCmd.AddCommand(cmd)
	}
}

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate a single-package TypeScript project",
	Long: `Generate a single-package TypeScript project and verify it end to end:
npm install, git init, hook install, build, lint, and test.

Examples:
  stencil generate widget-api
  stencil generate widget-api --with-mcp --description "Widget HTTP API"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], false)
	},
}

var generateWorkspaceCmd = &cobra.Command{
	Use:   "generate-workspace <name>",
	Short: "Generate a multi-package npm workspace",
	Long: `Generate an npm workspace with a root manifest, a shared utilities
package, and one example application package, then verify the whole tree.

Example:
  stencil generate-workspace platform`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], true)
	},
}

func runGenerate(cmd *cobra.Command, name string, workspace bool) error {
	// User config supplies defaults for flags the caller did not set.
	if !cmd.Flags().Changed("with-mcp") {
		genWithMCP = config.GetBool("defaults.with_mcp")
	}
	if !cmd.Flags().Changed("skip-verify") {
		genSkipVerify = config.GetBool("defaults.skip_verify")
	}
	if genPkgVersion == "" {
		genPkgVersion = config.Get("defaults.pkg_version")
	}
	if genDescription == "" {
		genDescription = config.Get("defaults.description")
	}

	cfg, err := scaffold.Resolve(scaffold.Options{
		Name:        name,
		Description: genDescription,
		Version:     genPkgVersion,
		OutputDir:   genOutputDir,
		Workspace:   workspace,
		WithMCP:     genWithMCP,
	})
	if err != nil {
		return err
	}

	result, err := scaffold.Render(cfg)
	if err != nil {
		return err
	}

	tree, err := scaffold.Materialize(result.Files, cfg.TargetDir)
	if err != nil {
		if tree != nil && len(tree.Files) > 0 {
			fmt.Fprintf(os.Stderr, "Partial tree left at %s (%s); not cleaned up.\n",
				tree.Root, tree.Describe())
		}
		return err
	}

	fmt.Printf("Created %s at %s\n", cfg.Name, tree.Root)
	for _, f := range tree.Files {
		fmt.Printf("  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	if genSkipVerify {
		fmt.Println("\nVerification skipped (--skip-verify).")
		printNextSteps(cfg)
		return nil
	}

	steps := toolchain.SingleSteps(cfg.TargetDir)
	if workspace {
		steps = toolchain.WorkspaceSteps(cfg.TargetDir)
	}

	runner := &toolchain.Runner{Stdout: os.Stdout, Stderr: os.Stderr}
	report := runner.Run(cmd.Context(), steps)

	fmt.Println()
	report.Print(os.Stdout)

	if !report.OK() {
		return fmt.Errorf("verification %s", report.Overall)
	}

	printNextSteps(cfg)
	return nil
}

func printNextSteps(cfg *scaffold.Config) {
	fmt.Println("\nNext steps:")
	if cfg.Workspace {
		fmt.Println("  1. Add your code under packages/")
		fmt.Printf("  2. cd %s && npm run build\n", cfg.TargetDir)
	} else {
		fmt.Println("  1. Edit src/index.ts to add your logic")
		fmt.Printf("  2. cd %s && npm test\n", cfg.TargetDir)
	}
	if cfg.WithMCP {
		fmt.Println("  3. See docs/mcp.md to wire up the MCP server stub")
	}
}
