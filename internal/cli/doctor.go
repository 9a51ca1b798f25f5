package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/toolchain"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required external tools are available",
	Long: `Verify that node, npm, and git are on PATH and meet the minimum
versions the verification chain needs (git >= 2.9 for core.hooksPath).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Toolchain check:")
		missing := 0
		for _, req := range toolchain.Requirements() {
			if err := toolchain.Probe(cmd.Context(), req.Tool, req.MinVersion); err != nil {
				fmt.Fprintf(os.Stdout, "  [MISS] %s: %v\n", req.Tool, err)
				missing++
				continue
			}
			fmt.Fprintf(os.Stdout, "  [ OK ] %s (>= %s)\n", req.Tool, req.MinVersion)
		}
		if missing > 0 {
			return fmt.Errorf("%d required tool(s) unavailable", missing)
		}
		return nil
	},
}
