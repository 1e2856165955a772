// Command cmatrix is a small front end over the cmatrix engine: it prints sample
// values, eigen-decompositions, Kronecker products and Gram-Schmidt bases.
package main

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cmatrix/matrix"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "cmatrix",
		Short:         "Complex linear algebra from the command line",
		Long:          `Builds complex vectors and matrices and runs the Kronecker product, Gram-Schmidt and QR-iteration eigen-solver on them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.SetLogLevel(matrix.LogSubsystem, logLevel); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level for the matrix subsystem (debug, info, warn, error)")

	root.AddCommand(newDemoCmd(), newEigenCmd(), newKronCmd(), newGramSchmidtCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cmatrix:", err)
		os.Exit(1)
	}
}
