package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppopth/threshold-algebra/field"

	logging "github.com/ipfs/go-log/v2"
)

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "gf4",
		Short: "GF(4) arithmetic, bounded polynomials and Lagrange interpolation",
		Long: `gf4 exercises exact arithmetic over the four-element field
GF(2)[x]/(x^2 + x + 1) and over polynomials of bounded degree.

Field elements are written 0, 1, alpha and alpha+1 (or the tags 0-3).
Coefficient lists are in ascending order of powers of x.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.SetLogLevel("*", logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newInterpolateCmd())
	rootCmd.AddCommand(newShareCmd())
	return rootCmd
}

// parseElements parses a comma-separated list of field elements
func parseElements(list string) ([]field.GF4, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("empty element list")
	}
	parts := strings.Split(list, ",")
	elems := make([]field.GF4, len(parts))
	for i, part := range parts {
		e, err := field.ParseGF4(part)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return elems, nil
}
