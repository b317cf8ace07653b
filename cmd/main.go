package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"polylinegpx/internal/util"
)

var precision int

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polylinegpx",
		Short: "Convert encoded polylines and Strava streams into GPX tracks",
		Long: `polylinegpx decodes Google encoded polylines and Strava latlng activity streams
and writes them out as GPX 1.1 track documents, either from the command line or over HTTP.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", util.DefaultPolylinePrecision, "Polyline precision in decimal digits (5 for Google, 6 for polyline6)")

	rootCmd.AddCommand(newServeCmd(), newGPXCmd(), newDecodeCmd(), newStreamCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
