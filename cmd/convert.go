package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"polylinegpx/internal/model"
	"polylinegpx/internal/util"
)

func newGPXCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gpx [polyline]",
		Short: "Convert an encoded polyline into a GPX document",
		Long:  `Decode the polyline given as argument (or read from stdin) and print the GPX document to stdout.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := decodeInput(cmd, args)
			if err != nil {
				return err
			}
			return util.WriteGPX(cmd.OutOrStdout(), points)
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [polyline]",
		Short: "Decode an encoded polyline into JSON points",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := decodeInput(cmd, args)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(points)
		},
	}
}

func newStreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Convert a Strava latlng stream (JSON on stdin) into a GPX document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var stream model.LatLngStream
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&stream); err != nil {
				return fmt.Errorf("failed to parse stream: %w", err)
			}
			return util.WriteGPX(cmd.OutOrStdout(), util.NormalizeStravaLatLng(stream))
		},
	}
}

// decodeInput decodes the polyline from the first argument, falling back to stdin
func decodeInput(cmd *cobra.Command, args []string) ([]model.Point, error) {
	var encoded string
	if len(args) == 1 {
		encoded = args[0]
	} else {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read polyline: %w", err)
		}
		encoded = strings.TrimSpace(string(raw))
	}

	points, err := util.DecodePolylineWithPrecision(encoded, precision)
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}
	return points, nil
}
