package main

import (
	"github.com/spf13/cobra"

	"github.com/danghq/shopdesk/internal/ops"
)

// shopdesk serve — run the health/metrics sidecar.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the health and metrics endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ops.Start()
	},
}
