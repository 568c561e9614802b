package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server reachability and storage health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var banner struct {
				Message string `json:"message"`
				Version string `json:"version"`
			}
			if err := client.Get("/", &banner); err != nil {
				return err
			}

			var result HealthResult
			if err := client.Get("/health", &result); err != nil {
				return err
			}
			result.Server = banner.Message
			result.Version = banner.Version

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
