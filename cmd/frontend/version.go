package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"frontend/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show frontend build fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			color, err := useColor(cmd)
			if err != nil {
				return err
			}
			v := version.Long()
			if color {
				v = version.Colored()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "frontend %s\n", v)
			return err
		},
	}
}
