package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"frontend/internal/actiontable"
)

var errTableDrift = errors.New("classification table differs from snapshot")

func (a *app) tableCmd() *cobra.Command {
	var (
		format  string
		compare string
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the full action classification table",
		Long:  "Print the classification of every action. With --compare, diff the table against a msgpack snapshot written earlier with --format msgpack.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := actiontable.Rows()
			if compare != "" {
				return a.compareTable(cmd, compare, rows)
			}
			f, err := actiontable.ParseFormat(format)
			if err != nil {
				return err
			}
			color, err := useColor(cmd)
			if err != nil {
				return err
			}
			return actiontable.Write(cmd.OutOrStdout(), rows, f, actiontable.TextOpts{Color: color})
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json|msgpack)")
	cmd.Flags().StringVar(&compare, "compare", "", "msgpack snapshot to compare against")
	return cmd
}

func (a *app) compareTable(cmd *cobra.Command, path string, rows []actiontable.Row) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	stored, err := actiontable.ReadMsgpack(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	diff := actiontable.Diff(stored, rows)
	a.log.Debug("table compare", zap.String("snapshot", path), zap.Int("changes", len(diff)))
	for _, line := range diff {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	if len(diff) > 0 {
		return errTableDrift
	}
	return nil
}
