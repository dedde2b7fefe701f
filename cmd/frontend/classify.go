package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"frontend/internal/action"
	"frontend/internal/actiontable"
)

func (a *app) classifyCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "classify <action>...",
		Short: "Show how actions are classified",
		Long:  "Show every classification fact for the given actions. Actions accept canonical names (emit-object) and driver flags; put driver flags after \"--\" (frontend classify -- -c -S).",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := actiontable.ParseFormat(format)
			if err != nil {
				return err
			}
			kinds := make([]action.Kind, 0, len(args))
			for _, arg := range args {
				k, err := action.ParseKind(arg)
				if err != nil {
					return err
				}
				a.log.Debug("classify", zap.String("arg", arg), zap.Stringer("kind", k))
				kinds = append(kinds, k)
			}
			rows := actiontable.Rows(kinds...)
			if f == actiontable.FormatText {
				return writeClassification(cmd.OutOrStdout(), rows)
			}
			return actiontable.Write(cmd.OutOrStdout(), rows, f, actiontable.TextOpts{})
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json|msgpack)")
	return cmd
}

func writeClassification(w io.Writer, rows []actiontable.Row) error {
	for i, r := range rows {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		suffix := "none"
		if r.Suffix != "" {
			suffix = "." + r.Suffix
		}
		lines := [][2]string{
			{"needs proper module name", yesNo(r.NeedsProperModuleName)},
			{"runs immediately", yesNo(r.Immediate)},
			{"principal output suffix", suffix},
			{"dependencies file", yesNo(r.Dependencies)},
			{"generated header", yesNo(r.Header)},
			{"loaded module trace", yesNo(r.LoadedModuleTrace)},
			{"serialized module", yesNo(r.Module)},
			{"module doc", yesNo(r.ModuleDoc)},
			{"produces output", yesNo(r.Output)},
			{"textual output", yesNo(r.Textual)},
		}
		if _, err := fmt.Fprintln(w, r.Action); err != nil {
			return err
		}
		for _, l := range lines {
			if _, err := fmt.Fprintf(w, "  %-26s%s\n", l[0]+":", l[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
