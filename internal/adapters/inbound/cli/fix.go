package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/adapters/outbound/tui"
	"github.com/codelens/codelens/internal/domain"
)

func newFixCmd() *cobra.Command {
	var (
		language string
		format   string
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "fix [file]",
		Short: "Fix a broken code snippet",
		Long:  "Repair a code snippet from a file or stdin. Heuristic fixes are tried first; remaining errors go to the configured AI providers, first result wins.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			svc, err := newServices(cmd, zap.NewNop())
			if err != nil {
				return err
			}

			result := svc.fix.Fix(cmd.Context(), domain.NewDocument(code, language))

			switch format {
			case "json":
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			case "yaml":
				if err := writeYAML(cmd, result); err != nil {
					return err
				}
			case "":
				fmt.Fprint(cmd.ErrOrStderr(), tui.RenderFix(result))
				fmt.Fprintln(cmd.OutOrStdout(), result.FixedCode)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			if write {
				if len(args) == 0 || args[0] == "-" {
					return fmt.Errorf("--write requires a file argument")
				}
				if err := os.WriteFile(args[0], []byte(result.FixedCode+"\n"), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", args[0], err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "auto", "Language hint (python, javascript, typescript, java, c, cpp)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: json or yaml (default: terminal)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the fixed code back to the input file")

	return cmd
}
