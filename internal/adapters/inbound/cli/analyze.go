package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/codelens/codelens/internal/adapters/outbound/tui"
	"github.com/codelens/codelens/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		language string
		format   string
		ciMode   bool
		minScore int
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a code snippet",
		Long:  "Analyze a code snippet from a file or stdin and report its quality score, issues and metrics.",
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

			result := svc.analyze.Analyze(domain.NewDocument(code, language))

			if err := renderResult(cmd, result, format); err != nil {
				return err
			}

			if ciMode && result.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", result.Score, minScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "auto", "Language hint (python, javascript, typescript, java, c, cpp)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: json or yaml (default: terminal)")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")

	return cmd
}

// renderResult writes v in the requested format, falling back to the
// terminal renderer for analysis results.
func renderResult(cmd *cobra.Command, result domain.AnalysisResult, format string) error {
	switch format {
	case "json":
		return writeJSON(cmd, result)
	case "yaml":
		return writeYAML(cmd, result)
	case "":
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalysis(result))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	return enc.Encode(v)
}
