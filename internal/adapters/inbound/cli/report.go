package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/adapters/outbound/report"
	"github.com/codelens/codelens/internal/domain"
)

func newReportCmd() *cobra.Command {
	var (
		language string
		html     bool
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Generate a quality report",
		Long:  "Analyze a code snippet and write a downloadable text or HTML quality report.",
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

			doc := domain.NewDocument(code, language)
			result := svc.analyze.Analyze(doc)

			var rpt report.Document
			if html {
				rpt, err = report.HTML(result, doc.Code, time.Now())
				if err != nil {
					return fmt.Errorf("rendering report: %w", err)
				}
			} else {
				rpt = report.Text(result, doc.Code, time.Now())
			}

			if outPath == "" {
				outPath = rpt.Filename
			}
			if outPath == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), rpt.Content)
				return nil
			}

			if err := os.WriteFile(outPath, []byte(rpt.Content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "auto", "Language hint (python, javascript, typescript, java, c, cpp)")
	cmd.Flags().BoolVar(&html, "html", false, "Write an HTML report instead of plain text")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path ('-' for stdout; defaults to analysis_report.txt/.html)")

	return cmd
}
