package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/adapters/outbound/config"
	"github.com/codelens/codelens/internal/adapters/outbound/parser"
	"github.com/codelens/codelens/internal/adapters/outbound/provider"
	"github.com/codelens/codelens/internal/application"
	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
)

// services bundles everything a command needs, wired once per
// invocation.
type services struct {
	cfg       domain.Config
	analyze   *application.AnalyzeService
	fix       *application.FixService
	providers []domain.RepairProvider
}

func newServices(cmd *cobra.Command, log *zap.Logger) (*services, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	engine := rules.NewEngine(parser.NewPythonChecker())
	analyze := application.NewAnalyzeService(engine)
	providers := []domain.RepairProvider{
		provider.NewOpenRouterClient(cfg.Providers.OpenRouter, log),
		provider.NewGeminiClient(cfg.Providers.Google, log),
	}
	fix := application.NewFixService(analyze, engine, providers, cfg.Providers, log)

	return &services{
		cfg:       cfg,
		analyze:   analyze,
		fix:       fix,
		providers: providers,
	}, nil
}

// readSource reads the snippet from the file argument, or from stdin
// when the argument is absent or "-".
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
