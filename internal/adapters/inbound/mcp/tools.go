package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codelens/codelens/internal/adapters/outbound/report"
	"github.com/codelens/codelens/internal/application"
	"github.com/codelens/codelens/internal/domain"
)

// registerTools registers the CodeLens MCP tools on the given server.
func registerTools(s *server.MCPServer, analyze *application.AnalyzeService, fix *application.FixService) {
	s.AddTool(
		mcplib.NewTool("codelens_analyze",
			mcplib.WithDescription("Analyze a code snippet for quality issues. Returns score, issues and metrics as JSON."),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("The code snippet to analyze"),
			),
			mcplib.WithString("language",
				mcplib.Description("Language hint (python, javascript, typescript, java, c, cpp). Defaults to auto-detection."),
			),
		),
		handleAnalyze(analyze),
	)

	s.AddTool(
		mcplib.NewTool("codelens_fix",
			mcplib.WithDescription("Repair a broken code snippet. Applies heuristic fixes first, then races the configured AI providers."),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("The code snippet to fix"),
			),
			mcplib.WithString("language",
				mcplib.Description("Language hint. Defaults to auto-detection."),
			),
		),
		handleFix(fix),
	)

	s.AddTool(
		mcplib.NewTool("codelens_report",
			mcplib.WithDescription("Produce a quality report for a code snippet. Format is text or html."),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("The code snippet to report on"),
			),
			mcplib.WithString("language",
				mcplib.Description("Language hint. Defaults to auto-detection."),
			),
			mcplib.WithString("format",
				mcplib.Description("Report format: text or html (default: text)"),
			),
		),
		handleReport(analyze),
	)
}

func handleAnalyze(analyze *application.AnalyzeService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, errResult := snippetFromRequest(request)
		if errResult != nil {
			return errResult, nil
		}
		return jsonResult(analyze.Analyze(doc))
	}
}

func handleFix(fix *application.FixService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, errResult := snippetFromRequest(request)
		if errResult != nil {
			return errResult, nil
		}
		return jsonResult(fix.Fix(ctx, doc))
	}
}

func handleReport(analyze *application.AnalyzeService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, errResult := snippetFromRequest(request)
		if errResult != nil {
			return errResult, nil
		}

		result := analyze.Analyze(doc)
		format, _ := request.GetArguments()["format"].(string)
		if format == "html" {
			rpt, err := report.HTML(result, doc.Code, time.Now())
			if err != nil {
				return errorResult(fmt.Sprintf("rendering report: %v", err)), nil
			}
			return textResult(rpt.Content)
		}
		return textResult(report.Text(result, doc.Code, time.Now()).Content)
	}
}

func snippetFromRequest(request mcplib.CallToolRequest) (domain.Document, *mcplib.CallToolResult) {
	code, err := request.RequireString("code")
	if err != nil {
		return domain.Document{}, errorResult(err.Error())
	}
	lang, _ := request.GetArguments()["language"].(string)
	return domain.NewDocument(code, lang), nil
}

// jsonResult marshals v into a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func textResult(text string) (*mcplib.CallToolResult, error) {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
