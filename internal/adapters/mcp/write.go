package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/graysonarts/jdexmd/internal/application/commands"
)

// RegisterWriteTools adds the mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, svc *Service) {
	s.AddTool(applyTool(), applyHandler(svc))
}

func applyTool() mcp.Tool {
	return mcp.NewTool("apply",
		mcp.WithDescription("Materialize the hierarchy: create missing directories and notes under the base folder, mirror directories under the reference folder, and regenerate the JDex index."),
	)
}

func applyHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewGenerateCommand(svc.FS, svc.Renderer, svc.Systems)
		cmd.BaseFolder = svc.Config.BaseFolder
		cmd.ReferenceFolder = svc.Config.ReferenceFolder
		cmd.Separator = svc.Config.Separator
		cmd.Templates = svc.Config.Templates()

		result, err := cmd.Execute(ctx)
		if err != nil {
			if result != nil {
				return toolError(fmt.Errorf("%w\n%s", err, summarize(result)))
			}
			return toolError(err)
		}
		return mcp.NewToolResultText(summarize(result)), nil
	}
}

func summarize(result *commands.GenerateResult) string {
	var sb strings.Builder
	writeReport(&sb, "notes", result.NotesReport)
	if result.ReferenceReport != nil {
		writeReport(&sb, "reference", result.ReferenceReport)
	}
	if sb.Len() == 0 {
		return "Nothing applied."
	}
	return sb.String()
}

func writeReport(sb *strings.Builder, root string, report *commands.ApplyReport) {
	if report == nil {
		return
	}
	fmt.Fprintf(sb, "%s: %d applied, %d skipped", root, len(report.Completed), len(report.Skipped))
	if report.Failed != nil {
		fmt.Fprintf(sb, ", failed at %s (%d never attempted)", report.Failed.Path, len(report.Remaining))
	}
	sb.WriteByte('\n')
}
