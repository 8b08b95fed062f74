package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/application/commands"
	"github.com/graysonarts/jdexmd/internal/config"
	"github.com/graysonarts/jdexmd/internal/ports"
)

// Service bundles the loaded configuration, the resolved tree, and the I/O
// collaborators the tool handlers run against.
type Service struct {
	Config   *config.Config
	Systems  []*application.Node
	FS       ports.Filesystem
	Renderer ports.Renderer
}

// RegisterReadTools adds the read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, svc *Service) {
	s.AddTool(treeTool(), treeHandler(svc))
	s.AddTool(planTool(), planHandler(svc))
	s.AddTool(renderIndexTool(), renderIndexHandler(svc))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the resolved Johnny Decimal hierarchy with full IDs."),
	)
}

func treeHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, system := range svc.Systems {
			renderTree(&sb, system, svc.Config.Separator)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, root *application.Node, sep string) {
	root.Walk(func(n *application.Node) bool {
		indent := strings.Repeat("  ", int(n.Level))
		fmt.Fprintf(sb, "%s%s %s [%s]\n", indent, n.ID.Join(sep), n.Topic, n.Kind)
		return true
	})
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("Compute the ordered action plan without touching the filesystem. Equivalent to a --dry-run."),
		mcp.WithString("root",
			mcp.Description("Which output root to plan: \"base\" (default) or \"reference\" (directories only)."),
		),
	)
}

func planHandler(svc *Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", "base")

		cmd := commands.NewPlanCommand(svc.FS, svc.Systems, svc.Config.BaseFolder)
		cmd.Separator = svc.Config.Separator
		switch root {
		case "base":
		case "reference":
			if svc.Config.ReferenceFolder == "" {
				return toolError(fmt.Errorf("no reference_folder configured"))
			}
			cmd.Root = svc.Config.ReferenceFolder
			cmd.DirsOnly = true
		default:
			return toolError(fmt.Errorf("unknown root %q (expected base or reference)", root))
		}

		plan, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(plan) == 0 {
			return mcp.NewToolResultText("Nothing to do."), nil
		}
		return mcp.NewToolResultText(plan.String()), nil
	}
}

// --- render_index ---

func renderIndexTool() mcp.Tool {
	return mcp.NewTool("render_index",
		mcp.WithDescription("Render the JDex markdown listing for a system without writing it."),
		mcp.WithString("system",
			mcp.Description("System token to render (e.g. 00). Omit when the config holds a single system."),
		),
	)
}

func renderIndexHandler(svc *Service) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		token := req.GetString("system", "")

		system, err := findSystem(svc.Systems, token)
		if err != nil {
			return toolError(err)
		}

		out, err := application.RenderIndex(svc.Renderer, svc.Config.Templates(), system, svc.Config.Separator)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(out), nil
	}
}

func findSystem(systems []*application.Node, token string) (*application.Node, error) {
	if token == "" {
		if len(systems) == 1 {
			return systems[0], nil
		}
		return nil, fmt.Errorf("config holds %d systems; pass the system token", len(systems))
	}
	for _, system := range systems {
		if system.Token == token {
			return system, nil
		}
	}
	return nil, fmt.Errorf("system not found: %s", token)
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
