package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/graysonarts/jdexmd/internal/adapters/filesystem"
	"github.com/graysonarts/jdexmd/internal/adapters/handlebars"
	mcpadapter "github.com/graysonarts/jdexmd/internal/adapters/mcp"
	"github.com/graysonarts/jdexmd/internal/application"
	"github.com/graysonarts/jdexmd/internal/config"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the TOML config file")
	flag.Parse()

	if *configFlag == "" {
		log.Fatalf("jdexmd-mcp: no config file: pass -config or set %s", config.EnvConfigFile)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("jdexmd-mcp: %v", err)
	}

	systems, warnings, err := application.BuildSystems(cfg.Hierarchy, cfg.SystemID, cfg.Name)
	if err != nil {
		log.Fatalf("jdexmd-mcp: %v", err)
	}
	for _, w := range warnings {
		log.Printf("jdexmd-mcp: warning: %s", w)
	}

	svc := &mcpadapter.Service{
		Config:   cfg,
		Systems:  systems,
		FS:       filesystem.New(),
		Renderer: handlebars.New(),
	}

	mcpServer := server.NewMCPServer(
		"jdexmd-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc)
	mcpadapter.RegisterWriteTools(mcpServer, svc)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("jdexmd-mcp: %v", err)
	}
}
