// Package mcp exposes the view-python engine as an MCP server, so agent
// hosts can build and run notebook dependency graphs as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	viewpython "github.com/Pulkit12dhingra/view-python"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	BuildGraph(cells []string) domain.Graph
	RunGraph(nodes []domain.Node, edges []domain.Edge) domain.GraphRunResult
	RunCells(cells []string) domain.LinearRunResult
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("viewpython-mcp", strings.TrimSpace(viewpython.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: build_graph
	buildTool := mcp.NewTool("build_graph",
		mcp.WithDescription("Infer the dependency graph from notebook cells. Cells are a JSON array of source strings in authoring order."),
		mcp.WithString("cells", mcp.Required(), mcp.Description("JSON array of cell sources")),
		mcp.WithOutputSchema[domain.Graph](),
	)
	s.mcpServer.AddTool(buildTool, mcp.NewStructuredToolHandler(s.handleBuildGraph))

	// TOOL: run_graph
	runGraphTool := mcp.NewTool("run_graph",
		mcp.WithDescription("Execute a dependency graph: each weakly connected component runs in order against a fresh namespace, stopping at the first fault."),
		mcp.WithString("nodes", mcp.Required(), mcp.Description("JSON array of graph nodes ({id, label, code})")),
		mcp.WithString("edges", mcp.Description("JSON array of graph edges ({source, target, labels})")),
		mcp.WithOutputSchema[domain.GraphRunResult](),
	)
	s.mcpServer.AddTool(runGraphTool, mcp.NewStructuredToolHandler(s.handleRunGraph))

	// TOOL: run_cells
	runCellsTool := mcp.NewTool("run_cells",
		mcp.WithDescription("Execute cells sequentially with one shared namespace (legacy linear mode, no graph)."),
		mcp.WithString("cells", mcp.Required(), mcp.Description("JSON array of cell sources")),
		mcp.WithOutputSchema[domain.LinearRunResult](),
	)
	s.mcpServer.AddTool(runCellsTool, mcp.NewStructuredToolHandler(s.handleRunCells))
}

func (s *Server) handleBuildGraph(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Graph, error) {
	cells, err := decodeCells(args)
	if err != nil {
		return domain.Graph{}, err
	}
	return s.engine.BuildGraph(cells), nil
}

func (s *Server) handleRunGraph(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.GraphRunResult, error) {
	nodesStr, _ := args["nodes"].(string)
	var nodes []domain.Node
	if err := json.Unmarshal([]byte(nodesStr), &nodes); err != nil {
		return domain.GraphRunResult{}, fmt.Errorf("invalid nodes: %w", err)
	}

	var edges []domain.Edge
	if edgesStr, ok := args["edges"].(string); ok && edgesStr != "" {
		if err := json.Unmarshal([]byte(edgesStr), &edges); err != nil {
			return domain.GraphRunResult{}, fmt.Errorf("invalid edges: %w", err)
		}
	}

	return s.engine.RunGraph(nodes, edges), nil
}

func (s *Server) handleRunCells(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.LinearRunResult, error) {
	cells, err := decodeCells(args)
	if err != nil {
		return domain.LinearRunResult{}, err
	}
	return s.engine.RunCells(cells), nil
}

func decodeCells(args map[string]interface{}) ([]string, error) {
	cellsStr, _ := args["cells"].(string)
	var cells []string
	if err := json.Unmarshal([]byte(cellsStr), &cells); err != nil {
		return nil, fmt.Errorf("invalid cells: %w", err)
	}
	return cells, nil
}
