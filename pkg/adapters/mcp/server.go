// Package mcp exposes the sorting engine as an MCP server, so agent
// hosts can drive runs step by step as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"sortvis"
	"sortvis/pkg/algo"
	"sortvis/pkg/driver"
	"sortvis/pkg/step"
)

// Factory creates the engine backing one run.
type Factory func(algorithm string, length int) (*sortvis.Engine, error)

// StepResponse is the structured result of an advance_step call.
type StepResponse struct {
	RunID string     `json:"run_id" jsonschema_description:"Identifier of the run"`
	Step  step.State `json:"step" jsonschema_description:"The produced snapshot"`
	Done  bool       `json:"done" jsonschema_description:"Whether the run has completed"`
}

// RunResponse is the structured result of run management calls.
type RunResponse struct {
	RunID    string          `json:"run_id" jsonschema_description:"Identifier of the run"`
	Snapshot driver.Snapshot `json:"snapshot" jsonschema_description:"Current driver state"`
}

// Server wraps the engine factory and exposes it as an MCP Server.
type Server struct {
	factory   Factory
	mcpServer *server.MCPServer

	mu   sync.Mutex
	runs map[string]*sortvis.Engine
}

// NewServer creates a new MCP Server instance.
func NewServer(factory Factory) *Server {
	s := &Server{
		factory:   factory,
		mcpServer: server.NewMCPServer("sortvis-mcp", strings.TrimSpace(sortvis.Version)),
		runs:      make(map[string]*sortvis.Engine),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_algorithms",
		mcp.WithDescription("List the available sorting algorithms."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(algo.Registry())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	startTool := mcp.NewTool("start_run",
		mcp.WithDescription("Start a new sorting run over a random array."),
		mcp.WithString("algorithm", mcp.Description("Registry key of the algorithm (optional, default bubble)")),
		mcp.WithNumber("length", mcp.Description("Array length (optional)")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(startTool, mcp.NewStructuredToolHandler(s.handleStartRun))

	advanceTool := mcp.NewTool("advance_step",
		mcp.WithDescription("Advance a run by one step. A no-op once the run is done."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("Identifier returned by start_run")),
		mcp.WithOutputSchema[StepResponse](),
	)
	s.mcpServer.AddTool(advanceTool, mcp.NewStructuredToolHandler(s.handleAdvanceStep))

	resetTool := mcp.NewTool("reset_run",
		mcp.WithDescription("Regenerate the run's array and bind a fresh producer."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("Identifier returned by start_run")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(resetTool, mcp.NewStructuredToolHandler(s.handleResetRun))

	selectTool := mcp.NewTool("select_algorithm",
		mcp.WithDescription("Switch a run to another algorithm, discarding its producer."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("Identifier returned by start_run")),
		mcp.WithString("algorithm", mcp.Required(), mcp.Description("Registry key of the algorithm")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(selectTool, mcp.NewStructuredToolHandler(s.handleSelectAlgorithm))
}

func (s *Server) handleStartRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	algorithm, _ := args["algorithm"].(string)
	length := 0
	if n, ok := args["length"].(float64); ok {
		length = int(n)
	}

	engine, err := s.factory(algorithm, length)
	if err != nil {
		return RunResponse{}, fmt.Errorf("start run failed: %w", err)
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.runs[id] = engine
	s.mu.Unlock()

	return RunResponse{RunID: id, Snapshot: snapshotClone(engine)}, nil
}

func (s *Server) handleAdvanceStep(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	engine, id, err := s.lookup(args)
	if err != nil {
		return StepResponse{}, err
	}
	st, done := engine.Advance()
	return StepResponse{RunID: id, Step: st.Clone(), Done: done}, nil
}

func (s *Server) handleResetRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	engine, id, err := s.lookup(args)
	if err != nil {
		return RunResponse{}, err
	}
	engine.Reset()
	return RunResponse{RunID: id, Snapshot: snapshotClone(engine)}, nil
}

func (s *Server) handleSelectAlgorithm(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	engine, id, err := s.lookup(args)
	if err != nil {
		return RunResponse{}, err
	}
	algorithm, _ := args["algorithm"].(string)
	if err := engine.SelectAlgorithm(algorithm); err != nil {
		return RunResponse{}, fmt.Errorf("select failed: %w", err)
	}
	return RunResponse{RunID: id, Snapshot: snapshotClone(engine)}, nil
}

func (s *Server) lookup(args map[string]interface{}) (*sortvis.Engine, string, error) {
	id, _ := args["run_id"].(string)
	s.mu.Lock()
	engine, ok := s.runs[id]
	s.mu.Unlock()
	if !ok {
		return nil, "", fmt.Errorf("run not found: %q", id)
	}
	return engine, id, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("sortvis://algorithms", "Algorithm Registry",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(algo.Registry())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "sortvis://algorithms",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func snapshotClone(engine *sortvis.Engine) driver.Snapshot {
	snap := engine.Snapshot()
	snap.Step = snap.Step.Clone()
	return snap
}
