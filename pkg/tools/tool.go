// Package tools defines the MCP tool surface of the server: one tool per
// Raindrop.io operation. Each invocation maps onto a single request through
// the shared API client; nothing is cached or retried here.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/entrhq/raindrop-mcp/pkg/raindrop"
)

// Tool is one callable operation exposed to the host assistant.
type Tool interface {
	// Definition returns the name, description and parameter schema the
	// tool registers with the host.
	Definition() mcp.Tool

	// Handler executes one invocation. Failures of every category come
	// back as isError tool results; the error return is reserved for the
	// protocol layer and stays nil.
	Handler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Registry owns the full tool set. All tools share one API client.
type Registry struct {
	client *raindrop.Client
	tools  []Tool
}

// NewRegistry creates a registry whose tools issue requests through client.
func NewRegistry(client *raindrop.Client) *Registry {
	return &Registry{client: client}
}

// Tools returns every tool in registration order.
func (r *Registry) Tools() []Tool {
	if r.tools == nil {
		r.tools = []Tool{
			NewGetRootCollectionsTool(r.client),
			NewGetChildCollectionsTool(r.client),
			NewGetCollectionTool(r.client),
			NewCreateCollectionTool(r.client),
			NewUpdateCollectionTool(r.client),
			NewDeleteCollectionTool(r.client),
			NewEmptyTrashTool(r.client),
			NewGetRaindropTool(r.client),
			NewGetRaindropsTool(r.client),
			NewGetTagsTool(r.client),
			NewUpdateRaindropTool(r.client),
			NewUpdateManyRaindropsTool(r.client),
		}
	}
	return r.tools
}

// RegisterAll adds every tool to the given MCP server.
func (r *Registry) RegisterAll(srv *server.MCPServer) {
	for _, t := range r.Tools() {
		srv.AddTool(t.Definition(), t.Handler)
	}
}
