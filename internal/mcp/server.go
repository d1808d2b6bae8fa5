// Package mcp exposes dicecast rolling as MCP tools over stdio.
package mcp

import (
	"context"

	"github.com/louisbranch/dicecast/internal/table"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	serverName = "dicecast"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Catalog looks up stored roll tables by name.
type Catalog interface {
	GetTable(ctx context.Context, name string) (*table.Table, error)
	ListTables(ctx context.Context) ([]string, error)
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *sdk.Server
	catalog   Catalog // nil when no catalog is configured
	tracer    trace.Tracer
}

// New creates a configured MCP server. catalog may be nil, in which case
// the roll_table tool reports that no catalog is configured.
func New(catalog Catalog) *Server {
	s := &Server{
		catalog: catalog,
		tracer:  otel.Tracer("dicecast/mcp"),
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{Name: serverName, Version: serverVersion}, nil)
	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "roll_expression",
		Description: "Evaluate a dice expression such as 'hp: 3d6; 2d4 + 1' and return per-statement totals with individual rolls",
	}, s.handleRollExpression)
	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "roll_dice",
		Description: "Roll a number of same-sized dice and return the individual results and total",
	}, s.handleRollDice)
	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "roll_table",
		Description: "Roll against a named roll table from the catalog and return the matched entry",
	}, s.handleRollTable)
	sdk.AddTool(mcpServer, &sdk.Tool{
		Name:        "draw_card",
		Description: "Draw playing cards with replacement from a standard 52-card deck",
	}, s.handleDrawCard)

	s.mcpServer = mcpServer
	return s
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdk.StdioTransport{})
}
