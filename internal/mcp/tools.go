// ABOUTME: MCP tool definitions and registration for the wine chat server
// ABOUTME: Exposes the dialogue engine to LLM agents over stdio
package mcp

import (
	"github.com/eagles/winechat/internal/catalog"
	"github.com/eagles/winechat/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *session.Store, cat *catalog.Catalog) *Handlers {
	handlers := &Handlers{store: store, catalog: cat}

	// 1. chat - one conversational turn of the wine recommendation dialogue
	server.AddTool(mcp.Tool{
		Name:        "chat",
		Description: "Send one message to the wine recommendation assistant. The assistant asks about color, alcohol strength, country and price range, then suggests matching wines.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message for this turn",
				},
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation session identifier; omit to start a new session",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.Chat)

	// 2. reset_session - clear a conversation's collected preferences
	server.AddTool(mcp.Tool{
		Name:        "reset_session",
		Description: "Reset a conversation session, clearing all collected preferences so the dialogue starts over.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Conversation session identifier to reset",
				},
			},
			Required: []string{"session_id"},
		},
	}, handlers.ResetSession)

	// 3. dataset_stats - summarize the loaded wine catalog
	server.AddTool(mcp.Tool{
		Name:        "dataset_stats",
		Description: "Summarize the loaded wine catalog: row counts, field coverage, and breakdowns by color and country.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.DatasetStats)

	return handlers
}
