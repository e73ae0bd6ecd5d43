// ABOUTME: MCP tool handler implementations for the wine chat server
// ABOUTME: Every failure is returned as a tool error payload, never a Go error
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eagles/winechat/internal/catalog"
	"github.com/eagles/winechat/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store   *session.Store
	catalog *catalog.Catalog
}

// chatResult is the JSON payload returned by the chat tool.
type chatResult struct {
	SessionID string   `json:"session_id"`
	Message   string   `json:"message"`
	Options   []string `json:"options"`
}

// Chat handles the chat tool: one turn of the slot-filling dialogue.
func (h *Handlers) Chat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		sessionID = session.NewSessionID()
	}

	rec, err := h.store.Get(sessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("could not create session: %v", err)), nil
	}

	resp := rec.HandleTurn(message)

	responseJSON, err := json.Marshal(chatResult{
		SessionID: sessionID,
		Message:   resp.Message,
		Options:   resp.Options,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ResetSession handles the reset_session tool
func (h *Handlers) ResetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id argument is required and must be a string"), nil
	}

	existed := h.store.Reset(sessionID)

	responseJSON, err := json.Marshal(map[string]interface{}{
		"session_id": sessionID,
		"existed":    existed,
		"message":    "Session reset. Let's start fresh!",
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// DatasetStats handles the dataset_stats tool
func (h *Handlers) DatasetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st := h.catalog.Stats()

	responseJSON, err := json.Marshal(map[string]interface{}{
		"rows":          st.Rows,
		"matchable_abv": st.MatchableABV,
		"priced_rows":   st.PricedRows,
		"by_color":      st.ByColor,
		"by_country":    st.ByCountry,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
