// ABOUTME: Tests for serve command structure
// ABOUTME: Verifies command configuration and flags without binding a port

package commands

import (
	"strings"
	"testing"
)

func TestNewServeCmd(t *testing.T) {
	cmd := NewServeCmd()

	if cmd.Use != "serve" {
		t.Errorf("Use = %q, want %q", cmd.Use, "serve")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestServeCmd_DocumentsRoutes(t *testing.T) {
	cmd := NewServeCmd()

	for _, route := range []string{"/conversation", "/reset"} {
		if !strings.Contains(cmd.Long, route) {
			t.Errorf("Long description should mention %s", route)
		}
	}
}

func TestServeCmd_AddrFlag(t *testing.T) {
	cmd := NewServeCmd()

	flag := cmd.Flags().Lookup("addr")
	if flag == nil {
		t.Fatal("--addr flag not found")
	}
	if flag.DefValue != "" {
		t.Errorf("--addr default = %q, want empty (config decides)", flag.DefValue)
	}
}

func TestServeCmd_HasRunE(t *testing.T) {
	cmd := NewServeCmd()

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}
}
