// ABOUTME: Tests for the interactive chat command
// ABOUTME: Drives the REPL with scripted input and checks the transcript

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runChatScript(t *testing.T, input string) string {
	t.Helper()
	cmd := NewChatCmd()
	var output bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return output.String()
}

func TestNewChatCmd(t *testing.T) {
	cmd := NewChatCmd()

	if cmd.Use != "chat" {
		t.Errorf("Use = %q, want %q", cmd.Use, "chat")
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestChatCmd_QuitEndsSession(t *testing.T) {
	withDatasetFlag(t, writeTestDataset(t))

	output := runChatScript(t, "quit\n")

	if !strings.Contains(output, "Welcome to Wine Chat") {
		t.Errorf("output missing welcome line:\n%s", output)
	}
	if !strings.Contains(output, "Cheers!") {
		t.Errorf("output missing farewell:\n%s", output)
	}
}

func TestChatCmd_FirstTurnAsksColor(t *testing.T) {
	withDatasetFlag(t, writeTestDataset(t))

	output := runChatScript(t, "hello\nquit\n")

	if !strings.Contains(output, "What color wine do you prefer?") {
		t.Errorf("output missing color question:\n%s", output)
	}
	// Options are printed as a numbered list.
	if !strings.Contains(output, "1. Red") || !strings.Contains(output, "4. Sparkling") {
		t.Errorf("output missing numbered options:\n%s", output)
	}
}

func TestChatCmd_ResetStartsOver(t *testing.T) {
	withDatasetFlag(t, writeTestDataset(t))

	output := runChatScript(t, "a red from spain\nreset\nhello\nquit\n")

	if !strings.Contains(output, "Session reset. Let's start fresh!") {
		t.Errorf("output missing reset confirmation:\n%s", output)
	}
	// After the reset, "hello" fills nothing and gets the greeting again.
	if !strings.Contains(output, "Hello! Let's start with your preference.") {
		t.Errorf("output missing post-reset greeting:\n%s", output)
	}
}

func TestChatCmd_EOFEndsSession(t *testing.T) {
	withDatasetFlag(t, writeTestDataset(t))

	// Input ends without a quit; the REPL must exit cleanly on EOF.
	output := runChatScript(t, "hello\n")

	if !strings.Contains(output, "What color wine do you prefer?") {
		t.Errorf("output missing color question:\n%s", output)
	}
}

func TestChatCmd_RejectsArgs(t *testing.T) {
	cmd := NewChatCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"unexpected"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() with args succeeded, want error")
	}
}
