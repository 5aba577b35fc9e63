package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetNotEmpty(t *testing.T) {
	if Get() == "" {
		t.Fatalf("Get should never be empty")
	}
	if Commit() == "" || Date() == "" {
		t.Fatalf("Commit/Date should never be empty")
	}
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand("salesgen")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "salesgen version ") {
		t.Fatalf("output=%q", buf.String())
	}
	if !strings.Contains(buf.String(), "commit:") {
		t.Fatalf("output missing commit: %q", buf.String())
	}
}
