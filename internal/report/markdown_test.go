package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownRenderer(t *testing.T) {
	rows := [][]string{
		{"Order_ID", "Country"},
		{"1", "USA"},
		{"2"},
	}

	var buf bytes.Buffer
	if err := NewMarkdownRenderer("Sales").Write(&buf, rows); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Sales", "Order_ID", "Country", "USA", "Total sales records: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownRendererEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownRenderer("").Write(&buf, [][]string{{"Order_ID"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != EmptyNotice+"\n" {
		t.Fatalf("out=%q", buf.String())
	}
}
