// ABOUTME: Tests for the gifbox CLI help display covering content and flag listing.
package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintHelpContainsProjectName(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf, "1.2.3")
	out := buf.String()

	if !strings.Contains(out, "gifbox") {
		t.Error("expected help output to contain project name 'gifbox'")
	}
	if !strings.Contains(out, "1.2.3") {
		t.Error("expected help output to contain version '1.2.3'")
	}
}

func TestPrintHelpContainsAllFlags(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf, "dev")
	out := buf.String()

	flags := []string{"-api", "-config", "-data-dir", "-session", "-start", "-timeout", "-log-file", "-demo", "-version"}
	for _, f := range flags {
		if !strings.Contains(out, f) {
			t.Errorf("expected help to mention flag %q", f)
		}
	}
}
