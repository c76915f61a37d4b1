package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := captureOutput(func() {
		Success("user_name follows SnakeCase")
	})

	if !strings.Contains(out, "✓") {
		t.Error("Success output should contain a check mark")
	}
	if !strings.Contains(out, "user_name follows SnakeCase") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	out := captureOutput(func() {
		Error("userName does not follow SnakeCase")
	})

	if !strings.Contains(out, "✗") {
		t.Error("Error output should contain a cross mark")
	}
	if !strings.Contains(out, "userName does not follow SnakeCase") {
		t.Error("Error output should contain the message")
	}
}

func TestVerboseRespectsMode(t *testing.T) {
	SetVerbose(false)
	silent := captureOutput(func() {
		Verbose("hidden detail")
	})
	if silent != "" {
		t.Errorf("Verbose printed %q with verbose mode off", silent)
	}

	SetVerbose(true)
	defer SetVerbose(false)

	shown := captureOutput(func() {
		Verbose("shown detail")
	})
	if !strings.Contains(shown, "shown detail") {
		t.Error("Verbose output should contain the message when verbose mode is on")
	}
}
