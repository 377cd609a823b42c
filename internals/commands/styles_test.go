package commands

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorLineIsOneLine(t *testing.T) {
	EmojiEnabled = false
	line := ErrorLine(errors.New("something\nwent   wrong"))
	if strings.Contains(line, "\n") {
		t.Fatalf("expected a single line, got %q", line)
	}
	if !strings.Contains(line, "something went wrong") {
		t.Fatalf("message is missing in %q", line)
	}
}
