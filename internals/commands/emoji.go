package commands

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

var emojiSupport = true

// EmojiEnabled can be used to turn emojis off (--no-color does that)
var EmojiEnabled = true

func init() {
	// errors go to stderr, no emojis in logs or pipes
	if !isatty.IsTerminal(os.Stderr.Fd()) || os.Getenv("CI") != "" {
		emojiSupport = false
		return
	}

	// everything that is not windows usually has emoji support
	if runtime.GOOS != "windows" {
		return
	}

	// check if we are running in the windows terminal
	// (windows terminal does not set this, but raw cmd or powershell do)
	if os.Getenv("SESSIONNAME") != "" {
		emojiSupport = false
	}
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
