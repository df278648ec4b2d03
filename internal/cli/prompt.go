package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// errConfirmationRequired is returned when a destructive command runs
// without a terminal and without --yes.
var errConfirmationRequired = errors.New("refusing to continue without confirmation: pass --yes in non-interactive sessions")

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user typed "y" or "yes".
	Accepted bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// Confirm asks a yes/no question and reads the answer from reader. The
// default answer is No: empty input, EOF and anything other than y/yes
// decline.
func Confirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	_, _ = fmt.Fprintf(writer, "? %s [y/N] ", question)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		return PromptResult{}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{}
	}
}

// confirmDestructive asks before a destructive action. assumeYes skips the
// prompt; without it a non-terminal stdin is an error.
func confirmDestructive(writer io.Writer, reader io.Reader, question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if f, ok := reader.(*os.File); !ok || !isTerminal(f) {
		return false, errConfirmationRequired
	}
	return Confirm(writer, reader, question).Accepted, nil
}
