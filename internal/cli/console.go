package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate mockgen -source=console.go -destination=../mocks/cli/mock_console.go -package=mock_cli Console

// Console is the interactive I/O boundary of a practice session. It exists
// so a session can be driven by scripted input under test.
type Console interface {
	// Prompt shows the label and blocks for one line of input, returned
	// without the trailing newline.
	Prompt(label string) (string, error)
	// Display writes one line of output.
	Display(text string)
}

// Terminal is the Console used in production, reading stdin line by line.
type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewTerminal() *Terminal {
	return &Terminal{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

func (t *Terminal) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(t.writer, label); err != nil {
		return "", fmt.Errorf("error writing prompt: %w", err)
	}
	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Display(text string) {
	_, _ = fmt.Fprintln(t.writer, text)
}
