package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

// LineReader yields a single line of user input.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// IsInteractive reports whether stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	return readline.DefaultIsTerminal()
}

type terminalReader struct {
	readline *readline.Instance
}

// NewTerminalReader creates a readline-backed reader that shows prompt
// before waiting for input.
func NewTerminalReader(prompt string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, errors.Wrap(err, "init readline")
	}

	return &terminalReader{readline: rl}, nil
}

func (r *terminalReader) ReadLine() (string, error) {
	line, err := r.readline.Readline()
	if err == readline.ErrInterrupt {
		return "", errors.New("interrupted")
	}
	return line, err
}

func (r *terminalReader) Close() error {
	return r.readline.Close()
}

type streamReader struct {
	reader *bufio.Reader
}

// NewStreamReader reads lines of any length from piped or redirected input
// without prompting.
func NewStreamReader(in io.Reader) LineReader {
	return &streamReader{reader: bufio.NewReader(in)}
}

func (r *streamReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *streamReader) Close() error { return nil }
