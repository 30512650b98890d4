package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/passcheck/passcheck/internal/charset"
)

// Prompter collects candidate passwords and confirmations.
//
// Design decision: the reader and writer are injected so that tests can
// drive the prompt loops with in-memory buffers. Masking only engages
// when the reader is a real terminal; piped input falls back to plain
// line reads, which also keeps scripted use working.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader

	// mask hides typed passwords when the input is a terminal.
	mask bool
}

// NewPrompter creates a Prompter reading from in and writing prompts to
// out. When mask is true and in is a terminal, password input is hidden.
func NewPrompter(in io.Reader, out io.Writer, mask bool) *Prompter {
	return &Prompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		mask:   mask,
	}
}

// NewTerminalPrompter creates a Prompter on stdin/stdout.
func NewTerminalPrompter(mask bool) *Prompter {
	return NewPrompter(os.Stdin, os.Stdout, mask)
}

// readSecret reads one password entry, masked when possible.
func (p *Prompter) readSecret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if p.mask {
		if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			secret, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(p.out)
			if err != nil {
				return "", fmt.Errorf("failed to read password: %w", err)
			}
			return string(secret), nil
		}
	}

	return p.readLine()
}

// readLine reads one line from the underlying reader without the
// trailing newline. EOF with a non-empty partial line returns the line.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// CollectPassword prompts until the user enters an acceptable password
// and repeats it correctly. Unacceptable entries (empty, containing
// spaces, containing characters outside every class) print an
// explanation and re-prompt. Read failures (for example EOF on a piped
// stdin) abort the loop.
func (p *Prompter) CollectPassword() (string, error) {
	for {
		password, err := p.readSecret("Enter the password to analyze: ")
		if err != nil {
			return "", err
		}

		switch {
		case password == "":
			fmt.Fprintln(p.out, "No password entered, please try again.")
			continue
		case strings.Contains(password, " "):
			fmt.Fprintln(p.out, "The password must not contain spaces, please try again.")
			continue
		case !charset.IsValid(password):
			fmt.Fprintln(p.out, "The password contains unsupported characters, please try again.")
			continue
		}

		repeat, err := p.readSecret("Enter the password again: ")
		if err != nil {
			return "", err
		}
		if repeat != password {
			fmt.Fprintln(p.out, "The passwords do not match, please try again.")
			continue
		}

		return password, nil
	}
}

// Confirm asks a yes/no question and re-prompts until the answer is
// recognizable. It accepts y/yes and n/no in any case.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/N]: ", question)

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Please answer y or n.")
		}
	}
}

// ReadList reads a newline-separated password list, skipping empty
// lines. Leading and trailing whitespace is preserved except for the
// line terminator itself, because spaces are meaningful in passwords and
// must reach the analyzer to be rejected there.
func ReadList(r io.Reader) ([]string, error) {
	var passwords []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}

	return passwords, nil
}
