package cliware

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/cliware/cliware/logging"
)

const questionColor = "cyan"

// Prompt asks a question and returns one trimmed line from the host's
// input stream.
func (c *CLI) Prompt(question string) (string, error) {
	fmt.Fprintf(c.stdout, "%s ", logging.Colorize(question, questionColor))
	return c.readLine()
}

// Confirm asks a yes/no question. Anything other than y/yes answers false.
func (c *CLI) Confirm(question string) (bool, error) {
	answer, err := c.Prompt(question + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select presents a numbered menu and returns the index of the chosen
// entry, re-asking until the answer is a valid number.
func (c *CLI) Select(question string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("cliware: select needs at least one choice")
	}
	fmt.Fprintln(c.stdout, logging.Colorize(question, questionColor))
	for i, choice := range choices {
		fmt.Fprintf(c.stdout, "  %d) %s\n", i+1, choice)
	}
	for {
		answer, err := c.Prompt(fmt.Sprintf("Choose 1-%d:", len(choices)))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(choices) {
			return n - 1, nil
		}
		fmt.Fprintln(c.stdout, "Invalid choice.")
	}
}

// PromptSecret asks for a value without echoing it when stdin is a
// terminal. Off-terminal input (pipes, tests) falls back to a plain line
// read.
func (c *CLI) PromptSecret(question string) (string, error) {
	fmt.Fprintf(c.stdout, "%s ", logging.Colorize(question, questionColor))
	if f, ok := c.stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.stdout)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return string(raw), nil
	}
	return c.readLine()
}

// readLine shares one buffered reader across prompts so consecutive
// answers on the same stream are not lost to rebuffering.
func (c *CLI) readLine() (string, error) {
	if c.input == nil {
		c.input = bufio.NewReader(c.stdin)
	}
	line, err := c.input.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
