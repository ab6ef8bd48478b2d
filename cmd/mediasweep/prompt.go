package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// askYesNo prints a yes/no question and reads one line. An empty answer
// takes the default: destructive questions pass def=false so plain enter is
// always the safe choice, non-destructive ones (backup creation) pass true.
// Callers asking more than one question must pass a shared *bufio.Reader;
// bufio.NewReader hands it back unchanged, so buffered input is not lost
// between questions.
func askYesNo(in io.Reader, out io.Writer, question string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(out, "%s [%s]: ", question, hint)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	case "":
		return def
	default:
		return false
	}
}

// stdinIsInteractive reports whether prompting can reach a human.
func stdinIsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
