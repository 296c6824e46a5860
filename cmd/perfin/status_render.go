package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
)

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func renderCheckLine(label string, ok bool, detail string, colorize bool) string {
	status := "OK"
	color := ansiGreen
	if !ok {
		status = "ERROR"
		color = ansiRed
	}
	text := fmt.Sprintf("  %-20s [%s]", label+":", status)
	if detail != "" {
		text += " " + detail
	}
	if colorize {
		return color + text + ansiReset
	}
	return text
}

// shouldColorize enables ANSI output only for real terminals, so piped output
// stays plain.
func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
