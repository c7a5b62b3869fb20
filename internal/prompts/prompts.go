// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Snapgen Authors

// Package prompts holds the interactive forms and the styled terminal
// output shared by the CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#56b6c2")
	muted  = lipgloss.Color("#9a9a9a")

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	mutedSt   = lipgloss.NewStyle().Foreground(muted)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f2c94c"))
)

// Theme is the huh theme every snapgen form uses.
func Theme() *huh.Theme {
	t := huh.ThemeBase16()
	t.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	t.Form = t.Form.MarginTop(1)
	t.Group = t.Group.MarginTop(1)
	t.Focused.Title = t.Focused.Title.Foreground(accent)
	t.Blurred.Title = t.Blurred.Title.Foreground(muted)
	return t
}

// ResultField is one label/value line of a command summary.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a command's closing summary: one checked line per
// field, then the success message.
func PrintResult(fields []ResultField, successMsg string) {
	check := okStyle.Render("✓")

	fmt.Println()
	for _, f := range fields {
		fmt.Printf("%s %s %s\n", check, mutedSt.Render(f.Label+":"), f.Value)
	}
	if successMsg != "" {
		fmt.Println(okStyle.Render("\n" + successMsg))
	}
}

// PrintWarning prints one yellow warning line.
func PrintWarning(msg string) {
	fmt.Println(warnStyle.Render("! " + msg))
}

// identifierValidator accepts identifier-shaped names not already present
// in existing.
func identifierValidator[T any](existing map[string]T) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New("name is required")
		}
		for i, r := range s {
			ok := unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r))
			if !ok {
				return errors.New("use letters, digits and underscores, starting with a letter or underscore")
			}
		}
		if _, dup := existing[s]; dup {
			return fmt.Errorf("%q already exists", s)
		}
		return nil
	}
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
