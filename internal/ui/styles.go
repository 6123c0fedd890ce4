// Package ui renders expenses, alerts and menus as plain text and reads
// user input line by line.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)

	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
	alertColor   = color.New(color.FgYellow, color.Bold)
)
