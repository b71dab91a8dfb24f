// Package ui provides theme and color support for the speedwatch console output.
// It defines color schemes, ANSI escape code helpers for messages and
// lipgloss styles for the estimate table.
//
// This package is a shared dependency for packages that need color output,
// reducing coupling between measurement logic and presentation.
package ui
