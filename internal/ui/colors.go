package ui

import "github.com/charmbracelet/lipgloss"

// ColorRed returns the escape code for error output.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the escape code for success output.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the escape code for warnings.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the escape code for primary accents.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorGrey returns the escape code for secondary text.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// Cell styles. Callers pad cells before styling so escape codes never count
// towards column widths.

// StyleHeader renders a table header cell.
func StyleHeader(s string) string { return render(GetCurrentTheme().Table.Header, s, true) }

// StyleEstimate renders an extrapolated duration; "inf" cells get the
// infinite color.
func StyleEstimate(s string, infinite bool) string {
	colors := GetCurrentTheme().Table
	if infinite {
		return render(colors.Infinite, s, false)
	}
	return render(colors.Estimate, s, false)
}

// StyleActual renders a measured duration.
func StyleActual(s string) string { return render(GetCurrentTheme().Table.Actual, s, true) }

// StyleDim renders separators and secondary text.
func StyleDim(s string) string { return render(GetCurrentTheme().Table.Dim, s, false) }

func render(color lipgloss.TerminalColor, s string, bold bool) string {
	if _, plain := color.(lipgloss.NoColor); plain {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(s)
}
