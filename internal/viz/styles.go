package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title   lipgloss.Style
	status  lipgloss.Style
	canvas  lipgloss.Style
	panel   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	focused lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
	graph   lipgloss.Style
	modal   lipgloss.Style
	heading lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		status:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		canvas:  lipgloss.NewStyle().Foreground(t.Text).Border(lipgloss.RoundedBorder()).BorderForeground(t.Border),
		panel:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Border).Padding(0, 2).Width(44),
		label:   lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		value:   lipgloss.NewStyle().Foreground(t.Text),
		focused: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Width(14),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		err:     lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		graph:   lipgloss.NewStyle().Foreground(t.Success).Padding(1, 0),
		modal:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Title).Padding(1, 3),
		heading: lipgloss.NewStyle().Foreground(t.Title).Bold(true),
	}
}

// GradientText colors each rune of text along a linear ramp.
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(Blend(startColor, endColor, t))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// Blend mixes two hex colors, t=0 giving a and t=1 giving b.
func Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	ar, ag, ab := parseHex(string(a))
	br, bg, bb := parseHex(string(b))
	mix := func(x, y int) int { return int(float64(x) + t*float64(y-x) + 0.5) }
	return lipgloss.Color(hexColor(mix(ar, br), mix(ag, bg), mix(ab, bb)))
}

func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return left + " ◆ " + right
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
