package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// palette maps screen colors to terminal colors. The arcade hues are true
// color; lipgloss downsamples them on limited terminals.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:           lipgloss.Color("#FF0000"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("#FFFF00"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("#00FFFF"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("#FFB852"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorPink:          lipgloss.Color("#FFB8FF"),
	core.ColorPeach:         lipgloss.Color("#FFB897"),
	core.ColorNavy:          lipgloss.Color("#2121DE"),
}

func terminalColor(c core.Color) lipgloss.TerminalColor {
	if tc, ok := palette[c]; ok {
		return tc
	}
	return lipgloss.NoColor{}
}

// styleFor builds the style for a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		st = st.Foreground(terminalColor(fg))
	}
	if bg != core.ColorDefault {
		st = st.Background(terminalColor(bg))
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as runs of cells sharing both colors.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	var fg, bg core.Color

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if fg == core.ColorDefault && bg == core.ColorDefault {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(styleFor(fg, bg).Render(run.String()))
		}
		run.Reset()
	}

	for x := 0; x < s.Width(); x++ {
		c := s.GetCell(x, y)
		if c.Color != fg || c.Bg != bg {
			flush()
			fg, bg = c.Color, c.Bg
		}
		run.WriteRune(c.Rune)
	}
	flush()
}
