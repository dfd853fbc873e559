package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColor(0, 0, "red", core.ColorRed)
	s.DrawText(4, 0, "plain")
	s.SetCellBg(0, 1, '█', core.ColorNavy, core.ColorNavy)
	s.SetCellBg(1, 1, '█', core.ColorNavy, core.ColorNavy)
	s.DrawTextColor(0, 2, "ᗣ", core.ColorPink)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("line breaks = %d, expected 2", got)
	}
	for _, text := range []string{"red", "plain", "██", "ᗣ"} {
		if !strings.Contains(out, text) {
			t.Errorf("RenderScreen() missing %q", text)
		}
	}
}

func TestRenderScreenPlainRows(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")

	if got := RenderScreen(s); got != "hello\n     " {
		t.Errorf("RenderScreen() = %q, expected unstyled text", got)
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		name         string
		fg, bg       core.Color
		hasFg, hasBg bool
	}{
		{"default", core.ColorDefault, core.ColorDefault, false, false},
		{"foreground", core.ColorYellow, core.ColorDefault, true, false},
		{"filled wall", core.ColorNavy, core.ColorNavy, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := styleFor(tc.fg, tc.bg)
			_, noFg := st.GetForeground().(lipgloss.NoColor)
			_, noBg := st.GetBackground().(lipgloss.NoColor)
			if noFg == tc.hasFg {
				t.Errorf("foreground set = %v, expected %v", !noFg, tc.hasFg)
			}
			if noBg == tc.hasBg {
				t.Errorf("background set = %v, expected %v", !noBg, tc.hasBg)
			}
		})
	}
}

func TestPaletteCoversGameColors(t *testing.T) {
	for _, c := range []core.Color{core.ColorRed, core.ColorPink, core.ColorCyan, core.ColorOrange, core.ColorYellow, core.ColorNavy, core.ColorPeach, core.ColorBrightWhite} {
		if _, ok := terminalColor(c).(lipgloss.NoColor); ok {
			t.Errorf("no terminal color for %v", c)
		}
	}
}
