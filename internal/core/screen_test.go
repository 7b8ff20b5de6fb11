package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	require.Equal(t, 6, s.Width())
	require.Equal(t, 3, s.Height())
	assert.Equal(t, "      \n      \n      ", s.String())
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(2, 1))
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], '*', ColorRed)
		assert.Equal(t, ' ', s.Get(p[0], p[1]), "%v", p)
		assert.Equal(t, Cell{Rune: ' '}, s.GetCell(p[0], p[1]), "%v", p)
	}
	assert.NotContains(t, s.String(), "*")

	// Text running off the right edge is cut, not wrapped
	s.DrawText(2, 0, "HUD!")
	assert.Equal(t, "  HU", s.Row(0))
	assert.Equal(t, "    ", s.Row(1))
}

func TestScreenColorsFollowGlyphs(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(1, 0, "▲·█", ColorBrightYellow)
	s.Set(5, 1, '#')

	assert.Equal(t, Cell{Rune: '▲', Color: ColorBrightYellow}, s.GetCell(1, 0))
	assert.Equal(t, Cell{Rune: '█', Color: ColorBrightYellow}, s.GetCell(3, 0), "runes, not bytes")
	assert.Equal(t, ColorDefault, s.GetCell(5, 1).Color)

	s.Clear()
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(1, 0), "clear drops colors too")
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(7, 4)
	s.DrawText(0, 1, "xxxxxxx")
	r := NewRect(1, 0, 5, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r)

	want := []string{
		" ┌───┐ ",
		"x│   │x",
		" └───┘ ",
		"       ",
	}
	assert.Equal(t, strings.Join(want, "\n"), s.String())
}

func TestScreenHLine(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawHLine(3, 0, 10, '=')
	assert.Equal(t, "   ==", s.Row(0))
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	assert.Equal(t, "ab\nef\n  ", s.String())

	s.Resize(3, 1)
	assert.Equal(t, "ab ", s.Row(0))
	assert.Equal(t, "   ", s.Row(5), "rows outside the screen read blank")
}
