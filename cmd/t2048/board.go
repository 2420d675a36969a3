package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

const cellWidth = 6 // Width of each cell including the left border

// tileColors maps tile values to ANSI 256 colours.
var tileColors = map[int]string{
	2:    "250",
	4:    "223",
	8:    "215",
	16:   "208",
	32:   "202",
	64:   "196",
	128:  "229",
	256:  "228",
	512:  "227",
	1024: "226",
	2048: "220",
}

// tileStyle returns the style for a tile value.
func tileStyle(v int) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(v >= 128)
	if c, ok := tileColors[v]; ok {
		return style.Foreground(lipgloss.Color(c))
	}
	return style.Foreground(lipgloss.Color("201"))
}

// useColor reports whether w is a terminal.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderBoard draws the grid with box-drawing borders.
// Merged tiles are marked with '+', spawned tiles with '*'.
func renderBoard(g t2048.Grid, color bool) string {
	var b strings.Builder

	border := func(left, mid, right rune) {
		b.WriteRune(left)
		for x := range t2048.BoardSize {
			b.WriteString(strings.Repeat("─", cellWidth-1))
			if x < t2048.BoardSize-1 {
				b.WriteRune(mid)
			}
		}
		b.WriteRune(right)
		b.WriteByte('\n')
	}

	border('┌', '┬', '┐')
	for y := range t2048.BoardSize {
		b.WriteString("│")
		for x := range t2048.BoardSize {
			b.WriteString(renderCell(g[y][x], color))
			b.WriteString("│")
		}
		b.WriteByte('\n')
		if y < t2048.BoardSize-1 {
			border('├', '┼', '┤')
		}
	}
	border('└', '┴', '┘')

	return b.String()
}

// renderCell formats one cell, right-aligned with a marker column.
func renderCell(c t2048.Cell, color bool) string {
	if c.Empty() {
		return strings.Repeat(" ", cellWidth-1)
	}

	marker := " "
	switch {
	case c.Meta.Merged:
		marker = "+"
	case c.Meta.Spawned:
		marker = "*"
	}

	val := strconv.Itoa(c.Value)
	pad := cellWidth - 2 - len(val)
	if pad < 0 {
		pad = 0
	}
	text := strings.Repeat(" ", pad) + val
	if color {
		text = tileStyle(c.Value).Render(text)
	}
	return text + marker
}
