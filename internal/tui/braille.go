package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	c    [][]string // per-cell colour, last writer wins
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, col string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.c[cy][cx] = col
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, col string) {
	// far off-screen segments would take forever to walk
	const limit = 1 << 14
	if abs(x0) > limit || abs(y0) > limit || abs(x1) > limit || abs(y1) > limit {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircleMicro draws a circle outline with the midpoint algorithm.
func (b *brailleBuf) drawCircleMicro(cx, cy, r int, col string) {
	if r <= 0 {
		b.setPixel(cx, cy, col)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{cx + x, cy + y}, {cx - x, cy + y}, {cx + x, cy - y}, {cx - x, cy - y},
			{cx + y, cy + x}, {cx - y, cy + x}, {cx + y, cy - x}, {cx - y, cy - x},
		} {
			b.setPixel(p[0], p[1], col)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// toLines renders each row, colouring runs of cells that share a colour.
func (b *brailleBuf) toLines() []string {
	styles := map[string]lipgloss.Style{}
	paint := func(sb *strings.Builder, run []rune, col string) {
		if len(run) == 0 {
			return
		}
		if col == "" {
			sb.WriteString(string(run))
			return
		}
		st, ok := styles[col]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(col))
			styles[col] = st
		}
		sb.WriteString(st.Render(string(run)))
	}
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		runCol := ""
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			r, col := ' ', ""
			if mask != 0 {
				r, col = rune(0x2800+int(mask)), b.c[y][x]
			}
			if col != runCol {
				paint(&sb, run, runCol)
				run, runCol = run[:0], col
			}
			run = append(run, r)
		}
		paint(&sb, run, runCol)
		out[y] = sb.String()
	}
	return out
}
