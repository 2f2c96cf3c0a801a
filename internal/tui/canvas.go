package tui

import (
	"math"
	"strings"

	"github.com/alexisbeaulieu97/walkthrough/internal/domain/tour"
)

// canvas is a grid of cells, each with a rune and a style class.
type canvas struct {
	width   int
	height  int
	runes   [][]rune
	classes [][]cellClass
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.runes = make([][]rune, height)
	c.classes = make([][]cellClass, height)
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.classes[y] = make([]cellClass, width)
	}
	return c
}

// bounds converts a rectangle into cell coordinates clipped to the canvas.
// Edges are rounded so adjacent rectangles tile without gaps.
func (c *canvas) bounds(r tour.Rect) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(math.Round(r.X)), 0, c.width)
	y0 = clampInt(int(math.Round(r.Y)), 0, c.height)
	x1 = clampInt(int(math.Round(r.X+r.Width)), 0, c.width)
	y1 = clampInt(int(math.Round(r.Y+r.Height)), 0, c.height)
	return x0, y0, x1, y1
}

func (c *canvas) set(x, y int, r rune, class cellClass) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.runes[y][x] = r
	c.classes[y][x] = class
}

func (c *canvas) text(x, y int, s string, class cellClass) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, class)
	}
}

// shade changes the class of every cell in r, keeping its rune.
func (c *canvas) shade(r tour.Rect, class cellClass) {
	x0, y0, x1, y1 := c.bounds(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.classes[y][x] = class
		}
	}
}

// fill blanks every cell in r.
func (c *canvas) fill(r tour.Rect, class cellClass) {
	x0, y0, x1, y1 := c.bounds(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, ' ', class)
		}
	}
}

func (c *canvas) box(r tour.Rect, class cellClass) {
	x0, y0, x1, y1 := c.bounds(r)
	if x1-x0 < 2 || y1-y0 < 2 {
		c.shade(r, class)
		return
	}
	for x := x0 + 1; x < x1-1; x++ {
		c.set(x, y0, '─', class)
		c.set(x, y1-1, '─', class)
	}
	for y := y0 + 1; y < y1-1; y++ {
		c.set(x0, y, '│', class)
		c.set(x1-1, y, '│', class)
	}
	c.set(x0, y0, '┌', class)
	c.set(x1-1, y0, '┐', class)
	c.set(x0, y1-1, '└', class)
	c.set(x1-1, y1-1, '┘', class)
}

// render styles each run of same-class cells.
func (c *canvas) render(s styles) string {
	lines := make([]string, 0, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.classes[y][x] == c.classes[y][start] {
				continue
			}
			line.WriteString(s.render(c.classes[y][start], string(c.runes[y][start:x])))
			start = x
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// plain returns the canvas without styling.
func (c *canvas) plain() string {
	lines := make([]string, 0, c.height)
	for _, row := range c.runes {
		lines = append(lines, string(row))
	}
	return strings.Join(lines, "\n")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
