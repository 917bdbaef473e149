package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harunkazanli9/beontrack/internal/geometry"
)

// Canvas glyphs
const (
	GlyphWalked = '•'
	GlyphAhead  = '·'
	GlyphFlag   = '⚑'
	GlyphAvatar = '◉'
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellWalked
	cellAhead
	cellFlag
	cellFlagReached
	cellAvatar
)

// CanvasMarker is a milestone flag drawn on the canvas
type CanvasMarker struct {
	Position geometry.Point
	Reached  bool
}

// Canvas draws the journey path in a character grid. The viewport follows
// the avatar, keeping it at a third of the width.
type Canvas struct {
	Width  int
	Height int

	// XScale is the number of columns per world unit
	XScale float64
	// YRange is the world distance from the centre line to the top row
	YRange float64

	Points      []geometry.Point
	WalkedIndex int
	Avatar      geometry.Point
	Markers     []CanvasMarker

	styles map[cellKind]lipgloss.Style
}

// NewCanvas creates a canvas for a path whose curve stays within ±yRange
func NewCanvas(width, height int, yRange float64) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		XScale: 0.5,
		YRange: yRange,
		styles: map[cellKind]lipgloss.Style{
			cellEmpty:       lipgloss.NewStyle(),
			cellWalked:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			cellAhead:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			cellFlag:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			cellFlagReached: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
			cellAvatar:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}

// Cell maps a world point to a grid cell; ok is false outside the viewport
func (c *Canvas) Cell(p geometry.Point) (col, row int, ok bool) {
	left := c.Avatar.X - float64(c.Width)/3/c.XScale
	col = int(math.Round((p.X - left) * c.XScale))

	half := float64(c.Height-1) / 2
	yRange := c.YRange
	if yRange <= 0 {
		yRange = 1
	}
	row = int(math.Round(half - p.Y/yRange*half))

	ok = col >= 0 && col < c.Width && row >= 0 && row < c.Height
	return col, row, ok
}

func (c *Canvas) grid() [][]cellKind {
	if c.Width <= 0 || c.Height <= 0 {
		return nil
	}
	grid := make([][]cellKind, c.Height)
	for i := range grid {
		grid[i] = make([]cellKind, c.Width)
	}

	for i, p := range c.Points {
		col, row, ok := c.Cell(p)
		if !ok {
			continue
		}
		kind := cellAhead
		if i <= c.WalkedIndex {
			kind = cellWalked
		}
		if grid[row][col] != cellWalked {
			grid[row][col] = kind
		}
	}

	for _, m := range c.Markers {
		col, row, ok := c.Cell(m.Position)
		if !ok {
			continue
		}
		// flags sit one row above the path when there is room
		if row > 0 {
			row--
		}
		if m.Reached {
			grid[row][col] = cellFlagReached
		} else {
			grid[row][col] = cellFlag
		}
	}

	if col, row, ok := c.Cell(c.Avatar); ok {
		grid[row][col] = cellAvatar
	}
	return grid
}

// Render returns the canvas as Height lines of Width cells
func (c *Canvas) Render() string {
	grid := c.grid()
	lines := make([]string, len(grid))
	for r, cells := range grid {
		var b strings.Builder
		runStart := 0
		for i := 1; i <= len(cells); i++ {
			if i < len(cells) && cells[i] == cells[runStart] {
				continue
			}
			kind := cells[runStart]
			run := strings.Repeat(string(glyph(kind)), i-runStart)
			if kind == cellEmpty {
				b.WriteString(run)
			} else {
				b.WriteString(c.styles[kind].Render(run))
			}
			runStart = i
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func glyph(k cellKind) rune {
	switch k {
	case cellWalked:
		return GlyphWalked
	case cellAhead:
		return GlyphAhead
	case cellFlag, cellFlagReached:
		return GlyphFlag
	case cellAvatar:
		return GlyphAvatar
	default:
		return ' '
	}
}
