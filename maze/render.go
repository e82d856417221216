package maze

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderOptions controls Render output.
type RenderOptions struct {
	// Route lists rooms to highlight, usually RouteRooms of a Solve result.
	Route []Room
	// RouteGlyph is drawn centred in highlighted rooms, truncated to the cell width.
	RouteGlyph string
	// Style decorates each highlighted cell after padding, e.g. with terminal
	// colours. It must not add visible characters.
	Style func(string) string
}

// DefaultRenderOptions draws no route; a route, when set, uses "o" unstyled.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		RouteGlyph: "o",
		Style:      func(s string) string { return s },
	}
}

const (
	corner   = "+"
	hWall    = "---"
	hOpen    = "   "
	vWall    = "|"
	vOpen    = " "
	emptyRow = "   "
)

// routeCell centres glyph in a cell as wide as a wall segment, by display width.
func routeCell(glyph string) string {
	width := runewidth.StringWidth(hWall)
	glyph = runewidth.Truncate(glyph, width, "")
	gap := width - runewidth.StringWidth(glyph)
	left := gap / 2

	return strings.Repeat(" ", left) + glyph + strings.Repeat(" ", gap-left)
}

// Render draws a grid maze as ASCII with the walls in removed knocked down.
// Walls that do not join orthogonal neighbours are ignored. Mazes without grid
// dimensions render as an empty string.
//
// Complexity: O(rows·cols + len(removed)).
func Render(m *Maze, removed []*Wall, opts RenderOptions) string {
	if m == nil || m.Rows < 1 || m.Cols < 1 {
		return ""
	}
	if opts.Style == nil {
		opts.Style = func(s string) string { return s }
	}
	if opts.RouteGlyph == "" {
		opts.RouteGlyph = DefaultRenderOptions().RouteGlyph
	}

	// eastOpen[r][c]: no wall between (r,c) and (r,c+1); southOpen likewise downward.
	eastOpen := make([][]bool, m.Rows)
	southOpen := make([][]bool, m.Rows)
	onRoute := make([][]bool, m.Rows)
	for r := range eastOpen {
		eastOpen[r] = make([]bool, m.Cols)
		southOpen[r] = make([]bool, m.Cols)
		onRoute[r] = make([]bool, m.Cols)
	}
	inGrid := func(x Room) bool { return x.Row >= 0 && x.Row < m.Rows && x.Col >= 0 && x.Col < m.Cols }
	for _, w := range removed {
		if w == nil || !inGrid(w.room1) || !inGrid(w.room2) {
			continue
		}
		a, b := w.room1, w.room2
		if a.Row > b.Row || a.Col > b.Col {
			a, b = b, a
		}
		switch {
		case a.Row == b.Row && b.Col == a.Col+1:
			eastOpen[a.Row][a.Col] = true
		case a.Col == b.Col && b.Row == a.Row+1:
			southOpen[a.Row][a.Col] = true
		}
	}
	for _, x := range opts.Route {
		if inGrid(x) {
			onRoute[x.Row][x.Col] = true
		}
	}

	cell := opts.Style(routeCell(opts.RouteGlyph))

	var sb strings.Builder
	sb.WriteString(corner)
	for c := 0; c < m.Cols; c++ {
		sb.WriteString(hWall + corner)
	}
	sb.WriteByte('\n')

	for r := 0; r < m.Rows; r++ {
		sb.WriteString(vWall)
		for c := 0; c < m.Cols; c++ {
			if onRoute[r][c] {
				sb.WriteString(cell)
			} else {
				sb.WriteString(emptyRow)
			}
			if c+1 < m.Cols && eastOpen[r][c] {
				sb.WriteString(vOpen)
			} else {
				sb.WriteString(vWall)
			}
		}
		sb.WriteByte('\n')

		sb.WriteString(corner)
		for c := 0; c < m.Cols; c++ {
			if r+1 < m.Rows && southOpen[r][c] {
				sb.WriteString(hOpen)
			} else {
				sb.WriteString(hWall)
			}
			sb.WriteString(corner)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
