package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/jigsaw/internal/tile"
)

// Viewer renders a scrubbed composite tile, highlighting the cells
// cleared by monster removal. Images larger than the terminal can be
// panned with the arrow keys.
type Viewer struct {
	screen   *Screen
	image    *tile.Tile
	monsters int
	offsetX  int
	offsetY  int
}

// NewViewer creates a viewer for a scrubbed image.
func NewViewer(screen *Screen, image *tile.Tile, monsters int) *Viewer {
	return &Viewer{screen: screen, image: image, monsters: monsters}
}

// Run displays the image until the user quits with q or Escape.
func (v *Viewer) Run() {
	for {
		v.render()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

// handleKey processes one key event and reports whether to quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.pan(0, -1)
	case tcell.KeyDown:
		v.pan(0, 1)
	case tcell.KeyLeft:
		v.pan(-1, 0)
	case tcell.KeyRight:
		v.pan(1, 0)
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return true
		}
	}
	return false
}

// pan moves the viewport, clamped to the image bounds.
func (v *Viewer) pan(dx, dy int) {
	width, height := v.screen.Size()
	maxX := v.image.Size() - width
	maxY := v.image.Size() - (height - 1) // bottom row holds the status line
	v.offsetX = clamp(v.offsetX+dx, 0, maxX)
	v.offsetY = clamp(v.offsetY+dy, 0, maxY)
}

func (v *Viewer) render() {
	v.screen.Clear()

	width, height := v.screen.Size()
	scrubbed := make(map[[2]int]bool, len(v.image.ScrubbedCells()))
	for _, cell := range v.image.ScrubbedCells() {
		scrubbed[cell] = true
	}

	waterStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	monsterStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	side := v.image.Size()
	for y := 0; y < height-1; y++ {
		row := y + v.offsetY
		if row >= side {
			break
		}
		for x := 0; x < width; x++ {
			col := x + v.offsetX
			if col >= side {
				break
			}
			switch {
			case scrubbed[[2]int{row, col}]:
				v.screen.SetContent(x, y, 'O', monsterStyle)
			case v.image.At(row, col):
				v.screen.SetContent(x, y, '#', waterStyle)
			default:
				v.screen.SetContent(x, y, '.', emptyStyle)
			}
		}
	}

	status := fmt.Sprintf("%dx%d  monsters: %d  roughness: %d  (arrows pan, q quits)",
		side, side, v.monsters, v.image.Roughness())
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range status {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, ch, statusStyle)
	}

	v.screen.Show()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
