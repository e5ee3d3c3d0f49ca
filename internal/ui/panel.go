package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const lineHeight = 16

var (
	PanelBackground = color.RGBA{20, 24, 28, 255}
	PanelBorder     = color.RGBA{90, 100, 110, 255}
	Urgent          = color.RGBA{230, 60, 60, 255}
	Caution         = color.RGBA{240, 180, 40, 255}
	Normal          = color.RGBA{80, 200, 120, 255}
	Idle            = color.RGBA{110, 110, 110, 255}
)

// Line is one row of a panel. A non-nil Marker draws a coloured square in
// front of the text.
type Line struct {
	Text   string
	Marker color.Color
}

// Panel is a bordered box with a title and a list of lines. Lines that do not
// fit are cut off at the bottom.
type Panel struct {
	Rect
	Title string
	Lines []Line
}

func NewPanel(x, y, width, height int, title string) *Panel {
	return &Panel{Rect: Rect{X: x, Y: y, Width: width, Height: height}, Title: title}
}

func (p *Panel) Add(text string, marker color.Color) {
	p.Lines = append(p.Lines, Line{Text: text, Marker: marker})
}

func (p *Panel) Reset() {
	p.Lines = p.Lines[:0]
}

// Capacity is the number of lines that fit under the title.
func (p *Panel) Capacity() int {
	return max(0, (p.Height-lineHeight-8)/lineHeight)
}

// LineAt returns the index of the line under a screen position, or -1.
func (p *Panel) LineAt(x, y int) int {
	if !p.Contains(x, y) {
		return -1
	}
	i := (y - p.Y - lineHeight - 6) / lineHeight
	if y < p.Y+lineHeight+6 || i >= len(p.Lines) || i >= p.Capacity() {
		return -1
	}
	return i
}

func (p *Panel) Draw(screen *ebiten.Image) {
	p.Rect.Fill(screen, PanelBackground)
	p.Rect.Border(screen, PanelBorder)
	ebitenutil.DebugPrintAt(screen, p.Title, p.X+6, p.Y+2)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y+lineHeight+2), float32(p.Width), 1, PanelBorder, false)

	y := p.Y + lineHeight + 6
	for i, l := range p.Lines {
		if i >= p.Capacity() {
			break
		}
		x := p.X + 6
		if l.Marker != nil {
			vector.DrawFilledRect(screen, float32(x), float32(y+4), 8, 8, l.Marker, false)
			x += 14
		}
		ebitenutil.DebugPrintAt(screen, l.Text, x, y)
		y += lineHeight
	}
}
