package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextInput is a single-line command box. Enter submits the trimmed text and
// Escape abandons it; both deactivate the box.
type TextInput struct {
	Text     string
	IsActive bool
	Rect
	OnSubmit func(string)

	history []string
	recall  int
}

func NewTextInput(x, y, width, height int, onSubmit func(string)) *TextInput {
	return &TextInput{
		Rect:     Rect{X: x, Y: y, Width: width, Height: height},
		OnSubmit: onSubmit,
	}
}

func (ti *TextInput) Update() {
	if !ti.IsActive {
		return
	}

	ti.Text += string(ebiten.AppendInputChars(nil))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if len(ti.Text) > 0 {
			r := []rune(ti.Text)
			ti.Text = string(r[:len(r)-1])
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		ti.Recall(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		ti.Recall(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ti.Text = ""
		ti.IsActive = false
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		ti.Submit()
	}
}

// Submit hands the current text to OnSubmit and clears the box. Empty input
// is dropped.
func (ti *TextInput) Submit() {
	cmd := strings.TrimSpace(ti.Text)
	ti.Text = ""
	ti.IsActive = false
	if cmd == "" {
		return
	}
	ti.history = append(ti.history, cmd)
	ti.recall = len(ti.history)
	if ti.OnSubmit != nil {
		ti.OnSubmit(cmd)
	}
}

// Recall steps through previously submitted commands; dir is -1 for older
// and 1 for newer.
func (ti *TextInput) Recall(dir int) {
	if len(ti.history) == 0 {
		return
	}
	ti.recall = min(max(ti.recall+dir, 0), len(ti.history))
	if ti.recall == len(ti.history) {
		ti.Text = ""
		return
	}
	ti.Text = ti.history[ti.recall]
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	bgColor := color.RGBA{50, 50, 50, 255}
	if ti.IsActive {
		bgColor = color.RGBA{80, 80, 80, 255}
	}
	ti.Rect.Fill(screen, bgColor)
	ti.Rect.Border(screen, color.White)

	displayTxt := ti.Text
	if ti.IsActive {
		displayTxt += "_"
	}
	ebitenutil.DebugPrintAt(screen, displayTxt, ti.X+5, ti.Y+(ti.Height-16)/2)
}

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

func (r Rect) Fill(screen *ebiten.Image, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (r Rect) Border(screen *ebiten.Image, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)
	vector.DrawFilledRect(screen, x, y, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false)
	vector.DrawFilledRect(screen, x, y, 1, h, c, false)
	vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false)
}
