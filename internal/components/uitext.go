package components

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText displays text on screen. Multi-line text is stacked downward.
type UIText struct {
	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText() *UIText {
	return &UIText{
		FontSize:  20,
		Color:     rl.White,
		Alignment: TextAlignLeft,
	}
}

// Lines splits Text on newlines.
func (t *UIText) Lines() []string {
	if t.Text == "" {
		return nil
	}
	return strings.Split(t.Text, "\n")
}

// Draw renders the text within the given rect
func (t *UIText) Draw(rect rl.Rectangle) {
	lines := t.Lines()
	if len(lines) == 0 {
		return
	}

	lineHeight := float32(t.FontSize) + 4
	y := rect.Y + (rect.Height-lineHeight*float32(len(lines)))/2
	for _, line := range lines {
		textWidth := float32(rl.MeasureText(line, t.FontSize))

		var x float32
		switch t.Alignment {
		case TextAlignLeft:
			x = rect.X
		case TextAlignCenter:
			x = rect.X + (rect.Width-textWidth)/2
		case TextAlignRight:
			x = rect.X + rect.Width - textWidth
		}

		rl.DrawText(line, int32(x), int32(y), t.FontSize, t.Color)
		y += lineHeight
	}
}
