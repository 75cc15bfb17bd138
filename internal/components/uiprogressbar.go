package components

import rl "github.com/gen2brain/raylib-go/raylib"

// UIProgressBar displays a fill-based progress indicator (health bar, loading, etc.)
type UIProgressBar struct {
	// Current value (0 to MaxValue)
	Value    float32
	MaxValue float32

	BackgroundColor rl.Color
	FillColor       rl.Color
	// WarnColor replaces FillColor once the bar passes WarnAt (0 disables).
	WarnColor   rl.Color
	WarnAt      float32
	BorderColor rl.Color

	// Border width (0 = no border)
	BorderWidth int32

	FillFromRight bool
}

func NewUIProgressBar() *UIProgressBar {
	return &UIProgressBar{
		Value:           0,
		MaxValue:        100,
		BackgroundColor: rl.NewColor(40, 40, 50, 255),
		FillColor:       rl.NewColor(80, 200, 80, 255),
		WarnColor:       rl.NewColor(220, 70, 60, 255),
		BorderColor:     rl.NewColor(60, 60, 75, 255),
		BorderWidth:     1,
	}
}

// GetPercent returns the fill percentage (0-1)
func (pb *UIProgressBar) GetPercent() float32 {
	return fraction(pb.Value, pb.MaxValue)
}

// SetPercent sets value based on percentage (0-1)
func (pb *UIProgressBar) SetPercent(percent float32) {
	pb.Value = percent * pb.MaxValue
}

// CurrentFillColor picks the warn color when the bar is past WarnAt.
func (pb *UIProgressBar) CurrentFillColor() rl.Color {
	if pb.WarnAt > 0 && pb.GetPercent() >= pb.WarnAt {
		return pb.WarnColor
	}
	return pb.FillColor
}

// Draw renders the progress bar
func (pb *UIProgressBar) Draw(rect rl.Rectangle) {
	rl.DrawRectangleRec(rect, pb.BackgroundColor)

	fillWidth := rect.Width * pb.GetPercent()
	fillRect := rl.Rectangle{X: rect.X, Y: rect.Y, Width: fillWidth, Height: rect.Height}
	if pb.FillFromRight {
		fillRect.X = rect.X + rect.Width - fillWidth
	}

	if fillWidth > 0 {
		rl.DrawRectangleRec(fillRect, pb.CurrentFillColor())
	}

	if pb.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(pb.BorderWidth), pb.BorderColor)
	}
}
