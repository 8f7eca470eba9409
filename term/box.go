package term

import "github.com/charmbracelet/lipgloss"

// Box is a terminal container: an outer cell box plus a lipgloss style
// whose padding and border determine the usable inner area.
type Box struct {
	Style  lipgloss.Style
	Width  int
	Height int
}

// Size returns the outer box dimensions in cells.
func (b Box) Size() (float64, float64) {
	return float64(b.Width), float64(b.Height)
}

// FrameSize returns the cells consumed by the style's border and padding.
func (b Box) FrameSize() (float64, float64) {
	return float64(b.Style.GetHorizontalFrameSize()), float64(b.Style.GetVerticalFrameSize())
}

// Render draws content inside the box's frame.
func (b Box) Render(content string) string {
	return b.Style.Render(content)
}
