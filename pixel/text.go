package pixel

import (
	"strings"
	"sync"
)

// Frame is a pixel-space container: a fixed box with uniform padding and
// no border.
type Frame struct {
	Width   float64
	Height  float64
	Padding float64
}

// Size returns the outer box dimensions in document units.
func (f Frame) Size() (float64, float64) {
	return f.Width, f.Height
}

// FrameSize returns the space consumed by padding on each axis.
func (f Frame) FrameSize() (float64, float64) {
	return 2 * f.Padding, 2 * f.Padding
}

// Text measures a string laid out at a given font size in points. It
// implements the fit engine's Content contract: SetSize applies a
// candidate point size and ScrollSize reports the shaped extent.
//
// Text is safe for concurrent use, matching term.Text.
type Text struct {
	mu        sync.Mutex
	face      *Face
	content   string
	sizePt    float64
	wrapWidth float64
}

// NewText creates pixel content at 1pt with wrapping disabled.
func NewText(face *Face, content string) *Text {
	return &Text{face: face, content: content, sizePt: 1}
}

// SetContent replaces the source text.
func (t *Text) SetContent(content string) {
	t.mu.Lock()
	t.content = content
	t.mu.Unlock()
}

// SetSize applies a candidate font size in points.
func (t *Text) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	t.mu.Lock()
	t.sizePt = float64(size)
	t.mu.Unlock()
}

// SetWrapWidth enables multi-line wrapping at the given width in
// document units, the container's inner width. Zero disables wrapping.
func (t *Text) SetWrapWidth(width float64) {
	if width < 0 {
		width = 0
	}
	t.mu.Lock()
	t.wrapWidth = width
	t.mu.Unlock()
}

// ScrollSize returns the shaped extent in document units: the widest
// laid-out line by the line count times the face's line height at the
// applied point size.
func (t *Text) ScrollSize() (float64, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	face := t.face.at(t.sizePt)
	lines := t.lines(face.TextWidth)
	widest := 0.0
	for _, ln := range lines {
		if w := face.TextWidth(ln); w > widest {
			widest = w
		}
	}
	return widest, float64(len(lines)) * face.Metrics().LineHeight
}

func (t *Text) lines(textWidth func(string) float64) []string {
	if t.wrapWidth <= 0 {
		return strings.Split(t.content, "\n")
	}
	return wrapLines(t.content, t.wrapWidth, textWidth)
}

// wrapLines greedily wraps each paragraph at the given width. A word
// wider than the line overflows intact; the secondary width test is what
// catches it.
func wrapLines(s string, width float64, textWidth func(string) float64) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if textWidth(line+" "+w) <= width {
				line += " " + w
			} else {
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return out
}
