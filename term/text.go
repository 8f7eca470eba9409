package term

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Text is terminal content rendered at an integer cell scale: at size N
// every glyph cell of the source text occupies an N-wide, N-tall block.
// It implements the fit engine's Content contract, so a fit run can
// apply candidate scales and measure the resulting extent.
//
// Text is safe for concurrent use: a fit unwinding on a background
// goroutine may apply a size while the owning view renders.
type Text struct {
	mu        sync.Mutex
	content   string
	size      int
	wrapWidth int
}

// NewText creates content at scale 1 with wrapping disabled.
func NewText(content string) *Text {
	return &Text{content: content, size: 1}
}

// SetContent replaces the source text.
func (t *Text) SetContent(content string) {
	t.mu.Lock()
	t.content = content
	t.mu.Unlock()
}

// Content returns the source text.
func (t *Text) Content() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.content
}

// SetSize applies a candidate scale. Scales below 1 are clamped to 1.
func (t *Text) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	t.mu.Lock()
	t.size = size
	t.mu.Unlock()
}

// Size returns the currently applied scale.
func (t *Text) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// SetWrapWidth enables multi-line wrapping at the given cell width, the
// container's inner width. Zero disables wrapping (single-line layout).
// The number of glyph columns available shrinks as the scale grows, so
// the text reflows at every applied size.
func (t *Text) SetWrapWidth(width int) {
	if width < 0 {
		width = 0
	}
	t.mu.Lock()
	t.wrapWidth = width
	t.mu.Unlock()
}

// ScrollSize returns the rendered extent in cells at the current scale.
func (t *Text) ScrollSize() (float64, float64) {
	t.mu.Lock()
	lines, size := t.lines(), t.size
	t.mu.Unlock()

	widest := 0
	for _, ln := range lines {
		if w := lipgloss.Width(ln); w > widest {
			widest = w
		}
	}
	return float64(widest * size), float64(len(lines) * size)
}

// Render draws the text at the current scale: each source line becomes
// size rows, each rune repeated size times per row.
func (t *Text) Render() string {
	t.mu.Lock()
	lines, size := t.lines(), t.size
	t.mu.Unlock()

	var b strings.Builder
	for li, line := range lines {
		var row strings.Builder
		for _, r := range line {
			row.WriteString(strings.Repeat(string(r), size))
		}
		for i := 0; i < size; i++ {
			if li > 0 || i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(row.String())
		}
	}
	return b.String()
}

// lines is called with t.mu held.
func (t *Text) lines() []string {
	if t.wrapWidth <= 0 {
		return strings.Split(t.content, "\n")
	}
	cols := t.wrapWidth / t.size
	if cols < 1 {
		cols = 1
	}
	return wrapLines(t.content, cols)
}

// wrapLines greedily wraps each paragraph at cols glyph columns. A word
// wider than the line is kept intact and overflows, mirroring how
// unbreakable content behaves in a real layout engine; the fit engine's
// secondary width test is what catches it.
func wrapLines(s string, cols int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(w) <= cols {
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
