package term

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/textfit/textfit/fit"
	"github.com/textfit/textfit/measure"
)

func TestScrollSizeScalesLinearly(t *testing.T) {
	txt := NewText("hello")

	txt.SetSize(1)
	w, h := txt.ScrollSize()
	if w != 5 || h != 1 {
		t.Fatalf("size 1 extent = %gx%g, want 5x1", w, h)
	}

	txt.SetSize(4)
	w, h = txt.ScrollSize()
	if w != 20 || h != 4 {
		t.Fatalf("size 4 extent = %gx%g, want 20x4", w, h)
	}
}

func TestScrollSizeMultiline(t *testing.T) {
	txt := NewText("ab\nlonger")
	txt.SetSize(2)
	w, h := txt.ScrollSize()
	if w != 12 || h != 4 {
		t.Errorf("extent = %gx%g, want 12x4 (widest line times scale)", w, h)
	}
}

func TestWrappingReflowsPerScale(t *testing.T) {
	txt := NewText("one two three four")
	txt.SetWrapWidth(20)

	txt.SetSize(1) // 20 columns available: fits on one 18-wide line
	w, h := txt.ScrollSize()
	if h != 1 {
		t.Errorf("scale 1: height = %g, want 1 (got width %g)", h, w)
	}

	txt.SetSize(2) // 10 columns available: must wrap
	_, h = txt.ScrollSize()
	if h <= 2 {
		t.Errorf("scale 2: height = %g, want wrapped onto multiple rows", h)
	}
}

func TestOverlongWordOverflows(t *testing.T) {
	txt := NewText("a extraordinarily b")
	txt.SetWrapWidth(10)
	txt.SetSize(1)
	w, _ := txt.ScrollSize()
	if w <= 10 {
		t.Errorf("width = %g; an unbreakable word must overflow the wrap width", w)
	}
}

func TestRenderBlockScaling(t *testing.T) {
	txt := NewText("ab")
	txt.SetSize(2)
	got := txt.Render()
	want := "aabb\naabb"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if lipgloss.Width(got) != 4 || lipgloss.Height(got) != 2 {
		t.Errorf("rendered extent = %dx%d, want 4x2", lipgloss.Width(got), lipgloss.Height(got))
	}
}

func TestSetSizeClampsToOne(t *testing.T) {
	txt := NewText("x")
	txt.SetSize(0)
	if txt.Size() != 1 {
		t.Errorf("Size() = %d, want 1", txt.Size())
	}
}

func TestBoxFrame(t *testing.T) {
	b := Box{
		Width:  40,
		Height: 10,
		Style:  lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.NormalBorder()),
	}
	if got := measure.InnerWidth(b); got != 40-2-4 {
		t.Errorf("InnerWidth = %g, want 34", got)
	}
	if got := measure.InnerHeight(b); got != 10-2-2 {
		t.Errorf("InnerHeight = %g, want 6", got)
	}
}

// A full fit against the terminal surface: the headline should grow to
// the largest scale whose rendered width still fits the box.
func TestFitHeadlineInBox(t *testing.T) {
	box := Box{Width: 60, Height: 20}
	txt := NewText("BIG")

	e := fit.NewEngine(fit.Config{MinSize: 1, MaxSize: 100, Mode: fit.ModeSingle})
	e.BindSurface(box, txt)

	done := make(chan int, 1)
	e.OnSettled = func(_ uint64, size int, ready bool) {
		if !ready {
			t.Error("fit did not finalize")
		}
		done <- size
	}
	e.Start()
	size := <-done

	// 3 glyphs at scale 20 is exactly 60 cells wide; 21 would be 63,
	// beyond the one-cell tolerance.
	if size != 20 {
		t.Errorf("fitted scale = %d, want 20", size)
	}
	txt.SetSize(size)
	if !measure.FitsWidth(txt, measure.InnerWidth(box)) {
		t.Error("fitted content does not fit its box")
	}
}

func TestFitParagraphInBox(t *testing.T) {
	box := Box{Width: 40, Height: 12, Style: lipgloss.NewStyle().Padding(0, 1)}
	txt := NewText("the quick brown fox jumps over the lazy dog")
	txt.SetWrapWidth(int(measure.InnerWidth(box)))

	e := fit.NewEngine(fit.Config{MinSize: 1, MaxSize: 100, Mode: fit.ModeMulti})
	e.BindSurface(box, txt)

	done := make(chan int, 1)
	e.OnSettled = func(_ uint64, size int, ready bool) {
		if !ready {
			t.Error("fit did not finalize")
		}
		done <- size
	}
	e.Start()
	size := <-done

	if size < 1 || size > 100 {
		t.Fatalf("fitted scale %d outside bounds", size)
	}
	txt.SetSize(size)
	if !measure.FitsHeight(txt, measure.InnerHeight(box)) {
		t.Error("fitted paragraph overflows the box height")
	}

	// One scale larger must overflow at least one axis, otherwise the
	// search stopped early.
	txt.SetSize(size + 1)
	if measure.FitsHeight(txt, measure.InnerHeight(box)) &&
		measure.FitsWidth(txt, measure.InnerWidth(box)) {
		t.Errorf("scale %d still fits; search under-shot", size+1)
	}
	txt.SetSize(size)

	out := Render(box, txt)
	if out == "" {
		t.Error("rendered output is empty")
	}
}

// Render is a convenience wrapper used by the demo; exercised here so
// the box/text pairing stays in sync.
func Render(b Box, t *Text) string {
	return b.Render(t.Render())
}
