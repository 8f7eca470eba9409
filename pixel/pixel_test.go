package pixel

import (
	"testing"

	"github.com/textfit/textfit/fit"
	"github.com/textfit/textfit/measure"
)

func loadFace(t *testing.T) *Face {
	t.Helper()
	face, err := DefaultFace()
	if err != nil {
		t.Fatalf("DefaultFace: %v", err)
	}
	return face
}

func TestNewFaceRejectsGarbage(t *testing.T) {
	if _, err := NewFace([]byte("not a font")); err == nil {
		t.Error("expected an error for invalid font data")
	}
}

func TestExtentGrowsWithSize(t *testing.T) {
	txt := NewText(loadFace(t), "Hello, world")

	txt.SetSize(10)
	w10, h10 := txt.ScrollSize()
	txt.SetSize(20)
	w20, h20 := txt.ScrollSize()

	if w10 <= 0 || h10 <= 0 {
		t.Fatalf("extent at 10pt = %gx%g, want positive", w10, h10)
	}
	if w20 <= w10 || h20 <= h10 {
		t.Errorf("extent did not grow with size: %gx%g then %gx%g", w10, h10, w20, h20)
	}
}

func TestWrappingBoundsLineWidth(t *testing.T) {
	txt := NewText(loadFace(t), "several words that will need to wrap somewhere")
	txt.SetSize(12)

	txt.SetWrapWidth(0)
	unwrappedW, unwrappedH := txt.ScrollSize()

	txt.SetWrapWidth(unwrappedW / 3)
	wrappedW, wrappedH := txt.ScrollSize()

	if wrappedW >= unwrappedW {
		t.Errorf("wrapping did not narrow the extent: %g >= %g", wrappedW, unwrappedW)
	}
	if wrappedH <= unwrappedH {
		t.Errorf("wrapping did not add lines: %g <= %g", wrappedH, unwrappedH)
	}
}

func TestFrameInnerBox(t *testing.T) {
	f := Frame{Width: 200, Height: 50, Padding: 5}
	if got := measure.InnerWidth(f); got != 190 {
		t.Errorf("InnerWidth = %g, want 190", got)
	}
	if got := measure.InnerHeight(f); got != 40 {
		t.Errorf("InnerHeight = %g, want 40", got)
	}
}

// Fit a headline into a pixel frame: the result must be the largest
// point size whose shaped width stays within the inner box. The frame
// is sized so the boundary falls strictly inside the search range.
func TestFitHeadlineInFrame(t *testing.T) {
	frame := Frame{Width: 100, Height: 100}
	txt := NewText(loadFace(t), "Headline")

	e := fit.NewEngine(fit.Config{MinSize: 1, MaxSize: 200, Mode: fit.ModeSingle})
	e.BindSurface(frame, txt)

	done := make(chan int, 1)
	e.OnSettled = func(_ uint64, size int, ready bool) {
		if !ready {
			t.Error("fit did not finalize")
		}
		done <- size
	}
	e.Start()
	size := <-done

	if size < 1 || size > 200 {
		t.Fatalf("fitted size %d outside bounds", size)
	}
	txt.SetSize(size)
	if !measure.FitsWidth(txt, measure.InnerWidth(frame)) {
		t.Errorf("size %d overflows the frame width", size)
	}
	txt.SetSize(size + 1)
	if measure.FitsWidth(txt, measure.InnerWidth(frame)) {
		t.Errorf("size %d still fits; the search under-shot", size+1)
	}
}

func TestFitParagraphInFrame(t *testing.T) {
	frame := Frame{Width: 200, Height: 80, Padding: 4}
	txt := NewText(loadFace(t), "the quick brown fox jumps over the lazy dog and keeps running")
	txt.SetWrapWidth(measure.InnerWidth(frame))

	e := fit.NewEngine(fit.Config{MinSize: 1, MaxSize: 100, Mode: fit.ModeMulti})
	e.BindSurface(frame, txt)

	done := make(chan int, 1)
	e.OnSettled = func(_ uint64, size int, ready bool) {
		if !ready {
			t.Error("fit did not finalize")
		}
		done <- size
	}
	e.Start()
	size := <-done

	txt.SetSize(size)
	if !measure.FitsHeight(txt, measure.InnerHeight(frame)) {
		t.Errorf("size %d overflows the frame height", size)
	}
}
