package measure

import "testing"

type fakeBox struct {
	w, h   float64
	fw, fh float64
}

func (b fakeBox) Size() (float64, float64)      { return b.w, b.h }
func (b fakeBox) FrameSize() (float64, float64) { return b.fw, b.fh }

type fakeContent struct {
	w, h float64
}

func (c fakeContent) ScrollSize() (float64, float64) { return c.w, c.h }

func TestInnerDimensions(t *testing.T) {
	tests := []struct {
		name  string
		box   fakeBox
		wantW float64
		wantH float64
	}{
		{"no frame", fakeBox{w: 200, h: 50}, 200, 50},
		{"padding and border", fakeBox{w: 200, h: 50, fw: 12, fh: 6}, 188, 44},
		{"frame exceeds box", fakeBox{w: 4, h: 2, fw: 10, fh: 10}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InnerWidth(tt.box); got != tt.wantW {
				t.Errorf("InnerWidth = %g, want %g", got, tt.wantW)
			}
			if got := InnerHeight(tt.box); got != tt.wantH {
				t.Errorf("InnerHeight = %g, want %g", got, tt.wantH)
			}
		})
	}
}

func TestFitTestsApplyTolerance(t *testing.T) {
	// Exactly one unit over still fits; beyond that it does not.
	c := fakeContent{w: 101, h: 51}
	if !FitsWidth(c, 100) {
		t.Error("width one unit over target should fit within tolerance")
	}
	if !FitsHeight(c, 50) {
		t.Error("height one unit over target should fit within tolerance")
	}

	c = fakeContent{w: 101.5, h: 51.5}
	if FitsWidth(c, 100) {
		t.Error("width beyond tolerance must not fit")
	}
	if FitsHeight(c, 50) {
		t.Error("height beyond tolerance must not fit")
	}
}

func TestFitTestsUnderTarget(t *testing.T) {
	c := fakeContent{w: 10, h: 5}
	if !FitsWidth(c, 100) || !FitsHeight(c, 50) {
		t.Error("content well under target should fit")
	}
}
