package pixel

import (
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"

	"github.com/textfit/textfit/errors"
)

// Face wraps a loaded font family and hands out sized font faces for
// measurement.
type Face struct {
	family *canvas.FontFamily
}

// NewFace loads a font face from raw TTF/OTF data.
func NewFace(data []byte) (*Face, error) {
	family := canvas.NewFontFamily("textfit")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidFont, err, "load font")
	}
	return &Face{family: family}, nil
}

// DefaultFace loads the embedded Latin Modern roman face, so measurement
// works without any font files on disk.
func DefaultFace() (*Face, error) {
	return NewFace(lmroman10regular.TTF)
}

// at returns a concrete face at the given size in points.
func (f *Face) at(sizePt float64) *canvas.FontFace {
	return f.family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
}
