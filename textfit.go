package textfit

import (
	"github.com/textfit/textfit/fit"
	"github.com/textfit/textfit/measure"
)

// Fit runs one complete fit of body into the container and blocks until
// it settles. It is the convenience path for synchronous surfaces such
// as term.Text and pixel.Text; interactive shells that need supersession
// across refits should hold a fit.Engine instead.
//
// The returned size is only meaningful when ok is true; ok is false when
// the run aborted, for example on an unusable baseline measurement.
func Fit(cfg fit.Config, container measure.Container, body fit.Content) (size int, ok bool) {
	type settled struct {
		size  int
		ready bool
	}

	e := fit.NewEngine(cfg)
	e.BindSurface(container, body)

	done := make(chan settled, 1)
	e.OnSettled = func(_ uint64, size int, ready bool) {
		done <- settled{size, ready}
	}
	e.Start()

	s := <-done
	return s.size, s.ready
}
