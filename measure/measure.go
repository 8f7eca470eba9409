package measure

// Tolerance is the fixed fitting allowance subtracted from a measured
// scroll extent before comparing it against a target. It absorbs
// sub-unit rounding between an applied size and the measured box; it is
// a deliberate fudge factor, not a precision guarantee.
const Tolerance = 1.0

// Container is a surface whose usable inner area text is fitted into.
type Container interface {
	// Size returns the outer box dimensions.
	Size() (width, height float64)
	// FrameSize returns the total horizontal and vertical space consumed
	// by border and padding.
	FrameSize() (width, height float64)
}

// Element is rendered content whose extent can be measured at the
// currently applied size.
type Element interface {
	// ScrollSize returns the full extent of the rendered content, which
	// may exceed the container's inner box when the content overflows.
	ScrollSize() (width, height float64)
}

// InnerWidth returns the container's usable width: the outer width minus
// border and padding, floored at zero.
func InnerWidth(c Container) float64 {
	w, _ := c.Size()
	fw, _ := c.FrameSize()
	return max(w-fw, 0)
}

// InnerHeight returns the container's usable height: the outer height
// minus border and padding, floored at zero.
func InnerHeight(c Container) float64 {
	_, h := c.Size()
	_, fh := c.FrameSize()
	return max(h-fh, 0)
}

// FitsWidth reports whether the element's rendered width, less the fitting
// tolerance, is within the target width.
func FitsWidth(e Element, width float64) bool {
	w, _ := e.ScrollSize()
	return w-Tolerance <= width
}

// FitsHeight reports whether the element's rendered height, less the
// fitting tolerance, is within the target height.
func FitsHeight(e Element, height float64) bool {
	_, h := e.ScrollSize()
	return h-Tolerance <= height
}
