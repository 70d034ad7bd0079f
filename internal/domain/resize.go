package domain

type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipEqual         SkipReason = "equal"
	SkipHeightGreater SkipReason = "height greater"
)

// ShouldResize reports whether an image of the given size needs squishing.
// Only images wider than they are tall qualify.
func ShouldResize(width, height int) (bool, SkipReason) {
	switch {
	case width == height:
		return false, SkipEqual
	case width < height:
		return false, SkipHeightGreater
	default:
		return true, SkipNone
	}
}
