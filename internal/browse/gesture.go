// Package browse drives the swipe interaction: gesture classification,
// cursor advancement, quota enforcement, and deck refetch.
package browse

// Release thresholds for classifying a drag gesture. Displacement and
// velocity are independent; crossing either one is enough.
const (
	OffsetThreshold   = 100.0
	VelocityThreshold = 500.0
)

// Direction is the outcome of classifying a gesture release.
type Direction string

const (
	// DirectionNone means the card springs back; no state change.
	DirectionNone Direction = "none"
	// DirectionLeft is a pass.
	DirectionLeft Direction = "left"
	// DirectionRight is a like.
	DirectionRight Direction = "right"
)

// Classify maps a drag release to a swipe direction. Evaluated at release
// time only: positive displacement beyond +100 or velocity beyond +500 is a
// right swipe, the mirrored negatives a left swipe, anything else none.
func Classify(offsetX, velocityX float64) Direction {
	if offsetX > OffsetThreshold || velocityX > VelocityThreshold {
		return DirectionRight
	}
	if offsetX < -OffsetThreshold || velocityX < -VelocityThreshold {
		return DirectionLeft
	}
	return DirectionNone
}
