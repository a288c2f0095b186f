package component

// Facing is the display variant selected from horizontal velocity, consumed only by rendering
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// FacingFrom derives facing from horizontal velocity sign, zero keeps the previous value
func FacingFrom(prev Facing, velX float64) Facing {
	switch {
	case velX > 0:
		return FacingRight
	case velX < 0:
		return FacingLeft
	}
	return prev
}
