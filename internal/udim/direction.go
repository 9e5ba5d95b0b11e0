package udim

// Direction is a one-tile nudge along the UV grid
type Direction int

const (
	// DirectionUp moves one tile toward higher V
	DirectionUp Direction = iota

	// DirectionDown moves one tile toward lower V
	DirectionDown

	// DirectionLeft moves one tile toward lower U
	DirectionLeft

	// DirectionRight moves one tile toward higher U
	DirectionRight
)

// String returns the lower-case name of the direction
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit UV translation for the direction
func (d Direction) Delta() (du, dv float64) {
	switch d {
	case DirectionUp:
		return 0, 1
	case DirectionDown:
		return 0, -1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction that undoes d
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}
