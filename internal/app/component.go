package app

// Component selects which quote page structuring is mounted.
type Component int

const (
	WithController Component = iota
	WithoutController
)

func (c Component) String() string {
	switch c {
	case WithController:
		return "WithController"
	case WithoutController:
		return "WithoutController"
	default:
		return "Unknown"
	}
}
