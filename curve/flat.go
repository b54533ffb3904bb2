package curve

import "math"

// FlatRate is a continuously compounded flat discount curve: exp(-Rate*t).
type FlatRate struct {
	Rate float64
}

func (c FlatRate) Sample(t float64) (float64, error) {
	if t < 0 {
		return 0, ErrNegativeTime
	}
	return math.Exp(-c.Rate * t), nil
}

// FlatHazard is a constant-intensity survival curve: exp(-Hazard*t).
type FlatHazard struct {
	Hazard float64
}

func (c FlatHazard) Sample(t float64) (float64, error) {
	if t < 0 {
		return 0, ErrNegativeTime
	}
	return math.Exp(-c.Hazard * t), nil
}
