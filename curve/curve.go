// Package curve defines the sampling contract shared by discount and survival curves.
//
// Times are year fractions measured from the valuation date. A factor is a discount
// factor for a DiscountCurve and a survival probability Q(tau > t) for a SurvivalCurve.
package curve

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilCurve is returned when a curve role holds no underlying curve.
	ErrNilCurve = errors.New("nil curve")
	// ErrNegativeTime is returned for sample times before the valuation date.
	ErrNegativeTime = errors.New("negative sample time")
	// ErrNonFinite is returned when a curve produces NaN or Inf.
	ErrNonFinite = errors.New("non-finite curve factor")
)

// Curve maps a time in years to a dimensionless factor in (0, 1].
//
// Implementations must be deterministic and side-effect free for a fixed snapshot.
type Curve interface {
	Sample(t float64) (float64, error)
}

// Func adapts a plain function to Curve.
type Func func(t float64) (float64, error)

// Sample calls f(t).
func (f Func) Sample(t float64) (float64, error) {
	return f(t)
}

// CurveError reports a failed sample, naming the curve and the requested time.
type CurveError struct {
	Curve string
	Time  float64
	Err   error
}

func (e *CurveError) Error() string {
	return fmt.Sprintf("curve %s: sample at t=%.6f: %v", e.Curve, e.Time, e.Err)
}

func (e *CurveError) Unwrap() error {
	return e.Err
}

// role binds a Curve to a semantic kind and a name used in errors.
type role struct {
	kind string
	name string
	src  Curve
}

func (r role) label() string {
	if r.name == "" {
		return r.kind
	}
	return r.kind + "/" + r.name
}

func (r role) validate() error {
	if r.src == nil {
		return &CurveError{Curve: r.label(), Err: ErrNilCurve}
	}
	return nil
}

func (r role) sample(t float64) (float64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	f, err := r.src.Sample(t)
	if err != nil {
		return 0, &CurveError{Curve: r.label(), Time: t, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &CurveError{Curve: r.label(), Time: t, Err: ErrNonFinite}
	}
	return f, nil
}

// DiscountCurve provides discount factors.
type DiscountCurve struct {
	role
}

// NewDiscountCurve wraps c as a discount curve identified by name.
func NewDiscountCurve(name string, c Curve) DiscountCurve {
	return DiscountCurve{role{kind: "discount", name: name, src: c}}
}

// Sample returns the discount factor at t.
func (d DiscountCurve) Sample(t float64) (float64, error) {
	return d.sample(t)
}

// Validate reports ErrNilCurve for a zero-value DiscountCurve.
func (d DiscountCurve) Validate() error {
	return d.validate()
}

// Name returns the curve label used in errors.
func (d DiscountCurve) Name() string {
	return d.label()
}

// SurvivalCurve provides survival probabilities Q(tau > t).
type SurvivalCurve struct {
	role
}

// NewSurvivalCurve wraps c as a survival curve identified by name.
func NewSurvivalCurve(name string, c Curve) SurvivalCurve {
	return SurvivalCurve{role{kind: "survival", name: name, src: c}}
}

// Sample returns the survival probability at t.
func (s SurvivalCurve) Sample(t float64) (float64, error) {
	return s.sample(t)
}

// Validate reports ErrNilCurve for a zero-value SurvivalCurve.
func (s SurvivalCurve) Validate() error {
	return s.validate()
}

// Name returns the curve label used in errors.
func (s SurvivalCurve) Name() string {
	return s.label()
}
