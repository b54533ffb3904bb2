package curve_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/cdslib/curve"
)

func TestFlatCurves(t *testing.T) {
	t.Parallel()

	disc := curve.NewDiscountCurve("ois", curve.FlatRate{Rate: 0.02})
	surv := curve.NewSurvivalCurve("acme", curve.FlatHazard{Hazard: 0.05})

	df, err := disc.Sample(2.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-0.05), df, 1e-15)

	q, err := surv.Sample(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q)

	assert.Equal(t, "discount/ois", disc.Name())
	assert.Equal(t, "survival/acme", surv.Name())
}

func TestSampleErrorNamesCurveAndTime(t *testing.T) {
	t.Parallel()

	surv := curve.NewSurvivalCurve("acme", curve.FlatHazard{Hazard: 0.05})
	_, err := surv.Sample(-0.5)
	require.Error(t, err)

	var ce *curve.CurveError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "survival/acme", ce.Curve)
	assert.Equal(t, -0.5, ce.Time)
	assert.ErrorIs(t, err, curve.ErrNegativeTime)
	assert.Contains(t, err.Error(), "survival/acme")
}

func TestCollaboratorFailureIsWrapped(t *testing.T) {
	t.Parallel()

	boom := errors.New("remote curve unavailable")
	disc := curve.NewDiscountCurve("remote", curve.Func(func(float64) (float64, error) {
		return 0, boom
	}))

	_, err := disc.Sample(1)
	assert.ErrorIs(t, err, boom)

	var ce *curve.CurveError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "discount/remote", ce.Curve)
	assert.Equal(t, 1.0, ce.Time)
}

func TestNonFiniteFactorRejected(t *testing.T) {
	t.Parallel()

	disc := curve.NewDiscountCurve("", curve.Func(func(float64) (float64, error) {
		return math.NaN(), nil
	}))
	_, err := disc.Sample(1)
	assert.ErrorIs(t, err, curve.ErrNonFinite)
}

func TestZeroValueRoleIsInvalid(t *testing.T) {
	t.Parallel()

	var disc curve.DiscountCurve
	assert.ErrorIs(t, disc.Validate(), curve.ErrNilCurve)
	_, err := disc.Sample(1)
	assert.ErrorIs(t, err, curve.ErrNilCurve)

	var surv curve.SurvivalCurve
	assert.ErrorIs(t, surv.Validate(), curve.ErrNilCurve)
}

func TestPillarsLogLinear(t *testing.T) {
	t.Parallel()

	p, err := curve.NewPillars([]float64{1, 2}, []float64{0.98, 0.95})
	require.NoError(t, err)

	at := func(x float64) float64 {
		v, err := p.Sample(x)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, 1.0, at(0))
	assert.Equal(t, 0.98, at(1))
	assert.Equal(t, 0.95, at(2))
	assert.InDelta(t, math.Sqrt(0.98), at(0.5), 1e-12)
	assert.InDelta(t, math.Sqrt(0.98*0.95), at(1.5), 1e-12)
	// extrapolation continues the last forward rate
	assert.InDelta(t, 0.95*0.95/0.98, at(3), 1e-12)

	_, err = p.Sample(-1)
	assert.ErrorIs(t, err, curve.ErrNegativeTime)
}

func TestNewPillarsValidation(t *testing.T) {
	t.Parallel()

	_, err := curve.NewPillars(nil, nil)
	assert.Error(t, err)
	_, err = curve.NewPillars([]float64{1, 1}, []float64{0.9, 0.8})
	assert.Error(t, err)
	_, err = curve.NewPillars([]float64{1}, []float64{0})
	assert.Error(t, err)
	_, err = curve.NewPillars([]float64{1, 2}, []float64{0.9})
	assert.Error(t, err)
}
