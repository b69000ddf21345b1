package skyframe

import (
	"math"
	"testing"

	"github.com/halcyon-labs/skyframe/gm"
	"github.com/stretchr/testify/require"
)

func TestSeparation_Antipodal(t *testing.T) {
	s, err := Separation(ICRSOf(0.0, 0.0), ICRSOf(math.Pi, 0.0))
	require.NoError(t, err)
	require.InDelta(t, math.Pi, s, 1e-12)
}

func TestSeparation_Self(t *testing.T) {
	p := ICRSOf(1.3, -0.2)

	s, err := Separation(p, p)
	require.NoError(t, err)
	require.InDelta(t, 0, s, 1e-15)
}

func TestSeparation_SmallAngle(t *testing.T) {
	// a displacement along a parallel scales with cos(dec); the law of
	// cosines formula would return garbage at this magnitude
	s, err := Separation(ICRSOf(1.0, 0.5), ICRSOf(1.0+1e-9, 0.5))
	require.NoError(t, err)
	require.InDelta(t, 1e-9*math.Cos(0.5), s, 1e-15)
}

func TestSeparation_Quadrant(t *testing.T) {
	s, err := Separation(ICRSOf(0.0, 0.0), ICRSOf(0.0, math.Pi/2))
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, s, 1e-12)
}

func TestSeparation_SymmetricAndBounded(t *testing.T) {
	for i := 0; i < 200; i++ {
		a := ICRSOf(gm.RandomAngle().Radians(), gm.RandomLat().Radians())
		b := ICRSOf(gm.RandomAngle().Radians(), gm.RandomLat().Radians())

		ab, err := Separation(a, b)
		require.NoError(t, err)

		ba, err := Separation(b, a)
		require.NoError(t, err)

		require.InDelta(t, ab, ba, 1e-10)
		require.GreaterOrEqual(t, ab, 0.0)
		require.LessOrEqual(t, ab, math.Pi)
	}
}

func TestSeparation_CrossFrame(t *testing.T) {
	p := ICRSOf(2.2, -0.7)

	s, err := Separation(p, p.Galactic())
	require.NoError(t, err)
	require.InDelta(t, 0, s, 1e-10)

	s, err = Separation(p.FK5(1975), p.Galactic())
	require.NoError(t, err)
	require.InDelta(t, 0, s, 1e-10)
}
