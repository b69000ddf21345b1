package skyframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvert_SameFrameIsIdentity(t *testing.T) {
	p := ICRSOf(1.0, 0.5)

	got, err := Convert(ICRSFrame, p)
	require.NoError(t, err)
	require.Equal(t, Position(p), got)

	f := FK5Of(1975, 1.0, 0.5)
	gotF, err := Convert(FK5Frame(1975), f)
	require.NoError(t, err)
	require.Equal(t, Position(f), gotF)
}

func TestConvert_GalacticRoundTrip(t *testing.T) {
	p := ICRSOf(1.0, 0.5)

	back := p.Galactic().ICRS()
	require.InDelta(t, p.RA(), back.RA(), 1e-10)
	require.InDelta(t, p.Dec(), back.Dec(), 1e-10)
}

func TestConvert_FK5RoundTrip(t *testing.T) {
	back := ICRSOf(1.0, 0.5).FK5(1975).ICRS()
	require.InDelta(t, 1.0, back.RA(), 1e-9)
	require.InDelta(t, 0.5, back.Dec(), 1e-9)
}

func TestConvert_GalacticGoldenValues(t *testing.T) {
	// vernal equinox direction in galactic coordinates
	g := ICRSOf(0.0, 0.0).Galactic()
	require.InDelta(t, 96.337, float64(g.L())*180/math.Pi, 0.01)
	require.InDelta(t, -60.189, float64(g.B())*180/math.Pi, 0.01)

	// galactic center back in ICRS
	c := GalacticOf(0.0, 0.0).ICRS()
	require.InDelta(t, 266.405, float64(c.RA())*180/math.Pi, 0.01)
	require.InDelta(t, -28.936, float64(c.Dec())*180/math.Pi, 0.01)
}

func TestConvert_EquinoxToEquinox(t *testing.T) {
	f := ICRSOf(2.2, -0.3).FK5(1950)

	direct := f.At(2010)
	viaICRS := f.ICRS().FK5(2010)

	require.InDelta(t, direct.RA(), viaICRS.RA(), 1e-9)
	require.InDelta(t, direct.Dec(), viaICRS.Dec(), 1e-9)
}

func TestConvert_DynamicMatchesTyped(t *testing.T) {
	p := ICRSOf(4.2, 1.0)

	got, err := Convert(GalacticFrame, p)
	require.NoError(t, err)
	require.Equal(t, Position(p.Galactic()), got)

	got, err = Convert(FK5Frame(1991.25), p)
	require.NoError(t, err)
	require.Equal(t, Position(p.FK5(1991.25)), got)
}

func TestConvert_KeepsSinglePrecision(t *testing.T) {
	p := ICRSOf[float32](1.0, 0.5)

	got, err := Convert(GalacticFrame, p)
	require.NoError(t, err)

	g, ok := got.(Galactic32)
	require.True(t, ok, "expected a float32 galactic position, got %T", got)

	back := g.ICRS()
	require.InDelta(t, 1.0, float64(back.RA()), 1e-6)
	require.InDelta(t, 0.5, float64(back.Dec()), 1e-6)
}

func TestConvert_NaNPropagates(t *testing.T) {
	got, err := Convert(GalacticFrame, ICRSOf(math.NaN(), 0.5))
	require.NoError(t, err)

	lon, lat := got.LonLat()
	require.True(t, math.IsNaN(lon))
	require.True(t, math.IsNaN(lat))
}

func TestConvertAll(t *testing.T) {
	ps := []Position{ICRSOf(0.1, 0.2), ICRSOf(1.1, -0.4), ICRSOf(4.2, 1.0)}

	out, err := ConvertAll(GalacticFrame, ps)
	require.NoError(t, err)
	require.Len(t, out, len(ps))

	for i, p := range ps {
		single, err := Convert(GalacticFrame, p)
		require.NoError(t, err)
		require.Equal(t, single, out[i])
	}
}

func TestConvertAll_SameFrame(t *testing.T) {
	ps := []Position{ICRSOf(0.1, 0.2), ICRSOf(1.1, -0.4)}

	out, err := ConvertAll(ICRSFrame, ps)
	require.NoError(t, err)
	require.Equal(t, ps, out)
}

func TestConvertAll_Empty(t *testing.T) {
	out, err := ConvertAll(GalacticFrame, nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestConvertAll_MixedFrames(t *testing.T) {
	ps := []Position{ICRSOf(0.1, 0.2), GalacticOf(1.0, 0.0)}

	_, err := ConvertAll(GalacticFrame, ps)
	require.ErrorIs(t, err, ErrMixedFrames)
}

func TestLongitudeNormalization(t *testing.T) {
	require.InDelta(t, 2*math.Pi-0.1, ICRSOf(-0.1, 0.0).RA(), 1e-15)
	require.InDelta(t, 2*math.Pi-0.1, GalacticOf(-0.1, 0.0).L(), 1e-15)
	require.InDelta(t, 2*math.Pi-0.1, FK5Of(2000, -0.1, 0.0).RA(), 1e-15)
}

func TestEquality(t *testing.T) {
	require.Equal(t, ICRSOf(0.5, -0.25), ICRSOf(0.5, -0.25))
	require.True(t, ICRSOf(0.5, -0.25) == ICRSOf(0.5, -0.25))

	require.NotEqual(t, FK5Of(1950, 0.5, 0.5), FK5Of(2000, 0.5, 0.5))
	require.NotEqual(t, ICRSOf(0.5, 0.25), ICRSOf(0.5, 0.2500001))
}

func TestPrecisionConversion(t *testing.T) {
	p := ICRSOf(1.0, 0.5)

	narrow := p.As32()
	require.InDelta(t, 1.0, float64(narrow.RA()), 1e-6)

	wide := narrow.As64()
	require.InDelta(t, 1.0, wide.RA(), 1e-6)

	// wrap again after the cast so the invariant survives rounding up
	edge := ICRSOf(2*math.Pi - 1e-9, 0).As32()
	require.Less(t, float64(edge.RA()), 2*math.Pi)
}
