package skyframe

import (
	"fmt"

	"github.com/halcyon-labs/skyframe/gm"
)

// Kind identifies one of the supported celestial reference frames.
type Kind uint8

const (
	KindICRS Kind = iota
	KindGalactic
	KindFK5
)

func (k Kind) String() string {
	switch k {
	case KindICRS:
		return "icrs"
	case KindGalactic:
		return "galactic"
	case KindFK5:
		return "fk5"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) valid() bool {
	return k <= KindFK5
}

// Frame identifies the reference frame a position is expressed in: a frame
// kind plus, for FK5, the equinox as a Julian year. Two FK5 frames with
// different equinoxes are different frames.
type Frame struct {
	Kind    Kind
	Equinox float64
}

var (
	ICRSFrame     = Frame{Kind: KindICRS}
	GalacticFrame = Frame{Kind: KindGalactic}
)

// FK5Frame returns the FK5 frame referred to the mean equator and equinox of
// the given Julian year.
func FK5Frame(equinox float64) Frame {
	return Frame{Kind: KindFK5, Equinox: equinox}
}

func (f Frame) String() string {
	if f.Kind == KindFK5 {
		return fmt.Sprintf("fk5(J%v)", f.Equinox)
	}

	return f.Kind.String()
}

// Position is a sky position expressed in one of the supported frames. The
// concrete types are ICRS, Galactic and FK5 plus their float32 variants; no
// other implementations exist.
type Position interface {
	// Frame returns the frame the position is expressed in.
	Frame() Frame

	// LonLat returns the longitude- and latitude-like angles in radians.
	LonLat() (lon, lat float64)

	// single reports whether the position stores float32 angles.
	single() bool
}

// wrap normalizes a longitude-like angle into [0, 2π) at the precision of
// the caller. Non finite values pass through unchanged.
func wrap[S gm.Scalar](lon S) S {
	return S(gm.Rad(float64(lon)).Wrapped())
}

func isSingle[S gm.Scalar]() bool {
	var zero S
	_, ok := any(zero).(float32)
	return ok
}
