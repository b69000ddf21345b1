package skyframe

import (
	"errors"
	"fmt"

	"github.com/halcyon-labs/skyframe/gm"
)

// ErrMixedFrames is returned by ConvertAll when the batch contains positions
// expressed in more than one source frame.
var ErrMixedFrames = errors.New("mixed source frames in batch")

// Convert expresses the position in the given target frame. A position that
// is already expressed in the target frame is returned unchanged. The
// rotation is applied in float64 regardless of the position's precision; the
// result keeps the precision of the input.
func Convert(to Frame, p Position) (Position, error) {
	if p.Frame() == to {
		return p, nil
	}

	m, err := RotationMatrix(to, p.Frame())
	if err != nil {
		return nil, err
	}

	return transformed(m, to, p), nil
}

// ConvertAll expresses every position of the batch in the target frame. All
// positions must share one source frame; the rotation matrix is resolved
// once and reused for every element. The output order matches the input
// order.
func ConvertAll(to Frame, ps []Position) ([]Position, error) {
	if len(ps) == 0 {
		return nil, nil
	}

	src := ps[0].Frame()

	var m gm.Mat
	if src != to {
		var err error
		if m, err = RotationMatrix(to, src); err != nil {
			return nil, err
		}
	}

	out := make([]Position, len(ps))
	for i, p := range ps {
		if p.Frame() != src {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedFrames, src, p.Frame())
		}

		if src == to {
			out[i] = p
			continue
		}

		out[i] = transformed(m, to, p)
	}

	return out, nil
}

// transformed rotates the position into the target frame, keeping the
// precision of the input.
func transformed(m gm.Mat, to Frame, p Position) Position {
	if p.single() {
		lon, lat := apply[float32](m, p)
		return positionOf(to, lon, lat)
	}

	lon, lat := apply[float64](m, p)
	return positionOf(to, lon, lat)
}

// apply sends the position through the unit sphere: spherical angles to
// cartesian, rotate, back to spherical. The math runs in float64, the result
// is cast down to the requested precision at the end.
func apply[S gm.Scalar](m gm.Mat, p Position) (lon, lat S) {
	plon, plat := p.LonLat()

	rlon, rlat := gm.ToSpherical(m.Transform(gm.FromSpherical(gm.Rad(plon), gm.Rad(plat))))
	return S(rlon), S(rlat)
}

func positionOf[S gm.Scalar](f Frame, lon, lat S) Position {
	switch f.Kind {
	case KindICRS:
		return ICRSOf(lon, lat)
	case KindGalactic:
		return GalacticOf(lon, lat)
	case KindFK5:
		return FK5Of(f.Equinox, lon, lat)
	}

	panic(fmt.Errorf("got frame kind %s, expected a supported kind", f.Kind))
}
