package skyframe

import (
	"errors"
	"fmt"

	"github.com/halcyon-labs/skyframe/gm"
)

// ErrUnsupportedFramePair is returned when no rotation between the two frame
// kinds is defined.
var ErrUnsupportedFramePair = errors.New("unsupported frame pair")

// RotationMatrix returns the matrix that maps unit vectors expressed in the
// from frame to the equivalent vectors expressed in the to frame. The matrix
// depends only on the frame identities, never on coordinate values.
func RotationMatrix(to, from Frame) (gm.Mat, error) {
	if !to.Kind.valid() || !from.Kind.valid() {
		return gm.Mat{}, fmt.Errorf("%w: %s to %s", ErrUnsupportedFramePair, from, to)
	}

	if to == from {
		return gm.IdentityMat(), nil
	}

	switch {
	case from.Kind == KindICRS && to.Kind == KindGalactic:
		return icrsToGal, nil

	case from.Kind == KindGalactic && to.Kind == KindICRS:
		return galToICRS, nil

	case from.Kind == KindICRS && to.Kind == KindFK5:
		return precessFromJ2000(to.Equinox).Mul(icrsToFK5J2000), nil

	case from.Kind == KindFK5 && to.Kind == KindICRS:
		return fk5J2000ToICRS.Mul(precessFromJ2000(from.Equinox).Transposed()), nil

	case from.Kind == KindGalactic && to.Kind == KindFK5:
		return precessFromJ2000(to.Equinox).Mul(galToFK5J2000), nil

	case from.Kind == KindFK5 && to.Kind == KindGalactic:
		return fk5J2000ToGal.Mul(precessFromJ2000(from.Equinox).Transposed()), nil

	case from.Kind == KindFK5 && to.Kind == KindFK5:
		return precessFromJ2000(to.Equinox).Mul(precessFromJ2000(from.Equinox).Transposed()), nil
	}

	// same kind, differing equinox field on a frame that has no equinox
	return gm.IdentityMat(), nil
}
