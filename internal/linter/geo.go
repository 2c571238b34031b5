package linter

import (
	"github.com/tzneal/coordconv"

	"github.com/gs1ident/gs1syntax/internal/model"
)

func registerGeoLinters() {
	Register("latitude", latitudeLinter)
	Register("longitude", longitudeLinter)
}

const (
	geoHemisphereLen = 1
	geoDegreeLen     = 8
	geoFixedPoint    = 100000 // 5 decimal places
)

// hemisphereRuneFor mirrors samoyed's HemisphereRuneToCoordconvHemisphere
// (coordconv.go): a leading sign digit maps to a coordconv.Hemisphere
// rather than a bare bool, so the sign is self-describing at call sites
// that also handle coordconv values from elsewhere in a larger pipeline.
func hemisphereRuneFor(signDigit byte) coordconv.Hemisphere {
	switch signDigit {
	case '0':
		return coordconv.HemisphereNorth
	case '1':
		return coordconv.HemisphereSouth
	default:
		return coordconv.HemisphereInvalid
	}
}

// latitudeLinter validates a fixed-point latitude component: one sign
// digit (0 = north, 1 = south) followed by 8 digits of degrees * 100000,
// bounded to [0, 90] degrees.
func latitudeLinter(value string) *model.LintFailure {
	if len(value) != geoHemisphereLen+geoDegreeLen || !isNumeric(value) {
		return fail(model.ErrInvalidLatitude, 0, len(value))
	}
	if hemisphereRuneFor(value[0]) == coordconv.HemisphereInvalid {
		return fail(model.ErrInvalidLatitude, 0, 1)
	}
	degrees := atoin(value[geoHemisphereLen:])
	if degrees > 90*geoFixedPoint {
		return fail(model.ErrInvalidLatitude, geoHemisphereLen, geoDegreeLen)
	}
	return nil
}

// longitudeHemisphere is east/west; coordconv's Hemisphere type (as used
// elsewhere in the pack) only models north/south, so longitude's sign
// uses a small local equivalent rather than guessing at east/west
// constants this module never observed coordconv export.
type longitudeHemisphere int

const (
	longitudeEast longitudeHemisphere = iota
	longitudeWest
	longitudeInvalid
)

func longitudeHemisphereFor(signDigit byte) longitudeHemisphere {
	switch signDigit {
	case '0':
		return longitudeEast
	case '1':
		return longitudeWest
	default:
		return longitudeInvalid
	}
}

// longitudeLinter validates a fixed-point longitude component: one sign
// digit (0 = east, 1 = west) followed by 8 digits of degrees * 100000,
// bounded to [0, 180] degrees.
func longitudeLinter(value string) *model.LintFailure {
	if len(value) != geoHemisphereLen+geoDegreeLen || !isNumeric(value) {
		return fail(model.ErrInvalidLongitude, 0, len(value))
	}
	if longitudeHemisphereFor(value[0]) == longitudeInvalid {
		return fail(model.ErrInvalidLongitude, 0, 1)
	}
	degrees := atoin(value[geoHemisphereLen:])
	if degrees > 180*geoFixedPoint {
		return fail(model.ErrInvalidLongitude, geoHemisphereLen, geoDegreeLen)
	}
	return nil
}
