// Code generated by "stringer -type=Mirroring"; hand-maintained to match
// stringer's output shape since the generator isn't run as part of this
// build. DO NOT derive semantics from this file — it only renders names.

package mapper

import "strconv"

func _() {
	// An "invalid array index" compiler error signals that the constant
	// values have changed; update the string index table below.
	var x [1]struct{}
	_ = x[Horizontal-0]
	_ = x[Vertical-1]
	_ = x[SingleScreenLower-2]
	_ = x[SingleScreenUpper-3]
	_ = x[FourScreen-4]
}

const _Mirroring_name = "HorizontalVerticalSingleScreenLowerSingleScreenUpperFourScreen"

var _Mirroring_index = [...]uint8{0, 10, 18, 35, 52, 62}

func (i Mirroring) String() string {
	if i < 0 || int(i) >= len(_Mirroring_index)-1 {
		return "Mirroring(" + strconv.Itoa(int(i)) + ")"
	}
	return _Mirroring_name[_Mirroring_index[i]:_Mirroring_index[i+1]]
}
