// File: internal/responsive/sizespec.go
package responsive

import (
	"fmt"
	"math"
)

// SizeMode selects how a SizeSpec turns its value into pixels.
type SizeMode int

const (
	// FixedSize uses the value as a pixel count.
	FixedSize SizeMode = iota
	// OfAvailableSpace takes a fraction of the total space on the axis.
	OfAvailableSpace
	// OfRemainderSpace takes a fraction of the space left after the other slots.
	OfRemainderSpace
)

// String returns the attribute name used in spec documents for the mode.
func (m SizeMode) String() string {
	switch m {
	case FixedSize:
		return "fixedSize"
	case OfAvailableSpace:
		return "ofAvailableSpace"
	case OfRemainderSpace:
		return "ofRemainderSpace"
	default:
		return fmt.Sprintf("SizeMode(%d)", int(m))
	}
}

// NoMaxSize marks a SizeSpec without an upper clamp.
const NoMaxSize = math.MaxInt32

// SizeSpec is the sizing rule for one layout slot (a padding, the gutter or the cell size).
// The zero value is a valid fixed spec of 0px without a clamp.
type SizeSpec struct {
	mode     SizeMode
	value    float64
	maxValue int
	hasMax   bool
}

// NewSizeSpec builds a SizeSpec and validates the value range for the mode.
// maxValue < 0 means "no clamp".
func NewSizeSpec(mode SizeMode, value float64, maxValue int) (SizeSpec, error) {
	s := SizeSpec{mode: mode, value: value, maxValue: NoMaxSize}
	if maxValue >= 0 {
		s.maxValue = maxValue
		s.hasMax = true
	}
	if err := s.validate(); err != nil {
		return SizeSpec{}, err
	}
	return s, nil
}

// MustSizeSpec is like NewSizeSpec but panics on an invalid value.
func MustSizeSpec(mode SizeMode, value float64, maxValue int) SizeSpec {
	s, err := NewSizeSpec(mode, value, maxValue)
	if err != nil {
		panic(err)
	}
	return s
}

// Fixed is shorthand for an unclamped FixedSize spec.
func Fixed(px float64) SizeSpec { return MustSizeSpec(FixedSize, px, -1) }

// OfAvailable is shorthand for an unclamped OfAvailableSpace spec.
func OfAvailable(fraction float64) SizeSpec { return MustSizeSpec(OfAvailableSpace, fraction, -1) }

// OfRemainder is shorthand for an unclamped OfRemainderSpace spec.
func OfRemainder(fraction float64) SizeSpec { return MustSizeSpec(OfRemainderSpace, fraction, -1) }

func (s SizeSpec) Mode() SizeMode    { return s.mode }
func (s SizeSpec) Value() float64    { return s.value }
func (s SizeSpec) HasMaxValue() bool { return s.hasMax }

// MaxValue returns the clamp, or NoMaxSize when the spec is unclamped.
func (s SizeSpec) MaxValue() int {
	if !s.hasMax {
		return NoMaxSize
	}
	return s.maxValue
}

// IsValid reports whether the spec satisfies the range rules of its mode.
func (s SizeSpec) IsValid() bool { return s.validate() == nil }

func (s SizeSpec) validate() error {
	if math.IsNaN(s.value) || math.IsInf(s.value, 0) {
		return fmt.Errorf("%w: %s value %v is not a finite number", ErrInvalidSizeSpec, s.mode, s.value)
	}
	if s.hasMax && s.maxValue < 0 {
		return fmt.Errorf("%w: maxSize %d is negative", ErrInvalidSizeSpec, s.maxValue)
	}
	switch s.mode {
	case FixedSize:
		if s.value < 0 {
			return fmt.Errorf("%w: fixedSize %v is negative", ErrInvalidSizeSpec, s.value)
		}
		if s.value > NoMaxSize {
			return fmt.Errorf("%w: fixedSize %v exceeds %d", ErrInvalidSizeSpec, s.value, NoMaxSize)
		}
	case OfAvailableSpace, OfRemainderSpace:
		if s.value < 0 || s.value > 1 {
			return fmt.Errorf("%w: %s %v is outside [0, 1]", ErrInvalidSizeSpec, s.mode, s.value)
		}
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidSizeSpec, int(s.mode))
	}
	return nil
}

// Resolve converts the spec to pixels. totalAvailable is the whole axis and remainder is
// the space not yet claimed by other slots.
func (s SizeSpec) Resolve(totalAvailable, remainder int) int {
	var px int
	switch s.mode {
	case FixedSize:
		px = int(math.Round(s.value))
	case OfAvailableSpace:
		px = int(math.Round(s.value * float64(totalAvailable)))
	case OfRemainderSpace:
		px = int(math.Floor(s.value * float64(remainder)))
	default:
		panic(fmt.Sprintf("responsive: unhandled size mode %v", s.mode))
	}
	return s.clamp(px)
}

// share resolves a remainder-based spec for one of factor identical slots.
func (s SizeSpec) share(remainder, factor int) int {
	if factor <= 0 || remainder <= 0 {
		return 0
	}
	return s.clamp(int(math.Floor(s.value * float64(remainder) / float64(factor))))
}

func (s SizeSpec) clamp(px int) int {
	if s.hasMax && px > s.maxValue {
		return s.maxValue
	}
	return px
}

func (s SizeSpec) String() string {
	if s.hasMax {
		return fmt.Sprintf("%s=%g (max %dpx)", s.mode, s.value, s.maxValue)
	}
	return fmt.Sprintf("%s=%g", s.mode, s.value)
}
