// File: internal/responsive/specs.go
package responsive

import (
	"cmp"
	"fmt"
	"slices"
)

// Specifier is implemented by every grid family's breakpoint type through an embedded
// ResponsiveSpec.
type Specifier interface {
	Responsive() ResponsiveSpec
}

// ResponsiveSpecs holds the breakpoints of one grid family split by axis, each list sorted
// ascending by MaxAvailableSize. It is read-only after construction.
type ResponsiveSpecs[T Specifier] struct {
	widthSpecs  []T
	heightSpecs []T
}

// NewResponsiveSpecs checks that both lists are non-empty and hold only breakpoints of
// their axis, then sorts them. Breakpoints sharing a bound keep their authoring order.
func NewResponsiveSpecs[T Specifier](widthSpecs, heightSpecs []T) (*ResponsiveSpecs[T], error) {
	width, err := sortedAxis(Width, widthSpecs)
	if err != nil {
		return nil, err
	}
	height, err := sortedAxis(Height, heightSpecs)
	if err != nil {
		return nil, err
	}
	return &ResponsiveSpecs[T]{widthSpecs: width, heightSpecs: height}, nil
}

// Partition splits breakpoints by axis, preserving their order.
func Partition[T Specifier](specs []T) (widthSpecs, heightSpecs []T) {
	for _, s := range specs {
		if s.Responsive().Axis() == Width {
			widthSpecs = append(widthSpecs, s)
		} else {
			heightSpecs = append(heightSpecs, s)
		}
	}
	return widthSpecs, heightSpecs
}

func sortedAxis[T Specifier](axis Axis, specs []T) ([]T, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySpecs, axis)
	}
	for i, s := range specs {
		if got := s.Responsive().Axis(); got != axis {
			return nil, fmt.Errorf("%w: entry %d in %s specs has axis %s", ErrAxisMismatch, i, axis, got)
		}
	}
	sorted := slices.Clone(specs)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(a.Responsive().MaxAvailableSize(), b.Responsive().MaxAvailableSize())
	})
	return sorted, nil
}

// Spec returns the breakpoint for the given axis and available space: the first one whose
// bound covers availableSpace, or the largest one when none does.
func (r *ResponsiveSpecs[T]) Spec(axis Axis, availableSpace int) T {
	switch axis {
	case Width:
		return selectBreakpoint(r.widthSpecs, availableSpace)
	case Height:
		return selectBreakpoint(r.heightSpecs, availableSpace)
	}
	panic(fmt.Sprintf("responsive: unknown axis %d", int(axis)))
}

// WidthSpec is Spec(Width, availableWidth).
func (r *ResponsiveSpecs[T]) WidthSpec(availableWidth int) T {
	return r.Spec(Width, availableWidth)
}

// HeightSpec is Spec(Height, availableHeight).
func (r *ResponsiveSpecs[T]) HeightSpec(availableHeight int) T {
	return r.Spec(Height, availableHeight)
}

// WidthSpecs returns a copy of the sorted width breakpoints.
func (r *ResponsiveSpecs[T]) WidthSpecs() []T { return slices.Clone(r.widthSpecs) }

// HeightSpecs returns a copy of the sorted height breakpoints.
func (r *ResponsiveSpecs[T]) HeightSpecs() []T { return slices.Clone(r.heightSpecs) }

func selectBreakpoint[T Specifier](specs []T, availableSpace int) T {
	for _, s := range specs {
		if s.Responsive().MaxAvailableSize() >= availableSpace {
			return s
		}
	}
	return specs[len(specs)-1]
}

// -- Aspect ratio groups --

// SpecGroups holds one spec family per aspect-ratio bucket. Buckets are sorted ascending
// by their maximum aspect ratio and the last one is open-ended.
type SpecGroups[S any] struct {
	ratios []float64
	specs  []S
}

// Group is a raw bucket of entries as read from a spec document.
type Group struct {
	MaxAspectRatio float64
	Entries        []Entry
}

// BuildGroups builds every group with build. Groups sharing a bound keep authoring order.
func BuildGroups[S any](groups []Group, build func([]ResponsiveSpec) (S, error)) (*SpecGroups[S], error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no spec groups", ErrEmptySpecs)
	}
	ordered := slices.Clone(groups)
	slices.SortStableFunc(ordered, func(a, b Group) int {
		return cmp.Compare(a.MaxAspectRatio, b.MaxAspectRatio)
	})

	out := &SpecGroups[S]{}
	for _, g := range ordered {
		if g.MaxAspectRatio <= 0 {
			return nil, fmt.Errorf("%w: maxAspectRatio %v must be positive", ErrInvalidResponsiveSpec, g.MaxAspectRatio)
		}
		specs := make([]ResponsiveSpec, 0, len(g.Entries))
		for _, e := range g.Entries {
			s, err := e.Build()
			if err != nil {
				return nil, err
			}
			specs = append(specs, s)
		}
		family, err := build(specs)
		if err != nil {
			return nil, fmt.Errorf("group maxAspectRatio=%v: %w", g.MaxAspectRatio, err)
		}
		out.ratios = append(out.ratios, g.MaxAspectRatio)
		out.specs = append(out.specs, family)
	}
	return out, nil
}

// ForAspectRatio returns the first group whose bound covers ratio, or the last group.
func (g *SpecGroups[S]) ForAspectRatio(ratio float64) S {
	for i, bound := range g.ratios {
		if bound >= ratio {
			return g.specs[i]
		}
	}
	return g.specs[len(g.specs)-1]
}

// Len returns the number of aspect-ratio groups.
func (g *SpecGroups[S]) Len() int { return len(g.specs) }
