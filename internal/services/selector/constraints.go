package selector

import (
	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	"github.com/KirkDiggler/scripted-ai/internal/services/capability"
)

// Constraints narrows a spell selection query. The zero value applies no
// optional filter at all; every bound is an explicit pointer so that 0
// stays usable as a real bound value (no magic sentinels).
//
// ExcludedSchools is the one mask-shaped field: a zero mask naturally
// means "exclude nothing".
type Constraints struct {
	// TargetClass, when set, requires the candidate's target classes to
	// include it.
	TargetClass *capability.TargetClass

	// EffectClass, when set, requires the candidate's effect classes to
	// include it.
	EffectClass *capability.EffectClass

	// ExcludedSchools rejects candidates whose school mask intersects it.
	ExcludedSchools spell.SchoolMask

	// Mechanic, when set, requires an exact mechanic match.
	Mechanic *spell.Mechanic

	// PowerCostMin and PowerCostMax, when set, bound the candidate's
	// power cost inclusively.
	PowerCostMin *int32
	PowerCostMax *int32

	// RangeMin and RangeMax, when set, bound the candidate's maximum
	// effective range inclusively.
	RangeMin *float64
	RangeMax *float64
}

// WithTargetClass returns the constraints with a required target class.
func (c Constraints) WithTargetClass(class capability.TargetClass) Constraints {
	c.TargetClass = &class
	return c
}

// WithEffectClass returns the constraints with a required effect class.
func (c Constraints) WithEffectClass(class capability.EffectClass) Constraints {
	c.EffectClass = &class
	return c
}

// WithExcludedSchools returns the constraints with a school exclusion mask.
func (c Constraints) WithExcludedSchools(mask spell.SchoolMask) Constraints {
	c.ExcludedSchools = mask
	return c
}

// WithMechanic returns the constraints with a required mechanic.
func (c Constraints) WithMechanic(mechanic spell.Mechanic) Constraints {
	c.Mechanic = &mechanic
	return c
}

// WithPowerCostMin returns the constraints with an inclusive lower power
// cost bound.
func (c Constraints) WithPowerCostMin(cost int32) Constraints {
	c.PowerCostMin = &cost
	return c
}

// WithPowerCostMax returns the constraints with an inclusive upper power
// cost bound.
func (c Constraints) WithPowerCostMax(cost int32) Constraints {
	c.PowerCostMax = &cost
	return c
}

// WithRangeMin returns the constraints with an inclusive lower bound on
// the candidate's maximum range.
func (c Constraints) WithRangeMin(r float64) Constraints {
	c.RangeMin = &r
	return c
}

// WithRangeMax returns the constraints with an inclusive upper bound on
// the candidate's maximum range.
func (c Constraints) WithRangeMax(r float64) Constraints {
	c.RangeMax = &r
	return c
}
