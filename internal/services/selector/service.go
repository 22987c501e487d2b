package selector

//go:generate mockgen -destination=mock/mock_service.go -package=mockselector -source=service.go

import (
	"github.com/KirkDiggler/scripted-ai/internal/domain/combat"
	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	"github.com/KirkDiggler/scripted-ai/internal/rng"
	"github.com/KirkDiggler/scripted-ai/internal/services/capability"
)

// Service picks castable spells for scripted creatures. Both operations
// are synchronous, non-blocking, and never return an error: an empty
// result set is ordinary, not exceptional.
type Service interface {
	// SelectSpell scans the caster's spell book, keeps every candidate
	// that satisfies the constraints and is actually castable against
	// the target right now, and returns one survivor uniformly at
	// random. It returns nil when the target is absent, the caster is
	// silenced, or no candidate survives.
	SelectSpell(caster combat.Caster, target combat.Unit, constraints Constraints) *spell.Definition

	// CanCast validates a single externally-chosen spell against the
	// same power and range rules SelectSpell applies per candidate.
	// Triggered casts skip the silence and power checks but still
	// enforce range.
	CanCast(caster combat.Caster, target combat.Unit, def *spell.Definition, triggered bool) bool
}

// ServiceConfig holds the selector's dependencies.
type ServiceConfig struct {
	SpellTable *spell.Table      // Required
	RangeTable *spell.RangeTable // Required
	Index      *capability.Index // Required
	Random     rng.Source        // Optional, defaults to a time-seeded source
}

type service struct {
	spells *spell.Table
	ranges *spell.RangeTable
	index  *capability.Index
	random rng.Source
}

// NewService creates a spell selector service.
func NewService(cfg *ServiceConfig) Service {
	if cfg.SpellTable == nil {
		panic("spell table is required")
	}
	if cfg.RangeTable == nil {
		panic("range table is required")
	}
	if cfg.Index == nil {
		panic("capability index is required")
	}

	svc := &service{
		spells: cfg.SpellTable,
		ranges: cfg.RangeTable,
		index:  cfg.Index,
		random: cfg.Random,
	}

	if svc.random == nil {
		svc.random = rng.NewRandomSource()
	}

	return svc
}

// SelectSpell implements Service.SelectSpell.
func (s *service) SelectSpell(caster combat.Caster, target combat.Unit, constraints Constraints) *spell.Definition {
	// No target so we can't cast
	if target == nil {
		return nil
	}

	// Silenced so we can't cast; this gate bypasses all filtering
	if caster.IsSilenced() {
		return nil
	}

	slots := caster.SpellSlots()
	survivors := make([]*spell.Definition, 0, len(slots))

	for _, id := range slots {
		def := s.spells.Lookup(id)

		// Empty slot or id with no definition
		if def == nil {
			continue
		}

		if !s.matches(caster, target, def, constraints) {
			continue
		}

		survivors = append(survivors, def)
	}

	if len(survivors) == 0 {
		return nil
	}

	// Uniform pick diversifies behavior run to run; every survivor is
	// equally likely.
	return survivors[s.random.Intn(len(survivors))]
}

// matches applies the per-candidate filter chain in fixed order,
// rejecting on the first failure.
func (s *service) matches(caster combat.Caster, target combat.Unit, def *spell.Definition, c Constraints) bool {
	summary := s.index.Summary(def.ID)

	// Target and effect classes first, as the most common restrictions
	if c.TargetClass != nil && !summary.Targets.Has(*c.TargetClass) {
		return false
	}

	if c.EffectClass != nil && !summary.Effects.Has(*c.EffectClass) {
		return false
	}

	// School exclusion: reject any candidate touching an excluded school
	if def.SchoolMask.Intersects(c.ExcludedSchools) {
		return false
	}

	if c.Mechanic != nil && def.Mechanic != *c.Mechanic {
		return false
	}

	if c.PowerCostMin != nil && def.PowerCost < *c.PowerCostMin {
		return false
	}

	if c.PowerCostMax != nil && def.PowerCost > *c.PowerCostMax {
		return false
	}

	// Affordability is unconditional, independent of the constraints
	if def.PowerCost > caster.Power(def.PowerType) {
		return false
	}

	rangeDef := s.ranges.Lookup(def.RangeIndex)

	// Spell has no resolvable range record so we can't use it
	if rangeDef == nil {
		return false
	}

	if c.RangeMin != nil && rangeDef.MaxRange < *c.RangeMin {
		return false
	}

	if c.RangeMax != nil && rangeDef.MaxRange > *c.RangeMax {
		return false
	}

	return s.targetInRangeBand(caster, target, rangeDef)
}

// CanCast implements Service.CanCast. It must stay in lockstep with the
// power and range checks in matches; any spell SelectSpell returns has
// to pass CanCast non-triggered against the same actor and target.
func (s *service) CanCast(caster combat.Caster, target combat.Unit, def *spell.Definition, triggered bool) bool {
	if target == nil || def == nil {
		return false
	}

	if !triggered && caster.IsSilenced() {
		return false
	}

	if !triggered && caster.Power(def.PowerType) < def.PowerCost {
		return false
	}

	rangeDef := s.ranges.Lookup(def.RangeIndex)
	if rangeDef == nil {
		return false
	}

	return s.targetInRangeBand(caster, target, rangeDef)
}

// targetInRangeBand reports whether the target sits at or beyond the
// spell's minimum range and within its maximum, by live map distance.
func (s *service) targetInRangeBand(caster combat.Caster, target combat.Unit, rangeDef *spell.RangeDefinition) bool {
	dist := caster.DistanceTo(target)
	return dist >= rangeDef.MinRange && dist <= rangeDef.MaxRange
}
