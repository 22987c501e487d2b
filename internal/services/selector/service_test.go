package selector_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	"github.com/KirkDiggler/scripted-ai/internal/rng"
	mockrng "github.com/KirkDiggler/scripted-ai/internal/rng/mock"
	"github.com/KirkDiggler/scripted-ai/internal/services/capability"
	"github.com/KirkDiggler/scripted-ai/internal/services/selector"
	"github.com/KirkDiggler/scripted-ai/internal/testutils"
)

const (
	spellFrostbolt   = 100
	spellFireball    = 101
	spellLesserHeal  = 102
	spellFrostNova   = 103
	spellSnipe       = 104
	spellBrokenRange = 105

	novaMechanic spell.Mechanic = 12
)

type SelectorTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *mockrng.MockSource

	spells *spell.Table
	ranges *spell.RangeTable
	index  *capability.Index

	svc    selector.Service
	caster *testutils.TestCreature
	target *testutils.TestUnit
}

func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

func (s *SelectorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = mockrng.NewMockSource(s.mockCtrl)

	frostbolt := testutils.CreateTestSpell(spellFrostbolt, spell.TargetChainDamage, spell.EffectSchoolDamage)
	frostbolt.SchoolMask = spell.SchoolMaskFrost
	frostbolt.PowerCost = 25
	frostbolt.RangeIndex = 4

	fireball := testutils.CreateTestSpell(spellFireball, spell.TargetChainDamage, spell.EffectSchoolDamage)
	fireball.SchoolMask = spell.SchoolMaskFire
	fireball.PowerCost = 30
	fireball.RangeIndex = 4

	heal := testutils.CreateTestSpell(spellLesserHeal, spell.TargetSingleFriend, spell.EffectHeal)
	heal.SchoolMask = spell.SchoolMaskHoly
	heal.PowerCost = 40
	heal.RangeIndex = 4

	nova := testutils.CreateTestSpell(spellFrostNova, spell.TargetCasterCoordinates, spell.EffectApplyAura)
	nova.SchoolMask = spell.SchoolMaskFrost
	nova.Mechanic = novaMechanic
	nova.PowerCost = 35
	nova.RangeIndex = 4

	snipe := testutils.CreateTestSpell(spellSnipe, spell.TargetChainDamage, spell.EffectSchoolDamage)
	snipe.PowerCost = 10
	snipe.RangeIndex = 6

	broken := testutils.CreateTestSpell(spellBrokenRange, spell.TargetChainDamage, spell.EffectSchoolDamage)
	broken.PowerCost = 10
	broken.RangeIndex = 99 // no such range record

	s.spells = spell.NewTableFromDefinitions([]*spell.Definition{
		frostbolt, fireball, heal, nova, snipe, broken,
	})

	s.ranges = spell.NewRangeTableFromDefinitions([]*spell.RangeDefinition{
		testutils.CreateTestRange(1, 0, 5),
		testutils.CreateTestRange(4, 0, 30),
		testutils.CreateTestRange(6, 8, 35),
	})

	s.index = capability.BuildIndex(s.spells)

	s.caster = testutils.CreateTestCreature(spellFrostbolt, spellFireball, spellLesserHeal, spellFrostNova)
	s.target = testutils.CreateTestUnit("victim")
	s.caster.SetDistanceTo(s.target, 20)

	s.svc = s.newService(rng.NewSeededSource(42))
}

func (s *SelectorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SelectorTestSuite) newService(random rng.Source) selector.Service {
	return selector.NewService(&selector.ServiceConfig{
		SpellTable: s.spells,
		RangeTable: s.ranges,
		Index:      s.index,
		Random:     random,
	})
}

func (s *SelectorTestSuite) TestSelectSpellNilTarget() {
	result := s.svc.SelectSpell(s.caster, nil, selector.Constraints{})
	s.Nil(result)
}

func (s *SelectorTestSuite) TestSelectSpellSilenced() {
	s.caster.Silenced = true

	result := s.svc.SelectSpell(s.caster, s.target, selector.Constraints{})
	s.Nil(result)
}

func (s *SelectorTestSuite) TestSelectSpellSkipsEmptyAndUnknownSlots() {
	s.caster.Slots = []uint32{0, 9999, spellFrostbolt}

	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0)

	result := svc.SelectSpell(s.caster, s.target, selector.Constraints{})
	s.Require().NotNil(result)
	s.Equal(uint32(spellFrostbolt), result.ID)
}

func (s *SelectorTestSuite) TestSelectSpellTargetClassConstraint() {
	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0)

	// Only the heal satisfies the friendly single-target class
	result := svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithTargetClass(capability.TargetSingleFriend))
	s.Require().NotNil(result)
	s.Equal(uint32(spellLesserHeal), result.ID)
}

func (s *SelectorTestSuite) TestSelectSpellEffectClassConstraint() {
	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0)

	result := svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithEffectClass(capability.EffectHealing))
	s.Require().NotNil(result)
	s.Equal(uint32(spellLesserHeal), result.ID)
}

func (s *SelectorTestSuite) TestSelectSpellAuraConstraintMatchesCasterCenteredSpell() {
	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0)

	result := svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithEffectClass(capability.EffectAura))
	s.Require().NotNil(result)
	s.Equal(uint32(spellFrostNova), result.ID)
}

func (s *SelectorTestSuite) TestSelectSpellSchoolExclusion() {
	constraints := selector.Constraints{}.
		WithEffectClass(capability.EffectDamage).
		WithExcludedSchools(spell.SchoolMaskFrost)

	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0)

	// Frostbolt is frost school, so only the fireball remains
	result := svc.SelectSpell(s.caster, s.target, constraints)
	s.Require().NotNil(result)
	s.Equal(uint32(spellFireball), result.ID)
}

func (s *SelectorTestSuite) TestSelectSpellMechanicRequirement() {
	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0)

	result := svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithMechanic(novaMechanic))
	s.Require().NotNil(result)
	s.Equal(uint32(spellFrostNova), result.ID)

	// No spell carries this mechanic
	result = svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithMechanic(spell.Mechanic(77)))
	s.Nil(result)
}

func (s *SelectorTestSuite) TestSelectSpellPowerCostBounds() {
	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0).Times(2)

	// Costs: frostbolt 25, fireball 30, heal 40, nova 35
	result := svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithPowerCostMin(40))
	s.Require().NotNil(result)
	s.Equal(uint32(spellLesserHeal), result.ID)

	result = svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithPowerCostMax(25))
	s.Require().NotNil(result)
	s.Equal(uint32(spellFrostbolt), result.ID)
}

func (s *SelectorTestSuite) TestSelectSpellExplicitZeroMinIsARealBound() {
	// An explicit 0 lower bound admits everything, same as unset; the
	// point is that it is representable at all.
	result := s.svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithPowerCostMin(0))
	s.NotNil(result)
}

func (s *SelectorTestSuite) TestSelectSpellNeverExceedsPowerPool() {
	s.caster.Pools[spell.PowerMana] = 28

	// Only the frostbolt (25) is affordable
	for i := 0; i < 50; i++ {
		result := s.svc.SelectSpell(s.caster, s.target, selector.Constraints{})
		s.Require().NotNil(result)
		s.Equal(uint32(spellFrostbolt), result.ID)
	}

	s.caster.Pools[spell.PowerMana] = 10
	s.Nil(s.svc.SelectSpell(s.caster, s.target, selector.Constraints{}))
}

func (s *SelectorTestSuite) TestSelectSpellUnresolvableRange() {
	s.caster.Slots = []uint32{spellBrokenRange}

	result := s.svc.SelectSpell(s.caster, s.target, selector.Constraints{})
	s.Nil(result)
}

func (s *SelectorTestSuite) TestSelectSpellRangeBoundConstraints() {
	s.caster.Slots = []uint32{spellFrostbolt, spellSnipe}
	s.caster.SetDistanceTo(s.target, 20)

	svc := s.newService(s.mockRandom)
	s.mockRandom.EXPECT().Intn(1).Return(0).Times(2)

	// Only the snipe's range record (max 35) reaches past 31
	result := svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithRangeMin(31))
	s.Require().NotNil(result)
	s.Equal(uint32(spellSnipe), result.ID)

	// Only the frostbolt's range record (max 30) stays under 30
	result = svc.SelectSpell(s.caster, s.target,
		selector.Constraints{}.WithRangeMax(30))
	s.Require().NotNil(result)
	s.Equal(uint32(spellFrostbolt), result.ID)
}

func (s *SelectorTestSuite) TestSelectSpellTargetDistanceBand() {
	s.caster.Slots = []uint32{spellSnipe} // band [8, 35]

	s.caster.SetDistanceTo(s.target, 6)
	s.Nil(s.svc.SelectSpell(s.caster, s.target, selector.Constraints{}))

	// At the minimum range is in band
	s.caster.SetDistanceTo(s.target, 8)
	s.NotNil(s.svc.SelectSpell(s.caster, s.target, selector.Constraints{}))

	s.caster.SetDistanceTo(s.target, 35)
	s.NotNil(s.svc.SelectSpell(s.caster, s.target, selector.Constraints{}))

	s.caster.SetDistanceTo(s.target, 36)
	s.Nil(s.svc.SelectSpell(s.caster, s.target, selector.Constraints{}))
}

func (s *SelectorTestSuite) TestSelectSpellSingleSurvivorIsDeterministic() {
	s.caster.Slots = []uint32{spellFrostbolt}

	for i := 0; i < 100; i++ {
		result := s.svc.SelectSpell(s.caster, s.target, selector.Constraints{})
		s.Require().NotNil(result)
		s.Equal(uint32(spellFrostbolt), result.ID)
	}
}

func (s *SelectorTestSuite) TestSelectSpellUniformAcrossSurvivors() {
	// All four book spells survive with no constraints at distance 20
	const trials = 4000
	counts := make(map[uint32]int)

	svc := s.newService(rng.NewSeededSource(7))
	for i := 0; i < trials; i++ {
		result := svc.SelectSpell(s.caster, s.target, selector.Constraints{})
		s.Require().NotNil(result)
		counts[result.ID]++
	}

	s.Len(counts, 4)

	// Chi-square against uniform; critical value for df=3 at p=0.01
	expected := float64(trials) / 4
	chi := 0.0
	for _, n := range counts {
		diff := float64(n) - expected
		chi += diff * diff / expected
	}
	s.Less(chi, 11.345, "selection should be uniform across survivors, chi-square=%f counts=%v", chi, counts)
}

func (s *SelectorTestSuite) TestSelectSpellAgreesWithCanCast() {
	for i := 0; i < 200; i++ {
		result := s.svc.SelectSpell(s.caster, s.target, selector.Constraints{})
		s.Require().NotNil(result)
		s.True(s.svc.CanCast(s.caster, s.target, result, false),
			"spell %d was selected but fails CanCast", result.ID)
	}
}

func (s *SelectorTestSuite) TestCanCastAbsentInputs() {
	def := s.spells.Lookup(spellFrostbolt)

	s.False(s.svc.CanCast(s.caster, nil, def, false))
	s.False(s.svc.CanCast(s.caster, s.target, nil, false))
}

func (s *SelectorTestSuite) TestCanCastSilence() {
	s.caster.Silenced = true
	def := s.spells.Lookup(spellFrostbolt)

	s.False(s.svc.CanCast(s.caster, s.target, def, false))

	// Triggered casts ignore silence
	s.True(s.svc.CanCast(s.caster, s.target, def, true))
}

func (s *SelectorTestSuite) TestCanCastPower() {
	s.caster.Pools[spell.PowerMana] = 5
	def := s.spells.Lookup(spellFrostbolt)

	s.False(s.svc.CanCast(s.caster, s.target, def, false))

	// Triggered casts ignore the power pool
	s.True(s.svc.CanCast(s.caster, s.target, def, true))
}

func (s *SelectorTestSuite) TestCanCastRangeAppliesEvenTriggered() {
	def := s.spells.Lookup(spellFrostbolt)

	s.caster.SetDistanceTo(s.target, 31)
	s.False(s.svc.CanCast(s.caster, s.target, def, false))
	s.False(s.svc.CanCast(s.caster, s.target, def, true))

	broken := s.spells.Lookup(spellBrokenRange)
	s.caster.SetDistanceTo(s.target, 20)
	s.False(s.svc.CanCast(s.caster, s.target, broken, true))
}

func (s *SelectorTestSuite) TestNewServicePanicsOnMissingDeps() {
	s.Panics(func() {
		selector.NewService(&selector.ServiceConfig{RangeTable: s.ranges, Index: s.index})
	})
	s.Panics(func() {
		selector.NewService(&selector.ServiceConfig{SpellTable: s.spells, Index: s.index})
	})
	s.Panics(func() {
		selector.NewService(&selector.ServiceConfig{SpellTable: s.spells, RangeTable: s.ranges})
	})
}
