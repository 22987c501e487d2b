package testutils

import (
	"github.com/KirkDiggler/scripted-ai/internal/domain/combat"
	"github.com/KirkDiggler/scripted-ai/internal/domain/spell"
	"github.com/KirkDiggler/scripted-ai/internal/uuid"
)

// TestUnit is a minimal combat.Unit for tests.
type TestUnit struct {
	ID       string
	UnitName string
}

// CreateTestUnit creates a test unit with a generated guid.
func CreateTestUnit(name string) *TestUnit {
	return &TestUnit{
		ID:       uuid.NewGoogleUUIDGenerator().New(),
		UnitName: name,
	}
}

// GUID implements combat.Unit.
func (u *TestUnit) GUID() string { return u.ID }

// Name implements combat.Unit.
func (u *TestUnit) Name() string { return u.UnitName }

// TestPlayer is a combat.Player that records teleports.
type TestPlayer struct {
	TestUnit
	TeleportedTo [][4]float64
}

// CreateTestPlayer creates a test player with a generated guid.
func CreateTestPlayer(name string) *TestPlayer {
	return &TestPlayer{
		TestUnit: TestUnit{
			ID:       uuid.NewGoogleUUIDGenerator().New(),
			UnitName: name,
		},
	}
}

// TeleportTo implements combat.Player.
func (p *TestPlayer) TeleportTo(x, y, z, orientation float64) {
	p.TeleportedTo = append(p.TeleportedTo, [4]float64{x, y, z, orientation})
}

// TestCreature is a combat.Creature backed by plain fields.
type TestCreature struct {
	TestUnit
	TemplateEntry uint32
	Slots         []uint32
	Pools         map[spell.PowerType]int32
	Silenced      bool

	// Distances maps target guid to live distance; unknown targets
	// read as 0.
	Distances map[string]float64

	// Equipment recording
	LoadedDefaultEquipment bool
	VirtualItems           map[combat.EquipmentSlot]uint32

	Threat combat.ThreatManager

	// Sounds played through PlayDirectSound
	PlayedSounds []uint32
}

// CreateTestCreature creates a creature with the given spell slots and a
// default mana pool of 100.
func CreateTestCreature(slots ...uint32) *TestCreature {
	return &TestCreature{
		TestUnit: TestUnit{
			ID:       uuid.NewGoogleUUIDGenerator().New(),
			UnitName: "test creature",
		},
		TemplateEntry: 1,
		Slots:         slots,
		Pools:         map[spell.PowerType]int32{spell.PowerMana: 100},
		Distances:     make(map[string]float64),
		VirtualItems:  make(map[combat.EquipmentSlot]uint32),
	}
}

// SetDistanceTo fixes the live distance to a target.
func (c *TestCreature) SetDistanceTo(target combat.Unit, dist float64) {
	c.Distances[target.GUID()] = dist
}

// SpellSlots implements combat.Caster.
func (c *TestCreature) SpellSlots() []uint32 { return c.Slots }

// Power implements combat.Caster.
func (c *TestCreature) Power(t spell.PowerType) int32 { return c.Pools[t] }

// IsSilenced implements combat.Caster.
func (c *TestCreature) IsSilenced() bool { return c.Silenced }

// DistanceTo implements combat.Caster.
func (c *TestCreature) DistanceTo(target combat.Unit) float64 {
	return c.Distances[target.GUID()]
}

// Entry implements combat.Creature.
func (c *TestCreature) Entry() uint32 { return c.TemplateEntry }

// LoadDefaultEquipment implements combat.Creature.
func (c *TestCreature) LoadDefaultEquipment() { c.LoadedDefaultEquipment = true }

// SetVirtualItem implements combat.Creature.
func (c *TestCreature) SetVirtualItem(slot combat.EquipmentSlot, itemID uint32) {
	c.VirtualItems[slot] = itemID
}

// ThreatManager implements combat.Creature.
func (c *TestCreature) ThreatManager() combat.ThreatManager { return c.Threat }

// PlayDirectSound implements combat.SoundEmitter.
func (c *TestCreature) PlayDirectSound(soundID uint32) {
	c.PlayedSounds = append(c.PlayedSounds, soundID)
}

// TestThreatManager is a combat.ThreatManager backed by a map.
type TestThreatManager struct {
	Units  []combat.Unit
	Values map[string]float64

	// Modified records ModifyThreatPercent calls by unit guid.
	Modified map[string]int32
}

// CreateTestThreatManager creates a threat manager over the given units,
// each with threat 10.
func CreateTestThreatManager(units ...combat.Unit) *TestThreatManager {
	tm := &TestThreatManager{
		Units:    units,
		Values:   make(map[string]float64),
		Modified: make(map[string]int32),
	}
	for _, u := range units {
		tm.Values[u.GUID()] = 10
	}
	return tm
}

// IsEmpty implements combat.ThreatManager.
func (m *TestThreatManager) IsEmpty() bool { return len(m.Units) == 0 }

// Entries implements combat.ThreatManager.
func (m *TestThreatManager) Entries() []combat.Unit { return m.Units }

// Threat implements combat.ThreatManager.
func (m *TestThreatManager) Threat(u combat.Unit) float64 { return m.Values[u.GUID()] }

// ModifyThreatPercent implements combat.ThreatManager.
func (m *TestThreatManager) ModifyThreatPercent(u combat.Unit, percent int32) {
	m.Modified[u.GUID()] = percent
	if percent == -100 {
		m.Values[u.GUID()] = 0
	}
}

// TestSoundStore is a combat.SoundStore over a fixed id set.
type TestSoundStore struct {
	IDs map[uint32]bool
}

// CreateTestSoundStore creates a sound store knowing the given ids.
func CreateTestSoundStore(ids ...uint32) *TestSoundStore {
	store := &TestSoundStore{IDs: make(map[uint32]bool)}
	for _, id := range ids {
		store.IDs[id] = true
	}
	return store
}

// Exists implements combat.SoundStore.
func (s *TestSoundStore) Exists(soundID uint32) bool { return s.IDs[soundID] }

// CreateTestSpell creates a single-slot spell definition with sane
// defaults: mana spell, zero cost, range index 1.
func CreateTestSpell(id uint32, target spell.TargetSpecifier, kind spell.EffectKind) *spell.Definition {
	return &spell.Definition{
		ID:         id,
		Name:       "test spell",
		PowerType:  spell.PowerMana,
		RangeIndex: 1,
		Effects: [spell.MaxEffectSlots]spell.EffectSlot{
			{Kind: kind, Target: target},
		},
	}
}

// CreateTestRange creates a range definition.
func CreateTestRange(index uint32, minRange, maxRange float64) *spell.RangeDefinition {
	return &spell.RangeDefinition{
		Index:    index,
		MinRange: minRange,
		MaxRange: maxRange,
	}
}
