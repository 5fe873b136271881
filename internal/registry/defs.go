package registry

import (
	"fmt"
	"strings"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
)

// StatBlock — пять базовых характеристик.
type StatBlock struct {
	Strength     float64 `yaml:"str"`
	Agility      float64 `yaml:"agi"`
	Intelligence float64 `yaml:"int"`
	Vitality     float64 `yaml:"vit"`
	Luck         float64 `yaml:"luck"`
}

// Add складывает характеристики поэлементно.
func (s StatBlock) Add(o StatBlock) StatBlock {
	return StatBlock{
		Strength:     s.Strength + o.Strength,
		Agility:      s.Agility + o.Agility,
		Intelligence: s.Intelligence + o.Intelligence,
		Vitality:     s.Vitality + o.Vitality,
		Luck:         s.Luck + o.Luck,
	}
}

// Get возвращает значение одной характеристики.
func (s StatBlock) Get(stat enums.Stat) float64 {
	switch stat {
	case enums.StatStrength:
		return s.Strength
	case enums.StatAgility:
		return s.Agility
	case enums.StatIntelligence:
		return s.Intelligence
	case enums.StatVitality:
		return s.Vitality
	case enums.StatLuck:
		return s.Luck
	}
	return 0
}

// With возвращает копию с изменённой характеристикой.
func (s StatBlock) With(stat enums.Stat, delta float64) StatBlock {
	switch stat {
	case enums.StatStrength:
		s.Strength += delta
	case enums.StatAgility:
		s.Agility += delta
	case enums.StatIntelligence:
		s.Intelligence += delta
	case enums.StatVitality:
		s.Vitality += delta
	case enums.StatLuck:
		s.Luck += delta
	}
	return s
}

// Bonuses — аддитивные бонусы предметов и пассивных навыков.
type Bonuses struct {
	Stats          StatBlock `yaml:"stats"`
	MaxHealth      float64   `yaml:"max_health"`
	MaxMana        float64   `yaml:"max_mana"`
	MaxStamina     float64   `yaml:"max_stamina"`
	Attack         float64   `yaml:"attack"`
	Magic          float64   `yaml:"magic"`
	Defense        float64   `yaml:"defense"`
	CritChance     float64   `yaml:"crit_chance"`
	CritMultiplier float64   `yaml:"crit_multiplier"`
	Speed          float64   `yaml:"speed"`
}

func (b Bonuses) Add(o Bonuses) Bonuses {
	return Bonuses{
		Stats:          b.Stats.Add(o.Stats),
		MaxHealth:      b.MaxHealth + o.MaxHealth,
		MaxMana:        b.MaxMana + o.MaxMana,
		MaxStamina:     b.MaxStamina + o.MaxStamina,
		Attack:         b.Attack + o.Attack,
		Magic:          b.Magic + o.Magic,
		Defense:        b.Defense + o.Defense,
		CritChance:     b.CritChance + o.CritChance,
		CritMultiplier: b.CritMultiplier + o.CritMultiplier,
		Speed:          b.Speed + o.Speed,
	}
}

// EffectDef описывает статус-эффект, который накладывает атака или способность.
type EffectDef struct {
	Kind         enums.EffectKind `yaml:"kind"`
	Magnitude    float64          `yaml:"magnitude"`
	Duration     float64          `yaml:"duration"`
	TickInterval float64          `yaml:"tick_interval"`
	TickAmount   float64          `yaml:"tick_amount"`
}

// AttackDef — параметры боевого инстанса.
// Поля, не относящиеся к Kind, игнорируются.
type AttackDef struct {
	Kind     enums.AttackKind `yaml:"kind"`
	Magic    bool             `yaml:"magic"`
	Damage   float64          `yaml:"damage"`
	Scale    float64          `yaml:"scale"`
	Element  enums.Element    `yaml:"element"`
	Lifetime float64          `yaml:"lifetime"`
	ManaCost float64          `yaml:"mana_cost"`

	// Ближний бой
	Reach  float64 `yaml:"reach"`
	Width  float64 `yaml:"width"`
	Cleave bool    `yaml:"cleave"`

	// Снаряды
	Speed       float64 `yaml:"speed"`
	Range       float64 `yaml:"range"`
	Radius      float64 `yaml:"radius"`
	Piercing    bool    `yaml:"piercing"`
	MaxPierce   int     `yaml:"max_pierce"`
	PierceDecay float64 `yaml:"pierce_decay"`
	Bounces     int     `yaml:"bounces"`
	Splits      int     `yaml:"splits"`
	Homing      bool    `yaml:"homing"`
	TurnRate    float64 `yaml:"turn_rate"`
	HomingRange float64 `yaml:"homing_range"`

	// Кольца и зоны
	StartRadius float64 `yaml:"start_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	ExpandSpeed float64 `yaml:"expand_speed"`
	RingWidth   float64 `yaml:"ring_width"`
	TickRate    float64 `yaml:"tick_rate"`

	Knockback float64     `yaml:"knockback"`
	Stun      float64     `yaml:"stun"`
	OnHit     []EffectDef `yaml:"on_hit"`
	OnExpire  *AttackDef  `yaml:"on_expire"`
}

// DamageScale возвращает множитель силы атакующего (по умолчанию 1).
func (a AttackDef) DamageScale() float64 {
	if a.Scale <= 0 {
		return 1
	}
	return a.Scale
}

// ClassDef — шаблон актёра: игровой класс или тип врага.
type ClassDef struct {
	ID             string           `yaml:"-"`
	Name           string           `yaml:"name"`
	Kind           enums.EntityKind `yaml:"kind"`
	Stats          StatBlock        `yaml:"stats"`
	Size           float64          `yaml:"size"`
	Friction       float64          `yaml:"friction"`
	AttackCooldown float64          `yaml:"attack_cooldown"`
	DefaultAttack  *AttackDef       `yaml:"default_attack"`
	CanDash        bool             `yaml:"can_dash"`
	CanTeleport    bool             `yaml:"can_teleport"`
	CanParry       bool             `yaml:"can_parry"`
	Abilities      []string         `yaml:"abilities"`
	Spells         []string         `yaml:"spells"`
	StartingItems  []string         `yaml:"starting_items"`
	XPReward       float64          `yaml:"xp_reward"`
	AggroRadius    float64          `yaml:"aggro_radius"`
	AttackRange    float64          `yaml:"attack_range"`
}

// ItemDef — экипируемый предмет. Оружие несёт собственную атаку.
type ItemDef struct {
	ID             string          `yaml:"-"`
	Name           string          `yaml:"name"`
	Slot           enums.EquipSlot `yaml:"slot"`
	Bonuses        Bonuses         `yaml:"bonuses"`
	Damage         float64         `yaml:"damage"`
	AttackCooldown float64         `yaml:"attack_cooldown"`
	Attack         *AttackDef      `yaml:"attack"`
}

// AbilityKind — что делает способность при успешном применении.
type AbilityKind uint8

const (
	AbilityUnknown AbilityKind = iota
	AbilityAttack
	AbilityBuff
	AbilityHeal
)

var abilityKindToString = map[AbilityKind]string{
	AbilityAttack: "ATTACK",
	AbilityBuff:   "BUFF",
	AbilityHeal:   "HEAL",
}

func (k AbilityKind) String() string {
	if val, ok := abilityKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func (k *AbilityKind) UnmarshalText(text []byte) error {
	upper := strings.ToUpper(string(text))
	for kind, name := range abilityKindToString {
		if name == upper {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown ability kind %q", string(text))
}

// AbilityDef — активная способность на хотбаре.
type AbilityDef struct {
	ID            string      `yaml:"-"`
	Name          string      `yaml:"name"`
	Kind          AbilityKind `yaml:"kind"`
	ManaCost      float64     `yaml:"mana_cost"`
	StaminaCost   float64     `yaml:"stamina_cost"`
	Cooldown      float64     `yaml:"cooldown"`
	CastTime      float64     `yaml:"cast_time"`
	RequiresSkill string      `yaml:"requires_skill"`
	Attack        *AttackDef  `yaml:"attack"`
	Effect        *EffectDef  `yaml:"effect"`
	Heal          float64     `yaml:"heal"`
	HealScale     float64     `yaml:"heal_scale"`
}

// SkillDef — узел дерева навыков.
type SkillDef struct {
	ID            string   `yaml:"-"`
	Name          string   `yaml:"name"`
	Cost          int      `yaml:"cost"`
	Requires      []string `yaml:"requires"`
	GrantsAbility string   `yaml:"grants_ability"`
	GrantsSpell   string   `yaml:"grants_spell"`
	Passive       Bonuses  `yaml:"passive"`
}
