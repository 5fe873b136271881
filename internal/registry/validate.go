package registry

import (
	"fmt"
	"math"
	"sort"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/core/types/enums"
)

// validate проверяет перекрёстные ссылки между справочниками.
// Ошибка содержит путь к проблемному полю, как "classes.mage.abilities[1]".
func (r *Registry) validate() error {
	if err := validateRules(r.rules); err != nil {
		return err
	}

	for _, id := range sortedKeys(r.classes) {
		c := r.classes[id]
		path := "classes." + id
		if c.Kind != enums.EntityKindPlayer && c.Kind != enums.EntityKindEnemy {
			return fmt.Errorf("%s: kind must be player or enemy", path)
		}
		if c.Size <= 0 {
			return fmt.Errorf("%s: size must be positive", path)
		}
		if c.Friction < 0 || c.Friction > 1 {
			return fmt.Errorf("%s: friction must be within [0, 1]", path)
		}
		if c.DefaultAttack != nil {
			if err := validateAttack(path+".default_attack", *c.DefaultAttack); err != nil {
				return err
			}
		}
		for i, ab := range c.Abilities {
			if _, ok := r.abilities[ab]; !ok {
				return fmt.Errorf("%s.abilities[%d]: %w %q", path, i, ErrUnknownAbility, ab)
			}
		}
		for i, sp := range c.Spells {
			if err := r.validateSpell(fmt.Sprintf("%s.spells[%d]", path, i), sp); err != nil {
				return err
			}
		}
		for i, it := range c.StartingItems {
			if _, ok := r.items[it]; !ok {
				return fmt.Errorf("%s.starting_items[%d]: %w %q", path, i, ErrUnknownItem, it)
			}
		}
	}

	for _, id := range sortedKeys(r.items) {
		it := r.items[id]
		path := "items." + id
		if it.Slot == enums.SlotUnknown {
			return fmt.Errorf("%s: slot is required", path)
		}
		if it.Attack != nil {
			if it.Slot != enums.SlotWeapon {
				return fmt.Errorf("%s: only weapons may define an attack", path)
			}
			if err := validateAttack(path+".attack", *it.Attack); err != nil {
				return err
			}
		}
	}

	for _, id := range sortedKeys(r.abilities) {
		ab := r.abilities[id]
		path := "abilities." + id
		switch ab.Kind {
		case AbilityAttack:
			if ab.Attack == nil {
				return fmt.Errorf("%s: attack ability without attack", path)
			}
			if err := validateAttack(path+".attack", *ab.Attack); err != nil {
				return err
			}
		case AbilityBuff:
			if ab.Effect == nil {
				return fmt.Errorf("%s: buff ability without effect", path)
			}
			if err := validateEffect(path+".effect", *ab.Effect); err != nil {
				return err
			}
		case AbilityHeal:
			if ab.Heal <= 0 && ab.HealScale <= 0 {
				return fmt.Errorf("%s: heal ability heals nothing", path)
			}
		default:
			return fmt.Errorf("%s: kind is required", path)
		}
		if ab.ManaCost < 0 || ab.StaminaCost < 0 || ab.Cooldown < 0 || ab.CastTime < 0 {
			return fmt.Errorf("%s: costs and timers must not be negative", path)
		}
		if ab.RequiresSkill != "" {
			if _, ok := r.skills[ab.RequiresSkill]; !ok {
				return fmt.Errorf("%s.requires_skill: %w %q", path, ErrUnknownSkill, ab.RequiresSkill)
			}
		}
	}

	for _, id := range sortedKeys(r.skills) {
		sk := r.skills[id]
		path := "skills." + id
		if sk.Cost < 0 {
			return fmt.Errorf("%s: cost must not be negative", path)
		}
		for i, req := range sk.Requires {
			if _, ok := r.skills[req]; !ok {
				return fmt.Errorf("%s.requires[%d]: %w %q", path, i, ErrUnknownSkill, req)
			}
		}
		if sk.GrantsAbility != "" {
			if _, ok := r.abilities[sk.GrantsAbility]; !ok {
				return fmt.Errorf("%s.grants_ability: %w %q", path, ErrUnknownAbility, sk.GrantsAbility)
			}
		}
		if sk.GrantsSpell != "" {
			if err := r.validateSpell(path+".grants_spell", sk.GrantsSpell); err != nil {
				return err
			}
		}
	}

	return r.checkSkillCycles()
}

// validateSpell — заклинание в ротации должно быть атакующей способностью.
func (r *Registry) validateSpell(path, id string) error {
	ab, ok := r.abilities[id]
	if !ok {
		return fmt.Errorf("%s: %w %q", path, ErrUnknownAbility, id)
	}
	if ab.Kind != AbilityAttack {
		return fmt.Errorf("%s: spell %q must be an attack ability", path, id)
	}
	return nil
}

// checkSkillCycles ищет циклы в требованиях навыков обходом в глубину.
func (r *Registry) checkSkillCycles() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(r.skills))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("skills.%s: prerequisite cycle", id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, req := range r.skills[id].Requires {
			if err := visit(req); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, id := range sortedKeys(r.skills) {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

func validateRules(rl Rules) error {
	if rl.MaxFrameDT <= 0 {
		return fmt.Errorf("rules.max_frame_dt must be positive")
	}
	if rl.TileSize <= 0 {
		return fmt.Errorf("rules.tile_size must be positive")
	}
	if rl.DisplacementStep <= 0 {
		return fmt.Errorf("rules.displacement_step must be positive")
	}
	if rl.ArmorFactor < 0 {
		return fmt.Errorf("rules.armor_factor must not be negative")
	}
	if rl.Dash.ChainMinCost > rl.Dash.StaminaCost {
		return fmt.Errorf("rules.dash.chain_min_cost exceeds stamina_cost")
	}
	if rl.Leveling.BaseThreshold <= 0 {
		return fmt.Errorf("rules.leveling.base_threshold must be positive")
	}
	return nil
}

func validateAttack(path string, a AttackDef) error {
	if !finite(a.Damage, a.Scale, a.Lifetime, a.Reach, a.Width, a.Speed, a.Range, a.Radius,
		a.StartRadius, a.MaxRadius, a.ExpandSpeed, a.RingWidth, a.TickRate, a.Knockback, a.Stun) {
		return fmt.Errorf("%s: non-finite number", path)
	}
	switch a.Kind {
	case enums.AttackMelee:
		if a.Reach <= 0 || a.Width <= 0 {
			return fmt.Errorf("%s: melee needs positive reach and width", path)
		}
		if a.Lifetime <= 0 {
			return fmt.Errorf("%s: melee needs positive lifetime", path)
		}
	case enums.AttackProjectile:
		if a.Speed <= 0 || a.Radius <= 0 {
			return fmt.Errorf("%s: projectile needs positive speed and radius", path)
		}
		if a.Lifetime <= 0 && a.Range <= 0 {
			return fmt.Errorf("%s: projectile needs lifetime or range", path)
		}
		if a.PierceDecay < 0 || a.PierceDecay >= 1 {
			return fmt.Errorf("%s: pierce_decay must be within [0, 1)", path)
		}
		if a.Bounces < 0 || a.Splits < 0 || a.MaxPierce < 0 {
			return fmt.Errorf("%s: counters must not be negative", path)
		}
	case enums.AttackRing:
		if a.MaxRadius <= 0 || a.ExpandSpeed <= 0 || a.RingWidth <= 0 {
			return fmt.Errorf("%s: ring needs positive max_radius, expand_speed and ring_width", path)
		}
	case enums.AttackZone:
		if a.Radius <= 0 || a.Lifetime <= 0 {
			return fmt.Errorf("%s: zone needs positive radius and lifetime", path)
		}
	default:
		return fmt.Errorf("%s: kind is required", path)
	}
	for i, e := range a.OnHit {
		if err := validateEffect(fmt.Sprintf("%s.on_hit[%d]", path, i), e); err != nil {
			return err
		}
	}
	if a.OnExpire != nil {
		return validateAttack(path+".on_expire", *a.OnExpire)
	}
	return nil
}

func validateEffect(path string, e EffectDef) error {
	if e.Kind == enums.EffectUnknown {
		return fmt.Errorf("%s: kind is required", path)
	}
	if !finite(e.Magnitude, e.Duration, e.TickInterval, e.TickAmount) {
		return fmt.Errorf("%s: non-finite number", path)
	}
	if e.Duration <= 0 {
		return fmt.Errorf("%s: duration must be positive", path)
	}
	if e.TickInterval < 0 {
		return fmt.Errorf("%s: tick_interval must not be negative", path)
	}
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
