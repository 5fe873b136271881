package registry

// DashRules — параметры рывка и цепочки рывков.
type DashRules struct {
	StaminaCost     float64 `yaml:"stamina_cost"`
	ChainCostStep   float64 `yaml:"chain_cost_step"`
	ChainMinCost    float64 `yaml:"chain_min_cost"`
	Duration        float64 `yaml:"duration"`
	Distance        float64 `yaml:"distance"`
	Cooldown        float64 `yaml:"cooldown"`
	ChainWindow     float64 `yaml:"chain_window"`
	Invulnerability float64 `yaml:"invulnerability"`
}

// ChainCost возвращает цену рывка с номером count в цепочке (count >= 1).
func (d DashRules) ChainCost(count int) float64 {
	cost := d.StaminaCost - float64(count)*d.ChainCostStep
	if cost < d.ChainMinCost {
		return d.ChainMinCost
	}
	return cost
}

type TeleportRules struct {
	ManaCost        float64 `yaml:"mana_cost"`
	Distance        float64 `yaml:"distance"`
	Cooldown        float64 `yaml:"cooldown"`
	Invulnerability float64 `yaml:"invulnerability"`
}

type ParryRules struct {
	StaminaCost     float64 `yaml:"stamina_cost"`
	Window          float64 `yaml:"window"`
	Cooldown        float64 `yaml:"cooldown"`
	Invulnerability float64 `yaml:"invulnerability"`
	Stagger         float64 `yaml:"stagger"`
}

type LevelRules struct {
	BaseThreshold      float64 `yaml:"base_threshold"`
	StatPointsPerLevel int     `yaml:"stat_points"`
	SkillPointsPerLvl  int     `yaml:"skill_points"`
}

// Threshold возвращает опыт, нужный для перехода с уровня level.
func (l LevelRules) Threshold(level int) float64 {
	return l.BaseThreshold * float64(level)
}

// Rules — глобальные константы боя, общие для всех классов.
type Rules struct {
	MaxFrameDT         float64       `yaml:"max_frame_dt"`
	TileSize           float64       `yaml:"tile_size"`
	HitInvulnerability float64       `yaml:"hit_invulnerability"`
	AttackLock         float64       `yaml:"attack_lock"`
	ArmorFactor        float64       `yaml:"armor_factor"`
	DisplacementStep   float64       `yaml:"displacement_step"`
	MoveAcceleration   float64       `yaml:"move_acceleration"`
	Dash               DashRules     `yaml:"dash"`
	Teleport           TeleportRules `yaml:"teleport"`
	Parry              ParryRules    `yaml:"parry"`
	Leveling           LevelRules    `yaml:"leveling"`
}

// DefaultRules — значения, которые используются, если в YAML нет блока rules
// или в нём указаны не все поля.
func DefaultRules() Rules {
	return Rules{
		MaxFrameDT:         0.1,
		TileSize:           32,
		HitInvulnerability: 0.1,
		AttackLock:         0.2,
		ArmorFactor:        0.5,
		DisplacementStep:   4,
		MoveAcceleration:   12,
		Dash: DashRules{
			StaminaCost:     20,
			ChainCostStep:   5,
			ChainMinCost:    5,
			Duration:        0.15,
			Distance:        120,
			Cooldown:        0.8,
			ChainWindow:     0.35,
			Invulnerability: 0.2,
		},
		Teleport: TeleportRules{
			ManaCost:        25,
			Distance:        160,
			Cooldown:        3,
			Invulnerability: 0.25,
		},
		Parry: ParryRules{
			StaminaCost:     10,
			Window:          0.2,
			Cooldown:        1,
			Invulnerability: 0.3,
			Stagger:         0.6,
		},
		Leveling: LevelRules{
			BaseThreshold:      100,
			StatPointsPerLevel: 3,
			SkillPointsPerLvl:  1,
		},
	}
}
