package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	ErrUnknownClass   = errors.New("unknown class")
	ErrUnknownItem    = errors.New("unknown item")
	ErrUnknownAbility = errors.New("unknown ability")
	ErrUnknownSkill   = errors.New("unknown skill")
)

// rawRegistry — формат YAML-файла.
type rawRegistry struct {
	Rules     *Rules                `yaml:"rules"`
	Classes   map[string]ClassDef   `yaml:"classes"`
	Items     map[string]ItemDef    `yaml:"items"`
	Abilities map[string]AbilityDef `yaml:"abilities"`
	Skills    map[string]SkillDef   `yaml:"skills"`
}

// Registry — неизменяемые после загрузки справочники классов, предметов,
// способностей и навыков. Геттеры возвращают копии, движок ничего в
// реестре не меняет.
type Registry struct {
	rules     Rules
	classes   map[string]ClassDef
	items     map[string]ItemDef
	abilities map[string]AbilityDef
	skills    map[string]SkillDef
}

// Load читает YAML-файл с диска.
func Load(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file %s: %w", path, err)
	}
	reg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("registry file %s: %w", path, err)
	}
	return reg, nil
}

// Default разбирает встроенный набор данных.
func Default() (*Registry, error) {
	return Parse(defaultsYAML)
}

// MustDefault — как Default, но паникует. Встроенные данные покрыты тестами.
func MustDefault() *Registry {
	reg, err := Default()
	if err != nil {
		panic(err)
	}
	return reg
}

// Parse разбирает YAML и проверяет перекрёстные ссылки.
func Parse(data []byte) (*Registry, error) {
	// Блок rules разбирается поверх значений по умолчанию: незаданные поля сохраняются.
	rules := DefaultRules()
	raw := rawRegistry{Rules: &rules}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	reg := &Registry{
		rules:     rules,
		classes:   make(map[string]ClassDef, len(raw.Classes)),
		items:     make(map[string]ItemDef, len(raw.Items)),
		abilities: make(map[string]AbilityDef, len(raw.Abilities)),
		skills:    make(map[string]SkillDef, len(raw.Skills)),
	}
	for id, c := range raw.Classes {
		c.ID = id
		reg.classes[id] = c
	}
	for id, it := range raw.Items {
		it.ID = id
		reg.items[id] = it
	}
	for id, ab := range raw.Abilities {
		ab.ID = id
		reg.abilities[id] = ab
	}
	for id, sk := range raw.Skills {
		sk.ID = id
		reg.skills[id] = sk
	}

	if err := reg.validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *Registry) Rules() Rules {
	return r.rules
}

func (r *Registry) Class(id string) (ClassDef, bool) {
	c, ok := r.classes[id]
	return c, ok
}

func (r *Registry) Item(id string) (ItemDef, bool) {
	it, ok := r.items[id]
	return it, ok
}

func (r *Registry) Ability(id string) (AbilityDef, bool) {
	ab, ok := r.abilities[id]
	return ab, ok
}

func (r *Registry) Skill(id string) (SkillDef, bool) {
	sk, ok := r.skills[id]
	return sk, ok
}

// ClassIDs возвращает идентификаторы классов в отсортированном порядке.
func (r *Registry) ClassIDs() []string {
	ids := make([]string, 0, len(r.classes))
	for id := range r.classes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
