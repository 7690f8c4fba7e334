package dungeon

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/domain"
)

// Порядок отрисовки: больше - ниже. Игрок всегда сверху.
const (
	OrderItem    = 2
	OrderMonster = 1
	OrderPlayer  = 0
)

//go:embed default_templates.yaml
var defaultTemplatesYAML []byte

// MonsterTemplate - шаблон монстра из YAML.
type MonsterTemplate struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Glyph      string    `yaml:"glyph"`
	Fg         types.RGB `yaml:"fg"`
	Bg         types.RGB `yaml:"bg"`
	HP         int       `yaml:"hp"`
	Defense    int       `yaml:"defense"`
	Power      int       `yaml:"power"`
	SightRange int       `yaml:"sight_range"`
	Weight     int       `yaml:"weight"`
}

// ItemTemplate - шаблон предмета. Heal > 0 делает его зельем.
type ItemTemplate struct {
	ID     string    `yaml:"id"`
	Name   string    `yaml:"name"`
	Glyph  string    `yaml:"glyph"`
	Fg     types.RGB `yaml:"fg"`
	Bg     types.RGB `yaml:"bg"`
	Heal   int       `yaml:"heal"`
	Weight int       `yaml:"weight"`
}

type templatesFile struct {
	Monsters []MonsterTemplate `yaml:"monsters"`
	Items    []ItemTemplate    `yaml:"items"`
}

// Templates - загруженные шаблоны с индексом по ID.
type Templates struct {
	Monsters []MonsterTemplate
	Items    []ItemTemplate

	monsterIdx map[string]int
	itemIdx    map[string]int
}

// DefaultTemplates возвращает встроенные шаблоны.
func DefaultTemplates() *Templates {
	t, err := ParseTemplates(defaultTemplatesYAML)
	if err != nil {
		panic("dungeon: embedded templates are broken: " + err.Error())
	}
	return t
}

// LoadTemplates читает шаблоны из файла. Пустой путь - встроенные.
func LoadTemplates(path string) (*Templates, error) {
	if path == "" {
		return DefaultTemplates(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates %s: %w", path, err)
	}
	t, err := ParseTemplates(data)
	if err != nil {
		return nil, fmt.Errorf("parse templates %s: %w", path, err)
	}
	return t, nil
}

func ParseTemplates(data []byte) (*Templates, error) {
	var f templatesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Monsters) == 0 {
		return nil, fmt.Errorf("no monsters defined")
	}

	title := cases.Title(language.English)
	t := &Templates{
		monsterIdx: make(map[string]int, len(f.Monsters)),
		itemIdx:    make(map[string]int, len(f.Items)),
	}

	for _, m := range f.Monsters {
		if err := checkGlyph(m.ID, m.Glyph); err != nil {
			return nil, err
		}
		if m.HP <= 0 || m.SightRange <= 0 {
			return nil, fmt.Errorf("monster %q: hp and sight_range must be positive", m.ID)
		}
		if m.Weight <= 0 {
			m.Weight = 1
		}
		if _, dup := t.monsterIdx[m.ID]; dup {
			return nil, fmt.Errorf("monster %q defined twice", m.ID)
		}
		m.Name = title.String(m.Name)
		t.monsterIdx[m.ID] = len(t.Monsters)
		t.Monsters = append(t.Monsters, m)
	}
	for _, it := range f.Items {
		if err := checkGlyph(it.ID, it.Glyph); err != nil {
			return nil, err
		}
		if it.Weight <= 0 {
			it.Weight = 1
		}
		if _, dup := t.itemIdx[it.ID]; dup {
			return nil, fmt.Errorf("item %q defined twice", it.ID)
		}
		it.Name = title.String(it.Name)
		t.itemIdx[it.ID] = len(t.Items)
		t.Items = append(t.Items, it)
	}
	return t, nil
}

func checkGlyph(id, glyph string) error {
	if id == "" {
		return fmt.Errorf("template without id")
	}
	if len(glyph) != 1 {
		return fmt.Errorf("template %q: glyph must be a single byte, got %q", id, glyph)
	}
	return nil
}

// Monster ищет шаблон монстра по ID.
func (t *Templates) Monster(id string) (MonsterTemplate, bool) {
	i, ok := t.monsterIdx[id]
	if !ok {
		return MonsterTemplate{}, false
	}
	return t.Monsters[i], true
}

// Item ищет шаблон предмета по ID.
func (t *Templates) Item(id string) (ItemTemplate, bool) {
	i, ok := t.itemIdx[id]
	if !ok {
		return ItemTemplate{}, false
	}
	return t.Items[i], true
}

// PickMonster - взвешенный случайный выбор.
func (t *Templates) PickMonster(rng *rand.Rand) MonsterTemplate {
	total := 0
	for _, m := range t.Monsters {
		total += m.Weight
	}
	roll := rng.Intn(total)
	for _, m := range t.Monsters {
		if roll < m.Weight {
			return m
		}
		roll -= m.Weight
	}
	return t.Monsters[len(t.Monsters)-1]
}

// PickItem - взвешенный случайный выбор; false, если предметов нет.
func (t *Templates) PickItem(rng *rand.Rand) (ItemTemplate, bool) {
	total := 0
	for _, it := range t.Items {
		total += it.Weight
	}
	if total == 0 {
		return ItemTemplate{}, false
	}
	roll := rng.Intn(total)
	for _, it := range t.Items {
		if roll < it.Weight {
			return it, true
		}
		roll -= it.Weight
	}
	return t.Items[len(t.Items)-1], true
}

// Spawn создаёт монстра. n - порядковый номер для имени ("Goblin #3").
func (m MonsterTemplate) Spawn(w *ecs.World, pos domain.Position, n int) types.EntityID {
	return w.Spawn(
		ecs.With(pos),
		ecs.With(domain.Renderable{
			Glyph: types.MakeGlyph(m.Glyph[0], m.Fg),
			Bg:    m.Bg,
			Order: OrderMonster,
		}),
		ecs.With(domain.NewViewshed(m.SightRange)),
		ecs.With(domain.Monster{}),
		ecs.With(domain.Name{Name: fmt.Sprintf("%s #%d", m.Name, n)}),
		ecs.With(domain.BlocksTile{}),
		ecs.With(domain.CombatStats{MaxHP: m.HP, HP: m.HP, Defense: m.Defense, Power: m.Power}),
	)
}

// Spawn создаёт предмет на полу.
func (it ItemTemplate) Spawn(w *ecs.World, pos domain.Position) types.EntityID {
	inits := []ecs.Init{
		ecs.With(pos),
		ecs.With(domain.Renderable{
			Glyph: types.MakeGlyph(it.Glyph[0], it.Fg),
			Bg:    it.Bg,
			Order: OrderItem,
		}),
		ecs.With(domain.Name{Name: it.Name}),
		ecs.With(domain.Item{}),
	}
	if it.Heal > 0 {
		inits = append(inits, ecs.With(domain.Potion{HealAmount: it.Heal}))
	}
	return w.Spawn(inits...)
}
