package effect

import (
	"fmt"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
)

// Category groups effect types for classification and editor listings.
type Category uint8

// Type identifies what an effect modifies.
type Type uint8

const (
	CategoryAttributes Category = iota
	CategoryDamages
	CategoryOperations
	CategoryBonuses
	CategoryStates

	categoryCount = int(CategoryStates) + 1
)

const (
	// Attributes
	TypeMaxHealth Type = iota
	TypePerception
	TypeDefence
	TypeRegeneration
	TypeMovePoints
	// Damages
	TypeMeleeBase
	TypeMeleeRange
	TypeRangedBase
	TypeRangedRange
	TypeMagicalBase
	TypeMagicalRange
	// Operations
	TypeHeal
	TypeVamp
	TypeDeflect
	// Bonuses
	TypeGoldBonus
	TypeExperienceBonus
	// States
	TypeStun

	typeCount = int(TypeStun) + 1
)

var (
	// ErrUnknownCategory indicates a category label or ordinal outside the registry.
	ErrUnknownCategory = apperrors.New(apperrors.CodeEffectUnknownCategory, "unknown effect category")
	// ErrUnknownType indicates a type label or ordinal outside the registry.
	ErrUnknownType = apperrors.New(apperrors.CodeEffectUnknownType, "unknown effect type")
)

type typeEntry struct {
	t     Type
	label string
}

// partition is the fixed category table. Order within each category is the
// order editors list the types in.
var partition = []struct {
	category Category
	label    string
	types    []typeEntry
}{
	{CategoryAttributes, "Attributes", []typeEntry{
		{TypeMaxHealth, "Max health"},
		{TypePerception, "Perception"},
		{TypeDefence, "Defence"},
		{TypeRegeneration, "Regeneration"},
		{TypeMovePoints, "Move points"},
	}},
	{CategoryDamages, "Damages", []typeEntry{
		{TypeMeleeBase, "Melee base damage"},
		{TypeMeleeRange, "Melee damage range"},
		{TypeRangedBase, "Ranged base damage"},
		{TypeRangedRange, "Ranged damage range"},
		{TypeMagicalBase, "Magical base damage"},
		{TypeMagicalRange, "Magical damage range"},
	}},
	{CategoryOperations, "Operations", []typeEntry{
		{TypeHeal, "Heal"},
		{TypeVamp, "Vamp"},
		{TypeDeflect, "Deflect"},
	}},
	{CategoryBonuses, "Bonuses", []typeEntry{
		{TypeGoldBonus, "Gold bonus"},
		{TypeExperienceBonus, "Experience bonus"},
	}},
	{CategoryStates, "States", []typeEntry{
		{TypeStun, "Stun"},
	}},
}

type registry struct {
	categoryLabels  [categoryCount]string
	categoryByLabel map[string]Category
	members         [categoryCount][]Type

	typeLabels   [typeCount]string
	typeByLabel  map[string]Type
	typeCategory [typeCount]Category
}

var reg = mustBuildRegistry()

func mustBuildRegistry() *registry {
	r, err := buildRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// buildRegistry derives both lookup directions from the partition table and
// checks that the partition is total and disjoint with injective labels.
func buildRegistry() (*registry, error) {
	r := &registry{
		categoryByLabel: make(map[string]Category, categoryCount),
		typeByLabel:     make(map[string]Type, typeCount),
	}
	var seenCategory [categoryCount]bool
	var seenType [typeCount]bool

	for _, group := range partition {
		if int(group.category) >= categoryCount || seenCategory[group.category] {
			return nil, fmt.Errorf("category %d listed twice or out of range", group.category)
		}
		if _, dup := r.categoryByLabel[group.label]; dup {
			return nil, fmt.Errorf("category label %q is not unique", group.label)
		}
		seenCategory[group.category] = true
		r.categoryLabels[group.category] = group.label
		r.categoryByLabel[group.label] = group.category

		members := make([]Type, 0, len(group.types))
		for _, entry := range group.types {
			if int(entry.t) >= typeCount || seenType[entry.t] {
				return nil, fmt.Errorf("type %d listed twice or out of range", entry.t)
			}
			if _, dup := r.typeByLabel[entry.label]; dup {
				return nil, fmt.Errorf("type label %q is not unique", entry.label)
			}
			seenType[entry.t] = true
			r.typeLabels[entry.t] = entry.label
			r.typeByLabel[entry.label] = entry.t
			r.typeCategory[entry.t] = group.category
			members = append(members, entry.t)
		}
		r.members[group.category] = members
	}

	for c, ok := range seenCategory {
		if !ok {
			return nil, fmt.Errorf("category %d has no partition entry", c)
		}
	}
	for t, ok := range seenType {
		if !ok {
			return nil, fmt.Errorf("type %d has no category", t)
		}
	}
	return r, nil
}

// Valid reports whether c is a registered category.
func (c Category) Valid() bool {
	return int(c) < categoryCount
}

// Label returns the display label of c.
func (c Category) Label() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return reg.categoryLabels[c]
}

func (c Category) String() string {
	return c.Label()
}

// Valid reports whether t is a registered type.
func (t Type) Valid() bool {
	return int(t) < typeCount
}

// Label returns the display label of t.
func (t Type) Label() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return reg.typeLabels[t]
}

func (t Type) String() string {
	return t.Label()
}

// Category returns the category t belongs to.
func (t Type) Category() Category {
	return CategoryOf(t)
}

// CategoryOf returns the category containing t. It panics for an
// unregistered type; that is a caller bug, not a runtime condition.
func CategoryOf(t Type) Category {
	if !t.Valid() {
		panic(fmt.Sprintf("effect: category lookup for unregistered type %d", uint8(t)))
	}
	return reg.typeCategory[t]
}

// CategoryContent returns the member types of c in listing order. The result
// is a fresh slice; it is empty for an unregistered category.
func CategoryContent(c Category) []Type {
	if !c.Valid() {
		return []Type{}
	}
	return append([]Type(nil), reg.members[c]...)
}

// Categories returns every category in ordinal order.
func Categories() []Category {
	out := make([]Category, categoryCount)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Types returns every type in ordinal order.
func Types() []Type {
	out := make([]Type, typeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseCategory returns the category registered under exactly label.
func ParseCategory(label string) (Category, error) {
	c, ok := reg.categoryByLabel[label]
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeEffectUnknownCategory,
			fmt.Sprintf("unknown effect category %q", label),
			map[string]string{"Label": label})
	}
	return c, nil
}

// ParseType returns the type registered under exactly label.
func ParseType(label string) (Type, error) {
	t, ok := reg.typeByLabel[label]
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeEffectUnknownType,
			fmt.Sprintf("unknown effect type %q", label),
			map[string]string{"Label": label})
	}
	return t, nil
}

// MustParseType is ParseType for static labels; it panics on unknown labels.
func MustParseType(label string) Type {
	t, err := ParseType(label)
	if err != nil {
		panic(err)
	}
	return t
}
