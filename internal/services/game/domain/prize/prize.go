// Package prize models rewards granted for quests and battles.
//
// A Prize bundles effects, experience, items, gold and per-kingdom reputation
// deltas. Prizes behave as values: constructors, setters and getters copy the
// underlying slices and map, so a Prize never shares state with its caller or
// with another Prize.
package prize

import (
	"fmt"
	"maps"
	"slices"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"github.com/louisbranch/andaria/internal/services/game/domain/kingdom"
	"golang.org/x/text/message"
)

// ItemID identifies an item definition.
type ItemID uint16

// ErrInvalid indicates a prize holding an unregistered effect type or kingdom.
var ErrInvalid = apperrors.New(apperrors.CodePrizeInvalid, "invalid prize")

// Message keys for prize summaries.
const (
	ExperienceKey = "Experience: %d"
	GoldKey       = "Gold: %d"
	ItemsKey      = "Items: %d"
	ReputationKey = "Reputation with %s: %+d"
)

// Prize is a reward. The zero value is an empty prize.
type Prize struct {
	effects     []effect.Effect
	experience  uint16
	items       []ItemID
	gold        uint16
	reputations map[kingdom.Kingdom]int8
}

// New returns a prize holding copies of the given collections.
func New(effects []effect.Effect, experience uint16, items []ItemID, gold uint16, reputations map[kingdom.Kingdom]int8) Prize {
	return Prize{
		effects:     slices.Clone(effects),
		experience:  experience,
		items:       slices.Clone(items),
		gold:        gold,
		reputations: maps.Clone(reputations),
	}
}

// Effects returns a copy of the granted effects in order.
func (p Prize) Effects() []effect.Effect { return slices.Clone(p.effects) }

// Experience returns the granted experience.
func (p Prize) Experience() uint16 { return p.experience }

// Items returns a copy of the granted item ids in order.
func (p Prize) Items() []ItemID { return slices.Clone(p.items) }

// Gold returns the granted gold.
func (p Prize) Gold() uint16 { return p.gold }

// Reputations returns a copy of the reputation deltas.
func (p Prize) Reputations() map[kingdom.Kingdom]int8 {
	out := make(map[kingdom.Kingdom]int8, len(p.reputations))
	maps.Copy(out, p.reputations)
	return out
}

// Reputation returns the delta for k, or 0 when the prize has none.
func (p Prize) Reputation(k kingdom.Kingdom) int8 {
	return p.reputations[k]
}

// AddEffect appends e. Effects of the same type stack and are never merged.
func (p *Prize) AddEffect(e effect.Effect) {
	p.effects = append(p.effects, e)
}

// AddReputation stores delta for k, replacing any previous delta.
func (p *Prize) AddReputation(k kingdom.Kingdom, delta int8) {
	if p.reputations == nil {
		p.reputations = make(map[kingdom.Kingdom]int8)
	}
	p.reputations[k] = delta
}

// SetEffects replaces all effects.
func (p *Prize) SetEffects(effects []effect.Effect) { p.effects = slices.Clone(effects) }

// SetExperience replaces the experience.
func (p *Prize) SetExperience(experience uint16) { p.experience = experience }

// SetItems replaces all item ids.
func (p *Prize) SetItems(items []ItemID) { p.items = slices.Clone(items) }

// SetGold replaces the gold.
func (p *Prize) SetGold(gold uint16) { p.gold = gold }

// SetReputations replaces all reputation deltas.
func (p *Prize) SetReputations(reputations map[kingdom.Kingdom]int8) {
	p.reputations = maps.Clone(reputations)
}

// Clone returns an independent copy of p.
func (p Prize) Clone() Prize {
	return New(p.effects, p.experience, p.items, p.gold, p.reputations)
}

// IsEmpty reports whether p grants nothing.
func (p Prize) IsEmpty() bool {
	return len(p.effects) == 0 && p.experience == 0 && len(p.items) == 0 &&
		p.gold == 0 && len(p.reputations) == 0
}

// Equal reports structural equality. Effect and item order matters; nil and
// empty collections are equal.
func (p Prize) Equal(other Prize) bool {
	return p.experience == other.experience &&
		p.gold == other.gold &&
		slices.Equal(p.effects, other.effects) &&
		slices.Equal(p.items, other.items) &&
		maps.Equal(p.reputations, other.reputations)
}

// Validate reports unregistered effect types and unknown kingdoms.
func (p Prize) Validate() error {
	for i, e := range p.effects {
		if err := e.Validate(); err != nil {
			return apperrors.Wrap(apperrors.CodePrizeInvalid, fmt.Sprintf("effect %d", i), err)
		}
	}
	for k := range p.reputations {
		if !k.Valid() {
			return apperrors.Wrap(apperrors.CodePrizeInvalid, "reputation",
				fmt.Errorf("%w: ordinal %d", kingdom.ErrUnknown, uint8(k)))
		}
	}
	return nil
}

// Describe returns one display line per granted component, rendered through
// pr. Reputation lines follow kingdom order.
func (p Prize) Describe(pr *message.Printer) []string {
	sprintf := fmt.Sprintf
	translate := func(s string) string { return s }
	if pr != nil {
		sprintf = func(format string, args ...any) string { return pr.Sprintf(format, args...) }
		translate = func(s string) string { return pr.Sprintf(s) }
	}

	var lines []string
	for _, e := range p.effects {
		lines = append(lines, e.Describe(pr))
	}
	if p.experience > 0 {
		lines = append(lines, sprintf(ExperienceKey, p.experience))
	}
	if p.gold > 0 {
		lines = append(lines, sprintf(GoldKey, p.gold))
	}
	if len(p.items) > 0 {
		lines = append(lines, sprintf(ItemsKey, len(p.items)))
	}
	for _, k := range slices.Sorted(maps.Keys(p.reputations)) {
		lines = append(lines, sprintf(ReputationKey, translate(k.Label()), p.reputations[k]))
	}
	return lines
}
