package i18n

import (
	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"github.com/louisbranch/andaria/internal/services/game/domain/kingdom"
	"github.com/louisbranch/andaria/internal/services/game/domain/prize"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

var polishCategories = map[effect.Category]string{
	effect.CategoryAttributes: "Atrybuty",
	effect.CategoryDamages:    "Obrażenia",
	effect.CategoryOperations: "Operacje",
	effect.CategoryBonuses:    "Premie",
	effect.CategoryStates:     "Stany",
}

var polishTypes = map[effect.Type]string{
	effect.TypeMaxHealth:       "Maksymalne zdrowie",
	effect.TypePerception:      "Percepcja",
	effect.TypeDefence:         "Obrona",
	effect.TypeRegeneration:    "Regeneracja",
	effect.TypeMovePoints:      "Punkty ruchu",
	effect.TypeMeleeBase:       "Bazowe obrażenia wręcz",
	effect.TypeMeleeRange:      "Zakres obrażeń wręcz",
	effect.TypeRangedBase:      "Bazowe obrażenia dystansowe",
	effect.TypeRangedRange:     "Zakres obrażeń dystansowych",
	effect.TypeMagicalBase:     "Bazowe obrażenia magiczne",
	effect.TypeMagicalRange:    "Zakres obrażeń magicznych",
	effect.TypeHeal:            "Leczenie",
	effect.TypeVamp:            "Wampiryzm",
	effect.TypeDeflect:         "Odbicie",
	effect.TypeGoldBonus:       "Premia złota",
	effect.TypeExperienceBonus: "Premia doświadczenia",
	effect.TypeStun:            "Ogłuszenie",
}

var polishKingdoms = map[kingdom.Kingdom]string{
	kingdom.Humans:    "Ludzie",
	kingdom.Dwarfs:    "Krasnoludy",
	kingdom.Elves:     "Elfy",
	kingdom.Halflings: "Niziołki",
}

var polishErrors = map[apperrors.Code]string{
	apperrors.CodeUnknown:                "Coś poszło nie tak",
	apperrors.CodeEffectUnknownCategory:  "Nieznana kategoria efektu",
	apperrors.CodeEffectUnknownType:      "Nieznany typ efektu",
	apperrors.CodeEffectInvalidDuration:  "Nieprawidłowy czas trwania efektu",
	apperrors.CodeKingdomUnknown:         "Nieznane królestwo",
	apperrors.CodePrizeInvalid:           "Nieprawidłowa nagroda",
	apperrors.CodePrizeCatalogInvalid:    "Nieprawidłowy katalog nagród",
	apperrors.CodeFilterInvalid:          "Nieprawidłowy filtr",
	apperrors.CodeWireTruncated:          "Zapisane dane są niekompletne",
	apperrors.CodeWireTrailingBytes:      "Zapisane dane są uszkodzone",
	apperrors.CodeWireLengthExceeded:     "Zapisane dane są uszkodzone",
	apperrors.CodeWireValueOutOfRange:    "Zapisane dane są uszkodzone",
	apperrors.CodeWireDuplicateKey:       "Zapisane dane są uszkodzone",
	apperrors.CodeWireUnsupportedVersion: "Zapisane dane pochodzą z nieobsługiwanej wersji",
	apperrors.CodeNotFound:               "Nie znaleziono",
}

func init() {
	lang := language.Polish

	for c, text := range polishCategories {
		mustSetString(lang, c.Label(), text)
	}
	for t, text := range polishTypes {
		mustSetString(lang, t.Label(), text)
	}
	for k, text := range polishKingdoms {
		mustSetString(lang, k.Label(), text)
	}
	for code, text := range polishErrors {
		mustSetString(lang, string(code), text)
	}

	mustSetString(lang, effect.DurationInstantKey, "natychmiastowy")
	mustSetString(lang, effect.DurationForeverKey, "stały")
	mustSet(lang, effect.DurationTurnsKey, plural.Selectf(1, "%d",
		"one", "%d tura",
		"few", "%d tury",
		"many", "%d tur",
		"other", "%d tury",
	))

	mustSetString(lang, prize.ExperienceKey, "Doświadczenie: %d")
	mustSetString(lang, prize.GoldKey, "Złoto: %d")
	mustSetString(lang, prize.ItemsKey, "Przedmioty: %d")
	mustSetString(lang, prize.ReputationKey, "Reputacja (%s): %+d")
}
