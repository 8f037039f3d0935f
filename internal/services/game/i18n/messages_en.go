package i18n

import (
	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"github.com/louisbranch/andaria/internal/services/game/domain/effect"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var englishErrors = map[apperrors.Code]string{
	apperrors.CodeUnknown:                "Something went wrong",
	apperrors.CodeEffectUnknownCategory:  "Unknown effect category",
	apperrors.CodeEffectUnknownType:      "Unknown effect type",
	apperrors.CodeEffectInvalidDuration:  "Invalid effect duration",
	apperrors.CodeKingdomUnknown:         "Unknown kingdom",
	apperrors.CodePrizeInvalid:           "Invalid prize",
	apperrors.CodePrizeCatalogInvalid:    "Invalid prize catalog",
	apperrors.CodeFilterInvalid:          "Invalid filter",
	apperrors.CodeWireTruncated:          "Saved data is incomplete",
	apperrors.CodeWireTrailingBytes:      "Saved data is corrupted",
	apperrors.CodeWireLengthExceeded:     "Saved data is corrupted",
	apperrors.CodeWireValueOutOfRange:    "Saved data is corrupted",
	apperrors.CodeWireDuplicateKey:       "Saved data is corrupted",
	apperrors.CodeWireUnsupportedVersion: "Saved data comes from an unsupported version",
	apperrors.CodeNotFound:               "Not found",
}

func init() {
	lang := language.AmericanEnglish

	mustSet(lang, effect.DurationTurnsKey, plural.Selectf(1, "%d",
		"=1", "%d turn",
		"other", "%d turns",
	))
	for code, text := range englishErrors {
		mustSetString(lang, string(code), text)
	}
}

func mustSet(tag language.Tag, key string, msg ...catalog.Message) {
	if err := message.Set(tag, key, msg...); err != nil {
		panic(err)
	}
}

func mustSetString(tag language.Tag, key, msg string) {
	if err := message.SetString(tag, key, msg); err != nil {
		panic(err)
	}
}
