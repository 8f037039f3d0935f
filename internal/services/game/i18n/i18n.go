// Package i18n registers localized display strings for effects, kingdoms,
// prizes and domain error codes with golang.org/x/text/message.
//
// Message keys are the English format strings and labels used by the domain
// packages, so an unregistered key still renders as English.
package i18n

import (
	"strings"

	apperrors "github.com/louisbranch/andaria/internal/platform/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the fallback locale.
const BaseLocale = "en-US"

var supported = []language.Tag{
	language.AmericanEnglish,
	language.Polish,
}

var matcher = language.NewMatcher(supported)

// Locales returns the supported locale identifiers.
func Locales() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// Tag resolves locale to the closest supported tag, defaulting to BaseLocale.
func Tag(locale string) language.Tag {
	parsed, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return supported[0]
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Printer returns a message printer for locale.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale))
}

// LocalizeError renders the user-facing message for a domain error code.
func LocalizeError(p *message.Printer, err error) string {
	if err == nil {
		return ""
	}
	return p.Sprintf(string(apperrors.CodeOf(err)))
}
