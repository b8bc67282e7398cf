// Package translate selects a message printer for the user's locale and
// renders the diagnostics of the interpreter through it.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DefaultLocale is used when the environment does not name one.
const DefaultLocale = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("tmachine: locale: %v", err)
	}

	SetLocale(locales...)
}

// SetLocale replaces the active printer with the best match for locales.
func SetLocale(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
