// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate renders diagnostics in the user's preferred language.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is used when no locale can be determined from the environment.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	printer = NewPrinter(userLocales()...)
}

func userLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("addc: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return
}

// NewPrinter returns a printer matching the first supported of locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		return message.NewPrinter(language.MustParse(Fallback))
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
