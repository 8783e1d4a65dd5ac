// Package localedate provides simple, lightweight internationalization
// for date and time formatting.
package localedate

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Constants for selecting datetime format types.
const (
	FormatShort = "short" // Compact format, e.g., 12.08.2025 14:03
	FormatLong  = "long"  // Descriptive format, e.g., Tuesday, 12. August 2025 14:03:05 CEST
)

// localeFormats defines the datetime format strings for a single locale.
// Note: Go's time.Format does not translate month/day names, so the
// "long" formats produce English names regardless of locale.
type localeFormats struct {
	DateTimeShort string
	DateTimeLong  string
}

// formats holds the predefined formatting rules for supported locales.
var formats = map[string]localeFormats{
	"en-US": {
		DateTimeShort: "1/2/2006, 3:04 PM",
		DateTimeLong:  "Monday, January 2, 2006, 3:04:05 PM MST",
	},
	"en-GB": {
		DateTimeShort: "02/01/2006, 15:04",
		DateTimeLong:  "Monday, 2 January 2006, 15:04:05 MST",
	},
	"de-DE": {
		DateTimeShort: "02.01.2006 15:04",
		DateTimeLong:  "Monday, 2. January 2006 15:04:05 MST",
	},
	"sv-SE": { // ISO 8601
		DateTimeShort: "2006-01-02 15:04",
		DateTimeLong:  "2006-01-02 15:04:05 MST",
	},
}

// getFormats retrieves the format struct for a locale, falling back to
// language-based matching, then en-GB.
func getFormats(locale string) localeFormats {
	if f, ok := formats[locale]; ok {
		return f
	}

	// Language-based fallback (e.g., de-AT -> de-DE)
	if parts := strings.Split(locale, "-"); len(parts) >= 2 {
		lang := parts[0]
		for key := range formats {
			if strings.HasPrefix(key, lang+"-") {
				return formats[key]
			}
		}
	}

	return formats["en-GB"]
}

// GetUserLocaleTag discovers the user's locale and returns it as a
// language.Tag, defaulting to language.BritishEnglish.
//
// Environment variables are checked in standard precedence order:
// LC_ALL overrides all, LC_MESSAGES for interface text, LANGUAGE for
// GNU systems, LANG as fallback.
func GetUserLocaleTag() language.Tag {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		if localeStr := os.Getenv(envVar); localeStr != "" {
			// Extract the core part (e.g., "de_DE" from "de_DE.UTF-8")
			base := strings.Split(localeStr, ".")[0]
			standardized := strings.ReplaceAll(base, "_", "-")

			if tag, err := language.Parse(standardized); err == nil {
				return tag
			}
		}
	}
	return language.BritishEnglish
}

// FormatDateTime formats date and time in the local timezone.
// formatType can be FormatShort or FormatLong.
func FormatDateTime(locale string, t time.Time, formatType string) string {
	f := getFormats(locale)
	layout := f.DateTimeShort
	if formatType == FormatLong {
		layout = f.DateTimeLong
	}
	return t.Local().Format(layout)
}
