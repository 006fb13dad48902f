package i18n

import "strings"

// countryLanguages is the curated country -> language mapping. Many countries
// map to one language; absence means the map has no opinion and detection
// falls through to the next strategy.
var countryLanguages = map[string]string{
	// English-serving markets.
	"UG": LangEN,
	"RW": LangEN,
	"NG": LangEN,
	"GH": LangEN,
	"ZA": LangEN,
	"ZM": LangEN,
	"ZW": LangEN,
	"MW": LangEN,
	"SS": LangEN,
	"LR": LangEN,
	"SL": LangEN,
	"GM": LangEN,
	"BW": LangEN,
	"NA": LangEN,
	"US": LangEN,
	"GB": LangEN,
	"IE": LangEN,
	"CA": LangEN,
	"AU": LangEN,
	"NZ": LangEN,

	// Francophone markets.
	"FR": LangFR,
	"BE": LangFR,
	"SN": LangFR,
	"CI": LangFR,
	"CM": LangFR,
	"BF": LangFR,
	"ML": LangFR,
	"NE": LangFR,
	"TG": LangFR,
	"BJ": LangFR,
	"GA": LangFR,
	"GN": LangFR,
	"CG": LangFR,
	"CD": LangFR,
	"BI": LangFR,
	"DJ": LangFR,
	"MG": LangFR,
	"TD": LangFR,

	// Swahili-speaking markets.
	"TZ": LangSW,
	"KE": LangSW,
	"KM": LangSW,
}

// CountryLanguage looks up the language for a two-letter country code and
// reports whether the map has an opinion. Lookup is case-insensitive.
func CountryLanguage(cc string) (string, bool) {
	lang, ok := countryLanguages[strings.ToUpper(strings.TrimSpace(cc))]
	return lang, ok
}

// LanguageForCountry maps a country code to a supported language, falling
// back to the default for empty or unmapped codes. It never returns a value
// outside the supported set.
func LanguageForCountry(cc string) string {
	if lang, ok := CountryLanguage(cc); ok {
		return lang
	}
	return DefaultLang
}
