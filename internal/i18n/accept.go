package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// matchTags must stay aligned with Languages: the matcher reports an index
// into this slice.
var matchTags = []language.Tag{
	language.English,
	language.French,
	language.Swahili,
	language.MustParse("lg"),
}

var matcher = language.NewMatcher(matchTags)

// LanguageFromHeader negotiates a supported language from an Accept-Language
// header, honoring q-values and base-language fallback (en-US matches en).
// It returns "" when the header is empty, malformed, or expresses no usable
// preference, so callers can fall through to the default.
func LanguageFromHeader(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return ""
	}
	return Languages[idx]
}
