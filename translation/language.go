package translation

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultSourceLanguage is the language the catalog is written in
const DefaultSourceLanguage = "en"

// NormalizeLanguage canonicalizes a BCP 47 language code ("FR" -> "fr",
// "pt_BR" -> "pt-BR"). Blank input yields fallback. Codes that cannot be
// parsed are returned trimmed and lowercased so the translator can still try.
func NormalizeLanguage(code, fallback string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return fallback
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return strings.ToLower(code)
	}

	return tag.String()
}

// SameLanguage reports whether two codes name the same language after normalization
func SameLanguage(a, b string) bool {
	return NormalizeLanguage(a, "") == NormalizeLanguage(b, "")
}

// DisplayName returns the English name of a language code, or the code itself
// when it is not a known tag. Used to make translation prompts unambiguous.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return code
	}

	name := englishNames[base.String()]
	if name == "" {
		return code
	}
	if region, conf := tag.Region(); conf == language.Exact {
		return name + " (" + region.String() + ")"
	}
	return name
}

// englishNames covers the languages the front-end offers
var englishNames = map[string]string{
	"am":  "Amharic",
	"ar":  "Arabic",
	"de":  "German",
	"en":  "English",
	"es":  "Spanish",
	"fr":  "French",
	"ha":  "Hausa",
	"hi":  "Hindi",
	"ig":  "Igbo",
	"it":  "Italian",
	"ki":  "Kikuyu",
	"lg":  "Luganda",
	"luo": "Luo",
	"om":  "Oromo",
	"pt":  "Portuguese",
	"rw":  "Kinyarwanda",
	"so":  "Somali",
	"sw":  "Swahili",
	"yo":  "Yoruba",
	"zh":  "Chinese",
	"zu":  "Zulu",
}
