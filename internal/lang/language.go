// Package lang validates the optional language a caller asks for.
// One value drives both the preferred caption track and the language
// the summary is written in.
package lang

import (
	"fmt"
	"strings"
)

// knownLanguages lists the ISO 639-1 base codes accepted for the lang field.
// YouTube offers captions and auto-translation for these.
var knownLanguages = map[string]bool{
	"af": true, // Afrikaans
	"ar": true, // Arabic
	"bg": true, // Bulgarian
	"bn": true, // Bengali
	"ca": true, // Catalan
	"cs": true, // Czech
	"da": true, // Danish
	"de": true, // German
	"el": true, // Greek
	"en": true, // English
	"es": true, // Spanish
	"et": true, // Estonian
	"fa": true, // Persian
	"fi": true, // Finnish
	"fr": true, // French
	"gu": true, // Gujarati
	"he": true, // Hebrew
	"hi": true, // Hindi
	"hr": true, // Croatian
	"hu": true, // Hungarian
	"id": true, // Indonesian
	"it": true, // Italian
	"ja": true, // Japanese
	"kn": true, // Kannada
	"ko": true, // Korean
	"lt": true, // Lithuanian
	"lv": true, // Latvian
	"mk": true, // Macedonian
	"ml": true, // Malayalam
	"mr": true, // Marathi
	"ms": true, // Malay
	"nl": true, // Dutch
	"no": true, // Norwegian
	"pa": true, // Punjabi
	"pl": true, // Polish
	"pt": true, // Portuguese
	"ro": true, // Romanian
	"ru": true, // Russian
	"sk": true, // Slovak
	"sl": true, // Slovenian
	"sr": true, // Serbian
	"sv": true, // Swedish
	"sw": true, // Swahili
	"ta": true, // Tamil
	"te": true, // Telugu
	"th": true, // Thai
	"tl": true, // Tagalog
	"tr": true, // Turkish
	"uk": true, // Ukrainian
	"ur": true, // Urdu
	"vi": true, // Vietnamese
	"zh": true, // Chinese
}

// displayNames maps normalized codes to the names used in prompts.
var displayNames = map[string]string{
	"en":    "English",
	"en-us": "American English",
	"en-gb": "British English",
	"fr":    "French",
	"fr-ca": "Canadian French",
	"es":    "Spanish",
	"es-mx": "Mexican Spanish",
	"pt":    "Portuguese",
	"pt-br": "Brazilian Portuguese",
	"pt-pt": "European Portuguese",
	"zh":    "Chinese",
	"zh-cn": "Simplified Chinese",
	"zh-tw": "Traditional Chinese",
	"de":    "German",
	"it":    "Italian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"ru":    "Russian",
	"ar":    "Arabic",
	"nl":    "Dutch",
	"pl":    "Polish",
	"sv":    "Swedish",
	"da":    "Danish",
	"no":    "Norwegian",
	"fi":    "Finnish",
	"hi":    "Hindi",
	"tr":    "Turkish",
	"uk":    "Ukrainian",
}

// Language is a validated language code.
// The zero value means "not specified": English captions first and an
// English summary.
type Language struct {
	code string
}

// Parse validates s and returns a Language.
// Accepts ISO 639-1 codes ("en", "fr") and locales ("pt-BR", "pt_br").
// Empty string returns the zero Language without error.
func Parse(s string) (Language, error) {
	if s == "" {
		return Language{}, nil
	}
	code := normalize(s)
	if !knownLanguages[base(code)] {
		return Language{}, fmt.Errorf("invalid language code %q (use ISO 639-1 codes like 'en', 'fr', 'pt-BR'): %w",
			s, ErrInvalid)
	}
	return Language{code: code}, nil
}

// MustParse parses a language code, panicking if invalid.
// Use only for constants and tests.
func MustParse(s string) Language {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the normalized code ("pt-br"), or "" for the zero value.
func (l Language) String() string {
	return l.code
}

// IsZero reports whether no language was specified.
func (l Language) IsZero() bool {
	return l.code == ""
}

// BaseCode returns the ISO 639-1 part of the code ("pt-br" -> "pt").
// Caption tracks are matched on it.
func (l Language) BaseCode() string {
	return base(l.code)
}

// IsEnglish reports whether l is any English variant.
func (l Language) IsEnglish() bool {
	return l.BaseCode() == "en"
}

// DisplayName returns a human-readable name for prompts.
// Falls back to the base language name, then to the code itself.
func (l Language) DisplayName() string {
	if name, ok := displayNames[l.code]; ok {
		return name
	}
	if name, ok := displayNames[l.BaseCode()]; ok {
		return name
	}
	return l.code
}

// normalize lowercases and uses hyphen separators: "pt_BR" -> "pt-br".
func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
}

func base(code string) string {
	if idx := strings.Index(code, "-"); idx != -1 {
		return code[:idx]
	}
	return code
}
