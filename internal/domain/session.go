package domain

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is the UI language preference.
type Language string

const (
	LanguageItalian Language = "it"
	LanguageEnglish Language = "en"
)

// DefaultLanguage is used when nothing else is configured or persisted.
const DefaultLanguage = LanguageItalian

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageItalian, LanguageEnglish:
		return Language(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if l == LanguageEnglish {
		return language.English
	}
	return language.Italian
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageItalian
	}
	return LanguageEnglish
}

// Theme is the presentation color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when nothing else is configured or persisted.
const DefaultTheme = ThemeDark

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Session holds the process-wide UI flags owned by the record store.
type Session struct {
	IsAdmin  bool     `json:"isAdmin"`
	Language Language `json:"language"`
	Theme    Theme    `json:"theme"`
}

// Credentials is a username/password pair submitted at login.
type Credentials struct {
	Username string
	Password string
}
