package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Languages is the set of site languages plus the default one.
type Languages struct {
	Default   string
	supported []string
}

// NewLanguages canonicalizes the codes with BCP 47 rules ("PT-br" -> "pt-BR").
// The default language is always supported.
func NewLanguages(def string, supported []string) (*Languages, error) {
	d, err := Normalize(def)
	if err != nil {
		return nil, fmt.Errorf("default language: %w", err)
	}
	l := &Languages{Default: d, supported: []string{d}}
	for _, code := range supported {
		c, err := Normalize(code)
		if err != nil {
			return nil, err
		}
		if !l.Supports(c) {
			l.supported = append(l.supported, c)
		}
	}
	return l, nil
}

func Normalize(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return tag.String(), nil
}

func (l *Languages) Supports(code string) bool {
	for _, s := range l.supported {
		if s == code {
			return true
		}
	}
	return false
}

// All returns the supported codes, default first.
func (l *Languages) All() []string {
	return append([]string{}, l.supported...)
}

// Lookup normalizes code and checks it is supported.
func (l *Languages) Lookup(code string) (string, error) {
	c, err := Normalize(code)
	if err != nil {
		return "", err
	}
	if !l.Supports(c) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return c, nil
}

// FromPath returns the language named by the first path segment, or the
// default language when that segment is not a supported language.
func (l *Languages) FromPath(urlPath string) string {
	segment, _, _ := strings.Cut(strings.TrimPrefix(urlPath, "/"), "/")
	if segment == "" {
		return l.Default
	}
	if c, err := l.Lookup(segment); err == nil {
		return c
	}
	return l.Default
}
