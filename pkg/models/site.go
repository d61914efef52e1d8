package models

// SiteConfig is read from site.yml (or site.toml) at the content root.
type SiteConfig struct {
	Title           string                       `yaml:"title" toml:"title"`
	DefaultLanguage string                       `yaml:"default_language" toml:"default_language"`
	Languages       []string                     `yaml:"languages" toml:"languages"`
	Strings         map[string]map[string]string `yaml:"strings" toml:"strings"` // lang -> key -> text
}

// UIString looks up a translated UI string, falling back to the fallback
// language and finally to the key itself.
func (c *SiteConfig) UIString(lang, fallback, key string) string {
	if c != nil {
		if s, ok := c.Strings[lang][key]; ok {
			return s
		}
		if s, ok := c.Strings[fallback][key]; ok {
			return s
		}
	}
	return key
}

// SearchState is a visitor's query text and tag selection.
type SearchState struct {
	Query string   `json:"q" form:"q" binding:"max=200"`
	Tags  []string `json:"tags" form:"tag" binding:"max=50,dive,max=100"`
}

// About is the localized about page.
type About struct {
	Language string `json:"lang"`
	Title    string `json:"title,omitempty"`
	Body     string `json:"body"`
	Fallback bool   `json:"fallback"`
}
