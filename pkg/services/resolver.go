package services

import (
	"blog/pkg/models"
)

// Resolve picks at most one localized article per unit, in unit order.
//
// A unit available in the active language always yields that version. A unit
// with a single language yields it. Otherwise the unit's first enumerated
// language is used, unless an article with the same title was already
// selected; distinct units that share a title therefore collide.
// An empty active language means defaultLang. The selected articles are
// copies; the units are left untouched.
func Resolve(units models.Units, active, defaultLang string) []models.Article {
	if active == "" {
		active = defaultLang
	}
	var out []models.Article
	seenTitles := make(map[string]struct{})

	pick := func(a *models.Article, lang string) {
		selected := *a
		selected.Language = lang
		out = append(out, selected)
		seenTitles[selected.Title] = struct{}{}
	}

	for _, unit := range units {
		if unit == nil || len(unit.Languages) == 0 {
			continue
		}

		if unit.Has(active) {
			pick(unit.Items[active], active)
			continue
		}

		if len(unit.Languages) == 1 {
			lang := unit.Languages[0]
			pick(unit.Items[lang], lang)
			continue
		}

		fallback := unit.Languages[0]
		candidate := unit.Items[fallback]
		if _, dup := seenTitles[candidate.Title]; dup {
			continue
		}
		pick(candidate, fallback)
	}
	return out
}

// ResolvePublished resolves the units and drops articles the gate rejects.
func ResolvePublished(units models.Units, active, defaultLang string, gate PublicationGate) []models.Article {
	return gate.Filter(Resolve(units, active, defaultLang))
}
