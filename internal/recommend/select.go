package recommend

import (
	"sort"
	"strings"

	"github.com/skillbridge/skillbridge/internal/schema"
)

// difficultyPreference orders template difficulties per experience
// level. The first entry earns the larger alignment bonus.
var difficultyPreference = map[schema.ExperienceLevel][]schema.DifficultyTier{
	schema.LevelJunior: {schema.DifficultyBeginner, schema.DifficultyIntermediate},
	schema.LevelMid:    {schema.DifficultyIntermediate, schema.DifficultyBeginner, schema.DifficultyAdvanced},
	schema.LevelSenior: {schema.DifficultyAdvanced, schema.DifficultyIntermediate},
}

const (
	firstPreferenceBonus  = 0.5
	secondPreferenceBonus = 0.25
)

// Select ranks catalog templates by skill overlap with the gap.
// Templates with zero overlap are excluded. A difficulty-alignment
// bonus below 1 breaks ties between equal overlaps but can never
// override a higher overlap; remaining ties keep catalog order.
func (c *Catalog) Select(gapSkills []string, level schema.ExperienceLevel, maxResults int) []Template {
	gap := make(map[string]struct{}, len(gapSkills))
	for _, s := range gapSkills {
		gap[strings.ToLower(s)] = struct{}{}
	}

	preferred := difficultyPreference[level]

	type scored struct {
		score float64
		tpl   Template
	}

	var ranked []scored
	for _, tpl := range c.templates {
		overlap := 0
		for _, s := range tpl.SkillsAddressed {
			if _, ok := gap[strings.ToLower(s)]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}

		bonus := 0.0
		for i, d := range preferred {
			if tpl.Difficulty != d {
				continue
			}
			if i == 0 {
				bonus = firstPreferenceBonus
			} else if i == 1 {
				bonus = secondPreferenceBonus
			}
			break
		}

		ranked = append(ranked, scored{score: float64(overlap) + bonus, tpl: tpl})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if maxResults >= 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	out := make([]Template, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.tpl)
	}
	return out
}
