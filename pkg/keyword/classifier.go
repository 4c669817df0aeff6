package keyword

import (
	"slices"
	"strconv"
)

// Classify maps a raw per-category keyword map onto the deduplicated
// include/exclude tag set shown to the user and fed back into the
// next turn.
//
// The scan order below is fixed: it determines both the output
// ordering and which category wins when the same name appears twice.
// Within one polarity the first occurrence wins and later duplicates
// are dropped. Include and exclude never collide with each other.
func Classify(raw RawCategories) Classified {
	c := Classified{
		Include: []Tag{},
		Exclude: []Tag{},
	}

	addInclude := func(name, field string) {
		for _, t := range c.Include {
			if t.Name == name {
				return
			}
		}
		c.Include = append(c.Include, Tag{Name: name, Field: field, State: StateInclude})
	}
	addExclude := func(name, field string) {
		for _, t := range c.Exclude {
			if t.Name == name {
				return
			}
		}
		c.Exclude = append(c.Exclude, Tag{Name: name, Field: field, State: StateExclude})
	}

	for _, name := range raw.Difficulty {
		addInclude(name, FieldDifficulty)
	}
	for _, name := range raw.DishType {
		addInclude(name, FieldDishType)
	}
	for _, name := range raw.WeatherTags {
		addInclude(name, FieldWeatherTags)
	}
	for _, name := range raw.Situation {
		addInclude(name, FieldSituation)
	}
	for _, name := range raw.MenuStyle {
		addInclude(name, FieldMenuStyle)
	}
	for _, name := range raw.Method {
		addInclude(name, FieldMethod)
	}
	for _, name := range raw.MustIngredients {
		addInclude(name, FieldMustIngredients)
	}
	for _, name := range raw.OptionalIngredients {
		addInclude(name, FieldOptionalIngredients)
	}

	if raw.MaxCookTimeMin != nil {
		addInclude(strconv.Itoa(*raw.MaxCookTimeMin), FieldMaxCookTime)
	}

	for _, name := range raw.ExcludeIngredients {
		addExclude(name, FieldExcludeIngredients)
	}

	// extra_keywords and health_tags suppress each other through
	// positive_tags: a term already claimed by another semantic
	// bucket must not be tagged a second time.
	for _, name := range raw.ExtraKeywords {
		if slices.Contains(raw.PositiveTags, name) || slices.Contains(raw.HealthTags, name) {
			continue
		}
		addInclude(name, FieldExtraKeywords)
	}
	for _, name := range raw.HealthTags {
		if slices.Contains(raw.PositiveTags, name) || slices.Contains(raw.ExtraKeywords, name) {
			continue
		}
		addInclude(name, FieldHealthTags)
	}

	return c
}

// Toggle returns a copy of tags with the tag named name flipped:
// its polarity's normal state becomes "ignore", and "ignore" reverts
// to normalState. Toggling the same name twice restores the input.
// Unknown names leave the set unchanged.
func Toggle(tags []Tag, name string, normalState string) []Tag {
	out := make([]Tag, len(tags))
	copy(out, tags)
	for i := range out {
		if out[i].Name != name {
			continue
		}
		if out[i].State == StateIgnore {
			out[i].State = normalState
		} else {
			out[i].State = StateIgnore
		}
	}
	return out
}
