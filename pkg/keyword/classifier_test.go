package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		raw         RawCategories
		wantInclude []Tag
		wantExclude []Tag
	}{
		{
			name:        "empty input",
			raw:         RawCategories{},
			wantInclude: []Tag{},
			wantExclude: []Tag{},
		},
		{
			name: "difficulty and exclusion",
			raw: RawCategories{
				Difficulty:         []string{"easy"},
				ExcludeIngredients: []string{"peanut"},
			},
			wantInclude: []Tag{
				{Name: "easy", Field: "difficulty", State: "include"},
			},
			wantExclude: []Tag{
				{Name: "peanut", Field: "exclude_ingredients", State: "exclude"},
			},
		},
		{
			name: "first seen category wins across include categories",
			raw: RawCategories{
				DishType:        []string{"soup"},
				MustIngredients: []string{"soup", "tofu"},
			},
			wantInclude: []Tag{
				{Name: "soup", Field: "dish_type", State: "include"},
				{Name: "tofu", Field: "must_ingredients", State: "include"},
			},
			wantExclude: []Tag{},
		},
		{
			name: "duplicates within one category collapse",
			raw: RawCategories{
				Situation: []string{"camping", "camping"},
			},
			wantInclude: []Tag{
				{Name: "camping", Field: "situation", State: "include"},
			},
			wantExclude: []Tag{},
		},
		{
			name: "cook time scalar becomes one include tag",
			raw: RawCategories{
				MaxCookTimeMin: intPtr(30),
			},
			wantInclude: []Tag{
				{Name: "30", Field: "max_cook_time_min", State: "include"},
			},
			wantExclude: []Tag{},
		},
		{
			name: "extra keyword suppressed by health tags",
			raw: RawCategories{
				ExtraKeywords: []string{"spicy"},
				HealthTags:    []string{"spicy"},
				PositiveTags:  []string{},
			},
			wantInclude: []Tag{
				{Name: "spicy", Field: "health_tags", State: "include"},
			},
			wantExclude: []Tag{},
		},
		{
			name: "extra keyword suppressed by positive tags",
			raw: RawCategories{
				ExtraKeywords: []string{"hearty"},
				PositiveTags:  []string{"hearty"},
			},
			wantInclude: []Tag{},
			wantExclude: []Tag{},
		},
		{
			name: "health tag suppressed by extra keywords and positive tags",
			raw: RawCategories{
				HealthTags:   []string{"low-salt", "vegan"},
				PositiveTags: []string{"vegan"},
			},
			wantInclude: []Tag{
				{Name: "low-salt", Field: "health_tags", State: "include"},
			},
			wantExclude: []Tag{},
		},
		{
			name: "same name in both polarities is allowed",
			raw: RawCategories{
				MustIngredients:    []string{"onion"},
				ExcludeIngredients: []string{"onion"},
			},
			wantInclude: []Tag{
				{Name: "onion", Field: "must_ingredients", State: "include"},
			},
			wantExclude: []Tag{
				{Name: "onion", Field: "exclude_ingredients", State: "exclude"},
			},
		},
		{
			name: "exclude duplicates collapse independently",
			raw: RawCategories{
				ExcludeIngredients: []string{"peanut", "peanut", "shrimp"},
			},
			wantInclude: []Tag{},
			wantExclude: []Tag{
				{Name: "peanut", Field: "exclude_ingredients", State: "exclude"},
				{Name: "shrimp", Field: "exclude_ingredients", State: "exclude"},
			},
		},
		{
			name: "scan order is fixed",
			raw: RawCategories{
				Difficulty:     []string{"easy"},
				DishType:       []string{"stew"},
				WeatherTags:    []string{"rainy"},
				Situation:      []string{"dinner"},
				MenuStyle:      []string{"korean"},
				Method:         []string{"braise"},
				MaxCookTimeMin: intPtr(40),
				ExtraKeywords:  []string{"comfort"},
			},
			wantInclude: []Tag{
				{Name: "easy", Field: "difficulty", State: "include"},
				{Name: "stew", Field: "dish_type", State: "include"},
				{Name: "rainy", Field: "weather_tags", State: "include"},
				{Name: "dinner", Field: "situation", State: "include"},
				{Name: "korean", Field: "menu_style", State: "include"},
				{Name: "braise", Field: "method", State: "include"},
				{Name: "40", Field: "max_cook_time_min", State: "include"},
				{Name: "comfort", Field: "extra_keywords", State: "include"},
			},
			wantExclude: []Tag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			assert.Equal(t, tt.wantInclude, got.Include)
			assert.Equal(t, tt.wantExclude, got.Exclude)
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	raw := RawCategories{
		Difficulty:         []string{"easy", "medium"},
		DishType:           []string{"noodles"},
		MaxCookTimeMin:     intPtr(20),
		ExcludeIngredients: []string{"peanut"},
		ExtraKeywords:      []string{"spicy", "warm"},
		HealthTags:         []string{"spicy", "low-fat"},
		PositiveTags:       []string{"warm"},
	}

	first := Classify(raw)
	second := Classify(raw)
	assert.Equal(t, first, second)

	// Ordering is deterministic, not just set-equal.
	for i := range first.Include {
		assert.Equal(t, first.Include[i], second.Include[i])
	}
}

func TestToggle(t *testing.T) {
	tags := []Tag{
		{Name: "easy", Field: "difficulty", State: "include"},
		{Name: "spicy", Field: "extra_keywords", State: "include"},
	}

	t.Run("toggle to ignore", func(t *testing.T) {
		got := Toggle(tags, "spicy", StateInclude)
		require.Len(t, got, 2)
		assert.Equal(t, "include", got[0].State)
		assert.Equal(t, "ignore", got[1].State)
		// input untouched
		assert.Equal(t, "include", tags[1].State)
	})

	t.Run("toggle twice is identity", func(t *testing.T) {
		got := Toggle(Toggle(tags, "spicy", StateInclude), "spicy", StateInclude)
		assert.Equal(t, tags, got)
	})

	t.Run("exclude polarity reverts to exclude", func(t *testing.T) {
		excl := []Tag{{Name: "peanut", Field: "exclude_ingredients", State: "ignore"}}
		got := Toggle(excl, "peanut", StateExclude)
		assert.Equal(t, "exclude", got[0].State)
	})

	t.Run("unknown name is a no-op", func(t *testing.T) {
		got := Toggle(tags, "missing", StateInclude)
		assert.Equal(t, tags, got)
	})
}
