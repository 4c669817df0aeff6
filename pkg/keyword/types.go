package keyword

// Tag states. A tag keeps its polarity's normal state until the user
// toggles it to "ignore" for the next turn.
const (
	StateInclude = "include"
	StateExclude = "exclude"
	StateIgnore  = "ignore"
)

// Category field names as the model server emits them.
const (
	FieldDifficulty          = "difficulty"
	FieldDishType            = "dish_type"
	FieldWeatherTags         = "weather_tags"
	FieldSituation           = "situation"
	FieldMenuStyle           = "menu_style"
	FieldMethod              = "method"
	FieldMustIngredients     = "must_ingredients"
	FieldOptionalIngredients = "optional_ingredients"
	FieldMaxCookTime         = "max_cook_time_min"
	FieldExcludeIngredients  = "exclude_ingredients"
	FieldExtraKeywords       = "extra_keywords"
	FieldHealthTags          = "health_tags"
)

// Tag is one deduplicated, toggleable keyword extracted from a
// backend's matched-category output.
type Tag struct {
	Name  string `json:"name"`
	Field string `json:"field"`
	State string `json:"state"`
}

// Classified is the result of classifying a raw category map.
// Include and Exclude are independent namespaces: the same name may
// appear in both, but never twice within one of them.
type Classified struct {
	Include []Tag `json:"include"`
	Exclude []Tag `json:"exclude"`
}

// RawCategories mirrors the per-category keyword map the model server
// returns alongside its recommendations. All list categories may be
// nil; max_cook_time_min is a single scalar, not a list.
type RawCategories struct {
	Difficulty          []string `json:"difficulty,omitempty"`
	DishType            []string `json:"dish_type,omitempty"`
	WeatherTags         []string `json:"weather_tags,omitempty"`
	Situation           []string `json:"situation,omitempty"`
	MenuStyle           []string `json:"menu_style,omitempty"`
	Method              []string `json:"method,omitempty"`
	MustIngredients     []string `json:"must_ingredients,omitempty"`
	OptionalIngredients []string `json:"optional_ingredients,omitempty"`
	MaxCookTimeMin      *int     `json:"max_cook_time_min,omitempty"`
	ExcludeIngredients  []string `json:"exclude_ingredients,omitempty"`
	ExtraKeywords       []string `json:"extra_keywords,omitempty"`
	HealthTags          []string `json:"health_tags,omitempty"`
	PositiveTags        []string `json:"positive_tags,omitempty"`
}
