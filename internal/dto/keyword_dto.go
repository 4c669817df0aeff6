package dto

import "recipe-search-be/pkg/keyword"

// ToggleKeywordRequest flips one tag between active and ignored
// without removing it from the displayed set.
type ToggleKeywordRequest struct {
	Tags     []keyword.Tag `json:"tags" validate:"required"`
	Name     string        `json:"name" validate:"required"`
	Polarity string        `json:"polarity" validate:"required,oneof=include exclude"`
}

type ToggleKeywordResponse struct {
	Tags []keyword.Tag `json:"tags"`
}
