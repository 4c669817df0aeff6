package dto

import (
	"recipe-search-be/pkg/keyword"
	"recipe-search-be/pkg/store"
)

// RecipeSearchRequest is the body shared by all three search routes.
// MatchedKeywords is the RAW per-category map echoed back from the
// previous turn's response; the orchestrator re-classifies it every
// turn. FilterKeywords only matters on the keyword-filtered route.
type RecipeSearchRequest struct {
	SessionID       string                `json:"sessionId" validate:"required"`
	Query           string                `json:"query" validate:"required"`
	TopK            int                   `json:"top_k" validate:"omitempty,min=1,max=50"`
	MatchedKeywords keyword.RawCategories `json:"matchedKeywords"`
	FilterKeywords  *keyword.Classified   `json:"filterKeywords,omitempty"`
}

// RecipeSearchResponse is the per-turn projection. The caller never
// receives the session history here; matchedCategories is the raw map
// to send back on the next turn.
type RecipeSearchResponse struct {
	SessionID         string                `json:"sessionId"`
	MatchedKeywords   keyword.Classified    `json:"matchedKeywords"`
	MatchedCategories keyword.RawCategories `json:"matchedCategories"`
	Recommendations   []store.RecipeSummary `json:"recommendations"`
}

// GetSessionResponse is the read-only view of the latest committed
// turn for an existing session.
type GetSessionResponse struct {
	SessionID         string                `json:"sessionId"`
	LastPrompt        string                `json:"lastPrompt"`
	MatchedKeywords   keyword.Classified    `json:"matchedKeywords"`
	MatchedCategories keyword.RawCategories `json:"matchedCategories"`
	Recommendations   []store.RecipeSummary `json:"recommendations"`
	Turns             int                   `json:"turns"`
}

type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// ValidationError rejects a request before any external call is made.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}
