package store

import (
	"time"

	"recipe-search-be/pkg/keyword"
)

// RecipeSummary is the canonical normalized result record surfaced to
// callers, regardless of which backend variant produced it.
type RecipeSummary struct {
	RecipeID            int      `json:"recipe_id"`
	Name                string   `json:"name"`
	Score               float64  `json:"score"`
	Servings            string   `json:"servings,omitempty"`
	Difficulty          string   `json:"difficulty,omitempty"`
	Time                int      `json:"time,omitempty"`
	Ingredients         []string `json:"ingredients,omitempty"`
	Types               []string `json:"types,omitempty"`
	MatchedKeywordsFlat []string `json:"matched_keywords_flat,omitempty"`
	ImageURL            string   `json:"image_url,omitempty"`
}

// Interaction is one committed conversation turn. Never mutated after
// it has been appended to a session's history.
type Interaction struct {
	Prompt            string                `json:"prompt"`
	MatchedKeywords   keyword.Classified    `json:"matchedKeywords"`
	MatchedCategories keyword.RawCategories `json:"matchedCategories"`
	Recommendations   []RecipeSummary       `json:"recommendations"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// Session is the full per-conversation state held behind one opaque
// session id. History is append-only; the last* fields always mirror
// the most recent entry. Only the orchestrator writes sessions.
type Session struct {
	SessionID           string                `json:"sessionId"`
	History             []Interaction         `json:"history"`
	LastPrompt          string                `json:"lastPrompt,omitempty"`
	LastMatchedKeywords keyword.Classified    `json:"lastMatchedKeywords"`
	LastCategories      keyword.RawCategories `json:"lastCategories"`
	LastRecommendations []RecipeSummary       `json:"lastRecommendations,omitempty"`
}

// NewSession returns an empty session for a first turn.
func NewSession(sessionID string) *Session {
	return &Session{
		SessionID: sessionID,
		History:   []Interaction{},
	}
}

// Append commits one turn: the interaction is appended to history and
// the last* mirrors are updated together, never partially.
func (s *Session) Append(in Interaction) {
	s.History = append(s.History, in)
	s.LastPrompt = in.Prompt
	s.LastMatchedKeywords = in.MatchedKeywords
	s.LastCategories = in.MatchedCategories
	s.LastRecommendations = in.Recommendations
}
