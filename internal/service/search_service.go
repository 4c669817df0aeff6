package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"recipe-search-be/internal/dto"
	"recipe-search-be/internal/pkg/logger"
	"recipe-search-be/pkg/keyword"
	"recipe-search-be/pkg/search"
	"recipe-search-be/pkg/session"
	"recipe-search-be/pkg/store"
)

// DefaultTopK applies when a request leaves top_k unset.
const DefaultTopK = 5

// ErrSessionNotFound signals a projection lookup on an id with no
// live session. Search itself never returns this: an absent session
// just means a first turn.
var ErrSessionNotFound = errors.New("session not found")

// ISearchService orchestrates one conversation turn against a search
// backend variant.
type ISearchService interface {
	HandleSearch(ctx context.Context, variant search.Variant, req *dto.RecipeSearchRequest) (*dto.RecipeSearchResponse, error)
	FetchRecipeDetail(ctx context.Context, recipeID int) (json.RawMessage, error)
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*dto.GetSessionResponse, error)
}

type searchService struct {
	sessions session.Store
	backend  *search.Client
	log      logger.ILogger
}

func NewSearchService(sessions session.Store, backend *search.Client, log logger.ILogger) ISearchService {
	return &searchService{
		sessions: sessions,
		backend:  backend,
		log:      log,
	}
}

// HandleSearch runs one turn: load (or synthesize) the session, call
// the backend variant, classify the matched categories, append the
// interaction and persist. A backend failure aborts before anything
// is appended, so a failed turn never corrupts accumulated history.
func (s *searchService) HandleSearch(ctx context.Context, variant search.Variant, req *dto.RecipeSearchRequest) (*dto.RecipeSearchResponse, error) {
	if req.SessionID == "" {
		return nil, &dto.ValidationError{Field: "sessionId", Reason: "is required"}
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, &dto.ValidationError{Field: "query", Reason: "is required"}
	}
	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	// A miss (including an undecodable payload) degrades to a fresh
	// session; the request itself never fails on store state.
	sess, found, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		s.log.Warn("search", "Session load failed, starting fresh", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		found = false
	}
	if !found {
		sess = store.NewSession(req.SessionID)
	}

	result, err := s.backend.Search(ctx, variant, &search.Request{
		SessionID:       req.SessionID,
		Query:           query,
		MatchedKeywords: req.MatchedKeywords,
		TopK:            topK,
		FilterKeywords:  req.FilterKeywords,
	})
	if err != nil {
		return nil, err
	}

	classified := keyword.Classify(result.Categories)

	interaction := store.Interaction{
		Prompt:            query,
		MatchedKeywords:   classified,
		MatchedCategories: result.Categories,
		Recommendations:   result.Recommendations,
		CreatedAt:         time.Now(),
	}
	sess.Append(interaction)

	if err := s.sessions.Put(ctx, req.SessionID, sess); err != nil {
		return nil, err
	}

	s.log.Info("search", "Turn committed", map[string]interface{}{
		"session_id": req.SessionID,
		"variant":    string(variant),
		"turns":      len(sess.History),
		"results":    len(interaction.Recommendations),
	})

	return &dto.RecipeSearchResponse{
		SessionID:         req.SessionID,
		MatchedKeywords:   classified,
		MatchedCategories: result.Categories,
		Recommendations:   interaction.Recommendations,
	}, nil
}

// FetchRecipeDetail is a pure pass-through: the crawler payload is
// forwarded byte-for-byte, no normalization.
func (s *searchService) FetchRecipeDetail(ctx context.Context, recipeID int) (json.RawMessage, error) {
	return s.backend.FetchRecipeDetail(ctx, recipeID)
}

// CreateSession mints an opaque id. No store write happens here; the
// session itself materializes on the first committed turn.
func (s *searchService) CreateSession(_ context.Context) (*dto.CreateSessionResponse, error) {
	return &dto.CreateSessionResponse{SessionID: uuid.New().String()}, nil
}

// GetSession exposes the read-only projection of the latest committed
// turn. The full history never leaves this service.
func (s *searchService) GetSession(ctx context.Context, sessionID string) (*dto.GetSessionResponse, error) {
	if sessionID == "" {
		return nil, &dto.ValidationError{Field: "sessionId", Reason: "is required"}
	}

	sess, found, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}

	return &dto.GetSessionResponse{
		SessionID:         sess.SessionID,
		LastPrompt:        sess.LastPrompt,
		MatchedKeywords:   sess.LastMatchedKeywords,
		MatchedCategories: sess.LastCategories,
		Recommendations:   sess.LastRecommendations,
		Turns:             len(sess.History),
	}, nil
}
