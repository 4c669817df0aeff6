package service

import (
	"context"

	"recipe-search-be/internal/dto"
	"recipe-search-be/pkg/keyword"
)

// IKeywordService hosts the interactive refinement operations on a
// classified tag set.
type IKeywordService interface {
	Toggle(ctx context.Context, req *dto.ToggleKeywordRequest) (*dto.ToggleKeywordResponse, error)
}

type keywordService struct{}

func NewKeywordService() IKeywordService {
	return &keywordService{}
}

// Toggle flips one tag between its polarity's normal state and
// "ignore". Toggling the same name twice is the identity.
func (ks *keywordService) Toggle(_ context.Context, req *dto.ToggleKeywordRequest) (*dto.ToggleKeywordResponse, error) {
	normal := keyword.StateInclude
	if req.Polarity == "exclude" {
		normal = keyword.StateExclude
	}
	return &dto.ToggleKeywordResponse{
		Tags: keyword.Toggle(req.Tags, req.Name, normal),
	}, nil
}
