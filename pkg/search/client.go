package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"recipe-search-be/pkg/keyword"
)

// Request is the abstract backend-variant contract: every variant
// takes the same inputs, the keyword variant additionally honors
// FilterKeywords.
type Request struct {
	SessionID       string                `json:"sessionId"`
	Query           string                `json:"query"`
	MatchedKeywords keyword.RawCategories `json:"matchedKeywords"`
	TopK            int                   `json:"top_k"`
	FilterKeywords  *keyword.Classified   `json:"filterKeywords,omitempty"`
}

// Client talks to the model server hosting all search variants and
// the recipe-detail crawler.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8001"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Search performs one synchronous call against the selected variant
// and returns the adapted canonical result. Non-2xx answers and
// transport failures both come back as *BackendError; no retries
// happen at this layer.
func (c *Client) Search(ctx context.Context, v Variant, req *Request) (*Result, error) {
	path, err := v.endpoint()
	if err != nil {
		return nil, err
	}

	if v != VariantKeyword {
		req.FilterKeywords = nil
	}

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &BackendError{Variant: v, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Variant: v, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{
			Variant:    v,
			StatusCode: resp.StatusCode,
			Detail:     string(bodyBytes),
		}
	}

	result, err := adapt(v, bodyBytes)
	if err != nil {
		return nil, &BackendError{Variant: v, Err: err}
	}
	return result, nil
}

// FetchRecipeDetail forwards the crawler payload unmodified. The
// payload shape (image, steps, grouped ingredients, related-recipe
// lists) belongs to the model server, not to us.
func (c *Client) FetchRecipeDetail(ctx context.Context, recipeID int) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/crawl-recipe/%d", c.baseURL, recipeID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &DetailError{RecipeID: recipeID, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DetailError{RecipeID: recipeID, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &DetailError{
			RecipeID:   recipeID,
			StatusCode: resp.StatusCode,
			Detail:     string(bodyBytes),
		}
	}

	return json.RawMessage(bodyBytes), nil
}
