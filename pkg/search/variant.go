package search

import (
	"encoding/json"
	"fmt"

	"recipe-search-be/pkg/keyword"
	"recipe-search-be/pkg/store"
)

// Variant selects one of the independent model-server search modes.
// They share a semantic purpose but not a response schema.
type Variant string

const (
	// VariantPlain is the baseline embedding search.
	VariantPlain Variant = "plain"
	// VariantGraph searches over the recipe similarity graph.
	VariantGraph Variant = "graph"
	// VariantKeyword is the keyword-filtered search; the only variant
	// that accepts an explicit filter-keyword structure.
	VariantKeyword Variant = "keyword"
)

// endpoint returns the model-server path for the variant.
func (v Variant) endpoint() (string, error) {
	switch v {
	case VariantPlain:
		return "/search", nil
	case VariantGraph:
		return "/graph-search", nil
	case VariantKeyword:
		return "/keyword-search", nil
	default:
		return "", fmt.Errorf("unknown search variant %q", v)
	}
}

// Result is the canonical adapter output. Variant-specific field
// names never leave this package.
type Result struct {
	Categories      keyword.RawCategories
	Recommendations []store.RecipeSummary
}

// plainEnvelope is the baseline variant's wire shape.
type plainEnvelope struct {
	MatchedKeywords keyword.RawCategories `json:"matchedKeywords"`
	Recommendations []store.RecipeSummary `json:"recommendations"`
}

// altEnvelope is shared by the graph and keyword variants, which
// drifted to shorter field names.
type altEnvelope struct {
	Keywords keyword.RawCategories `json:"keywords"`
	Results  []store.RecipeSummary `json:"results"`
}

// adapt decodes a variant's raw response body into the canonical
// result shape. This is the single seam absorbing cross-variant
// schema drift.
func adapt(v Variant, body []byte) (*Result, error) {
	switch v {
	case VariantPlain:
		var env plainEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, err
		}
		return &Result{
			Categories:      env.MatchedKeywords,
			Recommendations: normalize(env.Recommendations),
		}, nil
	case VariantGraph, VariantKeyword:
		var env altEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, err
		}
		return &Result{
			Categories:      env.Keywords,
			Recommendations: normalize(env.Results),
		}, nil
	default:
		return nil, fmt.Errorf("unknown search variant %q", v)
	}
}

// normalize applies the one defaulting rule for recommendation lists:
// a missing list becomes an empty one, so callers never branch on nil.
func normalize(recs []store.RecipeSummary) []store.RecipeSummary {
	if recs == nil {
		return []store.RecipeSummary{}
	}
	return recs
}
