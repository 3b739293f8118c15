package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
)

// SearchService wraps the catalog search endpoints.
type SearchService struct {
	client *api.Client
}

func NewSearchService(c *api.Client) *SearchService {
	return &SearchService{client: c}
}

// Basic runs a keyword search, optionally narrowed to one entity type.
func (s *SearchService) Basic(ctx context.Context, query string, entityType models.SearchEntityType, page, perPage int) (*models.SearchResults, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	if entityType != "" {
		q.Set("entity_type", string(entityType))
	}

	var res models.SearchResults
	if err := s.client.GetJSON(ctx, "/search/basic", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Advanced runs a filtered, sorted search.
func (s *SearchService) Advanced(ctx context.Context, params models.AdvancedSearchParams) (*models.SearchResults, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PerPage <= 0 {
		params.PerPage = 10
	}
	if err := models.Validate(&params); err != nil {
		return nil, err
	}

	var res models.SearchResults
	if err := s.client.PostJSON(ctx, "/search/advanced", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
