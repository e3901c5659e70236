// Package search indexes movements in Algolia and runs free-text queries
// against them.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Config holds Algolia configuration.
type Config struct {
	AppID     string
	APIKey    string // needs addObject and deleteObject rights
	IndexName string
}

// MovementQuery defines the input for a movement search.
type MovementQuery struct {
	Text     string
	UserID   string
	Category string
	Type     model.MovementType
	// Amount range, inclusive
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	// Date range, inclusive
	Start *civil.Date
	End   *civil.Date
	// Pagination (offset-based)
	Page     int
	PageSize int
}

// Hit is one movement returned by the index.
type Hit struct {
	ID          string
	Description string
	Category    string
	Type        model.MovementType
	Amount      decimal.Decimal
	Date        civil.Date
}

// SearchResponse holds results from Algolia.
type SearchResponse struct {
	Hits       []Hit
	TotalCount int
	TotalPages int
	Page       int
}

// Index is what the service needs from a search backend.
type Index interface {
	IndexMovement(ctx context.Context, m *model.Movement) error
	RemoveMovement(ctx context.Context, movementID string) error
	Search(ctx context.Context, q MovementQuery) (*SearchResponse, error)
}

// AlgoliaClient wraps the Algolia search API client.
type AlgoliaClient struct {
	client    *search.APIClient
	indexName string
	log       zerolog.Logger
}

// NewAlgoliaClient creates a new Algolia search client.
func NewAlgoliaClient(cfg Config, log zerolog.Logger) (*AlgoliaClient, error) {
	if cfg.AppID == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("algolia AppID and APIKey are required")
	}
	if cfg.IndexName == "" {
		cfg.IndexName = "movements"
	}

	client, err := search.NewClient(cfg.AppID, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("creating algolia client: %w", err)
	}

	return &AlgoliaClient{
		client:    client,
		indexName: cfg.IndexName,
		log:       log,
	}, nil
}

// IndexMovement adds or replaces the record for m.
func (c *AlgoliaClient) IndexMovement(ctx context.Context, m *model.Movement) error {
	req := c.client.NewApiAddOrUpdateObjectRequest(c.indexName, m.ID, movementRecord(m))
	if _, err := c.client.AddOrUpdateObject(req); err != nil {
		return fmt.Errorf("algolia index %s: %w", m.ID, err)
	}
	return nil
}

// RemoveMovement deletes the record for a movement. Deleting an unknown
// object is not an error on Algolia's side.
func (c *AlgoliaClient) RemoveMovement(ctx context.Context, movementID string) error {
	if _, err := c.client.DeleteObject(c.client.NewApiDeleteObjectRequest(c.indexName, movementID)); err != nil {
		return fmt.Errorf("algolia delete %s: %w", movementID, err)
	}
	return nil
}

// Search performs a full-text search via Algolia.
func (c *AlgoliaClient) Search(ctx context.Context, q MovementQuery) (*SearchResponse, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("algolia search: user ID is required")
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	if pageSize > 1000 {
		pageSize = 1000
	}
	page := q.Page
	if page < 0 {
		page = 0
	}

	searchParams := search.SearchParamsObjectAsSearchParams(
		search.NewSearchParamsObject().
			SetQuery(q.Text).
			SetHitsPerPage(int32(pageSize)).
			SetPage(int32(page)).
			SetFilters(buildFilters(q)),
	)

	resp, err := c.client.SearchSingleIndex(c.client.NewApiSearchSingleIndexRequest(c.indexName).WithSearchParams(searchParams))
	if err != nil {
		return nil, fmt.Errorf("algolia search: %w", err)
	}

	hits := make([]Hit, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		props := h.AdditionalProperties
		if props == nil {
			props = map[string]any{}
		}
		props["objectID"] = h.ObjectID
		hit, ok := hitToMovement(props)
		if !ok {
			c.log.Warn().Msg("skipping hit with no objectID")
			continue
		}
		hits = append(hits, hit)
	}

	out := &SearchResponse{Hits: hits, Page: page}
	if resp.NbHits != nil {
		out.TotalCount = int(*resp.NbHits)
	}
	if resp.NbPages != nil {
		out.TotalPages = int(*resp.NbPages)
	}
	return out, nil
}

// movementRecord is the object stored in the index. UserId is filter-only
// (see scripts/algolia-setup) so it never reaches search results.
func movementRecord(m *model.Movement) map[string]any {
	return map[string]any{
		"UserId":      m.UserID,
		"Description": m.Description,
		"Category":    m.Category,
		"Type":        string(m.Type),
		"Amount":      m.Amount.String(),
		"AmountCents": m.Amount.Shift(2).Round(0).IntPart(),
		"Date":        m.Date.String(),
		"DateUnix":    dateUnix(m.Date),
	}
}

func dateUnix(d civil.Date) int64 {
	return d.In(time.UTC).Unix()
}

// buildFilters constructs the Algolia filter string. UserId is always
// enforced so one user never sees another's movements.
func buildFilters(q MovementQuery) string {
	parts := []string{fmt.Sprintf("UserId:%q", q.UserID)}

	if q.Category != "" {
		parts = append(parts, fmt.Sprintf("Category:%q", q.Category))
	}
	if q.Type != "" {
		parts = append(parts, fmt.Sprintf("Type:%q", string(q.Type)))
	}

	// Amounts are filtered in cents so the comparison stays integral.
	if q.MinAmount != nil {
		parts = append(parts, fmt.Sprintf("AmountCents >= %d", q.MinAmount.Shift(2).Round(0).IntPart()))
	}
	if q.MaxAmount != nil {
		parts = append(parts, fmt.Sprintf("AmountCents <= %d", q.MaxAmount.Shift(2).Round(0).IntPart()))
	}

	if q.Start != nil {
		parts = append(parts, fmt.Sprintf("DateUnix >= %d", dateUnix(*q.Start)))
	}
	if q.End != nil {
		parts = append(parts, fmt.Sprintf("DateUnix <= %d", dateUnix(*q.End)))
	}

	return strings.Join(parts, " AND ")
}

// hitToMovement converts an Algolia hit to a Hit.
func hitToMovement(props map[string]any) (Hit, bool) {
	var hit Hit

	if v, ok := props["objectID"].(string); ok {
		hit.ID = v
	}
	if hit.ID == "" {
		return Hit{}, false
	}
	if v, ok := props["Description"].(string); ok {
		hit.Description = v
	}
	if v, ok := props["Category"].(string); ok {
		hit.Category = v
	}
	if v, ok := props["Type"].(string); ok {
		hit.Type = model.MovementType(strings.ToLower(v))
	}

	// Amount: prefer the exact string, fall back to cents
	if v, ok := props["Amount"].(string); ok {
		if d, err := decimal.NewFromString(v); err == nil {
			hit.Amount = d
		}
	} else if v, ok := props["AmountCents"].(float64); ok {
		hit.Amount = decimal.NewFromInt(int64(v)).Shift(-2)
	}

	// Date: prefer the ISO string, fall back to DateUnix
	if v, ok := props["Date"].(string); ok {
		if d, err := civil.ParseDate(v); err == nil {
			hit.Date = d
		}
	} else if v, ok := props["DateUnix"].(float64); ok && v > 0 {
		hit.Date = civil.DateOf(time.Unix(int64(v), 0).UTC())
	}

	return hit, true
}
