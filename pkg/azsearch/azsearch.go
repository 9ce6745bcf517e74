package azsearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/context"
)

const (
	apiVersion     = "2024-07-01"
	vectorField    = "content_vector"
	vectorKNN      = 3
	semanticConfig = "semantic_search_v1"
	topResults     = 10
)

// Reference is one fashion-advice document returned by the search index.
type Reference struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type ISearch interface {
	SearchReferences(ctx context.Context, queryText string, vector []float32) ([]Reference, error)
}

type searchClient struct {
	endpoint string
	index    string
	apiKey   string
	client   *http.Client
}

func New() (ISearch, error) {
	endpoint := os.Getenv("AZURE_SEARCH_ENDPOINT")
	index := os.Getenv("AZURE_SEARCH_INDEX")
	apiKey := os.Getenv("AZURE_SEARCH_KEY")

	if endpoint == "" || index == "" || apiKey == "" {
		return nil, fmt.Errorf("azure search configuration incomplete")
	}

	return &searchClient{
		endpoint: endpoint,
		index:    index,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type vectorQuery struct {
	Kind       string    `json:"kind"`
	Vector     []float32 `json:"vector"`
	K          int       `json:"k"`
	Fields     string    `json:"fields"`
	Exhaustive bool      `json:"exhaustive"`
}

type searchRequest struct {
	Search                string        `json:"search"`
	VectorQueries         []vectorQuery `json:"vectorQueries"`
	Select                string        `json:"select"`
	QueryType             string        `json:"queryType"`
	SemanticConfiguration string        `json:"semanticConfiguration"`
	Captions              string        `json:"captions"`
	Answers               string        `json:"answers"`
	Top                   int           `json:"top"`
}

type searchDocument struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Score   float64 `json:"@search.score"`
}

type searchResponse struct {
	Value []searchDocument `json:"value"`
}

// SearchReferences runs a hybrid text + vector query with semantic ranking.
func (s *searchClient) SearchReferences(ctx context.Context, queryText string, vector []float32) ([]Reference, error) {
	reqBody, err := json.Marshal(searchRequest{
		Search: queryText,
		VectorQueries: []vectorQuery{
			{
				Kind:   "vector",
				Vector: vector,
				K:      vectorKNN,
				Fields: vectorField,
			},
		},
		Select:                "id,content",
		QueryType:             "semantic",
		SemanticConfiguration: semanticConfig,
		Captions:              "extractive",
		Answers:               "extractive",
		Top:                   topResults,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s", s.endpoint, s.index, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", httpResp.StatusCode)
	}

	var resp searchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	references := make([]Reference, 0, len(resp.Value))
	for _, doc := range resp.Value {
		references = append(references, Reference{
			ID:      doc.ID,
			Content: doc.Content,
			Score:   doc.Score,
		})
	}

	return references, nil
}
