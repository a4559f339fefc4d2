// Package catalog implements the remote course-search collaborator. The
// client wraps an Open Library style search endpoint and maps its documents
// into course values. Retries for transient transport failures live here,
// inside the collaborator; the core above never retries.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coursemate/coursemate/internal/common"
	"github.com/coursemate/coursemate/internal/models"
	"github.com/hashicorp/go-retryablehttp"
)

// Catalog is the search contract consumed by the controller.
type Catalog interface {
	Search(ctx context.Context, query string) ([]models.Course, error)
}

// Client talks to the remote search endpoint over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// searchResponse mirrors the wire shape of the search endpoint. Only the
// fields the client keeps are declared.
type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key              string   `json:"key"`
	CoverEditionKey  string   `json:"cover_edition_key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	CoverId          int      `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
	Subject          []string `json:"subject"`
}

// NewClient builds a Client for the given base URL. Transient failures
// (connection errors, 5xx) are retried a few times with backoff before the
// call is reported failed.
func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: rc.StandardClient(),
	}
}

// Search runs a course search for query and maps the result documents.
// All failures are wrapped in common.ErrFetch.
func (c *Client) Search(ctx context.Context, query string) ([]models.Course, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: catalog client not configured", common.ErrFetch)
	}

	u := fmt.Sprintf("%s/search.json?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", common.ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", common.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status: %d", common.ErrFetch, resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", common.ErrFetch, err)
	}

	courses := make([]models.Course, 0, len(result.Docs))
	for _, doc := range result.Docs {
		courses = append(courses, mapDoc(doc))
	}
	return courses, nil
}

// mapDoc converts a raw search document into a Course, keeping only the
// fields the client renders. Subjects are capped at three.
func mapDoc(doc searchDoc) models.Course {
	id := doc.Key
	if id == "" {
		id = doc.CoverEditionKey
	}
	if id == "" {
		id = doc.Title
	}

	title := doc.Title
	if title == "" {
		title = "Untitled"
	}

	authors := "Unknown"
	if len(doc.AuthorName) > 0 {
		authors = strings.Join(doc.AuthorName, ", ")
	}

	subjects := doc.Subject
	if len(subjects) > 3 {
		subjects = subjects[:3]
	}

	return models.Course{
		Id:          id,
		Title:       title,
		AuthorNames: authors,
		CoverId:     doc.CoverId,
		Year:        doc.FirstPublishYear,
		Subjects:    subjects,
	}
}
