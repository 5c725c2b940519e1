package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// SearchResultCount is the number of recipes requested per search
	SearchResultCount = 10
	// SearchRanking asks the API to minimize missing ingredients
	SearchRanking = 2

	findByIngredientsPath = "/recipes/findByIngredients"
	informationPathFormat = "/recipes/%s/information"

	// maxErrorBodyLen caps how much of a failed upstream body is kept for logs
	maxErrorBodyLen = 512
)

// ErrMalformedResponse is returned when the upstream answers 2xx with a body
// that is not valid JSON.
var ErrMalformedResponse = errors.New("malformed upstream response")

// UpstreamError is returned when the recipe API answers with a non-2xx status
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("recipe API request failed with status %d: %s", e.StatusCode, e.Body)
}

// SpoonacularService relays lookups to the Spoonacular recipe API
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSpoonacularService creates a new SpoonacularService. A nil client falls
// back to http.DefaultClient, which applies no timeout of its own.
func NewSpoonacularService(apiKey, baseURL string, client *http.Client) *SpoonacularService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SpoonacularService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

// FindByIngredients searches recipes that use the given ingredients. Only the
// credential, the ingredient list and the fixed search options are sent.
func (s *SpoonacularService) FindByIngredients(ctx context.Context, query IngredientQuery) (json.RawMessage, error) {
	params := s.credentials()
	if query.Set {
		params.Set("ingredients", query.Value)
	}
	params.Set("number", strconv.Itoa(SearchResultCount))
	params.Set("ranking", strconv.Itoa(SearchRanking))
	params.Set("ignorePantry", "true")

	return s.get(ctx, "find_by_ingredients", findByIngredientsPath, params)
}

// GetRecipeInformation fetches the full details of a single recipe. The id is
// escaped into the path but otherwise passed through as given.
func (s *SpoonacularService) GetRecipeInformation(ctx context.Context, id string) (json.RawMessage, error) {
	return s.get(ctx, "recipe_information", fmt.Sprintf(informationPathFormat, url.PathEscape(id)), s.credentials())
}

// credentials starts a parameter set with the API key. An unset key is left
// off entirely rather than sent empty.
func (s *SpoonacularService) credentials() url.Values {
	params := url.Values{}
	if s.apiKey != "" {
		params.Set("apiKey", s.apiKey)
	}
	return params
}

func (s *SpoonacularService) get(ctx context.Context, operation, path string, params url.Values) (body json.RawMessage, err error) {
	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
		upstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// url.Error embeds the full request URL, which carries the API key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("failed to send request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(data) > maxErrorBodyLen {
			data = data[:maxErrorBodyLen]
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if !json.Valid(data) {
		return nil, ErrMalformedResponse
	}

	return json.RawMessage(data), nil
}
