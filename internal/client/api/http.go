package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"lifehub/internal/client/models"
	"lifehub/internal/logging"
)

// maxResponseBody caps how much of a response is read. List responses are
// small; anything bigger is a server bug, not data we want in memory.
const maxResponseBody = 4 << 20

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL. The timeout bounds
// every request; when it trips, the call surfaces ErrUnavailable rather than
// hanging.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, credentials{username, password}, nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentials{username, password}, &resp, nil); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return resp.AccessToken, nil
}

// Ping probes the base URL. The server has no dedicated health route, so any
// HTTP answer at all means it is up; only a transport failure reports down.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
	_ = resp.Body.Close()
	return nil
}

// CheckAuth asks the server whether the current token is still accepted. The
// no-cache header keeps intermediaries from answering in the server's place.
func (c *HTTPClient) CheckAuth(ctx context.Context) error {
	extra := http.Header{}
	extra.Set("Cache-Control", "no-cache")
	return c.do(ctx, http.MethodGet, "/workouts/test-auth", nil, nil, nil, extra)
}

func (c *HTTPClient) ListRecipes(ctx context.Context, filter RecipeFilter) (*models.RecipeList, error) {
	q := url.Values{}
	if filter.CuisineType != "" {
		q.Set("cuisine_type", filter.CuisineType)
	}
	if filter.Vegetarian != nil {
		q.Set("is_vegetarian", strconv.FormatBool(*filter.Vegetarian))
	}
	addPaging(q, filter.Page, filter.PerPage)

	list := &models.RecipeList{}
	if err := c.do(ctx, http.MethodGet, "/recipes", q, nil, list, nil); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, recipe models.NewRecipe) (*models.Recipe, error) {
	created := &models.Recipe{}
	if err := c.do(ctx, http.MethodPost, "/recipes", nil, recipe, created, nil); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/recipes/"+strconv.FormatInt(id, 10), nil, nil, nil, nil)
}

func (c *HTTPClient) ListWorkouts(ctx context.Context, filter WorkoutFilter) (*models.WorkoutList, error) {
	q := url.Values{}
	if filter.WorkoutType != "" {
		q.Set("workout_type", filter.WorkoutType)
	}
	if filter.Search != "" {
		q.Set("q", filter.Search)
	}
	addPaging(q, filter.Page, filter.PerPage)

	list := &models.WorkoutList{}
	if err := c.do(ctx, http.MethodGet, "/workouts", q, nil, list, nil); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateWorkout(ctx context.Context, workout models.NewWorkout) (*models.Workout, error) {
	created := &models.Workout{}
	if err := c.do(ctx, http.MethodPost, "/workouts", nil, workout, created, nil); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *HTTPClient) DeleteWorkout(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/workouts/"+strconv.FormatInt(id, 10), nil, nil, nil, nil)
}

func addPaging(q url.Values, page, perPage int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
}

// do sends one request and decodes the response into out (when out is
// non-nil and the body is non-empty).
//
// The bearer token is read from the token source immediately before the send,
// so a logout between two calls takes effect on the second one. Headers in
// extra are applied last and may extend or deliberately override the
// defaults.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, extra http.Header) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if token, ok := c.tokens.CurrentToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	for k, vs := range extra {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := serverError(resp.StatusCode, data)
		c.logger.Debug(ctx, "server rejected request",
			"method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// serverError normalizes a non-2xx response. The server reports errors as
// {"msg": ...}; "message" is accepted too. An absent or unparseable body
// falls back to a generic status-based message.
func serverError(status int, body []byte) *APIError {
	var payload struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Msg
		if msg == "" {
			msg = payload.Message
		}
	}
	return newAPIError(status, msg)
}
