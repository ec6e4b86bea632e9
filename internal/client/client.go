// Package client talks to the simulation record API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alexiusacademia/gocable/internal/models"
)

// StatusError is a non-2xx answer from the API
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

// Client is safe for concurrent use
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:5000
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// WithHTTPClient replaces the underlying HTTP client
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Save submits a solved record and returns it as stored
func (c *Client) Save(ctx context.Context, in models.SimulationInput) (*models.Simulation, error) {
	var sim models.Simulation
	if err := c.do(ctx, http.MethodPost, "/api/simulations", in, http.StatusCreated, &sim); err != nil {
		return nil, err
	}
	return &sim, nil
}

// List returns up to limit records, newest first
func (c *Client) List(ctx context.Context, limit int) ([]models.Simulation, error) {
	path := "/api/simulations"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var sims []models.Simulation
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &sims); err != nil {
		return nil, err
	}
	return sims, nil
}

// Get fetches one record by id
func (c *Client) Get(ctx context.Context, id string) (*models.Simulation, error) {
	var sim models.Simulation
	if err := c.do(ctx, http.MethodGet, "/api/simulations/"+url.PathEscape(id), nil, http.StatusOK, &sim); err != nil {
		return nil, err
	}
	return &sim, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &StatusError{Status: resp.StatusCode, Message: payload.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
