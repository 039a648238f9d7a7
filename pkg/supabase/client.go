// Package supabase is a minimal client for the Supabase PostgREST API.
//
// Filters are passed as raw query strings in PostgREST syntax
// (e.g. "patient_id=eq.7&order=clinic_date.desc&limit=200").
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/healhub/healhub_backend/config"
	"github.com/healhub/healhub_backend/pkg/apperr"
)

// Client is a lightweight PostgREST HTTP client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client from config. The dashboard needs elevated access,
// so the service-role key is preferred; the anon key works with tighter
// row-level security.
func New(cfg config.SupabaseConfig) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, apperr.MissingConfig("supabase.url")
	}
	key := cfg.ServiceRoleKey
	if key == "" {
		key = cfg.AnonKey
	}
	if key == "" {
		return nil, apperr.MissingConfig("supabase.service_role_key (or supabase.anon_key)")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     key,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Select reads rows from table matching the filter query.
func Select[T any](ctx context.Context, c *Client, table, query string) ([]T, error) {
	return do[T](ctx, c, http.MethodGet, c.restURL(table, query), false, nil)
}

// Insert creates rows and returns their stored representation.
func Insert[T any](ctx context.Context, c *Client, table string, body any) ([]T, error) {
	return do[T](ctx, c, http.MethodPost, c.restURL(table, "select=*"), true, body)
}

// Update patches rows matching the filter and returns the updated rows.
// An empty result means the filter matched nothing.
func Update[T any](ctx context.Context, c *Client, table, filter string, patch any) ([]T, error) {
	return do[T](ctx, c, http.MethodPatch, c.restURL(table, filter+"&select=*"), true, patch)
}

// Delete removes rows matching the filter and returns what was removed.
func Delete[T any](ctx context.Context, c *Client, table, filter string) ([]T, error) {
	return do[T](ctx, c, http.MethodDelete, c.restURL(table, filter+"&select=*"), true, nil)
}

func (c *Client) restURL(table, query string) string {
	if query == "" {
		return fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	}
	return fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, query)
}

func do[T any](ctx context.Context, c *Client, method, url string, representation bool, body any) ([]T, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, apperr.Unexpectedf("supabase: encode body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apperr.Unexpectedf("supabase: build request: %v", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if representation {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Transport("supabase request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Transport("supabase: read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.Transport(
			fmt.Sprintf("supabase %s failed: %s %s", strings.ToLower(method), resp.Status, truncate(raw, 512)),
			nil,
		)
	}

	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, apperr.Transport("supabase: decode response", err)
	}
	return rows, nil
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
