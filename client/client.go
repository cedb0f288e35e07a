package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/AirHelp/numstats/api"
	"github.com/AirHelp/numstats/helper"
	"github.com/AirHelp/numstats/stat"
)

var ErrInvalidInput = errors.New("invalid input")

type Client struct {
	baseURL *url.URL
}

func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	if u.Path == "" {
		u.Path = "/"
	}

	return &Client{
		baseURL: u,
	}, nil
}

func (c *Client) Compute(ctx context.Context, op stat.Operation, numbers []int) (stat.Result, error) {
	return c.ComputeRaw(ctx, op, helper.IntSliceToString(numbers))
}

// ComputeRaw sends raw as the nums parameter without client side checks.
func (c *Client) ComputeRaw(ctx context.Context, op stat.Operation, raw string) (stat.Result, error) {
	if !op.Valid() {
		return stat.Result{}, fmt.Errorf("%w: %q", stat.ErrUnknownOperation, op)
	}

	u := c.baseURL.JoinPath(string(op))
	u.RawQuery = url.Values{api.NumsParam: []string{raw}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return stat.Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return stat.Result{}, fmt.Errorf("failed to get %v: %w", u.Path, err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.S().Error("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return stat.Result{}, fmt.Errorf("failed to read the response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var r api.Response

		if err := json.Unmarshal(body, &r); err != nil {
			return stat.Result{}, fmt.Errorf("returned response is not valid: %v", string(body))
		}

		if r.Response.Operation != op {
			return stat.Result{}, fmt.Errorf("expected %v result, got %q", op, r.Response.Operation)
		}

		return r.Response, nil
	case http.StatusBadRequest:
		var e api.Error

		if err := json.Unmarshal(body, &e); err != nil || e.Message == "" {
			return stat.Result{}, ErrInvalidInput
		}

		return stat.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, e.Message)
	default:
		return stat.Result{}, fmt.Errorf("expected %v response, got %v", http.StatusOK, resp.StatusCode)
	}
}
