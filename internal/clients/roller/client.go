package roller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds configuration for the roller client
type Config struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a new dice roller client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}
	if cfg.BaseURL == "" {
		return nil, dnderr.InvalidArgument("base URL is required")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// Roll sends a dice expression and returns the parsed group breakdown
func (c *client) Roll(ctx context.Context, expression string) ([]RollGroup, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, dnderr.InvalidArgument("dice expression is required")
	}

	rollURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(expression))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rollURL, nil)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to build roll request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeTimeout, "dice service took too long")
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "dice service unreachable")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("failed to close roll response body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, dnderr.InvalidArgumentf("dice service rejected expression %q (status %d)", expression, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to read roll response")
	}

	groups, err := decodeGroups(body)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "malformed roll response")
	}

	return groups, nil
}

// decodeGroups accepts either a JSON array of groups or a bare group object
func decodeGroups(body []byte) ([]RollGroup, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, fmt.Errorf("empty response body")
	}

	if strings.HasPrefix(trimmed, "[") {
		var groups []RollGroup
		if err := json.Unmarshal(body, &groups); err != nil {
			return nil, err
		}
		if len(groups) == 0 {
			return nil, fmt.Errorf("no roll groups in response")
		}
		return groups, nil
	}

	var group RollGroup
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, err
	}
	return []RollGroup{group}, nil
}
