package pdl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

// Client is the HTTP resolver against the person registry proxy.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Identifikator(ctx context.Context, aktorID domain.AktorID) (domain.NorskIdent, error) {
	endpoint := fmt.Sprintf("%s/identifikator?aktoerId=%s", c.baseURL, url.QueryEscape(aktorID.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("pdl request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("pdl oppslag: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", fmt.Errorf("aktør %s: %w", aktorID, sentinel.ErrNotFound)
	default:
		return "", fmt.Errorf("pdl svarte %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	var body struct {
		Identifikator domain.NorskIdent `json:"identifikator"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("pdl svar: %w", err)
	}
	if !body.Identifikator.ErSatt() {
		return "", fmt.Errorf("aktør %s uten identifikator: %w", aktorID, sentinel.ErrNotFound)
	}
	return body.Identifikator, nil
}
