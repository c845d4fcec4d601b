// Package sak holds the HTTP gateway towards k9-sak: reading the periods a
// sak already covers and submitting finished canonical documents.
package sak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"punsj/internal/k9format"
	"punsj/pkg/domain"
	"punsj/pkg/platform/sentinel"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// HentPerioder returns the søknadsperioder k9-sak already knows for the
// søker/barn pair. An unknown pair is an empty list, not an error.
func (c *Client) HentPerioder(ctx context.Context, soker, barn domain.NorskIdent) ([]domain.Periode, error) {
	payload, err := json.Marshal(map[string]string{
		"brukerIdent": soker.String(),
		"barnIdent":   barn.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal periodeforespørsel: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/behandling/soknad/perioder", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("perioder request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hent perioder: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("k9-sak svarte %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	var perioder []domain.Periode
	if err := json.NewDecoder(resp.Body).Decode(&perioder); err != nil {
		return nil, fmt.Errorf("perioder svar: %w", err)
	}
	return perioder, nil
}

// SendSoknad submits a finished canonical document.
func (c *Client) SendSoknad(ctx context.Context, soknad *k9format.Soknad) error {
	payload, err := json.Marshal(soknad)
	if err != nil {
		return fmt.Errorf("marshal søknad: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/soknad", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send søknad: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("k9-sak svarte %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}
	return nil
}
