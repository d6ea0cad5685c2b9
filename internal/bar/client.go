package bar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"liquor-bartender/internal/domain"
)

// Fetcher obtiene la colección (barra) de un usuario por su username.
type Fetcher interface {
	FetchBar(ctx context.Context, username string) ([]domain.OwnedBottle, error)
}

// Client consume el API de bares estilo BAXUS:
// GET {base}/api/bar/user/{username} devuelve [{"product": {...}}, ...].
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type barEntry struct {
	Product domain.OwnedBottle `json:"product"`
}

func (c *Client) FetchBar(ctx context.Context, username string) ([]domain.OwnedBottle, error) {
	endpoint := c.baseURL + "/api/bar/user/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bar for %s: %w", username, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bar response: %w", err)
	}
	if resp.StatusCode >= 400 {
		c.logger.Warn("bar api error",
			zap.String("username", username),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("bar api error: status=%d", resp.StatusCode)
	}

	var entries []barEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal bar response: %w", err)
	}

	bottles := make([]domain.OwnedBottle, 0, len(entries))
	for _, e := range entries {
		bottles = append(bottles, e.Product)
	}
	return bottles, nil
}
