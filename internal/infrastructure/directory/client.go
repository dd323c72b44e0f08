package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"repairshop/internal/config"
	"repairshop/internal/domain/forms"
)

const defaultPageLimit = 100

// Client reads the technician roster from the identity provider's
// user-listing API. A single page, capped at the configured limit, is
// fetched per call; there is no pagination beyond that.
type Client struct {
	baseURL    string
	apiKey     string
	pageLimit  int
	httpClient *http.Client
	logger     *slog.Logger
}

var _ forms.TechDirectory = (*Client)(nil)

func NewClient(cfg config.DirectoryConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	limit := cfg.PageLimit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		pageLimit:  limit,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With(slog.String("component", "directoryClient")),
	}
}

type emailAddress struct {
	EmailAddress string `json:"email_address"`
}

type userRecord struct {
	ID             string         `json:"id"`
	EmailAddresses []emailAddress `json:"email_addresses"`
}

// ListTechs fetches up to pageLimit users and keeps the ones with a usable
// primary email address. Entries without one are dropped.
func (c *Client) ListTechs(ctx context.Context) ([]forms.TechAccount, error) {
	endpoint := fmt.Sprintf("%s/v1/users?%s", c.baseURL,
		url.Values{"limit": []string{strconv.Itoa(c.pageLimit)}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Directory request failed", slog.Any("error", err))
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "Directory returned non-OK status", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var users []userRecord
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	techs := make([]forms.TechAccount, 0, len(users))
	for _, u := range users {
		if len(u.EmailAddresses) == 0 || u.EmailAddresses[0].EmailAddress == "" {
			continue
		}
		techs = append(techs, forms.TechAccount{ID: u.ID, Email: u.EmailAddresses[0].EmailAddress})
	}

	c.logger.DebugContext(ctx, "Fetched technician roster",
		slog.Int("fetched", len(users)), slog.Int("usable", len(techs)))
	return techs, nil
}
