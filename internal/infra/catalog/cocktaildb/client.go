// Package cocktaildb implements the external drink catalog contract against
// the TheCocktailDB JSON API.
package cocktaildb

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"poison/config"
	"poison/internal/domain/entity"
	"poison/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay  = 200 * time.Millisecond
	retryMaxRetries = 2
)

// Client is a read-only TheCocktailDB API client. Lookup failures and
// malformed payloads surface as service.ErrCatalogUnavailable; the use case
// layer downgrades that to an empty result.
type Client struct {
	baseURL string
	httpDo  *http.Client
	logger  *slog.Logger
}

// New is the constructor for Client.
func New(cfg *config.Config, logger *slog.Logger) service.CatalogService {
	return &Client{
		baseURL: cfg.Catalog.BaseURL,
		httpDo:  &http.Client{Timeout: cfg.Catalog.Timeout},
		logger:  logger,
	}
}

// drinksResponse mirrors the API payload for drink lookups. The API returns
// {"drinks": null} rather than an empty array when nothing matches.
type drinksResponse struct {
	Drinks []drinkRecord `json:"drinks"`
}

type drinkRecord struct {
	ID    string `json:"idDrink"`
	Name  string `json:"strDrink"`
	Thumb string `json:"strDrinkThumb"`
}

// ingredientsResponse mirrors the API payload for ingredient lookups.
type ingredientsResponse struct {
	Ingredients []ingredientRecord `json:"ingredients"`
}

type ingredientRecord struct {
	ID   string `json:"idIngredient"`
	Name string `json:"strIngredient"`
}

// SearchByName returns drinks whose name matches the query.
func (c *Client) SearchByName(ctx context.Context, name string) ([]*entity.Drink, error) {
	return c.fetchDrinks(ctx, "/search.php", url.Values{"s": {name}})
}

// SearchByFirstLetter returns drinks starting with the given letter.
func (c *Client) SearchByFirstLetter(ctx context.Context, letter string) ([]*entity.Drink, error) {
	return c.fetchDrinks(ctx, "/search.php", url.Values{"f": {letter}})
}

// FilterByAlcoholicType returns drinks of the given classification.
func (c *Client) FilterByAlcoholicType(ctx context.Context, kind entity.AlcoholicType) ([]*entity.Drink, error) {
	return c.fetchDrinks(ctx, "/filter.php", url.Values{"a": {string(kind)}})
}

// SearchByIngredient returns ingredient records matching the query. The API
// exposes ingredients on the same search endpoint under a different key.
func (c *Client) SearchByIngredient(ctx context.Context, name string) ([]*entity.Drink, error) {
	var payload ingredientsResponse
	if err := c.getJSON(ctx, "/search.php", url.Values{"i": {name}}, &payload); err != nil {
		return nil, err
	}

	items := make([]*entity.Drink, 0, len(payload.Ingredients))
	for _, rec := range payload.Ingredients {
		items = append(items, &entity.Drink{ID: rec.ID, Name: rec.Name})
	}

	return items, nil
}

// Random returns a single random drink, or nil when the catalog has none.
func (c *Client) Random(ctx context.Context) (*entity.Drink, error) {
	drinks, err := c.fetchDrinks(ctx, "/random.php", nil)
	if err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return nil, nil
	}

	return drinks[0], nil
}

func (c *Client) fetchDrinks(ctx context.Context, path string, query url.Values) ([]*entity.Drink, error) {
	var payload drinksResponse
	if err := c.getJSON(ctx, path, query, &payload); err != nil {
		return nil, err
	}

	drinks := make([]*entity.Drink, 0, len(payload.Drinks))
	for _, rec := range payload.Drinks {
		drinks = append(drinks, &entity.Drink{
			ID:        rec.ID,
			Name:      rec.Name,
			Thumbnail: rec.Thumb,
		})
	}

	return drinks, nil
}

// getJSON performs a GET with bounded exponential-backoff retries on network
// errors and 5xx responses.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return errors.Wrap(err, "failed to build catalog request")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpDo.Do(req)
		if err != nil {
			return retry.RetryableError(errors.Wrap(err, "catalog request failed"))
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(errors.Errorf("catalog returned status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("catalog returned status %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "failed to decode catalog payload")
		}

		return nil
	})
	if err != nil {
		c.logger.Warn("Catalog lookup failed", slog.String("endpoint", path), slog.Any("error", err))

		return errors.Wrap(service.ErrCatalogUnavailable, err.Error())
	}

	return nil
}
