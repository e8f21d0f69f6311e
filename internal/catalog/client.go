package catalog

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mealdeck/internal/model"
)

// DefaultBaseURL is the public TheMealDB v1 endpoint.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// DefaultSampleSize bounds the landing sample.
const DefaultSampleSize = 20

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	SampleSize int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client wraps the read-only recipe catalog API.
type Client struct {
	baseURL    string
	sampleSize int
	httpClient *http.Client
	log        *log.Logger
}

// NewClient creates a new catalog client.
func NewClient(opts Options, logger *log.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.SampleSize <= 0 {
		opts.SampleSize = DefaultSampleSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if logger == nil {
		logger = log.New()
		logger.SetOutput(io.Discard)
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		sampleSize: opts.SampleSize,
		httpClient: httpClient,
		log:        logger,
	}
}

// Query issues a single read against the catalog and normalizes the response.
// A nil collection with a nil error means the catalog reported no matches.
func (c *Client) Query(ctx context.Context, q Query) (Result, error) {
	entry := c.log.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"kind":       q.Kind.String(),
		"param":      q.Param,
	})

	endpoint, params, err := q.endpoint()
	if err != nil {
		entry.WithError(err).Warn("catalog query rejected")
		return Result{}, err
	}

	start := time.Now()
	env, status, err := c.get(ctx, endpoint, params)
	entry = entry.WithFields(log.Fields{"status": status, "elapsed": time.Since(start).String()})
	if err != nil {
		entry.WithError(err).Error("catalog request failed")
		return Result{}, err
	}

	var result Result
	switch q.Kind {
	case KindCategories:
		result.Categories = toCategories(env.Categories)
	case KindAreas:
		result.Areas = toAreas(env.Meals)
	case KindIngredients:
		result.Ingredients = toIngredients(env.Meals)
	case KindLookup:
		meals := toMeals(env.Meals)
		if len(meals) == 0 {
			err := fmt.Errorf("%w: id %s", ErrNotFound, q.Param)
			entry.WithError(err).Error("catalog lookup returned no record")
			return Result{}, err
		}
		result.Meals = meals[:1]
	case KindSample:
		result.Meals = toMeals(env.Meals)
		if len(result.Meals) > c.sampleSize {
			result.Meals = result.Meals[:c.sampleSize]
		}
	default:
		result.Meals = toMeals(env.Meals)
	}

	entry.WithField("empty", result.Empty()).Debug("catalog request completed")
	return result, nil
}

// Sample fetches the unfiltered landing sample.
func (c *Client) Sample(ctx context.Context) ([]model.Meal, error) {
	return c.meals(ctx, Query{Kind: KindSample})
}

// SearchByName fetches meals whose name contains term.
func (c *Client) SearchByName(ctx context.Context, term string) ([]model.Meal, error) {
	return c.meals(ctx, Query{Kind: KindSearchName, Param: term})
}

// SearchByLetter fetches meals whose name starts with letter.
func (c *Client) SearchByLetter(ctx context.Context, letter string) ([]model.Meal, error) {
	return c.meals(ctx, Query{Kind: KindSearchLetter, Param: letter})
}

// FilterByCategory fetches meals in the named category.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]model.Meal, error) {
	return c.meals(ctx, Query{Kind: KindFilterCategory, Param: category})
}

// FilterByArea fetches meals from the named area.
func (c *Client) FilterByArea(ctx context.Context, area string) ([]model.Meal, error) {
	return c.meals(ctx, Query{Kind: KindFilterArea, Param: area})
}

// FilterByIngredient fetches meals using the named main ingredient.
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]model.Meal, error) {
	return c.meals(ctx, Query{Kind: KindFilterIngredient, Param: ingredient})
}

// Categories fetches every category.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	res, err := c.Query(ctx, Query{Kind: KindCategories})
	return res.Categories, err
}

// Areas fetches every area.
func (c *Client) Areas(ctx context.Context) ([]model.Area, error) {
	res, err := c.Query(ctx, Query{Kind: KindAreas})
	return res.Areas, err
}

// Ingredients fetches every ingredient.
func (c *Client) Ingredients(ctx context.Context) ([]model.Ingredient, error) {
	res, err := c.Query(ctx, Query{Kind: KindIngredients})
	return res.Ingredients, err
}

// Lookup fetches one full meal record by id.
func (c *Client) Lookup(ctx context.Context, id string) (*model.Meal, error) {
	res, err := c.Query(ctx, Query{Kind: KindLookup, Param: id})
	if err != nil {
		return nil, err
	}
	return &res.Meals[0], nil
}

// Image fetches and decodes a JPEG or PNG thumbnail.
func (c *Client) Image(ctx context.Context, rawURL string) (image.Image, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: thumbnail url %q", ErrInvalidQuery, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", rawURL).Error("thumbnail request failed")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.WithFields(log.Fields{"url": rawURL, "status": resp.StatusCode}).Error("thumbnail request failed")
		return nil, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		c.log.WithError(err).WithField("url", rawURL).Error("thumbnail decode failed")
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

func (c *Client) meals(ctx context.Context, q Query) ([]model.Meal, error) {
	res, err := c.Query(ctx, q)
	return res.Meals, err
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (envelope, int, error) {
	reqURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return envelope{}, resp.StatusCode, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	var env envelope
	if err := sonic.ConfigStd.NewDecoder(resp.Body).Decode(&env); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return envelope{}, resp.StatusCode, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return envelope{}, resp.StatusCode, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return env, resp.StatusCode, nil
}
