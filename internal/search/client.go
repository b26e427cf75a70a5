// Package search is the debounced query-to-results pipeline. It keeps no
// state between queries beyond the latest result set.
package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/savorworks/storefront-client/internal/models"
	"github.com/savorworks/storefront-client/pkg/storeapi"
)

// DefaultDebounce matches the storefront's 300ms quiet period.
const DefaultDebounce = 300 * time.Millisecond

// Client issues at most one request per quiet period of input. A newer
// keystroke cancels the pending timer for the older one; a blank query never
// reaches the network and clears results immediately. A failed request also
// clears results — there is no separate search-error state.
type Client struct {
	api       storeapi.Client
	debounce  time.Duration
	logger    *slog.Logger
	onResults func([]models.FoodItem)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	results []models.FoodItem

	ctx    context.Context
	cancel context.CancelFunc
}

// NewClient builds a search client. onResults, when non-nil, is invoked on
// the debounce goroutine after every results change.
func NewClient(api storeapi.Client, debounce time.Duration, logger *slog.Logger, onResults func([]models.FoodItem)) *Client {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		api:       api,
		debounce:  debounce,
		logger:    logger,
		onResults: onResults,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Query registers a keystroke. Blank input cancels any pending request and
// clears results without touching the network; anything else (re)arms the
// debounce timer with the literal query string.
func (c *Client) Query(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.gen++

	if strings.TrimSpace(query) == "" {
		c.results = nil
		c.notify(nil)

		return
	}

	gen := c.gen
	c.timer = time.AfterFunc(c.debounce, func() {
		c.run(gen, query)
	})
}

func (c *Client) run(gen uint64, query string) {
	items, err := c.api.Search(c.ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer keystroke superseded this request while it was in flight.
	if gen != c.gen {
		return
	}

	if err != nil {
		c.logger.Debug("search failed", slog.String("query", query), slog.String("error", err.Error()))
		c.results = nil
		c.notify(nil)

		return
	}

	c.results = items
	c.notify(items)
}

// notify runs with the lock held; callbacks must not call back into Query.
func (c *Client) notify(items []models.FoodItem) {
	if c.onResults != nil {
		c.onResults(items)
	}
}

// Results returns a copy of the latest result set.
func (c *Client) Results() []models.FoodItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	results := make([]models.FoodItem, len(c.results))
	copy(results, c.results)

	return results
}

// Close cancels any pending timer and in-flight request.
func (c *Client) Close() {
	c.mu.Lock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.gen++
	c.mu.Unlock()

	c.cancel()
}
