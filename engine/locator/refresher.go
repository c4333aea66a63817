package locator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sethvargo/go-retry"

	"github.com/indiepages/indiepages/engine/shop"
	"github.com/indiepages/indiepages/pkg/logger"
)

// RefresherConfig controls the rebuild schedule and fetch retry policy.
type RefresherConfig struct {
	CronSpec      string
	RetryAttempts uint64
	RetryBase     time.Duration
	// OnRebuild, when set, observes every successful publish with the slug
	// count of the new snapshot. Scheduled and manual refreshes both report.
	OnRebuild func(slugs int)
}

// Refresher rebuilds the canonical index from the shop store on a schedule.
// Rebuilds are wholesale: a new snapshot is built off the request path and
// published with a single atomic swap.
type Refresher struct {
	store  shop.Store
	holder *Holder
	cfg    RefresherConfig
	cron   *cron.Cron
	wg     sync.WaitGroup
}

// NewRefresher wires a store and holder to a rebuild schedule.
func NewRefresher(store shop.Store, holder *Holder, cfg RefresherConfig) *Refresher {
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = time.Second
	}
	return &Refresher{store: store, holder: holder, cfg: cfg}
}

// Refresh fetches the current shop snapshot and republishes the index.
// Store failures are retried with exponential backoff; on final failure the
// previous snapshot stays published.
func (r *Refresher) Refresh(ctx context.Context) error {
	var shops []shop.Shop
	backoff := retry.WithMaxRetries(r.cfg.RetryAttempts, retry.NewExponential(r.cfg.RetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		list, listErr := r.store.ListShops(ctx)
		if listErr != nil {
			return retry.RetryableError(listErr)
		}
		shops = list
		return nil
	})
	if err != nil {
		return fmt.Errorf("fetching shop snapshot: %w", err)
	}
	idx := r.holder.Rebuild(shops)
	if r.cfg.OnRebuild != nil {
		r.cfg.OnRebuild(idx.Size())
	}
	logger.FromContext(ctx).Info("Canonical index rebuilt", "shops", len(shops), "slugs", idx.Size())
	return nil
}

// Start performs an eager initial build and schedules periodic rebuilds.
// The initial build runs in the background so server startup never blocks on
// the store; requests arriving before it completes see an empty index.
func (r *Refresher) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.Refresh(ctx); err != nil {
			log.Error("Initial index build failed", "error", err)
		}
	}()
	c := cron.New()
	_, err := c.AddFunc(r.cfg.CronSpec, func() {
		if err := r.Refresh(ctx); err != nil {
			log.Error("Scheduled index rebuild failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", r.cfg.CronSpec, err)
	}
	c.Start()
	r.cron = c
	return nil
}

// Stop halts the schedule and waits for in-flight rebuilds to finish,
// including the eager build launched by Start.
func (r *Refresher) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
	r.wg.Wait()
}
