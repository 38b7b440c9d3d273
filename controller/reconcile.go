package controller

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// RebuildPartnerships recomputes the partnership aggregates from the game
// log and replaces the stored rows with the result. Stored partnerships are
// an optimization, not a source of truth; after a rebuild they are exactly
// what replaying every game produces.
func (c *controller) RebuildPartnerships(ctx context.Context) error {
	idx, err := c.statsSnapshot(ctx)
	if err != nil {
		return err
	}

	partnerships := idx.allPartnerships()
	if err := c.db.ReplacePartnerships(ctx, partnerships); err != nil {
		return err
	}

	c.log.Infow("rebuilt partnerships from game log", "partnerships", len(partnerships))
	return nil
}

// RunPeriodicPartnershipRebuild reconciles the stored partnership aggregates
// against the game log on a schedule until shutdown is closed.
func (c *controller) RunPeriodicPartnershipRebuild(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	sched, err := gocron.NewScheduler()
	if err != nil {
		c.log.Errorw("error creating reconciliation scheduler", "error", err)
		return
	}

	_, err = sched.NewJob(
		gocron.DurationJob(frequency),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.RebuildPartnerships(ctx); err != nil {
				c.log.Errorw("error rebuilding partnerships", "error", err)
			}
		}),
	)
	if err != nil {
		c.log.Errorw("error scheduling partnership rebuild", "error", err)
		return
	}

	sched.Start()
	<-shutdown

	if err := sched.Shutdown(); err != nil {
		c.log.Errorw("error shutting down reconciliation scheduler", "error", err)
	}
}
