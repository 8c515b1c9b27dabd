package aggregator

import (
	"context"
	"log"
	"sync"
	"time"

	"faregrid/internal/session"
	"faregrid/internal/skyscanner"
)

type Config struct {
	// Rounds is the number of times every driver is advanced. The first
	// round creates the sessions, later rounds poll them.
	Rounds int
	// RoundDelay is the wall-clock pause between rounds, giving the
	// provider time to converge before the next poll.
	RoundDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Rounds:     2,
		RoundDelay: 10 * time.Second,
	}
}

// Aggregator advances many search sessions concurrently in rounds and
// collects their snapshots. Sessions fail independently: an errored or
// failed session is logged and dropped, the rest continue.
type Aggregator struct {
	drivers []*session.Driver
	config  Config
}

func New(drivers []*session.Driver, config Config) *Aggregator {
	if config.Rounds <= 0 {
		config.Rounds = DefaultConfig().Rounds
	}
	return &Aggregator{
		drivers: drivers,
		config:  config,
	}
}

// Run executes the configured rounds and returns every usable snapshot in
// arrival order. Ordering across sessions is not defined; callers are
// expected to re-sort the formatted output.
func (a *Aggregator) Run(ctx context.Context) []*skyscanner.SearchResponse {
	var snapshots []*skyscanner.SearchResponse
	for round := 0; round < a.config.Rounds; round++ {
		if round > 0 {
			time.Sleep(a.config.RoundDelay)
		}
		snapshots = append(snapshots, a.advanceAll(ctx, round)...)
	}
	return snapshots
}

func (a *Aggregator) advanceAll(ctx context.Context, round int) []*skyscanner.SearchResponse {
	type advanceResult struct {
		index    int
		snapshot *skyscanner.SearchResponse
		err      error
	}

	resultCh := make(chan advanceResult, len(a.drivers))
	var wg sync.WaitGroup

	for i, d := range a.drivers {
		wg.Add(1)
		go func(i int, d *session.Driver) {
			defer wg.Done()
			snapshot, err := d.Advance(ctx)
			resultCh <- advanceResult{index: i, snapshot: snapshot, err: err}
		}(i, d)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	snapshots := make([]*skyscanner.SearchResponse, 0, len(a.drivers))
	for r := range resultCh {
		if r.err != nil {
			log.Printf("session %d round %d failed: %v", r.index, round+1, r.err)
			continue
		}
		if r.snapshot == nil {
			continue
		}
		if r.snapshot.Status == skyscanner.ResultStatusFailed {
			log.Printf("session %d round %d: provider reported failure", r.index, round+1)
			continue
		}
		snapshots = append(snapshots, r.snapshot)
	}
	return snapshots
}
