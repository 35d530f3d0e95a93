package sprite

import (
	"fmt"
	"sync"

	"github.com/PhillipC05/tpt-asset-forge/forge/attr"
)

// Failure records one skipped batch item.
type Failure struct {
	Index int
	Err   error
}

// Batch is the aggregate of a GenerateMany call: successful results in input
// order, with failed items excluded and reported separately.
type Batch struct {
	Results  []*Result
	Failures []Failure
}

// FailedCount reports how many items were skipped.
func (b *Batch) FailedCount() int { return len(b.Failures) }

type slot struct {
	res *Result
	err error
}

// GenerateMany generates one sprite per config, fanning the work out over
// workers goroutines. Every unit touches only its own canvas, so there is no
// shared mutable state; a failing config is recorded and skipped without
// aborting its siblings.
func GenerateMany(f Family, cfgs []attr.Config, workers int) *Batch {
	if workers < 1 {
		workers = 1
	}
	if workers > len(cfgs) {
		workers = len(cfgs)
	}

	slots := make([]slot, len(cfgs))

	var wg sync.WaitGroup
	jobs := make(chan int)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				slots[idx] = generateSlot(f, cfgs[idx])
			}
		}()
	}
	for idx := range cfgs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	batch := &Batch{}
	for idx, s := range slots {
		if s.err != nil {
			batch.Failures = append(batch.Failures, Failure{Index: idx, Err: s.err})
			continue
		}
		batch.Results = append(batch.Results, s.res)
	}
	return batch
}

// generateSlot runs one unit and absorbs any panic it raises, so a bad unit
// becomes a recorded failure rather than taking down the whole batch.
func generateSlot(f Family, cfg attr.Config) (s slot) {
	defer func() {
		if r := recover(); r != nil {
			s = slot{err: fmt.Errorf("generate %s: panic: %v", f, r)}
		}
	}()
	res, err := Generate(f, cfg)
	return slot{res: res, err: err}
}

// Repeat builds n copies of cfg with consecutive derived seeds, for batches
// of visually distinct variants of one configuration.
func Repeat(cfg attr.Config, n int) []attr.Config {
	out := make([]attr.Config, n)
	for i := range out {
		out[i] = cfg
		if cfg.Seed != 0 {
			out[i].Seed = cfg.Seed + int64(i)
		} else {
			out[i].Seed = int64(i + 1)
		}
	}
	return out
}
