package scrape

import (
	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/leblancfg/deprecations-rss/bloom"
)

// Detector partitions freshly scraped items into changed and unchanged
// against the previous run, so downstream analysis (LLM summaries) only
// touches items whose content actually moved. A bloom filter over the
// previous run's content hashes gives a fast definitely-new path; positive
// tests are confirmed against the exact map.
type Detector struct {
	seen *bloom.Filter
	prev map[string]deprecations.DeprecationItem // keyed by FeedID
}

// NewDetector builds a Detector from the previous run's items.
func NewDetector(previous []deprecations.DeprecationItem) *Detector {
	n := uint(len(previous))
	if n < 64 {
		n = 64
	}
	d := &Detector{
		seen: bloom.NewFilter(n, 0.01),
		prev: make(map[string]deprecations.DeprecationItem, len(previous)),
	}
	for _, item := range previous {
		if item.ContentHash == "" {
			item.ContentHash = item.Hash()
		}
		d.seen.Add(item.ContentHash)
		d.prev[item.FeedID()] = item
	}
	return d
}

// Partition splits scraped into changed and unchanged items. Observation
// timestamps carry across runs: unchanged items keep their FirstObserved
// and cached Summary; every item's LastObserved becomes now.
func (d *Detector) Partition(scraped []deprecations.DeprecationItem, now string) (changed, unchanged []deprecations.DeprecationItem) {
	for _, item := range scraped {
		hash := item.ContentHash
		if hash == "" {
			hash = item.Hash()
			item.ContentHash = hash
		}
		item.LastObserved = now

		previous, known := d.prev[item.FeedID()]
		if !d.seen.Test(hash) || !known || previous.ContentHash != hash {
			if known && previous.FirstObserved != "" {
				item.FirstObserved = previous.FirstObserved
			} else {
				item.FirstObserved = now
			}
			changed = append(changed, item)
			continue
		}

		item.FirstObserved = previous.FirstObserved
		if item.FirstObserved == "" {
			item.FirstObserved = now
		}
		if item.Summary == "" {
			item.Summary = previous.Summary
		}
		unchanged = append(unchanged, item)
	}
	return changed, unchanged
}
