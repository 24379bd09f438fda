package feed

import (
	"math/rand"

	"github.com/lixenwraith/marquee/log"
)

// Orderer arranges a feed for display
// Outside dev mode the shuffled order is cached per fingerprint so restarts keep the same sequence
type Orderer struct {
	CachePath string // empty disables caching
	Dev       bool   // always reshuffle, never touch the cache
	Rand      *rand.Rand
	Log       *log.Logger
}

// Arrange returns the feed in display order, doubled
func (o *Orderer) Arrange(data []Treatment) []Treatment {
	if len(data) == 0 {
		return nil
	}
	if o.Dev || o.CachePath == "" {
		return Double(o.shuffle(data))
	}

	fingerprint := Fingerprint(data)
	cache, err := LoadCache(o.CachePath)
	if err != nil {
		o.Log.Errorf("order cache unreadable, reshuffling: %v", err)
	} else if cache.Hash == fingerprint && len(cache.Order) > 0 {
		if sorted := applyOrder(data, cache.Order); len(sorted) > 0 {
			o.Log.Debugf("reusing cached order for %s", fingerprint)
			return Double(sorted)
		}
	}

	shuffled := o.shuffle(data)
	order := make([]string, len(shuffled))
	for i, t := range shuffled {
		order[i] = t.URL
	}
	if err := SaveCache(o.CachePath, OrderCache{Hash: fingerprint, Order: order}); err != nil {
		o.Log.Errorf("order cache not saved: %v", err)
	}
	return Double(shuffled)
}

// applyOrder maps cached URLs back onto the feed, skipping URLs no longer present
func applyOrder(data []Treatment, order []string) []Treatment {
	byURL := make(map[string]Treatment, len(data))
	for _, t := range data {
		if _, seen := byURL[t.URL]; !seen {
			byURL[t.URL] = t
		}
	}
	out := make([]Treatment, 0, len(order))
	for _, url := range order {
		if t, ok := byURL[url]; ok {
			out = append(out, t)
		}
	}
	return out
}

// shuffle returns a Fisher-Yates shuffled copy
func (o *Orderer) shuffle(data []Treatment) []Treatment {
	out := make([]Treatment, len(data))
	copy(out, data)

	intn := rand.Intn
	if o.Rand != nil {
		intn = o.Rand.Intn
	}
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
