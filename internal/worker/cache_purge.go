package worker

import (
	"context"
	"log"
	"time"
)

// Purger drops expired entries and reports how many were removed
type Purger interface {
	Purge() int
}

// StartCachePurgeWorker periodically purges expired cache entries
func StartCachePurgeWorker(ctx context.Context, p Purger, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := p.Purge(); n > 0 {
					log.Printf("Cache purge worker: removed %d expired entries", n)
				}
			}
		}
	}()

	log.Println("Cache purge worker started with interval:", interval)
	return done
}
