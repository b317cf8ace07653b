package worker

import (
	"context"
	"log"

	"polylinegpx/internal/config"
	"polylinegpx/internal/service/cache"
)

// StartAllWorkers initializes and starts all background workers; they stop when ctx is done
func StartAllWorkers(ctx context.Context, c cache.Cache) {
	log.Println("Starting all workers...")

	// Redis expires keys itself
	if mc, ok := c.(*cache.MemoryCache); ok {
		StartCachePurgeWorker(ctx, mc, config.CachePurgeInterval)
	}

	log.Println("All workers started")
}
