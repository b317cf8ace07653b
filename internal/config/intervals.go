package config

import "time"

// Worker intervals
const (
	// CachePurgeInterval defines how often expired entries are dropped from the memory cache
	CachePurgeInterval = 5 * time.Minute

	// StoreTimeout bounds a single Redis or PostgreSQL call
	StoreTimeout = 5 * time.Second
)
