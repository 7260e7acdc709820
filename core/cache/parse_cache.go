package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/wakabaloola/visualise-code-structure/core/logger"
	"github.com/wakabaloola/visualise-code-structure/core/models"
)

type ParseCache struct {
	entries map[string]*models.CacheEntry
	config  *CacheConfig
	metrics *CacheMetrics
	mutex   sync.RWMutex
}

var (
	globalCache *ParseCache
	cacheOnce   sync.Once
)

func GetCache() *ParseCache {
	cacheOnce.Do(func() {
		globalCache = NewParseCache(DefaultCacheConfig())
	})
	return globalCache
}

func NewParseCache(config *CacheConfig) *ParseCache {
	pc := &ParseCache{
		entries: make(map[string]*models.CacheEntry),
		config:  config,
		metrics: &CacheMetrics{},
		mutex:   sync.RWMutex{},
	}

	logger.Debug("Created new parse cache with config: MaxEntries=%d, TTL=%v",
		config.MaxEntries, config.DefaultTTL)

	return pc
}

// ValidateAndGet returns the cached outline for filePath if the file is
// unchanged on disk (mtime, falling back to a content hash) and the entry
// has not expired.
func (pc *ParseCache) ValidateAndGet(filePath string) (*models.FileStructure, bool) {
	pc.mutex.RLock()
	entry, exists := pc.entries[filePath]
	pc.mutex.RUnlock()

	if !exists {
		pc.incrementMisses()
		return nil, false
	}

	valid, err := entry.IsValid()
	if err != nil {
		logger.Debug("Cache validation error for %s: %v", filePath, err)
		pc.InvalidateFile(filePath)
		pc.incrementMisses()
		return nil, false
	}

	if !valid {
		logger.Debug("Cache miss for %s - file modified", filePath)
		pc.InvalidateFile(filePath)
		pc.incrementMisses()
		return nil, false
	}

	if pc.isExpired(entry) {
		logger.Debug("Cache miss for %s - entry expired", filePath)
		pc.InvalidateFile(filePath)
		pc.incrementMisses()
		return nil, false
	}

	pc.incrementHits()
	return entry.Structure, true
}

func (pc *ParseCache) Set(filePath string, structure *models.FileStructure) error {
	entry, err := models.NewCacheEntry(filePath, structure)
	if err != nil {
		return fmt.Errorf("failed to create cache entry: %w", err)
	}

	pc.mutex.Lock()
	defer pc.mutex.Unlock()

	if len(pc.entries) >= pc.config.MaxEntries {
		logger.Debug("Cache full, evicting oldest entry")
		pc.evictOldest()
	}

	pc.entries[filePath] = entry
	return nil
}

func (pc *ParseCache) InvalidateFile(filePath string) {
	pc.mutex.Lock()
	defer pc.mutex.Unlock()

	if _, exists := pc.entries[filePath]; exists {
		delete(pc.entries, filePath)
		pc.metrics.Invalidations++
		logger.Debug("Invalidated cache entry for %s", filePath)
	}
}

func (pc *ParseCache) Clear() {
	pc.mutex.Lock()
	defer pc.mutex.Unlock()

	entriesCount := len(pc.entries)
	pc.entries = make(map[string]*models.CacheEntry)
	pc.metrics.Invalidations += int64(entriesCount)
	logger.Debug("Cleared parse cache, invalidated %d entries", entriesCount)
}

func (pc *ParseCache) GetMetrics() *CacheMetrics {
	pc.mutex.RLock()
	defer pc.mutex.RUnlock()

	metrics := *pc.metrics
	metrics.TotalEntries = len(pc.entries)
	metrics.CalculateHitRate()
	return &metrics
}

func (pc *ParseCache) LogStats() {
	metrics := pc.GetMetrics()
	logger.Debug("Cache stats: Hits=%d, Misses=%d, Hit Rate=%.1f%%, Total Entries=%d, Invalidations=%d",
		metrics.Hits, metrics.Misses, metrics.HitRate, metrics.TotalEntries, metrics.Invalidations)
}

func (pc *ParseCache) isExpired(entry *models.CacheEntry) bool {
	return time.Since(entry.CreatedAt) > pc.config.DefaultTTL
}

func (pc *ParseCache) evictOldest() {
	var oldestPath string
	var oldestTime time.Time

	for path, entry := range pc.entries {
		if oldestPath == "" || entry.CreatedAt.Before(oldestTime) {
			oldestPath = path
			oldestTime = entry.CreatedAt
		}
	}

	if oldestPath != "" {
		delete(pc.entries, oldestPath)
		pc.metrics.Invalidations++
	}
}

func (pc *ParseCache) incrementHits() {
	pc.mutex.Lock()
	defer pc.mutex.Unlock()
	pc.metrics.Hits++
}

func (pc *ParseCache) incrementMisses() {
	pc.mutex.Lock()
	defer pc.mutex.Unlock()
	pc.metrics.Misses++
}
