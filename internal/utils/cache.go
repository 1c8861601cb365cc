package utils

import (
	"os"
	"sync"
	"time"
)

// fileStamp identifies one version of a file on disk
type fileStamp struct {
	modTime time.Time
	size    int64
}

// cacheItem pairs a value with the file version it was derived from
type cacheItem[V any] struct {
	value V
	stamp fileStamp
}

// FileCache holds values derived from files and drops them once the file changes on disk
type FileCache[V any] struct {
	items map[string]*cacheItem[V]
	mutex sync.RWMutex
}

// NewFileCache creates an empty cache
func NewFileCache[V any]() *FileCache[V] {
	return &FileCache[V]{
		items: make(map[string]*cacheItem[V]),
	}
}

// Get returns the value cached for path while the file is unchanged. A changed or
// unreadable file evicts the entry.
func (c *FileCache[V]) Get(path string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[path]
	c.mutex.RUnlock()

	var zero V
	if !exists {
		return zero, false
	}

	if stamp, err := stampOf(path); err == nil && stamp.modTime.Equal(item.stamp.modTime) && stamp.size == item.stamp.size {
		return item.value, true
	}

	c.Delete(path)
	return zero, false
}

// Set caches value for the current version of path
func (c *FileCache[V]) Set(path string, value V) error {
	stamp, err := stampOf(path)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[path] = &cacheItem[V]{value: value, stamp: stamp}
	return nil
}

// Delete removes the entry for path
func (c *FileCache[V]) Delete(path string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, path)
}

// Size returns the number of entries
func (c *FileCache[V]) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

func stampOf(path string) (fileStamp, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{modTime: stat.ModTime(), size: stat.Size()}, nil
}
