// Package catalog holds read-mostly display catalogs (airlines, cities,
// stopovers) behind the lookup capability the resolver needs. Entries
// are replaced wholesale when the backing lists refresh; reads may run
// concurrently with a replace.
package catalog

import (
	"strings"
	"sync"

	"github.com/safarpoint/pricing/internal/resolve"
)

type Entry struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Catalog struct {
	mu     sync.RWMutex
	byID   map[int64]Entry
	byCode map[string]Entry
	byName map[string]Entry
}

func New() *Catalog {
	//nolint:exhaustruct
	return &Catalog{
		byID:   make(map[int64]Entry),
		byCode: make(map[string]Entry),
		byName: make(map[string]Entry),
	}
}

// Seed adds entries to the catalog. Later entries win on key clashes.
func (c *Catalog) Seed(entries []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range entries {
		c.byID[entry.ID] = entry

		if code := strings.ToLower(strings.TrimSpace(entry.Code)); code != "" {
			c.byCode[code] = entry
		}

		if name := strings.ToLower(strings.TrimSpace(entry.Name)); name != "" {
			c.byName[name] = entry
		}
	}
}

// Replace swaps the whole catalog for entries.
func (c *Catalog) Replace(entries []Entry) {
	c.mu.Lock()

	c.byID = make(map[int64]Entry, len(entries))
	c.byCode = make(map[string]Entry, len(entries))
	c.byName = make(map[string]Entry, len(entries))

	c.mu.Unlock()

	c.Seed(entries)
}

func (c *Catalog) ByID(id int64) (resolve.DisplayInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.byID[id]

	return display(entry), ok
}

func (c *Catalog) ByCode(code string) (resolve.DisplayInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.byCode[strings.ToLower(strings.TrimSpace(code))]

	return display(entry), ok
}

func (c *Catalog) ByName(name string) (resolve.DisplayInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]

	return display(entry), ok
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byID)
}

func display(entry Entry) resolve.DisplayInfo {
	return resolve.DisplayInfo{ID: entry.ID, Code: entry.Code, Name: entry.Name}
}
