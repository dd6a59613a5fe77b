package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// store package exposed singleton
	singleton *renderStore
)

// Render is an encoded figure kept in memory until deleted
type Render struct {
	Kind        string
	Format      string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

type renderStore struct {
	sync.Mutex
	index map[string]Render // index by random id
}

func init() {
	singleton = newRenderStore()
}

func newRenderStore() *renderStore {
	return &renderStore{
		sync.Mutex{},
		make(map[string]Render),
	}
}

func Put(r Render) string {
	singleton.Lock()
	defer singleton.Unlock()

	id := uuid.NewString()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	singleton.index[id] = r
	return id
}

func Get(id string) (r Render, ok bool) {
	singleton.Lock()
	defer singleton.Unlock()

	r, ok = singleton.index[id]
	return
}

func Delete(id string) (ok bool) {
	singleton.Lock()
	defer singleton.Unlock()

	_, ok = singleton.index[id]
	delete(singleton.index, id)
	return
}

func Len() int {
	singleton.Lock()
	defer singleton.Unlock()

	return len(singleton.index)
}

// Prune deletes renders older than maxAge and returns how many were dropped
func Prune(maxAge time.Duration) (count int) {
	singleton.Lock()
	defer singleton.Unlock()

	for id, r := range singleton.index {
		if time.Since(r.CreatedAt) > maxAge {
			delete(singleton.index, id)
			count++
		}
	}
	return
}
