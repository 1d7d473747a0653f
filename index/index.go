// Package index provides a string-document front end over the suffix tree:
// it assigns ids, keeps the inserted documents, and caches unbounded search
// results.
package index

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"

	"github.com/sxweetlollipop2912/suffixtree"
)

type cached struct {
	gen uint64
	ids []int
}

// Index maps documents to auto-assigned ids and answers substring queries.
// Writes are serialised; reads may run concurrently between writes.
type Index struct {
	mu    sync.RWMutex
	tree  *suffixtree.Tree[byte, int]
	docs  *store
	gen   uint64 // bumped on every Add; stale cache entries compare unequal
	cache *lru.Cache[string, cached]
}

// New creates an empty index. A nil opt uses DefaultOption.
func New(opt *Option) *Index {
	if opt == nil {
		opt = DefaultOption
	}
	size := opt.CacheSize
	if size <= 0 {
		size = DefaultOption.CacheSize
	}
	cache, err := lru.New[string, cached](size)
	if err != nil {
		panic(err)
	}
	return &Index{
		tree:  suffixtree.New[byte, int](),
		docs:  &store{},
		cache: cache,
	}
}

// Add stores doc, assigns it the next id and indexes it. The returned ids
// increase from 0, so the tree's insert-order precondition cannot fire.
func (x *Index) Add(doc string) int {
	x.mu.Lock()
	defer x.mu.Unlock()
	id := x.docs.put(doc)
	if err := x.tree.Put([]byte(doc), id); err != nil {
		panic(err)
	}
	x.gen++
	log.WithFields(log.Fields{"id": id, "len": len(doc)}).Debug("indexed document")
	return id
}

// Search returns the ids of every document containing q, sorted ascending.
// Unbounded results are served from an LRU cache until the next Add.
func (x *Index) Search(q string) []int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if v, ok := x.cache.Get(q); ok && v.gen == x.gen {
		log.WithFields(log.Fields{"q": q, "hits": len(v.ids)}).Debug("search cache hit")
		return v.ids
	}
	ids := x.tree.Search([]byte(q))
	x.cache.Add(q, cached{gen: x.gen, ids: ids})
	return ids
}

// SearchN is Search bounded to at most max ids; max < 0 means unbounded.
// Bounded results are not cached.
func (x *Index) SearchN(q string, max int) []int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.tree.SearchN([]byte(q), max)
}

// SearchWithCount returns the total number of matching documents and a
// sample of at most max ids. It fails with suffixtree.ErrCountNotComputed
// unless Count has run since the last Add.
func (x *Index) SearchWithCount(q string, max int) (suffixtree.Result[int], error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.tree.SearchWithCount([]byte(q), max)
}

// Count refreshes the tree's cached result counts and returns the number
// of indexed documents reachable from the root.
func (x *Index) Count() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.tree.ComputeCount()
}

// Doc returns the document stored under id.
func (x *Index) Doc(id int) (string, bool) {
	return x.docs.get(id)
}

// Len returns the number of indexed documents.
func (x *Index) Len() int {
	return x.docs.len()
}
