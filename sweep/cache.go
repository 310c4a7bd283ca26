package sweep

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// A Cache stores sweep results on disk, keyed by a hash of their inputs.
type Cache struct {
	Dir string
}

// DefaultCacheDir is the cache directory used by the command line tool.
const DefaultCacheDir = ".cache"

type CacheKey struct {
	dir, key string
}

// Key returns the cache key for the given inputs. The inputs must be
// encodable with encoding/gob.
func (c Cache) Key(args ...any) (*CacheKey, error) {
	h := sha256.New()

	enc := gob.NewEncoder(h)
	for _, arg := range args {
		if err := enc.Encode(arg); err != nil {
			return nil, fmt.Errorf("encoding cache key: %w", err)
		}
	}

	return &CacheKey{c.Dir, hex.EncodeToString(h.Sum(nil))}, nil
}

func (ck *CacheKey) path() string {
	return filepath.Join(ck.dir, ck.key)
}

// Load decodes the cached value into out and reports whether there was
// one.
func (ck *CacheKey) Load(out any) bool {
	f, err := os.Open(ck.path())
	if err != nil {
		return false
	}
	defer f.Close()
	dec := gob.NewDecoder(f)
	if dec.Decode(out) != nil {
		return false
	}
	return true
}

// Save stores val in the cache. Failures are logged, since the cache is
// only an optimization.
func (ck *CacheKey) Save(val any) {
	if err := os.MkdirAll(ck.dir, 0777); err != nil {
		log.Printf("error creating %s: %s", ck.dir, err)
		return
	}
	f, err := os.Create(ck.path())
	if err != nil {
		log.Printf("error saving to cache: %s", err)
		return
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	if err := enc.Encode(val); err != nil {
		log.Printf("error encoding cache value: %s", err)
		os.Remove(ck.path())
	}
}
