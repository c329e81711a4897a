package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collection names persisted under the data directory, one JSON array per file.
const (
	UsersCollection    = "users"
	NotesCollection    = "notes"
	ScheduleCollection = "schedule"
	SessionsCollection = "sessions"
)

var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of JSON store operations",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"operation", "collection"},
)

// Store persists whole-collection JSON documents. Every write replaces the
// full file; writers hold the collection lock across read-modify-write so two
// requests cannot interleave partial updates within the process.
type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}

	// Seed empty collection files so first reads see a valid document.
	for _, name := range []string{UsersCollection, NotesCollection, ScheduleCollection, SessionsCollection} {
		path := s.path(name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
				return nil, fmt.Errorf("seed collection %s: %w", name, err)
			}
		}
	}

	return s, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// readCollection decodes a collection file. Missing, empty, and corrupt files
// all load as an empty collection; corruption is logged but never surfaced.
func readCollection[T any](s *Store, name string) []T {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("store: corrupt %s collection, treating as empty: %v", name, err)
		return nil
	}
	return records
}

// writeCollection replaces the collection file in one step via temp file and
// rename, so a crash mid-write never leaves a partial document behind.
func writeCollection[T any](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s collection: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s collection: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s collection: %w", name, err)
	}
	return nil
}

// LoadCollection returns the records of a collection in stored order.
func LoadCollection[T any](s *Store, name string) ([]T, error) {
	timer := prometheus.NewTimer(StoreOperationDuration.WithLabelValues("load", name))
	defer timer.ObserveDuration()

	lock := s.lock(name)
	lock.Lock()
	defer lock.Unlock()

	return readCollection[T](s, name), nil
}

// SaveCollection replaces the whole collection with the given records.
func SaveCollection[T any](s *Store, name string, records []T) error {
	timer := prometheus.NewTimer(StoreOperationDuration.WithLabelValues("save", name))
	defer timer.ObserveDuration()

	lock := s.lock(name)
	lock.Lock()
	defer lock.Unlock()

	return writeCollection(s, name, records)
}

// UpdateCollection applies fn to the loaded records and persists the result,
// holding the collection lock for the whole read-modify-write.
func UpdateCollection[T any](s *Store, name string, fn func([]T) ([]T, error)) error {
	timer := prometheus.NewTimer(StoreOperationDuration.WithLabelValues("update", name))
	defer timer.ObserveDuration()

	lock := s.lock(name)
	lock.Lock()
	defer lock.Unlock()

	records, err := fn(readCollection[T](s, name))
	if err != nil {
		return err
	}
	return writeCollection(s, name, records)
}
