package querylog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const DefaultPath = "data/user_queries.json"

// FileStore keeps the whole log in one JSON document. Every write reads the
// document, appends, and rewrites it; mu serializes that sequence so concurrent
// recorders in this process never drop each other's appends.
type FileStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string, log zerolog.Logger) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{
		path: path,
		log:  log.With().Str("module", "querylog").Str("backend", "file").Logger(),
	}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) RecordQuery(ctx context.Context, userID, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Queries[userID] = append(doc.Queries[userID], query)

	if err := s.save(doc); err != nil {
		return err
	}

	s.log.Debug().Str("user", userID).Int("count", len(doc.Queries[userID])).Msg("Recorded query")
	return nil
}

func (s *FileStore) Queries(ctx context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Queries[userID], nil
}

// load reads the document. A missing or empty file is an empty document.
func (s *FileStore) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newDocument(), nil
		}
		return nil, errors.Wrapf(err, "failed to read query log %s", s.path)
	}
	if len(data) == 0 {
		return newDocument(), nil
	}

	doc := newDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse query log %s", s.path)
	}
	if doc.Queries == nil {
		doc.Queries = make(map[string][]string)
	}
	return doc, nil
}

// save writes the document to a temp file beside the target and renames it into place.
func (s *FileStore) save(doc *Document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal query log")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write query log")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to close query log")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to replace %s", s.path)
	}
	return nil
}
