// Package cache is a content-addressed store of previously compiled
// bytecode.Programs, keyed by the SHA-256 of the source bytes. It uses
// gob for serialization — the same mechanism the teacher uses for its
// own bundle format — with a small magic-number + version header so a
// corrupt or foreign file is rejected before gob ever sees it.
package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/funvibe/nyxc/internal/bytecode"
)

var magic = [4]byte{'N', 'Y', 'X', 'C'}

const version = byte(1)

// Store is a directory-backed cache. Get/Put are safe for concurrent use
// from parallel test runs; the compiler itself is single-threaded and
// never touches the mutex.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New returns a Store rooted at dir. The directory is created lazily on
// first Put.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Key returns the content-addressed cache key for source bytes.
func Key(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".nyxc")
}

// Get returns the cached program for key, or (nil, false) on a miss. A
// corrupt cache entry is treated as a miss rather than an error: the
// cache is a pure optimization and must never fail a compile that would
// otherwise succeed.
func (s *Store) Get(key string) (*bytecode.Program, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}

	prog, err := decode(data)
	if err != nil {
		return nil, false
	}
	return prog, true
}

// Put stores prog under key, creating the cache directory if needed.
func (s *Store) Put(key string, prog *bytecode.Program) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	data, err := encode(prog)
	if err != nil {
		return fmt.Errorf("encoding program: %w", err)
	}

	return os.WriteFile(s.path(key), data, 0o644)
}

func encode(prog *bytecode.Program) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(magic[:])
	buf.WriteByte(version)

	enc := gob.NewEncoder(buf)
	if err := enc.Encode(prog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*bytecode.Program, error) {
	if len(data) < 5 || data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] || data[3] != magic[3] {
		return nil, fmt.Errorf("cache: bad magic number")
	}
	if data[4] != version {
		return nil, fmt.Errorf("cache: unsupported version %d", data[4])
	}

	dec := gob.NewDecoder(bytes.NewReader(data[5:]))
	var prog bytecode.Program
	if err := dec.Decode(&prog); err != nil {
		return nil, err
	}
	return &prog, nil
}
