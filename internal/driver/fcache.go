package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pasfmt/internal/diag"
	"pasfmt/internal/options"
)

// Increment when the payload format or the pipeline semantics change.
const cacheSchemaVersion uint16 = 2

// FormatCache stores formatted output keyed by content and configuration, so
// an unchanged file is never re-parsed across runs. Thread-safe; a nil cache
// is valid and means caching is off.
type FormatCache struct {
	mu  sync.RWMutex
	dir string
}

// Пропущенные регионы кешируются вместе с выводом: предупреждения не должны
// исчезать на втором прогоне только потому, что файл не изменился.
type cachePayload struct {
	Schema  uint16
	Output  []byte
	Skipped []diag.Diagnostic
}

// OpenFormatCache initializes the cache at the standard XDG location.
func OpenFormatCache(app string) (*FormatCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FormatCache{dir: dir}, nil
}

func (c *FormatCache) pathFor(key [sha256.Size]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог ради удобства очистки руками
	return filepath.Join(c.dir, "fmt", hexKey+".mp")
}

// cacheKey digests the content together with the configuration fingerprint:
// a config edit invalidates every entry.
func cacheKey(content []byte, opts *options.Options) [sha256.Size]byte {
	h := sha256.New()
	h.Write(content)
	fmt.Fprintf(h, "|s%d|%q|%q|%v|%v|%v|%s|%s",
		cacheSchemaVersion,
		opts.Indentation,
		opts.LineEnding,
		opts.TrimTrailingWhitespace,
		opts.ColonNumericException,
		opts.Spacing,
		opts.Uses.Style,
		strings.Join(append(append([]string{}, opts.Uses.NamespacePriority...), opts.Uses.UnitAliases...), ","),
	)
	var key [sha256.Size]byte
	h.Sum(key[:0])
	return key
}

// Get returns the cached output and skipped-region diagnostics for this
// content and configuration.
func (c *FormatCache) Get(content []byte, opts *options.Options) ([]byte, []diag.Diagnostic, bool) {
	if c == nil {
		return nil, nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(cacheKey(content, opts)))
	if err != nil {
		return nil, nil, false
	}
	defer func() { _ = f.Close() }()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, nil, false
	}
	return payload.Output, payload.Skipped, true
}

// Put writes the formatted output atomically; cache failures are not worth
// failing the format run and are swallowed.
func (c *FormatCache) Put(content []byte, opts *options.Options, output []byte, skipped []diag.Diagnostic) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(content, opts))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer func() { _ = os.Remove(f.Name()) }()

	payload := cachePayload{Schema: cacheSchemaVersion, Output: output, Skipped: skipped}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// атомарная замена
	_ = os.Rename(f.Name(), p)
}

// DropAll invalidates the whole cache.
func (c *FormatCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
