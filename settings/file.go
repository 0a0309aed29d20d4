package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"rgbpick/channel"
)

// File stores values as top-level integer keys of a TOML document:
//
//	red_value = 255
//	green_value = 0
//	blue_value = 12
//
// Keys it does not know are preserved on save.
type File struct {
	path string
	mu   sync.Mutex
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// Load reads the file. A missing file is empty, not an error; a file that
// cannot be parsed yields empty values and the error.
func (f *File) Load() (channel.Values, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	out := channel.Values{}
	if err != nil {
		return out, err
	}
	for _, ch := range channel.All {
		raw, ok := doc[ch.Key()]
		if !ok {
			continue
		}
		n, ok := raw.(int64)
		if !ok {
			return channel.Values{}, fmt.Errorf("settings %s: %s is %T, want integer", f.path, ch.Key(), raw)
		}
		out[ch] = channel.Clamp(int(n))
	}
	return out, nil
}

// Save merges batch into the document and replaces the file atomically.
// Unparseable contents are overwritten rather than blocking every later save.
func (f *File) Save(batch channel.Values) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := f.read()
	if err != nil {
		doc = map[string]any{}
	}
	for ch, v := range batch {
		doc[ch.Key()] = int64(v)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return f.replace(buf.Bytes())
}

func (f *File) read() (map[string]any, error) {
	doc := map[string]any{}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", f.path, err)
	}
	return doc, nil
}

func (f *File) replace(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
