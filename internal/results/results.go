// Package results loads Checkov scan output from a results directory.
//
// The input file is only weakly contracted, so it is kept as an untyped
// JSON tree and read through gjson paths rather than decoded into a fixed
// schema.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// FileName is the Checkov result file looked up inside the results directory.
const FileName = "checkov-results.json"

const summaryKey = "summary"

// defaultContent stands in for the result file when it does not exist.
const defaultContent = `{"summary":{"passed":0,"failed":0,"skipped":0}}`

// ErrInputParse indicates the result file exists but could not be read as a
// JSON object.
var ErrInputParse = errors.New("invalid scan results")

// Document is a parsed result file.
type Document struct {
	// Path is the file the document was read from. Empty for the default
	// document.
	Path string

	root gjson.Result
}

// Default returns the zero-count document used when no result file exists.
func Default() *Document {
	return &Document{root: gjson.Parse(defaultContent)}
}

// Load reads FileName from dir. A missing file is not an error: the zero
// summary from Default is returned instead.
func Load(dir string) (*Document, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return Default(), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInputParse, err)
	}

	return Parse(path, data)
}

// Parse validates data as a JSON object and wraps it in a Document. path is
// only used for error messages and Document.Path.
func Parse(path string, data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrInputParse, path)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrInputParse, path)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s: top-level value is %s, want object", ErrInputParse, path, kind(root))
	}

	if key, ok := duplicateKey(root); ok {
		return nil, fmt.Errorf("%w: %s: duplicate key %q", ErrInputParse, path, key)
	}

	if s := root.Get(summaryKey); s.Exists() && !s.IsObject() {
		return nil, fmt.Errorf("%w: %s: %q is %s, want object", ErrInputParse, path, summaryKey, kind(s))
	} else if key, ok := duplicateKey(s); ok {
		return nil, fmt.Errorf("%w: %s: duplicate key %q in %q", ErrInputParse, path, key, summaryKey)
	}

	return &Document{Path: path, root: root}, nil
}

// Exists reports whether the document was read from a file.
func (d *Document) Exists() bool {
	return d.Path != ""
}

// Get returns the value at a gjson path. Missing values have
// Exists() == false.
func (d *Document) Get(path string) gjson.Result {
	return d.root.Get(path)
}

// Summary returns the nested summary object, which may not exist.
func (d *Document) Summary() gjson.Result {
	return d.root.Get(summaryKey)
}

// RawSummary returns the summary object exactly as written in the input,
// keeping key order, extra keys and number literals. An absent summary is
// returned as an empty object.
func (d *Document) RawSummary() json.RawMessage {
	s := d.Summary()
	if !s.Exists() {
		return json.RawMessage("{}")
	}
	return json.RawMessage(s.Raw)
}

// duplicateKey returns the first repeated key of an object. gjson resolves
// lookups to the first occurrence while most decoders keep the last, so
// repeated keys would make the counts ambiguous.
func duplicateKey(obj gjson.Result) (string, bool) {
	if !obj.IsObject() {
		return "", false
	}

	seen := make(map[string]bool)
	var (
		dup   string
		found bool
	)
	obj.ForEach(func(key, _ gjson.Result) bool {
		k := key.String()
		if seen[k] {
			dup, found = k, true
			return false
		}
		seen[k] = true
		return true
	})
	return dup, found
}

func kind(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "an object"
	case r.IsArray():
		return "an array"
	case r.IsBool():
		return "a boolean"
	}
	switch r.Type {
	case gjson.Number:
		return "a number"
	case gjson.String:
		return "a string"
	case gjson.Null:
		return "null"
	}
	return "unknown"
}
