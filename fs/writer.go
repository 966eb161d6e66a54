// Package fs writes run artifacts to the local filesystem.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"kbingest"
)

// Writer persists a collection as a JSON artifact with atomic update
// semantics: the document is written to a temp file in the target directory
// and renamed into place, so a crash mid-write never leaves a truncated
// artifact behind.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteCollection marshals the collection and atomically replaces the
// target file. Items are never dropped silently: a nil slice still produces
// an explicit empty items array in the output.
func (w *Writer) WriteCollection(collection *kbingest.Collection) error {
	if collection.Items == nil {
		collection.Items = []kbingest.Item{}
	}

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return kbingest.Errorf(kbingest.EINTERNAL, "failed to marshal collection: %v", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return kbingest.Errorf(kbingest.EINTERNAL, "failed to create output directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return kbingest.Errorf(kbingest.EINTERNAL, "failed to create temp file: %v", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return kbingest.Errorf(kbingest.EINTERNAL, "failed to write artifact: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return kbingest.Errorf(kbingest.EINTERNAL, "failed to close artifact: %v", err)
	}

	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return kbingest.Errorf(kbingest.EINTERNAL, "failed to move artifact into place: %v", err)
	}
	return nil
}
