package store

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/navs23/fundinsights"
	"github.com/sirupsen/logrus"
)

// FileBackend keeps the collection in a JSONL file, one report per line, so
// that it stays human readable and diff friendly.
type FileBackend struct {
	path string
	log  logrus.FieldLogger
}

// NewFileBackend returns a backend for the file at path. The file and its
// folder are created on the first Store.
func NewFileBackend(path string, log logrus.FieldLogger) *FileBackend {
	return &FileBackend{path: path, log: log}
}

// Load reads the collection.
//
// A missing file is an empty collection. A file that cannot be decoded is
// also read as an empty collection, and a warning is logged: the next Store
// replaces it.
func (b *FileBackend) Load(ctx context.Context) ([]fundinsights.SavedReport, error) {
	f, err := os.Open(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", b.path, err)
	}
	defer f.Close()

	reports, err := DecodeReports(f)
	if err != nil {
		b.log.WithError(err).WithField("path", b.path).Warn("ignoring unreadable report collection")
		return nil, nil
	}
	return reports, nil
}

// Store replaces the file content with reports. The file is written next to
// its final location and then renamed, so a failed write leaves the previous
// collection untouched.
func (b *FileBackend) Store(ctx context.Context, reports []fundinsights.SavedReport) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("persist error: cannot create folder %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("persist error: cannot create file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := EncodeReports(tmp, reports); err != nil {
		tmp.Close()
		return fmt.Errorf("persist error: write error on file %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot close file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", b.path, err)
	}
	b.log.WithFields(logrus.Fields{"path": b.path, "reports": len(reports)}).Debug("stored report collection")
	return nil
}

// Close does nothing, files are only open during Load and Store.
func (b *FileBackend) Close() error { return nil }

// DecodeReports reads a JSONL stream of reports.
func DecodeReports(r io.Reader) ([]fundinsights.SavedReport, error) {
	var reports []fundinsights.SavedReport
	scanner := bufio.NewScanner(r)
	// statements are pasted whole in a single line.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rep fundinsights.SavedReport
		if err := json.Unmarshal(line, &rep); err != nil {
			return nil, fmt.Errorf("parse error on line %d: not a correct json: %w", i, err)
		}
		reports = append(reports, rep)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return reports, nil
}

// EncodeReports writes reports as JSONL, in order.
func EncodeReports(w io.Writer, reports []fundinsights.SavedReport) error {
	for _, rep := range reports {
		data, err := json.Marshal(rep)
		if err != nil {
			return fmt.Errorf("failed to marshal report %q: %w", rep.Name, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write report %q: %w", rep.Name, err)
		}
	}
	return nil
}
