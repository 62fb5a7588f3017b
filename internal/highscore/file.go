package highscore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const fieldDelimiter = "|"

// FileStore keeps records in a line-delimited text file, one
// "name|score|date" record per line. The file is only ever appended to.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file does not
// need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads every well-formed record. A missing file yields no records.
// Malformed lines are skipped.
func (s *FileStore) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open %s: %w", s.path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if r, ok := parseLine(scanner.Text()); ok {
			records = append(records, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	Sort(records)
	return records, nil
}

// Append writes one record at the end of the file, creating the file and its
// parent directories when needed. The name is sanitized first.
func (s *FileStore) Append(r Record) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("highscore: cannot open %s: %w", s.path, err)
	}

	line := formatLine(r)
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return f.Close()
}

func formatLine(r Record) string {
	date := strings.ReplaceAll(r.Date, fieldDelimiter, "")
	return SanitizeName(r.Name) + fieldDelimiter + strconv.Itoa(r.Score) + fieldDelimiter + date + "\n"
}

// parseLine splits a stored line. Fields beyond the third are ignored.
func parseLine(line string) (Record, bool) {
	parts := strings.Split(strings.TrimRight(line, "\r"), fieldDelimiter)
	if len(parts) < 3 {
		return Record{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Record{}, false
	}
	return Record{Name: parts[0], Score: score, Date: parts[2]}, true
}

var _ Store = (*FileStore)(nil)
