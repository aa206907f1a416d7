package tradelog

import (
	"bufio"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// The archive is the idempotent re-run guard: every ingested source file is
// recorded by content digest, and a second import of the same content is
// refused. Callers are expected to serialize runs through this guard; the
// engine itself provides no mutual exclusion.

const archiveFile = ".ingested.jsonl"

// ArchiveEntry records one ingested source file.
type ArchiveEntry struct {
	Digest     string `json:"digest"`
	Source     string `json:"source"`
	Date       Date   `json:"date"`
	Executions int    `json:"executions"`
}

// Archive tracks which source files have already been ingested.
type Archive struct {
	path    string
	entries map[string]ArchiveEntry // by digest
}

// OpenArchive loads the ingestion archive of a data directory, creating an
// empty one if the directory has none yet.
func OpenArchive(dataPath string) (*Archive, error) {
	a := &Archive{
		path:    filepath.Join(dataPath, archiveFile),
		entries: make(map[string]ArchiveEntry),
	}

	f, err := os.Open(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return a, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open archive %q: %w", a.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry ArchiveEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("could not decode archive line %q: %w", string(line), err)
		}
		a.entries[entry.Digest] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading archive %q: %w", a.path, err)
	}
	return a, nil
}

// Digest computes the content digest used to identify a source file.
func Digest(r io.Reader) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Contains reports whether a source with this digest was already ingested,
// and returns its entry.
func (a *Archive) Contains(digest string) (ArchiveEntry, bool) {
	entry, ok := a.entries[digest]
	return entry, ok
}

// Record appends an entry to the archive file and to the in-memory index.
func (a *Archive) Record(entry ArchiveEntry) error {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open archive %q: %w", a.path, err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("could not marshal archive entry: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write archive entry: %w", err)
	}
	a.entries[entry.Digest] = entry
	return nil
}
