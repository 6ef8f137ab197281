// Package source implements component H: the source and include manager.
// It resolves the wild-card file patterns named by [[source=]]/[[asset=]]
// directives, dedups repeated includes by canonical full path, and holds
// the pending-source/pending-asset queues the parser driver drains once
// per main-loop iteration (spec §4.7, §4.8, §6).
package source

import (
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Host is the filesystem contract of spec §6 - the only I/O surface this
// module touches. A real cmd/corec driver wires OSHost; tests substitute
// an in-memory fake.
type Host interface {
	ReadBinaryFile(path string) ([]byte, bool)
	WriteBinaryFile(path string, data []byte) error
	IsRegularFile(path string) bool
	CreateDirectories(path string) error
	CopyFile(src, dst string, updateExisting bool) error
	// LocateFile resolves relativePath against currentFile: first
	// adjacent to currentFile, then walking up parent directories up to
	// a host-defined limit, per spec §6.
	LocateFile(currentFile, relativePath string) (resolvedRelative, canonicalFull string, ok bool)
	// LocateWildcardFiles expands pattern (relative to currentFile's
	// directory) per spec §6's '*'/'?' semantics, returning one
	// WildcardMatch per file found, each carrying the captures for the
	// pattern's wildcards in source order.
	LocateWildcardFiles(currentFile, pattern string) ([]WildcardMatch, error)
}

// WildcardMatch is one file located by LocateWildcardFiles.
type WildcardMatch struct {
	Path     string
	FullPath string
	Captures []string
}

// OSHost is the production Host, backed directly by the local
// filesystem.
type OSHost struct {
	// ParentSearchLimit bounds how many parent directories LocateFile
	// walks up looking for relativePath before giving up. Zero selects
	// a sane default (32).
	ParentSearchLimit int
}

const defaultParentSearchLimit = 32

func (h *OSHost) limit() int {
	if h.ParentSearchLimit > 0 {
		return h.ParentSearchLimit
	}
	return defaultParentSearchLimit
}

func (h *OSHost) ReadBinaryFile(path string) ([]byte, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return b, true
}

func (h *OSHost) WriteBinaryFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (h *OSHost) IsRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func (h *OSHost) CreateDirectories(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (h *OSHost) CopyFile(src, dst string, updateExisting bool) error {
	if !updateExisting {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (h *OSHost) LocateFile(currentFile, relativePath string) (string, string, bool) {
	dir := filepath.Dir(currentFile)
	for i := 0; i < h.limit(); i++ {
		candidate := filepath.Join(dir, relativePath)
		if h.IsRegularFile(candidate) {
			full, err := filepath.Abs(candidate)
			if err != nil {
				full = candidate
			}
			return candidate, canonicalize(full), true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", "", false
}

func (h *OSHost) LocateWildcardFiles(currentFile, pattern string) ([]WildcardMatch, error) {
	dir := filepath.Dir(currentFile)
	glob := patternToGlob(pattern)
	re := patternToRegexp(pattern)

	var out []WildcardMatch
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		matched, _ := doublestarMatch(glob, rel)
		if !matched {
			return nil
		}
		m := re.FindStringSubmatch(rel)
		if m == nil {
			return nil
		}
		full, err := filepath.Abs(path)
		if err != nil {
			full = path
		}
		out = append(out, WildcardMatch{
			Path:     path,
			FullPath: canonicalize(full),
			Captures: append([]string(nil), m[1:]...),
		})
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, err
}

// canonicalize is the dedup key per spec §4.7/§9: the host-normalized
// absolute form of a path. It is intentionally case-sensitive - see
// DESIGN.md's note on the open question about case-insensitive
// filesystems.
func canonicalize(absPath string) string {
	return filepath.Clean(absPath)
}
