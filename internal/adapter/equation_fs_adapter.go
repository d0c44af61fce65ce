// Package adapter contains the filesystem and persistence adapters of equate.
package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/equate/internal/model"
)

// EquationExt is the extension of equation files picked up when scanning
// directories.
const EquationExt = ".eq"

// EquationFSAdapter abstracts the filesystem access the domain layer needs
// to find, read and write equation files.
type EquationFSAdapter interface {
	// Get collects equation files for the provided roots. A root may be a
	// file, a directory, or a directory followed by /... to recurse.
	Get(roots []m.Path) ([]m.EquationFile, error)

	// Walk visits root and its entries, descending into subdirectories
	// only when recursive is set.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// HashFile fingerprints the content of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc receives every visited path. info is nil when err is set.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalEquationFSAdapter implements EquationFSAdapter on the local disk.
type LocalEquationFSAdapter struct{}

// NewLocalEquationFSAdapter constructs a LocalEquationFSAdapter.
func NewLocalEquationFSAdapter() *LocalEquationFSAdapter {
	return &LocalEquationFSAdapter{}
}

// equationScan accumulates the files of several roots, each once.
type equationScan struct {
	adapter *LocalEquationFSAdapter
	seen    map[m.Path]bool
	files   []m.EquationFile
}

func (sc *equationScan) visit(path string) error {
	file, ok, err := sc.adapter.equationFile(path)
	if err != nil || !ok || sc.seen[file.Path] {
		return err
	}

	sc.seen[file.Path] = true
	sc.files = append(sc.files, file)

	return nil
}

// Get collects equation files under the provided roots, each at most once,
// in the order they are found.
func (a *LocalEquationFSAdapter) Get(roots []m.Path) ([]m.EquationFile, error) {
	sc := &equationScan{adapter: a, seen: make(map[m.Path]bool), files: []m.EquationFile{}}

	for _, root := range roots {
		dir, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", root, err)
		}

		info, err := a.FileInfo(m.Path(dir))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := sc.visit(dir); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(dir), recursive, func(path string, info os.FileInfo, err error) error {
			switch {
			case err != nil:
				return err
			case info.IsDir():
				return nil
			default:
				return sc.visit(path)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return sc.files, nil
}

// Walk visits root and the entries below it. Without recursive only the
// direct entries of root are visited; hidden directories are never entered.
func (a *LocalEquationFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	top := string(root)

	return filepath.WalkDir(top, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fn(path, nil, err)
		}

		if d.IsDir() && path != top && (!recursive || strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}

		info, err := d.Info()

		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalEquationFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile replaces the file at path with content.
func (a *LocalEquationFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// HashFile returns the hex SHA-256 of the file at path.
func (a *LocalEquationFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileInfo stats path.
func (a *LocalEquationFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// normalizeRootPath turns a CLI root into an absolute path, expanding a
// leading ~ and stripping the recursive /... suffix.
func normalizeRootPath(root string) (string, bool, error) {
	dir, recursive := parseRootPath(root)

	if rest, ok := strings.CutPrefix(dir, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		dir = filepath.Join(home, strings.TrimPrefix(rest, string(os.PathSeparator)))
	}

	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)

	return abs, recursive, err
}

func parseRootPath(root string) (path string, recursive bool) {
	switch {
	case root == "...":
		return ".", true
	case strings.HasSuffix(root, "/..."):
		return strings.TrimSuffix(root, "/..."), true
	default:
		return root, false
	}
}

// equationFile describes path when it names an equation file.
func (a *LocalEquationFSAdapter) equationFile(path string) (m.EquationFile, bool, error) {
	if filepath.Ext(path) != EquationExt {
		return m.EquationFile{}, false, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return m.EquationFile{}, false, err
	}

	hash, err := a.HashFile(m.Path(abs))
	if err != nil {
		return m.EquationFile{}, false, fmt.Errorf("hash error for %s: %w", abs, err)
	}

	return m.EquationFile{Path: m.Path(abs), Hash: hash}, true, nil
}
