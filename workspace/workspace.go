// Package workspace keeps parsed JavaScript files in memory and serves them
// to editors over the Language Server Protocol.
package workspace

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jscst/parser"
	"github.com/dhamidi/jscst/syntax"
)

var log = commonlog.GetLogger("jscst.workspace")

// Extensions lists the file extensions parsed as JavaScript.
var Extensions = []string{".js", ".mjs", ".cjs"}

// IsSource reports whether path has a JavaScript extension.
func IsSource(path string) bool {
	return slices.Contains(Extensions, filepath.Ext(path))
}

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*File
}

// File is one parsed document. It is replaced, never mutated, on update.
type File struct {
	Path    string
	Version int32
	Result  *parser.Result
	Lines   *syntax.LineIndex
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*File),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll parses every JavaScript file below the root directory, skipping
// hidden directories and node_modules.
func (w *Workspace) ScanAll() error {
	paths, err := SourceFiles(w.rootDir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := w.ScanFile(path); err != nil {
			log.Warningf("scan %s: %s", path, err)
		}
	}
	return nil
}

// SourceFiles expands roots into JavaScript files. A root naming a file is
// kept as is; directories are walked like ScanAll does.
func SourceFiles(roots ...string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, root)
			continue
		}
		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if path != root && skipDir(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if IsSource(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, 0, content)
	return nil
}

// UpdateFile parses content and stores it under path.
func (w *Workspace) UpdateFile(path string, version int32, content []byte) *File {
	res := parser.ParseBytes(content, parser.WithFile(filepath.Base(path)))
	f := &File{
		Path:    path,
		Version: version,
		Result:  res,
		Lines:   syntax.NewLineIndex(content),
	}
	log.Debugf("parsed %s: %d diagnostics", path, len(res.Diagnostics()))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = f
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the stored paths in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
