package workspace

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Change describes a file that appeared, changed or disappeared between two
// polls.
type Change struct {
	Path    string
	Removed bool
}

// FileWatcher polls a set of roots for JavaScript files and keeps a
// workspace in sync with them. Roots may be files or directories.
type FileWatcher struct {
	workspace    *Workspace
	roots        []string
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func([]Change)
}

func NewFileWatcher(w *Workspace, roots []string, interval time.Duration, onChange func([]Change)) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		roots:        roots,
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
		onChange:     onChange,
	}
}

// Run scans once and then on every tick until ctx is done.
func (fw *FileWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.Scan()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fw.Scan()
		}
	}
}

// Scan updates the workspace with files that changed since the previous
// scan and reports them. onChange is not called when nothing changed.
func (fw *FileWatcher) Scan() []Change {
	current := make(map[string]bool)
	var changes []Change

	visit := func(path string, info os.FileInfo) {
		if !IsSource(path) {
			return
		}
		current[path] = true
		lastMod, known := fw.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			return
		}
		fw.modTimes[path] = info.ModTime()
		if err := fw.workspace.ScanFile(path); err != nil {
			log.Warningf("watch %s: %s", path, err)
			return
		}
		changes = append(changes, Change{Path: path})
	}

	for _, root := range fw.roots {
		filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if path != root && skipDir(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			visit(path, info)
			return nil
		})
	}

	for path := range fw.modTimes {
		if !current[path] {
			delete(fw.modTimes, path)
			fw.workspace.RemoveFile(path)
			changes = append(changes, Change{Path: path, Removed: true})
		}
	}

	if len(changes) > 0 {
		log.Infof("%d files changed", len(changes))
		if fw.onChange != nil {
			fw.onChange(changes)
		}
	}
	return changes
}
