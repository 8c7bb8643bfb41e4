package reconcile

import (
	"os"
	"path/filepath"

	"harvest/internal/fsops"
	"harvest/internal/logging"
)

// prune removes directories left empty under root. A directory counts as
// empty when every subdirectory pruned empty, every direct file was removed
// this run, and no link was created at or beneath it. Traversal is
// post-order so a parent becomes a candidate only after its children are
// resolved. The root itself is never removed.
func (s *Synchronizer) prune(root string, removed, created map[string]bool, res *Result) error {
	occupied := make(map[string]bool)
	for target := range created {
		dir := filepath.Dir(target)
		for dir != root && dir != "." && dir != string(filepath.Separator) {
			occupied[dir] = true
			dir = filepath.Dir(dir)
		}
	}
	_, err := s.pruneDir(root, removed, created, occupied, res)
	return err
}

func (s *Synchronizer) pruneDir(dir string, removed, created, occupied map[string]bool, res *Result) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fsops.Wrap(fsops.ErrFilesystem, "read directory", dir, err)
	}

	empty := !occupied[dir]
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subEmpty, err := s.pruneDir(path, removed, created, occupied, res)
			if err != nil {
				return false, err
			}
			if !subEmpty {
				empty = false
				continue
			}
			s.logger.Info("removing empty directory", logging.String("path", path))
			if err := s.exec.RemoveDir(path); err != nil {
				return false, err
			}
			res.Pruned = append(res.Pruned, path)
			continue
		}
		// A plain file keeps the directory alive unless this run's reclaim
		// deleted it (and nothing re-created the same path).
		if !removed[path] || created[path] {
			empty = false
		}
	}
	return empty, nil
}
