package reconcile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"harvest/internal/fsops"
	"harvest/internal/logging"
	"harvest/internal/scan"
)

// create links every movie and episode entry into the library, building
// missing parent directories first. An existing target is a no-op, so
// re-running with unchanged inputs creates nothing and the first of two
// entries mapping to the same target wins. The existence test overlays the
// reclaim plan so the decision is identical under a real or dry executor.
func (s *Synchronizer) create(inv *scan.Inventory, root string, removed map[string]bool, res *Result) (map[string]bool, error) {
	created := make(map[string]bool)
	for _, e := range inv.Entries {
		target, ok := s.layout.TargetPath(root, e.Path, e.Record)
		if !ok {
			continue
		}
		if created[target] {
			continue
		}
		exists, err := pathExists(target)
		if err != nil {
			return nil, err
		}
		if exists && !removed[target] {
			continue
		}

		s.logger.Info("creating hard link",
			logging.String("source", e.Path),
			logging.String("target", target),
		)
		if err := s.exec.MkdirAll(filepath.Dir(target)); err != nil {
			return nil, err
		}
		if err := s.exec.Link(e.Path, target); err != nil {
			return nil, err
		}
		created[target] = true
		res.Created = append(res.Created, Link{Source: e.Path, Target: target})
	}
	return created, nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fsops.Wrap(fsops.ErrFilesystem, "inspect path", path, err)
}
