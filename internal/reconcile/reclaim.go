package reconcile

import (
	"harvest/internal/fsops"
	"harvest/internal/logging"
	"harvest/internal/scan"
)

// reclaim walks the library tree and removes files whose inode is absent
// from the current media inode set; those links lost their source file and
// are stale. Files whose inode is still in the set but whose path is not a
// computed target are reported and left untouched. Returns the set of
// removed paths so the later phases can treat them as gone without
// re-reading the tree.
func (s *Synchronizer) reclaim(inv *scan.Inventory, root string, res *Result) (map[string]bool, error) {
	inodes := inv.MediaInodes()
	wanted := s.targetPaths(inv, root)

	files, err := scan.Walk(root)
	if err != nil {
		return nil, err
	}

	removed := make(map[string]bool)
	for _, path := range files {
		inode, err := fsops.Inode(path)
		if err != nil {
			return nil, err
		}
		if _, ok := inodes[inode]; !ok {
			s.logger.Info("removing stale link", logging.String("path", path))
			if err := s.exec.Remove(path); err != nil {
				return nil, err
			}
			removed[path] = true
			res.Removed = append(res.Removed, path)
			continue
		}
		if _, ok := wanted[path]; !ok {
			s.logger.Warn("extra file found", logging.String("path", path))
			res.Extra = append(res.Extra, path)
		}
	}
	return removed, nil
}
