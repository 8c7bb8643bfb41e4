package reconcile

import (
	"log/slog"

	"harvest/internal/fsops"
	"harvest/internal/library"
	"harvest/internal/logging"
	"harvest/internal/scan"
)

// Link records one created hardlink.
type Link struct {
	Source string
	Target string
}

// Result is the complete action set of one run. A dry run produces the same
// result a real run would from the same starting filesystem state.
type Result struct {
	// Created lists hardlinks made during the create phase.
	Created []Link
	// Removed lists stale links reclaimed from the library tree.
	Removed []string
	// Extra lists files reported as "extra file found" and left untouched.
	Extra []string
	// Pruned lists directories removed after reclaim emptied them.
	Pruned []string
}

// Synchronizer reconciles a scanned inventory against the library root.
type Synchronizer struct {
	exec   fsops.Executor
	layout library.Layout
	logger *slog.Logger
}

// New builds a synchronizer around the given mutation executor.
func New(exec fsops.Executor, layout library.Layout, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Synchronizer{exec: exec, layout: layout, logger: logger}
}

// Sync runs reclaim, create, and prune in order and reports every action
// taken. Any filesystem failure stops the run where it is; the library tree
// stays consistent but partially synchronized.
func (s *Synchronizer) Sync(inv *scan.Inventory, root string) (*Result, error) {
	res := &Result{}

	removed, err := s.reclaim(inv, root, res)
	if err != nil {
		return nil, err
	}
	created, err := s.create(inv, root, removed, res)
	if err != nil {
		return nil, err
	}
	if err := s.prune(root, removed, created, res); err != nil {
		return nil, err
	}

	s.logger.Info("synchronization complete",
		logging.Int("created", len(res.Created)),
		logging.Int("removed", len(res.Removed)),
		logging.Int("pruned", len(res.Pruned)),
		logging.Int("extra", len(res.Extra)),
	)
	return res, nil
}

// targetPaths computes the full set of desired link locations for the
// inventory.
func (s *Synchronizer) targetPaths(inv *scan.Inventory, root string) map[string]struct{} {
	wanted := make(map[string]struct{})
	for _, e := range inv.Entries {
		if target, ok := s.layout.TargetPath(root, e.Path, e.Record); ok {
			wanted[target] = struct{}{}
		}
	}
	return wanted
}
