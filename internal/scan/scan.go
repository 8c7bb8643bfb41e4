package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"harvest/internal/classify"
	"harvest/internal/fsops"
	"harvest/internal/logging"
)

// Entry is one regular file seen under the source root at scan time.
type Entry struct {
	Path string
	// Record is the classified identity, nil when the file was unrecognized.
	// Unrecognized files are excluded from synchronization entirely.
	Record *classify.Record
	Inode  uint64
}

// Inventory is the labeled snapshot of the source tree.
type Inventory struct {
	Root    string
	Entries []Entry
}

// MediaInodes returns the inode set of movie and episode entries. Garbage
// and unrecognized files never protect a library link from reclaim.
func (inv *Inventory) MediaInodes() map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(inv.Entries))
	for _, e := range inv.Entries {
		if e.Record.IsMedia() {
			set[e.Inode] = struct{}{}
		}
	}
	return set
}

// Walk returns every regular file under root in depth-first order. Any walk
// failure is fatal for the run.
func Walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		marker := fsops.ErrFilesystem
		if os.IsNotExist(err) {
			marker = fsops.ErrConfiguration
		}
		return nil, fsops.Wrap(marker, "walk directory", root, err)
	}
	return files, nil
}

// Analyze scans root and classifies every file into an inventory entry.
// Classification misses are reported and kept as unrecognized entries;
// filesystem failures abort the scan.
func Analyze(root string, classifier *classify.Classifier, logger *slog.Logger) (*Inventory, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger.Info("scanning source directory", logging.String("root", root))

	files, err := Walk(root)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{Root: root, Entries: make([]Entry, 0, len(files))}
	for _, path := range files {
		inode, err := fsops.Inode(path)
		if err != nil {
			return nil, err
		}
		record, classifyErr := classifier.Classify(path)
		if classifyErr != nil {
			logger.Warn("file not recognized", logging.String("path", path), logging.Error(classifyErr))
		}
		inv.Entries = append(inv.Entries, Entry{Path: path, Record: record, Inode: inode})
	}

	logger.Info("scan complete", logging.Int("files", len(inv.Entries)))
	return inv, nil
}
