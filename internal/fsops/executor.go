package fsops

import "os"

// Executor performs the mutating filesystem operations of a reconciliation
// run. Real touches the filesystem; Dry mutates nothing, so a dry run
// reports exactly the actions a real run would take from the same state.
type Executor interface {
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// Link creates a hardlink at target pointing at source's inode.
	Link(source, target string) error
	// Remove deletes a single file.
	Remove(path string) error
	// RemoveDir deletes a directory, which must already be empty.
	RemoveDir(path string) error
}

// Real applies mutations to the filesystem.
type Real struct{}

func (Real) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Wrap(ErrFilesystem, "create directory", path, err)
	}
	return nil
}

func (Real) Link(source, target string) error {
	if err := os.Link(source, target); err != nil {
		return Wrap(ErrFilesystem, "create hardlink", target, err)
	}
	return nil
}

func (Real) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return Wrap(ErrFilesystem, "remove file", path, err)
	}
	return nil
}

func (Real) RemoveDir(path string) error {
	if err := os.Remove(path); err != nil {
		return Wrap(ErrFilesystem, "remove directory", path, err)
	}
	return nil
}

// Dry performs no mutations.
type Dry struct{}

func (Dry) MkdirAll(string) error     { return nil }
func (Dry) Link(string, string) error { return nil }
func (Dry) Remove(string) error       { return nil }
func (Dry) RemoveDir(string) error    { return nil }
