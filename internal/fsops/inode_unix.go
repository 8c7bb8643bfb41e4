//go:build unix

package fsops

import "golang.org/x/sys/unix"

// Inode returns the platform identifier correlating hardlinked paths to the
// same underlying file. It is the sole identity used to match source files
// with previously created library links.
func Inode(path string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, Wrap(ErrFilesystem, "stat", path, err)
	}
	return uint64(st.Ino), nil
}
