package library

import (
	"fmt"
	"path/filepath"
	"strings"

	"harvest/internal/classify"
)

// Layout names the top-level buckets inside the library root.
type Layout struct {
	MoviesDir string
	ShowsDir  string
}

// DefaultLayout returns the canonical movies/ and shows/ buckets.
func DefaultLayout() Layout {
	return Layout{MoviesDir: "movies", ShowsDir: "shows"}
}

// TargetPath computes the link location for a media record, keeping the
// source file's extension. Records that are not movies or episodes have no
// place in the library and report ok=false.
func (l Layout) TargetPath(root, sourcePath string, rec *classify.Record) (string, bool) {
	if !rec.IsMedia() {
		return "", false
	}
	ext := strings.TrimPrefix(filepath.Ext(sourcePath), ".")
	switch rec.Kind {
	case classify.KindEpisode:
		return filepath.Join(
			root,
			l.ShowsDir,
			rec.Series,
			fmt.Sprintf("Season %d", rec.Season),
			fmt.Sprintf("episode %d.%s", rec.Episode, ext),
		), true
	case classify.KindMovie:
		dir := rec.Title
		if rec.Year != 0 {
			dir = fmt.Sprintf("%s (%d)", rec.Title, rec.Year)
		}
		return filepath.Join(root, l.MoviesDir, dir, "movie."+ext), true
	}
	return "", false
}
