package classify

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultVideoExtensions lists the extensions whose filenames are parsed for
// media metadata.
var DefaultVideoExtensions = []string{"mkv", "mp4"}

// DefaultGarbageExtensions lists recognized non-media sidecar extensions.
// These classify as garbage unconditionally, without name parsing.
var DefaultGarbageExtensions = []string{
	"srt", "sub", "idx",
	"ogg", "mp3",
	"jpg", "png",
	"ts", "bdjo", "clpi", "mpls", "m2ts", "bdmv",
	"torrent", "meta", "exe", "nfo", "txt", "md5",
}

// Classifier maps file paths to media records by extension dispatch and an
// ordered filename-pattern cascade.
type Classifier struct {
	video   map[string]struct{}
	garbage map[string]struct{}
}

// New builds a classifier from the given extension lists. Empty lists fall
// back to the defaults; entries are normalized to lowercase without dots.
func New(videoExts, garbageExts []string) *Classifier {
	return &Classifier{
		video:   extSet(videoExts, DefaultVideoExtensions),
		garbage: extSet(garbageExts, DefaultGarbageExtensions),
	}
}

// Classify parses path into a media record. A nil record with a non-nil
// error means the file is unrecognized; the error text is the per-file
// diagnostic and the caller must exclude the file from synchronization.
func (c *Classifier) Classify(path string) (*Record, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := c.video[ext]; ok {
		return classifyName(normalizeStem(path))
	}
	if _, ok := c.garbage[ext]; ok {
		return &Record{Kind: KindGarbage}, nil
	}
	return nil, fmt.Errorf("unknown extension: %s", path)
}

func classifyName(name string) (*Record, error) {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		rec, err := r.parse(m)
		if err != nil {
			return nil, fmt.Errorf("%s rule on %q: %w", r.name, name, err)
		}
		return rec, nil
	}
	return nil, fmt.Errorf("unknown filename pattern: %q", name)
}

// normalizeStem lowercases the file stem, strips bracketed release-group
// tags along with their dot/space/underscore padding, and maps the remaining
// underscores and dots to spaces.
func normalizeStem(path string) string {
	base := filepath.Base(path)
	name := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	name = releaseTag.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ReplaceAll(name, ".", " ")
}

func extSet(exts, fallback []string) map[string]struct{} {
	if len(exts) == 0 {
		exts = fallback
	}
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}
