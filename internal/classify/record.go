package classify

import "fmt"

// Kind discriminates the media record variants.
type Kind int

const (
	// KindMovie is a feature film with an optional release year.
	KindMovie Kind = iota
	// KindEpisode is a single episode of a named series.
	KindEpisode
	// KindGarbage is a recognized non-media sidecar file: subtitles,
	// artwork, disc-structure metadata and similar.
	KindGarbage
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindEpisode:
		return "episode"
	case KindGarbage:
		return "garbage"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Record is the structured identity parsed from a media filename. Title and
// Series carry the normalized lowercase form produced by the cascade; Year
// is zero when the movie has no recognizable release year.
type Record struct {
	Kind    Kind
	Title   string
	Year    int
	Series  string
	Season  int
	Episode int
}

// IsMedia reports whether the record names content that belongs in the
// library tree. Garbage records and nil records do not.
func (r *Record) IsMedia() bool {
	return r != nil && (r.Kind == KindMovie || r.Kind == KindEpisode)
}

func (r *Record) String() string {
	if r == nil {
		return "unrecognized"
	}
	switch r.Kind {
	case KindMovie:
		if r.Year != 0 {
			return fmt.Sprintf("movie %q (%d)", r.Title, r.Year)
		}
		return fmt.Sprintf("movie %q", r.Title)
	case KindEpisode:
		return fmt.Sprintf("episode %q s%02de%02d", r.Series, r.Season, r.Episode)
	default:
		return r.Kind.String()
	}
}
