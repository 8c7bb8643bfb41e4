package classify

import (
	"regexp"
	"strconv"
)

// releaseTag matches bracketed release-group tags together with the dot,
// space, and underscore padding around them.
var releaseTag = regexp.MustCompile(`([. _]*)\[[^]]+\]([. _]*)`)

type rule struct {
	name  string
	re    *regexp.Regexp
	parse func(m []string) (*Record, error)
}

// rules run against the normalized lowercase stem in strictly decreasing
// specificity order, first match wins. The patterns overlap: the bare
// trailing-integer form would also swallow "<name> <year>" inputs, so the
// movie-year rule runs only after every episode-shaped rule has failed, and
// the explicit S/E, dash, and quoted forms run before the bare form.
// Reordering this list changes observable classification output.
var rules = []rule{
	{"season-episode", regexp.MustCompile(`^(.*) s(\d+)e(\d+) (.*)$`), parseSeasonEpisode},
	{"dash-episode", regexp.MustCompile(`^(.*) - (\d+)(v\d)?( END)?( .*)?$`), parseFirstSeasonEpisode},
	{"quoted-episode", regexp.MustCompile(`^(.*) e(\d+)( END)? '.*'?$`), parseFirstSeasonEpisode},
	// Capped at three digits so a bare trailing four-digit number falls
	// through to the movie-year rule.
	{"bare-episode", regexp.MustCompile(`^(.*) (\d{1,3})( END)?( \((.*)\))?( v2)?$`), parseFirstSeasonEpisode},
	{"movie-year", regexp.MustCompile(`(.*[^-]) (\d{4})( [^-]|$)`), parseMovieYear},
}

func parseSeasonEpisode(m []string) (*Record, error) {
	season, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, err
	}
	episode, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, err
	}
	return &Record{Kind: KindEpisode, Series: m[1], Season: season, Episode: episode}, nil
}

// parseFirstSeasonEpisode handles the forms that carry no season marker;
// those default to season 1.
func parseFirstSeasonEpisode(m []string) (*Record, error) {
	episode, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, err
	}
	return &Record{Kind: KindEpisode, Series: m[1], Season: 1, Episode: episode}, nil
}

func parseMovieYear(m []string) (*Record, error) {
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, err
	}
	return &Record{Kind: KindMovie, Title: m[1], Year: year}, nil
}
