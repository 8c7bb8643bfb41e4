package classify

import "testing"

func TestClassifyEpisodes(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		series  string
		season  int
		episode int
	}{
		{"explicit season episode", "Show Name S02E05 extra.mkv", "show name", 2, 5},
		{"underscores and noise", "Show_Name_S01E02_x264.mp4", "show name", 1, 2},
		{"dash episode", "Series Name - 13.mkv", "series name", 1, 13},
		{"dash episode with suffix", "Series Name - 13 end.mkv", "series name", 1, 13},
		{"dash episode revision", "Show - 05v2.mkv", "show", 1, 5},
		{"release tags stripped", "[HorribleSubs] Show - 05 [720p].mkv", "show", 1, 5},
		{"quoted title", "Series e05 'pilot'.mkv", "series", 1, 5},
		{"bare trailing integer", "Show Name 2.mkv", "show name", 1, 2},
		{"bare integer with parens", "Some Show 05 (720p).mkv", "some show", 1, 5},
	}

	c := New(nil, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := c.Classify(tc.path)
			if err != nil {
				t.Fatalf("Classify(%q): %v", tc.path, err)
			}
			if rec.Kind != KindEpisode {
				t.Fatalf("Classify(%q) kind = %s, want episode", tc.path, rec.Kind)
			}
			if rec.Series != tc.series || rec.Season != tc.season || rec.Episode != tc.episode {
				t.Fatalf("Classify(%q) = %v, want %q s%d e%d", tc.path, rec, tc.series, tc.season, tc.episode)
			}
		})
	}
}

func TestClassifyMovies(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		title string
		year  int
	}{
		{"plain year", "Some Movie 1999.mkv", "some movie", 1999},
		{"dotted with quality suffix", "Some.Movie.1999.1080p.mkv", "some movie", 1999},
	}

	c := New(nil, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := c.Classify(tc.path)
			if err != nil {
				t.Fatalf("Classify(%q): %v", tc.path, err)
			}
			if rec.Kind != KindMovie {
				t.Fatalf("Classify(%q) kind = %s, want movie", tc.path, rec.Kind)
			}
			if rec.Title != tc.title || rec.Year != tc.year {
				t.Fatalf("Classify(%q) = %v, want %q (%d)", tc.path, rec, tc.title, tc.year)
			}
		})
	}
}

func TestClassifyGarbage(t *testing.T) {
	c := New(nil, nil)
	for _, ext := range DefaultGarbageExtensions {
		path := "Show Name S02E05 extra." + ext
		rec, err := c.Classify(path)
		if err != nil {
			t.Fatalf("Classify(%q): %v", path, err)
		}
		if rec.Kind != KindGarbage {
			t.Fatalf("Classify(%q) kind = %s, want garbage", path, rec.Kind)
		}
	}
}

func TestClassifyUnrecognized(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unknown extension", "document.docx"},
		{"no extension", "README"},
		{"no pattern", "randomfile.mkv"},
		{"quality token is not a year", "movie 1080p.mkv"},
		{"season marker without trailing text", "show s02e05.mkv"},
		{"quoted form broken by suffix", "name e05 end 'title'.mkv"},
		{"season number overflow", "show s99999999999999999999e01 extra.mkv"},
	}

	c := New(nil, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := c.Classify(tc.path)
			if err == nil {
				t.Fatalf("Classify(%q) = %v, want diagnostic error", tc.path, rec)
			}
			if rec != nil {
				t.Fatalf("Classify(%q) returned record %v alongside error", tc.path, rec)
			}
		})
	}
}

func TestClassifyCustomExtensions(t *testing.T) {
	c := New([]string{".AVI"}, []string{"log"})
	if rec, err := c.Classify("Show Name S02E05 extra.avi"); err != nil || rec.Kind != KindEpisode {
		t.Fatalf("custom video extension: rec=%v err=%v", rec, err)
	}
	if rec, err := c.Classify("whatever.log"); err != nil || rec.Kind != KindGarbage {
		t.Fatalf("custom garbage extension: rec=%v err=%v", rec, err)
	}
	if _, err := c.Classify("something.mkv"); err == nil {
		t.Fatal("default video extension should be replaced by the custom list")
	}
}
