package ui

import (
	"strings"
	"testing"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/tmdb"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		cursor, length, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{-1, 3, 0},
		{1, 3, 1},
		{3, 3, 2},
		{99, 3, 2},
	}
	for _, tc := range cases {
		if got := clamp(tc.cursor, tc.length); got != tc.want {
			t.Fatalf("clamp(%d, %d) = %d, want %d", tc.cursor, tc.length, got, tc.want)
		}
	}
}

func TestListWindow(t *testing.T) {
	// Short lists render whole.
	if start, end := listWindow(3, 10); start != 0 || end != 10 {
		t.Fatalf("listWindow(3, 10) = %d..%d, want 0..10", start, end)
	}
	// The cursor stays inside the window.
	start, end := listWindow(30, 40)
	if 30 < start || 30 >= end {
		t.Fatalf("cursor 30 outside window %d..%d", start, end)
	}
	if end-start != maxListRows {
		t.Fatalf("window size = %d, want %d", end-start, maxListRows)
	}
	// Near the end the window pins to the tail.
	if start, end := listWindow(39, 40); end != 40 || start != 40-maxListRows {
		t.Fatalf("listWindow(39, 40) = %d..%d", start, end)
	}
	if start, _ := listWindow(0, 40); start != 0 {
		t.Fatalf("listWindow(0, 40) start = %d, want 0", start)
	}
}

func TestReleaseYear(t *testing.T) {
	if got := releaseYear("2024-05-01"); got != "2024" {
		t.Fatalf("releaseYear = %q, want 2024", got)
	}
	if got := releaseYear(""); got != "N/A" {
		t.Fatalf("releaseYear of empty = %q, want N/A", got)
	}
}

func TestFormatRuntime(t *testing.T) {
	if got := formatRuntime(136); got != "2h 16m" {
		t.Fatalf("formatRuntime(136) = %q", got)
	}
	if got := formatRuntime(0); got != "N/A" {
		t.Fatalf("formatRuntime(0) = %q", got)
	}
}

func TestFirstTrailer(t *testing.T) {
	videos := &tmdb.VideoList{Results: []tmdb.Video{
		{Key: "clip1", Site: "YouTube", Type: "Clip"},
		{Key: "vimeo1", Site: "Vimeo", Type: "Trailer"},
		{Key: "trailer1", Site: "YouTube", Type: "Trailer"},
	}}
	if got := firstTrailer(videos); got != "trailer1" {
		t.Fatalf("firstTrailer = %q, want trailer1", got)
	}
	if got := firstTrailer(nil); got != "" {
		t.Fatalf("firstTrailer(nil) = %q, want empty", got)
	}
}

func TestTopCast(t *testing.T) {
	credits := &tmdb.Credits{Cast: []tmdb.CastMember{
		{Name: "A"}, {Name: "B"}, {Name: "C"},
	}}
	if got := topCast(credits, 2); got != "A, B" {
		t.Fatalf("topCast = %q, want A, B", got)
	}
	if got := topCast(nil, 2); got != "" {
		t.Fatalf("topCast(nil) = %q, want empty", got)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 9)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 9 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "one two three four" {
		t.Fatalf("wrap lost words: %q", got)
	}
}

func TestThemeFor(t *testing.T) {
	if themeFor(true).Name != "Dark" {
		t.Fatalf("themeFor(true) = %q", themeFor(true).Name)
	}
	if themeFor(false).Name != "Light" {
		t.Fatalf("themeFor(false) = %q", themeFor(false).Name)
	}
}
