package clock

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		in      string
		hours   int
		minutes int
	}{
		{"kl 14.30", 14, 30},
		{"kl. 14:30", 14, 30},
		{"klockan 9,15", 9, 15},
		{"klockan 9", 9, 0},
		{"klockan tolv", 12, 0},
		{"kl tjugofyra", 0, 0},
		{"halv tre", 2, 30},
		{"halv ett", 0, 30},
		{"halv 12", 11, 30},
		{"kvart över två", 2, 15},
		{"kvart i tre", 2, 45},
		{"kvart i ett", 0, 45},
		{"möte 15:45 med anna", 15, 45},
		{"imorgon halv tre", 2, 30},
	}
	for _, tc := range cases {
		got, ok := Extract(tc.in)
		if !ok {
			t.Fatalf("Extract(%q) found nothing", tc.in)
		}
		if got.Hours != tc.hours || got.Minutes != tc.minutes {
			t.Fatalf("Extract(%q) = %02d:%02d, want %02d:%02d", tc.in, got.Hours, got.Minutes, tc.hours, tc.minutes)
		}
	}
}

func TestExtractNoMatch(t *testing.T) {
	for _, in := range []string{
		"",
		"imorgon",
		"nästa tisdag",
		"06.2025", // month.year, not a clock time
		"2025-12-25",
		"kl 25.30", // hour out of range
		"halv trams",
	} {
		if got, ok := Extract(in); ok {
			t.Fatalf("Extract(%q) = %02d:%02d, want no match", in, got.Hours, got.Minutes)
		}
	}
}

func TestSplitRemovesClockPhrase(t *testing.T) {
	cases := []struct {
		in       string
		rest     string
		hours    int
		minutes  int
	}{
		{"imorgon kl 14.30", "imorgon", 14, 30},
		{"nästa tisdag klockan tolv", "nästa tisdag", 12, 0},
		{"halv tre", "", 2, 30},
		{"den 5 juni kvart i tre", "den 5 juni", 2, 45},
		// "klart" binds the kl prefix first; the real phrase still wins
		{"klart klockan tre", "klart", 3, 0},
		{"kl oj möte kl 9.15", "kl oj möte", 9, 15},
	}
	for _, tc := range cases {
		rest, got, ok := Split(tc.in)
		if !ok {
			t.Fatalf("Split(%q) found nothing", tc.in)
		}
		if rest != tc.rest {
			t.Fatalf("Split(%q) rest = %q, want %q", tc.in, rest, tc.rest)
		}
		if got.Hours != tc.hours || got.Minutes != tc.minutes {
			t.Fatalf("Split(%q) = %02d:%02d, want %02d:%02d", tc.in, got.Hours, got.Minutes, tc.hours, tc.minutes)
		}
	}
}

func TestSplitKeepsInputWithoutClock(t *testing.T) {
	rest, _, ok := Split("förra veckan")
	if ok {
		t.Fatalf("expected no clock match")
	}
	if rest != "förra veckan" {
		t.Fatalf("rest = %q, want input unchanged", rest)
	}
}
