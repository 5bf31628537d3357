package domain

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Difficulty
	}{
		{"easy", "easy", Easy},
		{"medium", "medium", Medium},
		{"hard", "hard", Hard},
		{"mixed case", " EaSy ", Easy},
		{"unrecognized", "nightmare", Medium},
		{"empty", "", Medium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDifficulty(tt.in); got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuota(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 40},
		{Medium, 50},
		{Hard, 60},
		{Difficulty(-1), 50},
		{Difficulty(99), 50},
	}
	for _, tt := range tests {
		if got := tt.d.Quota(); got != tt.want {
			t.Errorf("Quota(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestDifficultyStringRoundTrip(t *testing.T) {
	for _, d := range Difficulties() {
		if got := ParseDifficulty(d.String()); got != d {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", d.String(), got, d)
		}
	}
}
