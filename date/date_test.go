package date

import (
	"testing"
	"time"
)

// TestTime assert that the Time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.Time() != d2.Time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid Time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, time.February, 30), New(2024, time.March, 1); got != want {
		t.Errorf("New(2024, 2, 30) = %v want %v", got, want)
	}
	if got, want := New(2024, time.December, 31).Add(1), New(2025, time.January, 1); got != want {
		t.Errorf("Add(1) = %v want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, 7, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"01-07-2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDMY(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"05-01-2024", New(2024, 1, 5), false},
		{"05/01/2024", New(2024, 1, 5), false},
		{"5/1/2024", New(2024, 1, 5), false},
		{" 31-12-2023 ", New(2023, 12, 31), false},
		{"2024-01-05", Date{}, true},
		{"32-01-2024", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDMY(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDMY(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDMY(%q) = %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAny(t *testing.T) {
	for _, in := range []string{"2024-01-05", "05-01-2024", "05/01/2024"} {
		got, err := ParseAny(in)
		if err != nil {
			t.Errorf("ParseAny(%q) unexpected error %v", in, err)
			continue
		}
		if want := New(2024, 1, 5); got != want {
			t.Errorf("ParseAny(%q) = %v want %v", in, got, want)
		}
	}
}

func TestDMY(t *testing.T) {
	if got, want := New(2024, 1, 5).DMY(), "05-01-2024"; got != want {
		t.Errorf("DMY() = %q want %q", got, want)
	}
}

func TestJSON(t *testing.T) {
	d := New(2024, 3, 9)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error %v", err)
	}
	if string(b) != `"2024-03-09"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
	var got Date
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() unexpected error %v", err)
	}
	if got != d {
		t.Errorf("UnmarshalJSON() = %v want %v", got, d)
	}
}
