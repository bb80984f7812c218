package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendOverwrite(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2024, 1, 1), 1).Append(New(2024, 1, 3), 3).Append(New(2024, 1, 2), 2)
	h.Append(New(2024, 1, 2), 20)

	if h.Len() != 3 {
		t.Fatalf("Len() = %d want 3", h.Len())
	}
	want := []float64{1, 20, 3}
	i := 0
	for _, v := range h.Values() {
		if v != want[i] {
			t.Errorf("value[%d] = %v want %v", i, v, want[i])
		}
		i++
	}
}

func TestGetAndLatest(t *testing.T) {
	h := new(History[float64])
	if _, v := h.Latest(); v != 0 {
		t.Errorf("empty Latest() = %v want 0", v)
	}
	h.Append(New(2024, 1, 10), 10).Append(New(2024, 1, 1), 1)

	if v, ok := h.Get(New(2024, 1, 10)); !ok || v != 10 {
		t.Errorf("Get(2024-01-10) = %v, %v want 10, true", v, ok)
	}
	if _, ok := h.Get(New(2024, 1, 5)); ok {
		t.Errorf("Get(2024-01-05) found a value, want none")
	}
	if day, v := h.Latest(); day != New(2024, 1, 10) || v != 10 {
		t.Errorf("Latest() = %v, %v want 2024-01-10, 10", day, v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2024, 1, 1), 1).Append(New(2024, 1, 10), 10)

	tests := []struct {
		on     Date
		want   float64
		wantOk bool
	}{
		{New(2023, 12, 31), 0, false},
		{New(2024, 1, 1), 1, true},
		{New(2024, 1, 5), 1, true},
		{New(2024, 2, 1), 10, true},
	}
	for _, tt := range tests {
		got, ok := h.ValueAsOf(tt.on)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tt.on, got, ok, tt.want, tt.wantOk)
		}
	}
}
