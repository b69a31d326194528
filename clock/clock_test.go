package clock

import (
	"testing"
	"time"
)

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		name           string
		twentyFourHour bool
		showSeconds    bool
		expected       Layout
	}{
		{"12-hour without seconds", false, false, TwelveHour},
		{"12-hour with seconds", false, true, TwelveHourSeconds},
		{"24-hour without seconds", true, false, TwentyFourHour},
		{"24-hour with seconds", true, true, TwentyFourHourSeconds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LayoutFor(tt.twentyFourHour, tt.showSeconds)
			if got != tt.expected {
				t.Errorf("Expected layout %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestLayoutFormat(t *testing.T) {
	afternoon := time.Date(2025, 12, 15, 15, 5, 0, 0, time.UTC)
	midnight := time.Date(2025, 12, 15, 0, 5, 30, 0, time.UTC)
	morning := time.Date(2025, 12, 15, 9, 7, 3, 0, time.UTC)

	tests := []struct {
		name     string
		layout   Layout
		time     time.Time
		expected string
	}{
		{"12-hour afternoon", TwelveHour, afternoon, "3:05 PM"},
		{"12-hour afternoon with seconds", TwelveHourSeconds, afternoon, "3:05:00 PM"},
		{"24-hour afternoon", TwentyFourHour, afternoon, "15:05"},
		{"24-hour afternoon with seconds", TwentyFourHourSeconds, afternoon, "15:05:00"},
		{"12-hour midnight", TwelveHour, midnight, "12:05 AM"},
		{"12-hour single digit hour", TwelveHourSeconds, morning, "9:07:03 AM"},
		{"24-hour leading zero", TwentyFourHour, morning, "09:07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.layout.Format(tt.time)
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLayoutFormatUnknown(t *testing.T) {
	if _, err := Layout(99).Format(time.Now()); err == nil {
		t.Error("Expected an error for an unknown layout")
	}
}

func TestSourceRender(t *testing.T) {
	fixed := time.Date(2025, 12, 15, 15, 5, 0, 0, time.UTC)
	src := NewSource(TwentyFourHourSeconds)
	src.now = func() time.Time { return fixed }

	got, err := src.Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != "15:05:00" {
		t.Errorf("Expected %q, got %q", "15:05:00", got)
	}
}
