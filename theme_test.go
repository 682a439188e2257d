package savemoney

import "testing"

func TestSettingsVariant(t *testing.T) {
	auto := DefaultSettings() // auto, 22:00 to 05:00

	tests := []struct {
		name  string
		s     Settings
		clock string
		want  Variant
	}{
		{"dark mode at noon", Settings{Mode: ModeDark}, "12:00", Dark},
		{"light mode at night", Settings{Mode: ModeLight}, "23:00", Light},
		{"auto late evening", auto, "23:00", Dark},
		{"auto at window start", auto, "22:00", Dark},
		{"auto early morning", auto, "04:59", Dark},
		{"auto at window end", auto, "05:00", Light},
		{"auto midday", auto, "12:00", Light},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Variant(tt.clock); got != tt.want {
				t.Errorf("Variant(%q) = %s, want %s", tt.clock, got, tt.want)
			}
		})
	}
}

func TestSettingsVariantSameDayWindow(t *testing.T) {
	s := DefaultSettings()
	if err := s.SetAutoDarkWindow("01:00", "03:00"); err != nil {
		t.Fatal(err)
	}
	if got := s.Variant("02:00"); got != Dark {
		t.Errorf("Variant(02:00) = %s, want dark", got)
	}
	if got := s.Variant("23:00"); got != Light {
		t.Errorf("Variant(23:00) = %s, want light", got)
	}
}
