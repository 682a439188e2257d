package savemoney

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// settingsFile is the well-known name of the settings file, relative to
// the application config directory.
const settingsFile = "savemoney/settings.yaml"

// ThemeMode selects how the display variant is chosen.
type ThemeMode string

const (
	ModeDark  ThemeMode = "dark"
	ModeLight ThemeMode = "light"
	// ModeAuto picks dark or light from the wall clock and the
	// configured night window.
	ModeAuto ThemeMode = "auto"
)

// ParseThemeMode validates a user-supplied mode.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch m := ThemeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDark, ModeLight, ModeAuto:
		return m, nil
	default:
		return "", &ValidationError{Field: "mode", Reason: fmt.Sprintf("%q is not one of dark, light, auto", s)}
	}
}

// ThemeName selects the color palette, independent of the dark/light
// variant.
type ThemeName string

const (
	ThemeDefault ThemeName = "default"
	ThemeOcean   ThemeName = "ocean"
	ThemeForest  ThemeName = "forest"
	ThemeSunset  ThemeName = "sunset"
	ThemeSpace   ThemeName = "space"
)

// ParseThemeName validates a user-supplied theme name.
func ParseThemeName(s string) (ThemeName, error) {
	switch t := ThemeName(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDefault, ThemeOcean, ThemeForest, ThemeSunset, ThemeSpace:
		return t, nil
	default:
		return "", &ValidationError{Field: "theme", Reason: fmt.Sprintf("%q is not one of default, ocean, forest, sunset, space", s)}
	}
}

// Language identifies a translation table.
type Language string

const (
	Indonesian Language = "id"
	English    Language = "en"
)

// ParseLanguage validates a user-supplied language code.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case Indonesian, English:
		return l, nil
	default:
		return "", &ValidationError{Field: "language", Reason: fmt.Sprintf("%q is not one of id, en", s)}
	}
}

// PINLength is the required number of digits in the access PIN.
const PINLength = 4

// Settings holds the persisted user preferences. An empty PIN means the
// PIN lock is disabled.
type Settings struct {
	Mode      ThemeMode `yaml:"mode"`
	Theme     ThemeName `yaml:"theme"`
	Language  Language  `yaml:"language"`
	DarkStart string    `yaml:"dark-start"`
	DarkEnd   string    `yaml:"dark-end"`
	PIN       string    `yaml:"pin,omitempty"`
}

// DefaultSettings returns the out-of-the-box preferences: auto variant
// with a 22:00 to 05:00 night window, default palette, Indonesian.
func DefaultSettings() Settings {
	return Settings{
		Mode:      ModeAuto,
		Theme:     ThemeDefault,
		Language:  Indonesian,
		DarkStart: "22:00",
		DarkEnd:   "05:00",
	}
}

// DefaultSettingsPath resolves the settings location under the XDG
// config home.
func DefaultSettingsPath() (string, error) {
	path, err := xdg.ConfigFile(settingsFile)
	if err != nil {
		return "", fmt.Errorf("could not resolve config path: %w", err)
	}
	return path, nil
}

// LoadSettings reads the settings file. A missing or unparseable file
// falls back to the defaults, mirroring how the ledger snapshot loads.
func LoadSettings(path string) Settings {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings()
	}
	if err != nil {
		log.Printf("warning: could not read settings %q, using defaults: %v", path, err)
		return DefaultSettings()
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(b, &s); err != nil {
		log.Printf("warning: corrupt settings %q, using defaults: %v", path, err)
		return DefaultSettings()
	}
	return s.normalize()
}

// normalize repairs fields that came out of an older or hand-edited
// file, falling back per field rather than discarding the whole file.
func (s Settings) normalize() Settings {
	def := DefaultSettings()
	if _, err := ParseThemeMode(string(s.Mode)); err != nil {
		s.Mode = def.Mode
	}
	if _, err := ParseThemeName(string(s.Theme)); err != nil {
		s.Theme = def.Theme
	}
	if _, err := ParseLanguage(string(s.Language)); err != nil {
		s.Language = def.Language
	}
	if _, err := ParseClock(s.DarkStart); err != nil || s.DarkStart == "" {
		s.DarkStart = def.DarkStart
	}
	if _, err := ParseClock(s.DarkEnd); err != nil || s.DarkEnd == "" {
		s.DarkEnd = def.DarkEnd
	}
	return s
}

// SaveSettings writes the settings file, creating the parent directory
// if needed.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal settings: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("could not write settings %q: %w", path, err)
	}
	return nil
}

// SetAutoDarkWindow replaces the night window used by the auto mode.
// Start and end are HH:MM wall-clock times; the window may cross
// midnight.
func (s *Settings) SetAutoDarkWindow(start, end string) error {
	st, err := ParseClock(start)
	if err != nil {
		return &ValidationError{Field: "dark-start", Reason: err.Error()}
	}
	en, err := ParseClock(end)
	if err != nil {
		return &ValidationError{Field: "dark-end", Reason: err.Error()}
	}
	s.DarkStart, s.DarkEnd = st, en
	return nil
}

// SetPIN enables the PIN lock. The PIN is exactly four digits.
func (s *Settings) SetPIN(pin string) error {
	if len(pin) != PINLength {
		return &ValidationError{Field: "pin", Reason: fmt.Sprintf("must be exactly %d digits", PINLength)}
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return &ValidationError{Field: "pin", Reason: "must contain only digits"}
		}
	}
	s.PIN = pin
	return nil
}

// DisablePIN turns the PIN lock off.
func (s *Settings) DisablePIN() { s.PIN = "" }

// PINEnabled reports whether a PIN is set.
func (s Settings) PINEnabled() bool { return s.PIN != "" }

// VerifyPIN checks a candidate against the stored PIN. It is false when
// no PIN is set.
func (s Settings) VerifyPIN(pin string) bool {
	return s.PIN != "" && s.PIN == pin
}
