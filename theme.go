package papertrade

import "fmt"

// Theme selects the display theme persisted alongside the book.
// Rendering the theme is a client concern; the simulator only stores it.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
	ThemeNeon
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	case ThemeNeon:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseTheme parses a theme name.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	case "neon":
		return ThemeNeon, nil
	default:
		return 0, fmt.Errorf("unknown theme: %q", s)
	}
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
