package domain

type ThemeColor string

const (
	ThemeSlate  ThemeColor = "slate"
	ThemeBlue   ThemeColor = "blue"
	ThemeGreen  ThemeColor = "green"
	ThemeRed    ThemeColor = "red"
	ThemePurple ThemeColor = "purple"
	ThemeOrange ThemeColor = "orange"
)

var ThemeColors = []ThemeColor{ThemeSlate, ThemeBlue, ThemeGreen, ThemeRed, ThemePurple, ThemeOrange}

// ParseThemeColor returns ErrInvalidTheme for colors outside ThemeColors.
func ParseThemeColor(value string) (ThemeColor, error) {
	for _, c := range ThemeColors {
		if string(c) == value {
			return c, nil
		}
	}
	return "", ErrInvalidTheme
}

type Appearance struct {
	Theme ThemeColor
	Dark  bool
}

// DocumentAttributes are the root element attributes the page applies for this appearance.
func (a Appearance) DocumentAttributes() map[string]string {
	attrs := map[string]string{"data-theme": string(a.Theme)}
	if a.Dark {
		attrs["class"] = "dark"
	}
	return attrs
}
