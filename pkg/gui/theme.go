package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name   string      `json:"name"`
	Filled tcell.Color `json:"filled"`
	Active tcell.Color `json:"active"`
	Empty  tcell.Color `json:"empty"`
	Border tcell.Color `json:"border"`
	Score  tcell.Color `json:"score"`
	Msg    tcell.Color `json:"msg"`
}

// ThemeHex is the form themes take in a themes file
type ThemeHex struct {
	Name   string `json:"name"`
	Filled string `json:"filled"`
	Active string `json:"active"`
	Empty  string `json:"empty"`
	Border string `json:"border"`
	Score  string `json:"score"`
	Msg    string `json:"msg"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Filled.Hex()),
		fmtHex(t.Active.Hex()),
		fmtHex(t.Empty.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Score.Hex()),
		fmtHex(t.Msg.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Filled),
		tcell.GetColor(t.Active),
		tcell.GetColor(t.Empty),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Score),
		tcell.GetColor(t.Msg),
	}
}

var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, ErrNoTheme
}

// LoadThemes reads a JSON array of ThemeHex from path
func LoadThemes(path string) ([]ThemeHex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}

	return themes, nil
}

// Lookup finds want among the built-in themes, then in the themes file when
// one is given. The file wins on a name clash.
func Lookup(want, path string) (Theme, error) {
	if path != "" {
		themes, err := LoadThemes(path)
		if err != nil {
			return Theme{}, err
		}

		if t, err := ImportThemes(want, themes); err == nil {
			return t, nil
		}
	}

	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, ErrNoTheme
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color45,  // Filled
	tcell.Color226, // Active
	tcell.Color238, // Empty
	tcell.Color247, // Border
	tcell.Color247, // Score
	tcell.Color160, // Msg
}

// ThemeMono uses the terminal colors only
var ThemeMono = Theme{
	"mono",             // Name
	tcell.ColorDefault, // Filled
	tcell.ColorDefault, // Active
	tcell.ColorDefault, // Empty
	tcell.ColorDefault, // Border
	tcell.ColorDefault, // Score
	tcell.ColorDefault, // Msg
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeMono}
