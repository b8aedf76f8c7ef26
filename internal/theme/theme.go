package theme

import (
	"fmt"

	"github.com/jmylchreest/palettecore/internal/palette"
)

// Name identifies a built-in strategy.
type Name string

const (
	NameBasic Name = "basic"
	NameVivid Name = "vivid"
	NameMuted Name = "muted"
	NameLight Name = "light"
	NameDark  Name = "dark"
)

// Names lists every built-in strategy name, in the order theme strategies
// are documented.
func Names() []Name {
	return []Name{NameBasic, NameVivid, NameMuted, NameLight, NameDark}
}

// New returns the strategy registered under name, or an error naming the
// valid choices if name is unrecognized.
func New(name Name) (palette.Strategy, error) {
	switch name {
	case NameBasic, "":
		return Basic(), nil
	case NameVivid:
		return Vivid(), nil
	case NameMuted:
		return Muted(), nil
	case NameLight:
		return Light(), nil
	case NameDark:
		return Dark(), nil
	default:
		return nil, fmt.Errorf("unknown theme strategy: %q (valid strategies: %v)", name, Names())
	}
}
