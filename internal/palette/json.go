package palette

import (
	"encoding/json"

	"github.com/jmylchreest/palettecore/internal/colorspace"
)

// swatchJSON mirrors the canonical swatch output shape: color, population,
// and coordinate as siblings.
type swatchJSON struct {
	Color      colorspace.Color `json:"color"`
	Population int              `json:"population"`
	Coordinate Coordinate       `json:"coordinate"`
}

// MarshalJSON renders the swatch as { color, population, coordinate }.
func (s Swatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(swatchJSON{
		Color:      s.Color,
		Population: s.Population,
		Coordinate: s.Coordinate,
	})
}

// UnmarshalJSON reconstructs a Swatch from its marshaled shape.
func (s *Swatch) UnmarshalJSON(data []byte) error {
	var sj swatchJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}
	*s = Swatch{Color: sj.Color, Population: sj.Population, Coordinate: sj.Coordinate}
	return nil
}
