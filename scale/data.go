package scale

import (
	"fmt"

	"github.com/rapidmidiex/rmxharmony/mode"
	"github.com/rapidmidiex/rmxharmony/pitch"
)

// Data is a scale spelled from an explicit tonic label.
type Data struct {
	PitchClasses []pitch.Class `json:"pitchClasses"`
	Spelled      []string      `json:"spelled"`
	Names        []pitch.Name  `json:"-"`
}

// BuildData spells the named mode from the given tonic label, keeping the
// label's own letter ("C#" and "Db" give different spellings).
func BuildData(tonicLabel, modeName string) (Data, error) {
	tonic, err := pitch.ParseName(tonicLabel)
	if err != nil {
		return Data{}, fmt.Errorf("tonic: %w", err)
	}
	idx, err := mode.ByName(modeName)
	if err != nil {
		return Data{}, err
	}

	pcs := Build(tonic.Class(), mode.At(idx))
	names := Spell(tonic.Letter, tonic.Bias(), pcs)
	return Data{
		PitchClasses: pcs,
		Spelled:      Strings(names),
		Names:        names,
	}, nil
}
