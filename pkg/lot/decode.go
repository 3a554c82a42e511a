package lot

import (
	"errors"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Decode parses a YAML (or JSON) document holding a list of lots under the
// "lots" key. Lots without an id get a random one so they stay distinguishable.
func Decode(data []byte) ([]Lot, error) {
	var doc struct {
		Lots []Lot `yaml:"lots"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrDecodingLots, err)
	}
	for i := range doc.Lots {
		if doc.Lots[i].ID == uuid.Nil {
			doc.Lots[i].ID = uuid.New()
		}
	}
	return doc.Lots, nil
}
