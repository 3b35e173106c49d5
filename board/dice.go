package board

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed dice.yaml
var defaultDiceYAML []byte

// A DiceSet describes the physical dice of a Boggle edition: one string per
// die, one letter per face.
type DiceSet struct {
	Name string   `yaml:"name"`
	Dice []string `yaml:"dice"`
}

// NumFaces returns the face count of the dice, assumed uniform across the set.
func (ds *DiceSet) NumFaces() int {
	if len(ds.Dice) == 0 {
		return 0
	}
	return len(ds.Dice[0])
}

func (ds *DiceSet) validate() error {
	if len(ds.Dice) == 0 {
		return fmt.Errorf("dice set %q has no dice", ds.Name)
	}
	faces := len([]rune(ds.Dice[0]))
	for i, die := range ds.Dice {
		if n := len([]rune(die)); n != faces {
			return fmt.Errorf("dice set %q: die %d has %d faces, want %d",
				ds.Name, i, n, faces)
		}
	}
	return nil
}

// DefaultDiceSet returns the embedded classic 16-die set.
func DefaultDiceSet() *DiceSet {
	ds, err := parseDiceSet(defaultDiceYAML)
	if err != nil {
		// The embedded set is validated by tests; failing to parse it is a
		// build defect, not a runtime condition.
		panic(err)
	}
	return ds
}

// LoadDiceSet reads a dice set definition from a YAML file.
func LoadDiceSet(path string) (*DiceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dice set: %w", err)
	}
	ds, err := parseDiceSet(data)
	if err != nil {
		return nil, fmt.Errorf("parsing dice set %q: %w", path, err)
	}
	return ds, nil
}

func parseDiceSet(data []byte) (*DiceSet, error) {
	ds := &DiceSet{}
	if err := yaml.Unmarshal(data, ds); err != nil {
		return nil, err
	}
	for i, die := range ds.Dice {
		ds.Dice[i] = strings.ToLower(die)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return ds, nil
}
