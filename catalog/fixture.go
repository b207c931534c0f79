package catalog

import (
	"gopkg.in/yaml.v2"

	"github.com/graphlang/ngqlcore/value"
)

// fixtureSpace is the YAML shape a test fixture describes one space in:
// its tag/edge property lists, keyed by tag/edge name.
type fixtureSpace struct {
	Name  string                       `yaml:"name"`
	Tags  map[string]map[string]string `yaml:"tags"`
	Edges map[string]map[string]string `yaml:"edges"`
}

type fixtureFile struct {
	Spaces []fixtureSpace `yaml:"spaces"`
}

// LoadFixture parses a YAML document of the fixtureFile shape and populates
// a fresh MemCatalog with one space, tag, and edge schema per entry. A
// property's declared type word is resolved with value.ParseTypeName, the
// same mapping the validator's CREATE TAG/EDGE path uses.
func LoadFixture(data []byte) (*MemCatalog, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	cat := NewMemCatalog()
	for _, sp := range f.Spaces {
		if _, err := cat.CreateSpace(sp.Name); err != nil {
			return nil, err
		}
		for tag, props := range sp.Tags {
			defs, err := propertyDefs(props)
			if err != nil {
				return nil, err
			}
			if err := cat.CreateTag(sp.Name, &TagSchema{Name: tag, Props: defs}); err != nil {
				return nil, err
			}
		}
		for edge, props := range sp.Edges {
			defs, err := propertyDefs(props)
			if err != nil {
				return nil, err
			}
			if err := cat.CreateEdge(sp.Name, &EdgeSchema{Name: edge, Props: defs}); err != nil {
				return nil, err
			}
		}
	}
	return cat, nil
}

func propertyDefs(props map[string]string) ([]PropertyDef, error) {
	out := make([]PropertyDef, 0, len(props))
	for name, typeName := range props {
		t, ok := value.ParseTypeName(typeName)
		if !ok {
			return nil, ErrFixtureBadType.New(typeName, name)
		}
		out = append(out, PropertyDef{Name: name, Type: t})
	}
	return out, nil
}
