package movie_api

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

type ArgType string

const (
	ArgTypeArray  ArgType = "array"
	ArgTypeString ArgType = "string"
)

type Entry struct {
	Key   string
	Value string
}

// Entries is an ordered key/value list read from a yaml mapping.
// It is encoded to JSON as an object with the same key order.
type Entries []Entry

func (e *Entries) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Errorf("expected mapping at line %d", value.Line)
	}
	res := make(Entries, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		res = append(res, Entry{
			Key:   value.Content[i].Value,
			Value: value.Content[i+1].Value,
		})
	}
	*e = res
	return nil
}

func (e Entries) MarshalJSON() ([]byte, error) {
	m := NewOrderedMap[string]()
	for _, v := range e {
		m.Set(v.Key, v.Value)
	}
	return json.Marshal(m)
}

func (e Entries) Keys() []string {
	keys := make([]string, 0, len(e))
	for _, v := range e {
		keys = append(keys, v.Key)
	}
	return keys
}

func (e Entries) Has(key string) bool {
	for _, v := range e {
		if v.Key == key {
			return true
		}
	}
	return false
}

type ManifestFilters struct {
	Sorters Entries `yaml:"sorters" json:"sorters"`
	Genres  Entries `yaml:"genres" json:"genres"`
}

type ManifestDefaults struct {
	APIURL []string `yaml:"api_url" json:"apiUrl"`
	Lang   string   `yaml:"lang" json:"lang"`
}

// Manifest is the declarative description of the provider consumed by the host.
type Manifest struct {
	Name     string           `yaml:"name" json:"name"`
	UniqueID string           `yaml:"unique_id" json:"uniqueId"`
	TabName  string           `yaml:"tab_name" json:"tabName"`
	Type     ItemType         `yaml:"type" json:"type"`
	Filters  ManifestFilters  `yaml:"filters" json:"filters"`
	Defaults ManifestDefaults `yaml:"defaults" json:"defaults"`
	Args     Entries          `yaml:"args" json:"args"`
}

func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	if m.Name == "" {
		return nil, errors.New("manifest name is empty")
	}
	if m.UniqueID == "" {
		return nil, errors.New("manifest unique_id is empty")
	}
	if _, ok := idFields[m.UniqueID]; !ok {
		return nil, errors.Errorf("manifest unique_id %q is not an item field", m.UniqueID)
	}
	if m.Type == "" {
		m.Type = ItemTypeMovie
	}
	for _, a := range m.Args {
		switch ArgType(a.Value) {
		case ArgTypeArray, ArgTypeString:
		default:
			return nil, errors.Errorf("unknown arg type %q for %q", a.Value, a.Key)
		}
	}
	return m, nil
}

// LoadManifest reads manifest from path or returns the built-in one if path is empty.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return ParseManifest(defaultManifest)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read manifest %v", path)
	}
	return ParseManifest(data)
}
