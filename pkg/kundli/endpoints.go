package kundli

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed endpoints.yaml
var embeddedEndpoints []byte

// templateToken matches a {name} path segment.
var templateToken = regexp.MustCompile(`\{([^{}/]+)\}`)

// Endpoint describes one remote operation.
type Endpoint struct {
	Name        string `json:"name" yaml:"name"`
	Path        string `json:"path" yaml:"path"`
	Family      string `json:"family" yaml:"family"`
	Description string `json:"description" yaml:"description"`
}

// Params returns the template parameter names in Path, in order of appearance.
func (e Endpoint) Params() []string {
	matches := templateToken.FindAllStringSubmatch(e.Path, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// Templated reports whether the path carries template parameters.
func (e Endpoint) Templated() bool {
	return templateToken.MatchString(e.Path)
}

// checkParams verifies every template parameter has a non-empty value.
func (e Endpoint) checkParams(params PathParams) error {
	for _, name := range e.Params() {
		if strings.TrimSpace(params[name]) == "" {
			return &MissingParamError{Endpoint: e.Name, Param: name}
		}
	}
	return nil
}

// Catalog is an immutable, name-indexed set of endpoints.
type Catalog struct {
	endpoints []Endpoint
	idx       map[string]Endpoint
}

type catalogFile struct {
	Endpoints []Endpoint `json:"endpoints" yaml:"endpoints"`
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(embeddedEndpoints, ".yaml")
	if err != nil {
		panic(fmt.Sprintf("kundli: embedded endpoint table: %v", err))
	}
	return c
})

// DefaultCatalog returns the endpoint table compiled into the package.
func DefaultCatalog() *Catalog { return defaultCatalog() }

// NewCatalog validates endpoints and builds a catalog from them.
func NewCatalog(endpoints []Endpoint) (*Catalog, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("endpoint table contains no endpoints")
	}

	c := &Catalog{
		endpoints: make([]Endpoint, len(endpoints)),
		idx:       make(map[string]Endpoint, len(endpoints)),
	}
	for i := range endpoints {
		ep := sanitizeEndpoint(endpoints[i])
		if err := validateEndpoint(ep); err != nil {
			return nil, fmt.Errorf("endpoints[%d]: %w", i, err)
		}
		if _, exists := c.idx[ep.Name]; exists {
			return nil, fmt.Errorf("duplicate endpoint name %q", ep.Name)
		}
		c.endpoints[i] = ep
		c.idx[ep.Name] = ep
	}
	return c, nil
}

// LoadCatalog reads an endpoint table from a YAML/JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("endpoints file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open endpoints file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}
	return ParseCatalog(raw, filepath.Ext(path))
}

// ParseCatalog decodes an endpoint table. ext selects the decoder (".yaml",
// ".yml", ".json"); an empty ext tries each in turn.
func ParseCatalog(data []byte, ext string) (*Catalog, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var file catalogFile
		if err := d.fn(data, &file); err != nil {
			continue
		}
		return NewCatalog(file.Endpoints)
	}

	return nil, errors.New("endpoints file format not recognized (expected YAML or JSON)")
}

// Lookup returns the endpoint registered under name.
func (c *Catalog) Lookup(name string) (Endpoint, bool) {
	if c == nil {
		return Endpoint{}, false
	}
	ep, ok := c.idx[strings.TrimSpace(name)]
	return ep, ok
}

// All returns the endpoints in table order.
func (c *Catalog) All() []Endpoint {
	if c == nil {
		return nil
	}
	out := make([]Endpoint, len(c.endpoints))
	copy(out, c.endpoints)
	return out
}

// Len returns the number of endpoints.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.endpoints)
}

// Merge returns a new catalog with other's endpoints layered over c's.
// Entries with an existing name replace it in place; new names are appended.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	if other == nil || other.Len() == 0 {
		return c
	}
	if c == nil || c.Len() == 0 {
		return other
	}

	out := &Catalog{
		endpoints: c.All(),
		idx:       make(map[string]Endpoint, len(c.idx)+len(other.idx)),
	}
	pos := make(map[string]int, len(out.endpoints))
	for i, ep := range out.endpoints {
		pos[ep.Name] = i
	}
	for _, ep := range other.endpoints {
		if i, ok := pos[ep.Name]; ok {
			out.endpoints[i] = ep
			continue
		}
		pos[ep.Name] = len(out.endpoints)
		out.endpoints = append(out.endpoints, ep)
	}
	for _, ep := range out.endpoints {
		out.idx[ep.Name] = ep
	}
	return out
}

func sanitizeEndpoint(ep Endpoint) Endpoint {
	ep.Name = strings.TrimSpace(ep.Name)
	ep.Path = strings.TrimSpace(ep.Path)
	ep.Family = strings.ToLower(strings.TrimSpace(ep.Family))
	ep.Description = strings.TrimSpace(ep.Description)
	return ep
}

func validateEndpoint(ep Endpoint) error {
	if ep.Name == "" {
		return errors.New("name is required")
	}
	if ep.Path == "" {
		return fmt.Errorf("path is required for endpoint %q", ep.Name)
	}
	if !strings.HasPrefix(ep.Path, "/") {
		return fmt.Errorf("path for endpoint %q must start with '/'", ep.Name)
	}
	if rest := templateToken.ReplaceAllString(ep.Path, ""); strings.ContainsAny(rest, "{}") {
		return fmt.Errorf("path for endpoint %q has an unbalanced template token", ep.Name)
	}
	return nil
}
