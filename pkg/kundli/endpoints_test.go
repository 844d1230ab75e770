package kundli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultCatalogCoversAllOperations(t *testing.T) {
	cat := DefaultCatalog()
	if cat.Len() != 32 {
		t.Fatalf("expected 32 endpoints, got %d", cat.Len())
	}

	templated := map[string][]string{
		EndpointHoroChart:          {ParamChartID},
		EndpointGeneralHouseReport: {ParamPlanetName},
		EndpointGeneralRashiReport: {ParamPlanetName},
	}
	for _, ep := range cat.All() {
		want := templated[ep.Name]
		if got := ep.Params(); !reflect.DeepEqual(got, want) {
			t.Fatalf("%s params = %v, want %v", ep.Name, got, want)
		}
		if ep.Family == "" || ep.Description == "" {
			t.Fatalf("%s missing family/description", ep.Name)
		}
	}

	ep, ok := cat.Lookup(EndpointHoroChart)
	if !ok || ep.Path != "/horo_chart/{chart_id}" {
		t.Fatalf("horo_chart lookup = %#v ok=%v", ep, ok)
	}
}

func TestLoadCatalogFromYAMLAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	raw := `
endpoints:
  - name: astro_details
    path: /astro_details/v2/
    family: astro
  - name: sun_sign_prediction
    path: /sun_sign_prediction/daily/{zodiac_name}
    family: Prediction
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	extra, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if extra.Len() != 2 {
		t.Fatalf("expected 2 endpoints, got %d", extra.Len())
	}

	merged := DefaultCatalog().Merge(extra)
	if merged.Len() != 33 {
		t.Fatalf("merged len = %d, want 33", merged.Len())
	}
	if ep, _ := merged.Lookup(EndpointAstroDetails); ep.Path != "/astro_details/v2/" {
		t.Fatalf("override not applied: %#v", ep)
	}
	ep, ok := merged.Lookup("sun_sign_prediction")
	if !ok || ep.Family != "prediction" || ep.Params()[0] != "zodiac_name" {
		t.Fatalf("appended endpoint = %#v ok=%v", ep, ok)
	}
	if orig, _ := DefaultCatalog().Lookup(EndpointAstroDetails); orig.Path != "/astro_details/" {
		t.Fatalf("Merge mutated the default catalog: %#v", orig)
	}
}

func TestParseCatalogJSON(t *testing.T) {
	cat, err := ParseCatalog([]byte(`{"endpoints":[{"name":"x","path":"/x/"}]}`), ".json")
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if _, ok := cat.Lookup("x"); !ok {
		t.Fatalf("x missing")
	}
}

func TestNewCatalogRejectsInvalidEntries(t *testing.T) {
	cases := map[string][]Endpoint{
		"empty":      nil,
		"no name":    {{Path: "/a/"}},
		"no path":    {{Name: "a"}},
		"relative":   {{Name: "a", Path: "a/"}},
		"unbalanced": {{Name: "a", Path: "/a/{b"}},
		"duplicate":  {{Name: "a", Path: "/a/"}, {Name: "a", Path: "/b/"}},
	}
	for name, eps := range cases {
		if _, err := NewCatalog(eps); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
