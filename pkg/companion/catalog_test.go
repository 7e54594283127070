package companion

import (
	"strings"
	"testing"
	"testing/fstest"
)

const testCatalogYAML = `
stops:
  - id: "14111"
    name: "Dundas West Station"
    operator: "Toronto TTC"
  - id: "BL"
    name: "Bloor GO"
    operator: "GO Transit"
routes:
  - id: "505"
    number: "505"
    name: "505-Dundas"
    color: "ed1c24"
    operator: "Toronto TTC"
    destinations:
      0: "Broadview Station"
      1: "Dundas West Station"
  - id: "KI"
    number: "KI"
    name: "Kitchener"
    color: "00853f"
    vehicle: "regional_train"
    shape: "rect"
    operator: "GO Transit"
    destinations:
      0: "KI - Union Station"
`

func TestLoadCatalog(t *testing.T) {
	fsys := fstest.MapFS{"catalog.yaml": {Data: []byte(testCatalogYAML)}}
	c, err := LoadCatalog(fsys, "catalog.yaml")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if s, ok := c.Stop("BL"); !ok || s.Name != "Bloor GO" {
		t.Errorf("Stop(BL) = %+v, %v", s, ok)
	}
	r, ok := c.Route("505")
	if !ok {
		t.Fatal("route 505 not found")
	}
	if r.Destinations[1] != "Dundas West Station" {
		t.Errorf("direction 1 destination = %q", r.Destinations[1])
	}
	if _, ok := c.Route("999"); ok {
		t.Error("unknown route should not be found")
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"missing file", "", "failed to read"},
		{"bad yaml", "stops: [", "failed to parse"},
		{"stop without name", "stops:\n  - id: \"1\"\n", "id and name are required"},
		{"duplicate stop", "stops:\n  - {id: \"1\", name: a}\n  - {id: \"1\", name: b}\n", "duplicate stop"},
		{"bad color", "routes:\n  - {id: \"1\", color: \"xyz\"}\n", "route 1"},
		{"bad vehicle", "routes:\n  - {id: \"1\", vehicle: \"ferry\"}\n", "route 1"},
		{"bad shape", "routes:\n  - {id: \"1\", shape: \"star\"}\n", "route 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			if tt.yaml != "" {
				fsys["catalog.yaml"] = &fstest.MapFile{Data: []byte(tt.yaml)}
			}
			_, err := LoadCatalog(fsys, "catalog.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
