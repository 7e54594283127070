package config

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadVehicleConfig(t *testing.T) {
	valid := `
vehicles:
  streetcar:
    frames: 10
    width: 40
    height: 64
    doors: 2
    body: "e21b23"
    door: "202020"
    windows: 3
    overheadWire: true
  bus:
    frames: 8
    width: 36
    height: 60
    doors: 2
    body: "e21b23"
    door: "202020"
`
	fsys := fstest.MapFS{"vehicles.yaml": &fstest.MapFile{Data: []byte(valid)}}
	cfg, err := LoadVehicleConfig(fsys, "vehicles.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	streetcar, ok := cfg.Vehicles["streetcar"]
	if !ok {
		t.Fatal("streetcar entry missing")
	}
	if streetcar.Frames != 10 || !streetcar.OverheadWire {
		t.Errorf("unexpected streetcar config: %+v", streetcar)
	}
	if cfg.Vehicles["bus"].OverheadWire {
		t.Error("bus should not have an overhead wire")
	}
}

func TestVehicleConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         VehicleConfig
		errContains string
	}{
		{"empty", VehicleConfig{}, "no vehicles"},
		{"one frame", VehicleConfig{Vehicles: map[string]VehicleSpriteConfig{
			"bus": {Frames: 1, Width: 10, Height: 10},
		}}, "frames"},
		{"zero size", VehicleConfig{Vehicles: map[string]VehicleSpriteConfig{
			"bus": {Frames: 4},
		}}, "invalid size"},
		{"negative doors", VehicleConfig{Vehicles: map[string]VehicleSpriteConfig{
			"bus": {Frames: 4, Width: 10, Height: 10, Doors: -1},
		}}, "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}
