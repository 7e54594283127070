package sprites

import (
	"testing"

	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/transit"
)

func testVehicleConfig() *config.VehicleConfig {
	base := config.VehicleSpriteConfig{
		Frames: 10, Width: 36, Height: 72, Doors: 2,
		Body: "e21b23", Door: "1a1a1a", Windows: 4,
	}
	subway := base
	subway.Frames = 12
	subway.Doors = 3
	return &config.VehicleConfig{Vehicles: map[string]config.VehicleSpriteConfig{
		"streetcar":      base,
		"subway":         subway,
		"bus":            base,
		"regional_train": base,
	}}
}

func TestNewSequences(t *testing.T) {
	seqs, err := NewSequences(testVehicleConfig())
	if err != nil {
		t.Fatalf("NewSequences failed: %v", err)
	}

	if got := seqs.For(transit.VehicleSubway).Len(); got != 12 {
		t.Errorf("subway frames = %d, want 12", got)
	}
	if got := seqs.For(transit.VehicleType(42)).Vehicle(); got != transit.VehicleStreetcar {
		t.Errorf("unknown vehicle should fall back to streetcar, got %s", got)
	}
}

func TestNewSequences_MissingVehicle(t *testing.T) {
	cfg := testVehicleConfig()
	delete(cfg.Vehicles, "bus")
	if _, err := NewSequences(cfg); err == nil {
		t.Error("expected error for missing bus config")
	}
}

func TestNewSequence_BadColor(t *testing.T) {
	cfg := testVehicleConfig().Vehicles["bus"]
	cfg.Body = "zz0000"
	if _, err := NewSequence(transit.VehicleBus, cfg); err == nil {
		t.Error("expected error for invalid body color")
	}
}

func TestDoorOpenings(t *testing.T) {
	seq, err := NewSequence(transit.VehicleStreetcar, testVehicleConfig().Vehicles["streetcar"])
	if err != nil {
		t.Fatal(err)
	}

	slots := seq.DoorSlots()
	if len(slots) != 2 {
		t.Fatalf("expected 2 door slots, got %d", len(slots))
	}

	tests := []struct {
		name      string
		frame     int
		wantCount int
		wantFull  bool
	}{
		{"closed", 0, 0, false},
		{"negative clamps to closed", -5, 0, false},
		{"half open", 5, 2, false},
		{"fully open", 9, 2, true},
		{"past end clamps to open", 100, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			openings := seq.DoorOpenings(tt.frame)
			if len(openings) != tt.wantCount {
				t.Fatalf("got %d openings, want %d", len(openings), tt.wantCount)
			}
			for i, o := range openings {
				if !o.In(slots[i]) {
					t.Errorf("opening %v outside door slot %v", o, slots[i])
				}
				if tt.wantFull && o.Dy() != slots[i].Dy() {
					t.Errorf("fully open door should fill its slot: %v vs %v", o, slots[i])
				}
			}
		})
	}
}

func TestDoorOpeningsGrowMonotonically(t *testing.T) {
	seq, err := NewSequence(transit.VehicleSubway, testVehicleConfig().Vehicles["subway"])
	if err != nil {
		t.Fatal(err)
	}
	prev := 0
	for f := 0; f < seq.Len(); f++ {
		h := 0
		for _, o := range seq.DoorOpenings(f) {
			h += o.Dy()
		}
		if h < prev {
			t.Errorf("frame %d opening %d smaller than previous %d", f, h, prev)
		}
		prev = h
	}
}

func TestWindowsInsideBody(t *testing.T) {
	seq, err := NewSequence(transit.VehicleBus, testVehicleConfig().Vehicles["bus"])
	if err != nil {
		t.Fatal(err)
	}
	body := seq.Size()
	for _, w := range seq.Windows() {
		if w.Min.X < 0 || w.Min.Y < 0 || w.Max.X > body.X || w.Max.Y > body.Y {
			t.Errorf("window %v outside body %v", w, body)
		}
	}
}
