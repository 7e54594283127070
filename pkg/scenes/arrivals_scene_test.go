package scenes

import (
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/transitface/pkg/companion"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/game"
	"github.com/decker502/transitface/pkg/systems"
	"github.com/decker502/transitface/pkg/transit"
	"github.com/decker502/transitface/pkg/utils"
)

const frame = time.Second / 60

func newTestScene(t *testing.T) *ArrivalsScene {
	t.Helper()
	rm := game.NewResourceManager(os.DirFS("../.."))
	cfg, err := config.LoadAppConfig(rm.FS(), "data/config.yaml")
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	scene, err := NewArrivalsScene(rm, cfg)
	if err != nil {
		t.Fatalf("NewArrivalsScene: %v", err)
	}
	t.Cleanup(func() { scene.Close() })
	return scene
}

// waitReady 推进场景直到收到路线数据
func waitReady(t *testing.T, scene *ArrivalsScene) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !scene.Routes().Ready() {
		if time.Now().After(deadline) {
			t.Fatalf("routes not ready, status %v", scene.Routes().Status())
		}
		scene.Step(frame)
		time.Sleep(time.Millisecond)
	}
}

func TestArrivalsSceneLoadsFixture(t *testing.T) {
	scene := newTestScene(t)
	if scene.Routes().Status() != transit.StatusLoading {
		t.Errorf("initial status = %v, want Loading", scene.Routes().Status())
	}
	waitReady(t, scene)

	if got := scene.Routes().Len(); got != 4 {
		t.Fatalf("Len = %d, want 4", got)
	}
	rec, _ := scene.Routes().Current()
	if rec.Time != 2 || rec.Vehicle != transit.VehicleSubway || rec.Shape != transit.ShapeCircle {
		t.Errorf("first record = %+v, want the 2 minute subway", rec)
	}
}

func TestArrivalsSceneNavigation(t *testing.T) {
	scene := newTestScene(t)
	waitReady(t, scene)

	scene.Press(utils.ButtonDown)
	for i := 0; i < 60; i++ {
		scene.Step(frame)
	}
	if got := scene.Routes().Index(); got != 1 {
		t.Fatalf("index after down = %d, want 1", got)
	}
	if scene.Transitions().State() != systems.TransitionIdle {
		t.Errorf("state = %v, want idle", scene.Transitions().State())
	}

	scene.Press(utils.ButtonUp)
	scene.Press(utils.ButtonSelect)
	for i := 0; i < 60; i++ {
		scene.Step(frame)
	}
	if got := scene.Routes().Index(); got != 0 {
		t.Errorf("index after up = %d, want 0", got)
	}
}

func TestNewSource(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": &fstest.MapFile{Data: []byte("stops: []\nroutes: []\n")},
	}
	tests := []struct {
		name    string
		cfg     config.SourceConfig
		want    string
		wantErr bool
	}{
		{"fixture", config.SourceConfig{Kind: config.SourceFixture, Path: "d.yaml"}, "fixture", false},
		{"single feed", config.SourceConfig{Kind: config.SourceGTFSRT, Path: "a.pb", Catalog: "catalog.yaml"}, "feed", false},
		{"multi feed", config.SourceConfig{Kind: config.SourceGTFSRT, Path: "a.pb", Feeds: []string{"b.pb"}, Catalog: "catalog.yaml"}, "multi", false},
		{"missing catalog", config.SourceConfig{Kind: config.SourceGTFSRT, Path: "a.pb", Catalog: "nope.yaml"}, "", true},
		{"unknown kind", config.SourceConfig{Kind: "ftp"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource(fsys, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			var got string
			switch s := src.(type) {
			case *companion.FixtureSource:
				got = "fixture"
			case *companion.FeedSource:
				got = "feed"
			case companion.MultiSource:
				got = "multi"
				if len(s) != 2 {
					t.Errorf("multi source len = %d, want 2", len(s))
				}
			}
			if got != tt.want {
				t.Errorf("source kind = %s, want %s", got, tt.want)
			}
		})
	}
}
