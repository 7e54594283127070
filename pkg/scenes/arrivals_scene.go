package scenes

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/transitface/pkg/anim"
	"github.com/decker502/transitface/pkg/companion"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/ecs"
	"github.com/decker502/transitface/pkg/entities"
	"github.com/decker502/transitface/pkg/game"
	"github.com/decker502/transitface/pkg/message"
	"github.com/decker502/transitface/pkg/sprites"
	"github.com/decker502/transitface/pkg/systems"
	"github.com/decker502/transitface/pkg/transit"
	"github.com/decker502/transitface/pkg/utils"
)

// VehicleConfigPath is the sprite configuration loaded for every arrivals scene.
const VehicleConfigPath = "data/vehicles.yaml"

// ArrivalsScene is the transit arrivals face.
// It owns the layer entities, the route list and every system driving them,
// and advances the shared animation scheduler once per Update.
type ArrivalsScene struct {
	resourceManager *game.ResourceManager

	entityManager *ecs.EntityManager
	layers        *entities.FaceLayers
	routes        *transit.RouteList
	overrides     *transit.Overrides
	resolver      *transit.Resolver
	scheduler     *anim.Scheduler
	sequences     *sprites.Sequences

	doorSystem       *systems.DoorSpriteSystem
	transitionSystem *systems.TransitionSystem
	renderSystem     *systems.RenderSystem

	receiver *message.Receiver
	bridge   *companion.LocalBridge
	cancel   context.CancelFunc
}

// NewArrivalsScene creates the arrivals face and starts its data bridge.
//
// Parameters:
//   - rm: Resource manager providing fonts and the data file system.
//   - cfg: Application configuration (source and animation timing).
//
// Returns:
//   - The scene, or an error if sprites, fonts or the data source cannot be set up.
func NewArrivalsScene(rm *game.ResourceManager, cfg *config.AppConfig) (*ArrivalsScene, error) {
	sequences, err := rm.LoadVehicleSprites(VehicleConfigPath)
	if err != nil {
		return nil, err
	}

	fonts, err := loadFonts(rm)
	if err != nil {
		return nil, err
	}

	source, err := NewSource(rm.FS(), cfg.Source)
	if err != nil {
		return nil, err
	}

	timing := cfg.Timing()
	s := &ArrivalsScene{
		resourceManager: rm,
		entityManager:   ecs.NewEntityManager(),
		routes:          transit.NewRouteList(),
		overrides:       &transit.Overrides{},
		scheduler:       anim.NewScheduler(),
		sequences:       sequences,
	}
	s.layers = entities.NewFaceLayers(s.entityManager)
	s.resolver = transit.NewResolver(s.routes, s.overrides)

	s.doorSystem = systems.NewDoorSpriteSystem(s.scheduler, s.currentFrameCount)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, s.resolver, sequences, s.doorSystem, fonts)
	s.transitionSystem = systems.NewTransitionSystem(s.scheduler, s.entityManager, s.layers,
		s.routes, s.overrides, s.doorSystem, s.renderSystem, timing)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.bridge = companion.NewLocalBridge(source)
	s.receiver = message.NewReceiver(ctx, s.bridge, s.scheduler, s.routes, timing.RefreshInterval)
	s.receiver.SetHooks(s.transitionSystem.Cancel, s.renderSystem.Redraw)
	s.bridge.Start(ctx)

	log.Printf("[ArrivalsScene] Created (source=%s, path=%s)", cfg.Source.Kind, cfg.Source.Path)
	return s, nil
}

// NewSource builds the departure source described by cfg.
// A gtfsrt source with extra feeds reads every feed concurrently.
func NewSource(fsys fs.FS, cfg config.SourceConfig) (companion.Source, error) {
	switch cfg.Kind {
	case config.SourceFixture:
		return companion.NewFixtureSource(fsys, cfg.Path), nil
	case config.SourceGTFSRT:
		catalog, err := companion.LoadCatalog(fsys, cfg.Catalog)
		if err != nil {
			return nil, err
		}
		if len(cfg.Feeds) == 0 {
			return companion.NewFeedSource(fsys, cfg.Path, catalog), nil
		}
		multi := companion.MultiSource{companion.NewFeedSource(fsys, cfg.Path, catalog)}
		for _, feed := range cfg.Feeds {
			multi = append(multi, companion.NewFeedSource(fsys, feed, catalog))
		}
		return multi, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

func loadFonts(rm *game.ResourceManager) (systems.Fonts, error) {
	var fonts systems.Fonts
	var err error
	if fonts.Countdown, err = rm.LoadFont(game.FontBold, 42); err != nil {
		return fonts, err
	}
	if fonts.Unit, err = rm.LoadFont(game.FontRegular, 14); err != nil {
		return fonts, err
	}
	if fonts.Body, err = rm.LoadFont(game.FontRegular, 14); err != nil {
		return fonts, err
	}
	if fonts.BodyBold, err = rm.LoadFont(game.FontBold, 14); err != nil {
		return fonts, err
	}
	if fonts.Badge, err = rm.LoadFont(game.FontBold, 18); err != nil {
		return fonts, err
	}
	return fonts, nil
}

func (s *ArrivalsScene) currentFrameCount() int {
	vehicle := transit.VehicleStreetcar
	if rec, ok := s.routes.Current(); ok {
		vehicle = rec.Vehicle
	}
	return s.sequences.For(vehicle).Len()
}

// Update handles button presses, drains inbound messages and advances animations.
func (s *ArrivalsScene) Update(deltaTime float64) {
	if b := utils.JustPressedButton(config.ScreenHeight); b != utils.ButtonNone {
		s.Press(b)
	}
	s.Step(time.Duration(deltaTime * float64(time.Second)))
}

// Press handles one watch button.
func (s *ArrivalsScene) Press(b utils.Button) {
	switch b {
	case utils.ButtonUp:
		s.transitionSystem.Navigate(systems.DirectionBackward)
	case utils.ButtonDown:
		s.transitionSystem.Navigate(systems.DirectionForward)
	case utils.ButtonSelect:
		log.Printf("[ArrivalsScene] Select pressed (index=%d)", s.routes.Index())
	}
}

// Step drains the bridge inbox and advances the scheduler by dt.
func (s *ArrivalsScene) Step(dt time.Duration) {
	s.receiver.Poll()
	s.scheduler.Advance(dt)
}

// Draw renders the face.
func (s *ArrivalsScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Close stops the data bridge and the refresh timer.
func (s *ArrivalsScene) Close() error {
	s.transitionSystem.Cancel()
	s.receiver.Stop()
	s.cancel()
	return s.bridge.Close()
}

// Routes returns the scene's route list.
func (s *ArrivalsScene) Routes() *transit.RouteList {
	return s.routes
}

// Transitions returns the scene's transition system.
func (s *ArrivalsScene) Transitions() *systems.TransitionSystem {
	return s.transitionSystem
}
