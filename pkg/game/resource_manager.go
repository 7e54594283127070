package game

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/sprites"
)

// FontID identifies one of the bundled Go font families.
type FontID string

const (
	FontRegular FontID = "goregular"
	FontBold    FontID = "gobold"
)

var fontData = map[FontID][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
}

// ResourceManager is responsible for centralized management of face resources.
// It provides loading and caching for font faces and vehicle sprite sequences,
// ensuring that resources are loaded only once and reused by every render callback.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All resources are loaded and read on the
// ebiten Update/Draw goroutine.
//
// Usage:
//
//	rm := NewResourceManager(dataFS)
//	face, err := rm.LoadFont(FontBold, 34)
//	if err != nil {
//	    log.Printf("Failed to load font: %v", err)
//	}
type ResourceManager struct {
	fsys fs.FS

	fontSourceCache map[FontID]*text.GoTextFaceSource // Parsed font sources: font ID -> source
	fontFaceCache   map[string]*text.GoTextFace       // Cache for Ebitengine v2 text faces: "id:size" -> face

	sequences *sprites.Sequences
}

// NewResourceManager creates a ResourceManager reading data files from fsys.
//
// Parameters:
//   - fsys: The file system holding the data/ directory (embedded or on disk).
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:            fsys,
		fontSourceCache: make(map[FontID]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// FS returns the data file system.
func (rm *ResourceManager) FS() fs.FS {
	return rm.fsys
}

// LoadFont loads a bundled font at the given size and caches the resulting face.
//
// Parameters:
//   - id: One of the FontXxx constants.
//   - size: The font size in points.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for text.Draw.
//   - An error if the font ID is unknown or the font data cannot be parsed.
func (rm *ResourceManager) LoadFont(id FontID, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", id, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSourceCache[id]
	if !exists {
		data, ok := fontData[id]
		if !ok {
			return nil, fmt.Errorf("unknown font %q", id)
		}
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", id, err)
		}
		rm.fontSourceCache[id] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(id FontID, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", id, size)]
}

// LoadVehicleSprites loads the vehicle sprite configuration and builds one
// sprite sequence per vehicle type. Subsequent calls return the cached sequences.
//
// Parameters:
//   - path: Path of the vehicle config inside the data file system (e.g. "data/vehicles.yaml").
func (rm *ResourceManager) LoadVehicleSprites(path string) (*sprites.Sequences, error) {
	if rm.sequences != nil {
		return rm.sequences, nil
	}
	cfg, err := config.LoadVehicleConfig(rm.fsys, path)
	if err != nil {
		return nil, err
	}
	seqs, err := sprites.NewSequences(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build vehicle sprites: %w", err)
	}
	rm.sequences = seqs
	return seqs, nil
}

// VehicleSprites returns the sequences loaded by LoadVehicleSprites, or nil.
func (rm *ResourceManager) VehicleSprites() *sprites.Sequences {
	return rm.sequences
}
