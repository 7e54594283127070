package entities

import (
	"testing"

	"github.com/decker502/transitface/pkg/components"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/ecs"
)

func TestNewFaceLayers(t *testing.T) {
	em := ecs.NewEntityManager()
	layers := NewFaceLayers(em)

	ids := ecs.GetEntitiesWith1[*components.LayerComponent](em)
	if len(ids) != 9 {
		t.Fatalf("expected 9 layers, got %d", len(ids))
	}

	for _, id := range []ecs.EntityID{layers.Route, layers.Dest, layers.Stop} {
		if Layer(em, id).Parent != layers.Description {
			t.Errorf("layer %s should be a child of the description panel", Layer(em, id).Kind)
		}
	}

	vehicle := Layer(em, layers.Vehicle)
	if vehicle.Frame.Min.X != config.ScreenWidth-config.RightBarWidth {
		t.Errorf("vehicle layer should start at the right bar, got %v", vehicle.Frame)
	}
	if !vehicle.AtRest() {
		t.Error("new layers should be at rest")
	}

	desc := Layer(em, layers.Description)
	desc.Offset.Y = -12
	if desc.ContentOrigin().Y != config.DescriptionY-12 {
		t.Errorf("content origin should include the offset, got %v", desc.ContentOrigin())
	}
	desc.SnapToRest()
	if !desc.AtRest() {
		t.Error("SnapToRest should clear the offset")
	}
}
