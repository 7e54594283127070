package components

import (
	"image"
	"testing"
)

func TestLayerComponentOffset(t *testing.T) {
	layer := &LayerComponent{Kind: LayerDescription, Frame: image.Rect(0, 64, 94, 168)}
	if !layer.AtRest() {
		t.Fatal("new layer should be at rest")
	}

	layer.Offset = image.Pt(0, -40)
	if got := layer.ContentOrigin(); got != image.Pt(0, 24) {
		t.Errorf("ContentOrigin() = %v, want (0,24)", got)
	}
	if layer.AtRest() {
		t.Error("offset layer reported at rest")
	}

	layer.SnapToRest()
	if !layer.AtRest() || layer.ContentOrigin() != layer.Frame.Min {
		t.Errorf("SnapToRest left offset %v", layer.Offset)
	}
}

func TestLayerKindString(t *testing.T) {
	if LayerVehicleBackground.String() != "vehicle_background" {
		t.Errorf("String() = %q", LayerVehicleBackground.String())
	}
	if LayerKind(99).String() != "unknown" {
		t.Errorf("unknown kind String() = %q", LayerKind(99).String())
	}
}
