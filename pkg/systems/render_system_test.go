package systems

import (
	"image"
	"reflect"
	"testing"

	"github.com/decker502/transitface/pkg/components"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/ecs"
	"github.com/decker502/transitface/pkg/entities"
	"github.com/decker502/transitface/pkg/transit"
)

func newRenderFixture(t *testing.T, records ...transit.RouteRecord) (*RenderSystem, *ecs.EntityManager, *entities.FaceLayers, *transit.RouteList) {
	t.Helper()
	em := ecs.NewEntityManager()
	layers := entities.NewFaceLayers(em)
	routes := transit.NewRouteList()
	if len(records) > 0 {
		routes.Replace(records)
	}
	resolver := transit.NewResolver(routes, &transit.Overrides{})
	return NewRenderSystem(em, resolver, nil, nil, Fonts{}), em, layers, routes
}

func TestRenderLayoutOrder(t *testing.T) {
	rs, _, _, _ := newRenderFixture(t, testRecord("Dufferin Gate", 3, transit.ColorRed))

	var kinds []components.LayerKind
	for _, p := range rs.Layout() {
		kinds = append(kinds, p.Kind)
	}
	want := []components.LayerKind{
		components.LayerTime,
		components.LayerUnit,
		components.LayerDescription,
		components.LayerStop,
		components.LayerDest,
		components.LayerRoute,
		components.LayerVehicleBackground,
		components.LayerVehicle,
		components.LayerStatus,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("draw order = %v, want %v", kinds, want)
	}
}

func TestRenderLayoutFollowsParentOffset(t *testing.T) {
	rs, em, layers, _ := newRenderFixture(t, testRecord("Dufferin Gate", 3, transit.ColorRed))
	entities.Layer(em, layers.Description).Offset = image.Pt(0, -config.PanelScrollOutDistance)

	placements := make(map[components.LayerKind]Placement)
	for _, p := range rs.Layout() {
		placements[p.Kind] = p
	}

	stop := placements[components.LayerStop]
	wantOrigin := image.Pt(0, config.DescriptionY-config.PanelScrollOutDistance+config.StopLayerY)
	if stop.Origin != wantOrigin {
		t.Errorf("stop origin = %v, want %v", stop.Origin, wantOrigin)
	}

	// 线路行已完全移出描述面板，被裁剪
	if route := placements[components.LayerRoute]; !route.Clip.Empty() {
		t.Errorf("route clip = %v, want empty", route.Clip)
	}

	desc := placements[components.LayerDescription]
	if desc.Clip.Min.Y != config.DescriptionY {
		t.Errorf("description clip moved with its own offset: %v", desc.Clip)
	}
}

func TestRenderLayoutSkipsHidden(t *testing.T) {
	rs, em, layers, _ := newRenderFixture(t)
	entities.Layer(em, layers.Description).Hidden = true

	for _, p := range rs.Layout() {
		switch p.Kind {
		case components.LayerDescription, components.LayerRoute, components.LayerDest, components.LayerStop:
			t.Errorf("hidden subtree still placed: %v", p.Kind)
		}
	}
}

func TestRenderRedrawRefreshesText(t *testing.T) {
	rs, _, _, routes := newRenderFixture(t,
		testRecord("Dufferin Gate", 3, transit.ColorRed),
		testRecord("Distillery", 9, transit.ColorBlue),
	)
	if got := rs.DestText(); got != "to Dufferin Gate" {
		t.Errorf("DestText = %q", got)
	}
	if got := rs.StopText(); got != "at King St West" {
		t.Errorf("StopText = %q", got)
	}

	routes.Advance()
	if got := rs.DestText(); got != "to Dufferin Gate" {
		t.Errorf("text changed before redraw: %q", got)
	}
	rs.Redraw()
	if got := rs.DestText(); got != "to Distillery" {
		t.Errorf("DestText after redraw = %q", got)
	}
	if rs.Redraws() != 2 {
		t.Errorf("Redraws = %d, want 2", rs.Redraws())
	}

	routes.SetStatus(transit.StatusNoConnection)
	rs.Redraw()
	if rs.DestText() != "" || rs.StopText() != "" {
		t.Errorf("status state kept text: %q / %q", rs.DestText(), rs.StopText())
	}
}

func TestBadgeRect(t *testing.T) {
	tests := []struct {
		name  string
		shape transit.BadgeShape
		textW int
		want  image.Rectangle
	}{
		{"round rect", transit.ShapeRoundRect, 30, image.Rect(0, 0, 30+config.BadgeTextPadding*2, 28)},
		{"rect", transit.ShapeRect, 12, image.Rect(0, 0, 12+config.BadgeTextPadding*2, 28)},
		{"circle", transit.ShapeCircle, 10, image.Rect(0, 0, 28, 28)},
		{"wide circle", transit.ShapeCircle, 40, image.Rect(0, 0, 44, 44)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BadgeRect(tt.shape, tt.textW, 28); got != tt.want {
				t.Errorf("BadgeRect = %v, want %v", got, tt.want)
			}
		})
	}
}
