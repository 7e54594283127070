package systems

import (
	"image"
	"image/color"
	"sort"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/transitface/pkg/components"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/ecs"
	"github.com/decker502/transitface/pkg/sprites"
	"github.com/decker502/transitface/pkg/transit"
	"github.com/decker502/transitface/pkg/utils"
)

var (
	faceBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	faceForeground = color.RGBA{A: 255}
	badgeText      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	wireColor      = color.RGBA{A: 255}
)

// Fonts 渲染使用的字体
type Fonts struct {
	Countdown *text.GoTextFace
	Unit      *text.GoTextFace
	Body      *text.GoTextFace
	BodyBold  *text.GoTextFace
	Badge     *text.GoTextFace
}

// Placement 图层在屏幕上的绘制位置
type Placement struct {
	ID     ecs.EntityID
	Kind   components.LayerKind
	Clip   image.Rectangle // 屏幕坐标的裁剪区域
	Origin image.Point     // 屏幕坐标的内容原点
}

// RenderSystem 表盘渲染系统
//
// 每帧按图层树的顺序绘制所有图层：父图层先于子图层，同级按 Z 排序。
// 子图层随父图层的内容偏移移动，并被父图层的 Frame 裁剪。
// 倒计时和侧栏颜色通过 Resolver 读取，动画进行中显示中间值。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	resolver      *transit.Resolver
	sequences     *sprites.Sequences
	doors         *DoorSpriteSystem
	fonts         Fonts

	redraws  int
	destText string
	stopText string
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, resolver *transit.Resolver, sequences *sprites.Sequences, doors *DoorSpriteSystem, fonts Fonts) *RenderSystem {
	rs := &RenderSystem{
		entityManager: em,
		resolver:      resolver,
		sequences:     sequences,
		doors:         doors,
		fonts:         fonts,
	}
	rs.Redraw()
	return rs
}

// Redraw 重新读取当前记录的文字内容
func (rs *RenderSystem) Redraw() {
	rs.redraws++
	rec, ok := rs.resolver.Current()
	if !ok {
		rs.destText, rs.stopText = "", ""
		return
	}
	rs.destText = "to " + rec.DestName
	rs.stopText = "at " + rec.StopName
}

// Redraws 返回重绘次数
func (rs *RenderSystem) Redraws() int {
	return rs.redraws
}

// DestText 返回终点文字
func (rs *RenderSystem) DestText() string {
	return rs.destText
}

// StopText 返回站点文字
func (rs *RenderSystem) StopText() string {
	return rs.stopText
}

// Layout 计算所有可见图层的绘制顺序和位置
func (rs *RenderSystem) Layout() []Placement {
	ids := ecs.GetEntitiesWith1[*components.LayerComponent](rs.entityManager)
	children := make(map[ecs.EntityID][]ecs.EntityID)
	layers := make(map[ecs.EntityID]*components.LayerComponent, len(ids))
	for _, id := range ids {
		layer, _ := ecs.GetComponent[*components.LayerComponent](rs.entityManager, id)
		layers[id] = layer
		children[layer.Parent] = append(children[layer.Parent], id)
	}
	for parent := range children {
		kids := children[parent]
		sort.SliceStable(kids, func(i, j int) bool { return layers[kids[i]].Z < layers[kids[j]].Z })
	}

	screen := image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight)
	placements := make([]Placement, 0, len(ids))
	var walk func(parent ecs.EntityID, origin image.Point, clip image.Rectangle)
	walk = func(parent ecs.EntityID, origin image.Point, clip image.Rectangle) {
		for _, id := range children[parent] {
			layer := layers[id]
			if layer.Hidden {
				continue
			}
			frame := layer.Frame.Add(origin)
			layerClip := frame.Intersect(clip)
			contentOrigin := frame.Min.Add(layer.Offset)
			placements = append(placements, Placement{
				ID:     id,
				Kind:   layer.Kind,
				Clip:   layerClip,
				Origin: contentOrigin,
			})
			walk(id, contentOrigin, layerClip)
		}
	}
	walk(0, image.Point{}, screen)
	return placements
}

// Draw 绘制表盘
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(faceBackground)
	ready := rs.resolver.StatusText() == ""

	for _, p := range rs.Layout() {
		if ready == (p.Kind == components.LayerStatus) {
			continue
		}
		if p.Clip.Empty() {
			continue
		}
		dst := screen.SubImage(p.Clip).(*ebiten.Image)
		rs.drawLayer(dst, p)
	}
}

func (rs *RenderSystem) drawLayer(dst *ebiten.Image, p Placement) {
	rec, _ := rs.resolver.Current()
	switch p.Kind {
	case components.LayerTime:
		rs.drawText(dst, strconv.Itoa(int(rs.resolver.DisplayCountdown())), rs.fonts.Countdown,
			float64(p.Clip.Max.X), float64(p.Origin.Y), text.AlignEnd, faceForeground)
	case components.LayerUnit:
		rs.drawText(dst, rec.Unit, rs.fonts.Unit,
			float64(p.Clip.Max.X), float64(p.Origin.Y), text.AlignEnd, faceForeground)
	case components.LayerRoute:
		rs.drawRoute(dst, rec, p)
	case components.LayerDest:
		rs.drawLine(dst, rs.destText, rs.fonts.BodyBold, p)
	case components.LayerStop:
		rs.drawLine(dst, rs.stopText, rs.fonts.Body, p)
	case components.LayerVehicleBackground:
		rs.drawVehicleBackground(dst, rec, p)
	case components.LayerVehicle:
		rs.drawVehicle(dst, rec, p)
	case components.LayerStatus:
		rs.drawText(dst, rs.resolver.StatusText(), rs.fonts.BodyBold,
			float64(p.Clip.Min.X+p.Clip.Dx()/2), float64(p.Clip.Min.Y+p.Clip.Dy()/2-10), text.AlignCenter, faceForeground)
	}
}

func (rs *RenderSystem) drawRoute(dst *ebiten.Image, rec transit.RouteRecord, p Placement) {
	textW := 0.0
	if rs.fonts.Badge != nil {
		textW, _ = text.Measure(rec.RouteNumber, rs.fonts.Badge, 0)
	}
	badge := BadgeRect(rec.Shape, int(textW), config.RouteLayerHeight-4).Add(p.Origin.Add(image.Pt(config.Space, 2)))
	fillBadge(dst, rec.Shape, badge, rec.Color.ToRGBA())

	rs.drawText(dst, rec.RouteNumber, rs.fonts.Badge,
		float64(badge.Min.X+badge.Dx()/2), float64(badge.Min.Y), text.AlignCenter, badgeText)
	rs.drawText(dst, rec.RouteName, rs.fonts.BodyBold,
		float64(p.Clip.Max.X-config.RightMargin), float64(p.Origin.Y+2), text.AlignEnd, faceForeground)
}

func (rs *RenderSystem) drawVehicleBackground(dst *ebiten.Image, rec transit.RouteRecord, p Placement) {
	bar := p.Clip
	vector.DrawFilledRect(dst, float32(bar.Min.X), float32(bar.Min.Y), float32(bar.Dx()), float32(bar.Dy()),
		rs.resolver.DisplayColor().ToRGBA(), false)

	if rs.sequences != nil && rs.sequences.For(rec.Vehicle).OverheadWire() {
		x := float32(p.Origin.X + config.OverheadWireX)
		vector.StrokeLine(dst, x, float32(bar.Min.Y), x, float32(bar.Max.Y), 1, wireColor, false)
	}
}

func (rs *RenderSystem) drawVehicle(dst *ebiten.Image, rec transit.RouteRecord, p Placement) {
	if rs.sequences == nil {
		return
	}
	seq := rs.sequences.For(rec.Vehicle)
	frame := 0
	if rs.doors != nil {
		frame = rs.doors.Frame()
	}
	img := seq.Frame(frame)

	op := &ebiten.DrawImageOptions{}
	x := p.Origin.X + (config.RightBarWidth-seq.Size().X)/2
	op.GeoM.Translate(float64(x), float64(p.Origin.Y+config.VehicleSpriteOffsetY))
	dst.DrawImage(img, op)
}

// drawLine 左对齐绘制一行文字，超出图层宽度时以省略号截断
func (rs *RenderSystem) drawLine(dst *ebiten.Image, s string, face *text.GoTextFace, p Placement) {
	x := p.Origin.X + config.Space
	s = utils.EllipsizeText(s, face, float64(p.Clip.Max.X-x))
	rs.drawText(dst, s, face, float64(x), float64(p.Origin.Y), text.AlignStart, faceForeground)
}

func (rs *RenderSystem) drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LayoutOptions.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// BadgeRect 返回线路号徽章的尺寸（原点为左上角）
// 圆形徽章宽高相等；其他形状宽度为文字宽度加两侧留白
func BadgeRect(shape transit.BadgeShape, textWidth, height int) image.Rectangle {
	w := textWidth + 2*config.BadgeTextPadding
	if shape == transit.ShapeCircle {
		w = height
		if textWidth+4 > w {
			w = textWidth + 4
		}
		return image.Rect(0, 0, w, w)
	}
	return image.Rect(0, 0, w, height)
}

func fillBadge(dst *ebiten.Image, shape transit.BadgeShape, r image.Rectangle, clr color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	switch shape {
	case transit.ShapeCircle:
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, w/2, clr, true)
	case transit.ShapeRect:
		vector.DrawFilledRect(dst, x, y, w, h, clr, false)
	default:
		radius := float32(config.BadgeCornerRadius)
		if radius > h/2 {
			radius = h / 2
		}
		vector.DrawFilledRect(dst, x+radius, y, w-2*radius, h, clr, false)
		vector.DrawFilledRect(dst, x, y+radius, w, h-2*radius, clr, false)
		vector.DrawFilledCircle(dst, x+radius, y+radius, radius, clr, true)
		vector.DrawFilledCircle(dst, x+w-radius, y+radius, radius, clr, true)
		vector.DrawFilledCircle(dst, x+radius, y+h-radius, radius, clr, true)
		vector.DrawFilledCircle(dst, x+w-radius, y+h-radius, radius, clr, true)
	}
}
