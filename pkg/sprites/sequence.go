// Package sprites 车辆车门精灵序列
//
// 每种车辆类型对应一个 Sequence。第 0 帧车门全关，最后一帧车门全开，
// 中间帧按比例打开。帧图像在首次绘制时生成并缓存。
package sprites

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/transit"
)

const (
	doorWidth     = 4
	windowMargin  = 5
	windowHeight  = 6
	windowSpacing = 4
)

// Sequence 单个车辆类型的帧序列
type Sequence struct {
	vehicle transit.VehicleType
	cfg     config.VehicleSpriteConfig
	body    color.RGBA
	door    color.RGBA

	frames []*ebiten.Image // 延迟生成
}

// NewSequence 根据配置创建帧序列
func NewSequence(vehicle transit.VehicleType, cfg config.VehicleSpriteConfig) (*Sequence, error) {
	body, err := transit.ColorFromHex(cfg.Body)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s body color: %w", vehicle, err)
	}
	door, err := transit.ColorFromHex(cfg.Door)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s door color: %w", vehicle, err)
	}
	return &Sequence{
		vehicle: vehicle,
		cfg:     cfg,
		body:    body.ToRGBA(),
		door:    door.ToRGBA(),
		frames:  make([]*ebiten.Image, cfg.Frames),
	}, nil
}

// Vehicle 返回车辆类型
func (s *Sequence) Vehicle() transit.VehicleType {
	return s.vehicle
}

// Len 返回帧数
func (s *Sequence) Len() int {
	return s.cfg.Frames
}

// Size 返回车身尺寸
func (s *Sequence) Size() image.Point {
	return image.Pt(s.cfg.Width, s.cfg.Height)
}

// OverheadWire 是否需要绘制架空线
func (s *Sequence) OverheadWire() bool {
	return s.cfg.OverheadWire
}

// ClampFrame 将帧索引限制在 [0, Len()-1]
func (s *Sequence) ClampFrame(frame int) int {
	if frame < 0 {
		return 0
	}
	if frame > s.cfg.Frames-1 {
		return s.cfg.Frames - 1
	}
	return frame
}

// DoorSlots 返回车门在车身上的位置（车身坐标系，门全关时）
// 车门沿车身左侧纵向均匀分布
func (s *Sequence) DoorSlots() []image.Rectangle {
	n := s.cfg.Doors
	if n == 0 {
		return nil
	}
	slot := s.cfg.Height / (n + 1)
	doorH := slot / 2
	if doorH < 2 {
		doorH = 2
	}
	slots := make([]image.Rectangle, 0, n)
	for i := 1; i <= n; i++ {
		cy := slot * i
		slots = append(slots, image.Rect(0, cy-doorH/2, doorWidth, cy-doorH/2+doorH))
	}
	return slots
}

// DoorOpenings 返回第 frame 帧中车门露出的开口区域
// 每扇门的两片门板向两侧滑开，开口高度与 frame/(Len()-1) 成正比
func (s *Sequence) DoorOpenings(frame int) []image.Rectangle {
	frame = s.ClampFrame(frame)
	slots := s.DoorSlots()
	openings := make([]image.Rectangle, 0, len(slots))
	for _, slot := range slots {
		h := slot.Dy() * frame / (s.cfg.Frames - 1)
		if h == 0 {
			continue
		}
		cy := slot.Min.Y + slot.Dy()/2
		openings = append(openings, image.Rect(slot.Min.X, cy-h/2, slot.Max.X, cy-h/2+h))
	}
	return openings
}

// Windows 返回车窗区域（车身坐标系）
func (s *Sequence) Windows() []image.Rectangle {
	windows := make([]image.Rectangle, 0, s.cfg.Windows)
	if s.cfg.Windows == 0 {
		return windows
	}
	usable := s.cfg.Height - 2*windowMargin
	step := usable / s.cfg.Windows
	for i := 0; i < s.cfg.Windows; i++ {
		y := windowMargin + i*step + (step-windowHeight)/2
		windows = append(windows, image.Rect(doorWidth+windowSpacing, y, s.cfg.Width-windowSpacing, y+windowHeight))
	}
	return windows
}

// Frame 返回第 frame 帧的图像（索引越界时自动钳制）
func (s *Sequence) Frame(frame int) *ebiten.Image {
	frame = s.ClampFrame(frame)
	if s.frames[frame] == nil {
		s.frames[frame] = s.render(frame)
	}
	return s.frames[frame]
}

func (s *Sequence) render(frame int) *ebiten.Image {
	img := ebiten.NewImage(s.cfg.Width, s.cfg.Height)
	w, h := float32(s.cfg.Width), float32(s.cfg.Height)

	vector.DrawFilledRect(img, 0, 0, w, h, s.body, false)
	for _, r := range s.Windows() {
		fillRect(img, r, s.door)
	}
	for _, r := range s.DoorSlots() {
		vector.StrokeRect(img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, s.door, false)
	}
	for _, r := range s.DoorOpenings(frame) {
		fillRect(img, r, s.door)
	}
	return img
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}
