package transit

// Overrides 动画进行中的显示值覆盖
//
// 每个属性最多一个覆盖值：首次写入时创建，动画 teardown 时清除。
// 只由正在进行的过渡动画持有和修改。
type Overrides struct {
	color        Color
	hasColor     bool
	countdown    int16
	hasCountdown bool
}

// SetColor 写入颜色覆盖值
func (o *Overrides) SetColor(c Color) {
	o.color = c
	o.hasColor = true
}

// ClearColor 清除颜色覆盖值
func (o *Overrides) ClearColor() {
	o.color = 0
	o.hasColor = false
}

// Color 返回颜色覆盖值及其是否存在
func (o *Overrides) Color() (Color, bool) {
	return o.color, o.hasColor
}

// SetCountdown 写入倒计时覆盖值
func (o *Overrides) SetCountdown(v int16) {
	o.countdown = v
	o.hasCountdown = true
}

// ClearCountdown 清除倒计时覆盖值
func (o *Overrides) ClearCountdown() {
	o.countdown = 0
	o.hasCountdown = false
}

// Countdown 返回倒计时覆盖值及其是否存在
func (o *Overrides) Countdown() (int16, bool) {
	return o.countdown, o.hasCountdown
}

// Active 是否存在任意覆盖值
func (o *Overrides) Active() bool {
	return o.hasColor || o.hasCountdown
}

// Resolver 解析当前屏幕上应显示的值
// 每个绘制回调都必须通过 Resolver 取值，以便过渡期间显示动画中间值
type Resolver struct {
	routes    *RouteList
	overrides *Overrides
}

// NewResolver 创建显示值解析器
func NewResolver(routes *RouteList, overrides *Overrides) *Resolver {
	return &Resolver{routes: routes, overrides: overrides}
}

// DisplayColor 返回侧栏背景色：覆盖值优先，否则为当前记录的颜色
func (r *Resolver) DisplayColor() Color {
	if c, ok := r.overrides.Color(); ok {
		return c
	}
	if rec, ok := r.routes.Current(); ok {
		return rec.Color
	}
	return ColorWhite
}

// DisplayCountdown 返回倒计时数字：覆盖值优先，否则为当前记录的时间
func (r *Resolver) DisplayCountdown() int16 {
	if v, ok := r.overrides.Countdown(); ok {
		return v
	}
	if rec, ok := r.routes.Current(); ok {
		return rec.Time
	}
	return 0
}

// Current 返回当前记录（状态不是 OK 时返回 false）
func (r *Resolver) Current() (RouteRecord, bool) {
	return r.routes.Current()
}

// StatusText 返回需要替代路线显示的状态文字，可正常显示时返回空字符串
func (r *Resolver) StatusText() string {
	if r.routes.Ready() {
		return ""
	}
	return r.routes.Status().Text()
}
