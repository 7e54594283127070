package transit

// MaxRoutes 路线列表容量上限
const MaxRoutes = 12

// RouteList 分页的路线数据
//
// 持有固定容量的记录数组、当前长度、当前索引和显示状态。
// 当状态不是 StatusOK 时，记录数组保持最后一次的内容，但不应被读取。
//
// 索引只能由过渡动画的完成回调通过 Advance/Retreat 修改，
// 或由 Replace 在数据刷新时重置为 0。
type RouteList struct {
	records [MaxRoutes]RouteRecord
	length  int
	index   int
	status  Status
}

// NewRouteList 创建路线列表，填充占位记录，状态为 Loading
func NewRouteList() *RouteList {
	rl := &RouteList{status: StatusLoading}
	for i := range rl.records {
		rl.records[i] = PlaceholderRecord()
	}
	return rl
}

// Ready 是否可以读取记录（状态 OK 且至少有一条记录）
func (rl *RouteList) Ready() bool {
	return rl.status == StatusOK && rl.length > 0
}

// Status 返回当前显示状态
func (rl *RouteList) Status() Status {
	return rl.status
}

// Len 返回有效记录数（状态不是 OK 时为 0）
func (rl *RouteList) Len() int {
	if !rl.Ready() {
		return 0
	}
	return rl.length
}

// Index 返回当前索引
func (rl *RouteList) Index() int {
	return rl.index
}

// Current 返回当前索引处的记录
// 状态不是 OK 时返回 false，不会读取数组
func (rl *RouteList) Current() (RouteRecord, bool) {
	if !rl.Ready() {
		return RouteRecord{}, false
	}
	return rl.records[rl.index], true
}

// CanAdvance 当前索引是否还能向后移动
func (rl *RouteList) CanAdvance() bool {
	return rl.Ready() && rl.index < rl.length-1
}

// CanRetreat 当前索引是否还能向前移动
func (rl *RouteList) CanRetreat() bool {
	return rl.Ready() && rl.index > 0
}

// Advance 索引加一，已在末尾时不做修改并返回 false
func (rl *RouteList) Advance() bool {
	if !rl.CanAdvance() {
		return false
	}
	rl.index++
	return true
}

// Retreat 索引减一，已在开头时不做修改并返回 false
func (rl *RouteList) Retreat() bool {
	if !rl.CanRetreat() {
		return false
	}
	rl.index--
	return true
}

// PeekNext 返回下一条记录，仅在 CanAdvance 为 true 时有效
func (rl *RouteList) PeekNext() (RouteRecord, bool) {
	if !rl.CanAdvance() {
		return RouteRecord{}, false
	}
	return rl.records[rl.index+1], true
}

// PeekPrev 返回上一条记录，仅在 CanRetreat 为 true 时有效
func (rl *RouteList) PeekPrev() (RouteRecord, bool) {
	if !rl.CanRetreat() {
		return RouteRecord{}, false
	}
	return rl.records[rl.index-1], true
}

// Replace 用新记录整体替换列表内容，索引重置为 0
//
// 超出 MaxRoutes 的记录被丢弃；记录为空时状态变为 NoResults。
// 返回实际保存的记录数。
func (rl *RouteList) Replace(records []RouteRecord) int {
	n := len(records)
	if n > MaxRoutes {
		n = MaxRoutes
	}
	for i := 0; i < n; i++ {
		rl.records[i] = records[i].Normalized()
	}
	rl.index = 0
	if n == 0 {
		rl.status = StatusNoResults
		return 0
	}
	rl.length = n
	rl.status = StatusOK
	return n
}

// SetStatus 设置显示状态
// 记录数组保持不变；设置为 OK 时仅在已有记录的情况下生效
func (rl *RouteList) SetStatus(s Status) {
	if s == StatusOK && rl.length == 0 {
		return
	}
	rl.status = s
}
