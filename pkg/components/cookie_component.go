package components

// CookieComponent 可点击的大饼干
// PositionComponent 为圆心；点击判定为圆形区域
type CookieComponent struct {
	Radius float64
}

// Contains 检查点 (x, y) 是否在以 (cx, cy) 为圆心的饼干内
func (c *CookieComponent) Contains(cx, cy, x, y float64) bool {
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// ScaleComponent 实体级别的缩放因子（1.0 = 原始大小）
type ScaleComponent struct {
	ScaleX float64
	ScaleY float64
}

// PulseAnimationComponent 点击时的缩放脉冲
// 从 MinScale 缓动回到 1.0，结束后由 PulseSystem 移除
type PulseAnimationComponent struct {
	ElapsedTime float64 // 已播放时间（秒）
	Duration    float64 // 总时长（秒）
	MinScale    float64 // 起始缩放
	IsCompleted bool
}
