package components

// PositionComponent 实体在屏幕上的坐标（像素）
// 按钮、对话框为左上角，饼干和粒子为中心点
type PositionComponent struct {
	X float64
	Y float64
}
