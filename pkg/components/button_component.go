package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 矩形按钮组件
// 纯数据组件：交互由 ButtonSystem 处理，绘制由 ButtonRenderSystem 处理
type ButtonComponent struct {
	// Text 按钮文字（居中显示）
	Text string
	// Font 文字字体，为 nil 时不绘制文字
	Font *text.GoTextFace

	Width  float64
	Height float64

	// 背景颜色：Color 为正常状态，HoverColor 为悬停/按下状态
	Color      color.RGBA
	HoverColor color.RGBA

	// State 当前交互状态
	State UIState
	// Enabled 是否启用（禁用时不响应点击，绘制为灰色）
	Enabled bool

	// OnClick 鼠标在按钮内释放时调用
	OnClick func()
}

// Contains 检查点 (x, y) 是否在以 (left, top) 为左上角的按钮范围内
func (b *ButtonComponent) Contains(left, top, x, y float64) bool {
	return x >= left && x <= left+b.Width && y >= top && y <= top+b.Height
}
