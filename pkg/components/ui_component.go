package components

// UIState UI 元素（按钮）的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 鼠标悬停
	UIHovered
	// UIClicked 鼠标按下
	UIClicked
	// UIDisabled 已禁用，不响应交互
	UIDisabled
)

// String 返回状态名称（用于日志）
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
