package components

// DialogComponent 模态对话框组件
// 用于重置进度前的确认提示；对话框存在时场景只处理对话框输入
type DialogComponent struct {
	Title     string         // 标题
	Message   string         // 消息
	Buttons   []DialogButton // 按钮（从左到右）
	IsVisible bool           // 是否可见
	Width     float64        // 对话框宽度
	Height    float64        // 对话框高度
}

// DialogButton 对话框按钮
// 坐标相对于对话框左上角
type DialogButton struct {
	Label   string
	OnClick func()
	X       float64
	Y       float64
	Width   float64
	Height  float64
	State   UIState
}
