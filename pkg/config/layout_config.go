package config

// 布局配置常量
// 本文件定义了点击场景中的布局参数，所有坐标均为逻辑屏幕坐标（左上角为原点）

// 窗口尺寸
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1100
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 680
)

// 饼干按钮（点击区域）
const (
	// CookieCenterX 饼干圆心 X 坐标，同时是碎屑粒子的发射点
	CookieCenterX = 160.0
	// CookieCenterY 饼干圆心 Y 坐标
	CookieCenterY = 160.0
	// CookieRadius 饼干半径（点击判定与绘制共用）
	CookieRadius = 90.0
	// CookiePulseDuration 点击后饼干缩放动画时长（秒）
	CookiePulseDuration = 0.15
	// CookiePulseScale 点击瞬间的缩放比例
	CookiePulseScale = 0.92
)

// 左侧 HUD 与命令按钮
const (
	// HUDX 饼干数量等文字的左边距
	HUDX = 20.0
	// HUDCookiesY 饼干数量文字的 Y 坐标
	HUDCookiesY = 270.0
	// HUDRateY 每秒产量文字的 Y 坐标
	HUDRateY = 305.0

	// CommandButtonY Save/Load/Reset 按钮的 Y 坐标
	CommandButtonY = 340.0
	// CommandButtonWidth 命令按钮宽度
	CommandButtonWidth = 90.0
	// CommandButtonHeight 命令按钮高度
	CommandButtonHeight = 32.0
	// CommandButtonGap 命令按钮之间的间距
	CommandButtonGap = 10.0

	// AchievementListY 成就列表标题的 Y 坐标
	AchievementListY = 395.0
	// AchievementLineHeight 成就列表行高
	AchievementLineHeight = 26.0
)

// 商店列表
const (
	// UpgradeColumnX 点击升级列的 X 坐标
	UpgradeColumnX = 320.0
	// AutoClickerColumnX 自动点击器列的 X 坐标
	AutoClickerColumnX = 710.0
	// ShopTitleY 列标题的 Y 坐标
	ShopTitleY = 14.0
	// ShopTopY 第一个商品条目的 Y 坐标
	ShopTopY = 46.0
	// ShopEntryWidth 商品条目宽度
	ShopEntryWidth = 370.0
	// ShopEntryHeight 商品条目高度（含间距）
	ShopEntryHeight = 70.0
	// ShopEntryPadding 商品条目内边距
	ShopEntryPadding = 8.0

	// BuyButtonWidth 购买按钮宽度
	BuyButtonWidth = 64.0
	// BuyButtonHeight 购买按钮高度
	BuyButtonHeight = 26.0
)

// 提示与对话框
const (
	// ToastY 提示文字的 Y 坐标（第一条）
	ToastY = 620.0
	// ToastLineHeight 多条提示之间的行距
	ToastLineHeight = 24.0
	// ToastDuration 提示显示时长（秒）
	ToastDuration = 2.5

	// DialogWidth 确认对话框宽度
	DialogWidth = 420.0
	// DialogHeight 确认对话框高度
	DialogHeight = 170.0
	// DialogButtonWidth 对话框按钮宽度
	DialogButtonWidth = 110.0
	// DialogButtonHeight 对话框按钮高度
	DialogButtonHeight = 34.0
)

// ShopEntryY 返回第 index 个商品条目的 Y 坐标
func ShopEntryY(index int) float64 {
	return ShopTopY + float64(index)*ShopEntryHeight
}

// CommandButtonX 返回第 index 个命令按钮的 X 坐标
func CommandButtonX(index int) float64 {
	return HUDX + float64(index)*(CommandButtonWidth+CommandButtonGap)
}
