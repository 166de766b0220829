package components

// ShopEntryComponent 将购买按钮关联到商店物品
// 场景每次刷新时根据物品价格和余额更新按钮的 Enabled
type ShopEntryComponent struct {
	ItemID string
}
