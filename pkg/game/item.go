package game

import "math"

// ItemKind 商店物品类型
type ItemKind int

const (
	// ItemClickUpgrade 点击升级：购买后提升每次点击的产量
	ItemClickUpgrade ItemKind = iota
	// ItemAutoGenerator 自动点击器：购买后提升每秒被动产量
	ItemAutoGenerator
)

// String 返回物品类型名称（用于日志）
func (k ItemKind) String() string {
	switch k {
	case ItemClickUpgrade:
		return "upgrade"
	case ItemAutoGenerator:
		return "autoClicker"
	default:
		return "unknown"
	}
}

// Item 可购买的商店物品
//
// 价格随等级按几何级数增长：cost = floor(BaseCost * GrowthRate^Level)。
// Level 只能通过 GameState.Purchase / Restore / Reset 修改。
type Item struct {
	ID          string   // 稳定标识符（来自 catalog.yaml）
	Name        string   // 显示名称
	Description string   // 描述文字
	Kind        ItemKind // 物品类型
	BaseCost    float64  // 0 级价格
	Gain        float64  // 每次购买增加的产量
	GrowthRate  float64  // 价格增长倍率（> 1）
	Level       int      // 当前等级（已购买次数）
}

// CostAt 返回指定等级时的价格
func (it *Item) CostAt(level int) float64 {
	return math.Floor(it.BaseCost * math.Pow(it.GrowthRate, float64(level)))
}

// Cost 返回当前等级的价格
func (it *Item) Cost() float64 {
	return it.CostAt(it.Level)
}

// GainUnit 返回产量单位文字，用于商店显示
func (it *Item) GainUnit() string {
	if it.Kind == ItemAutoGenerator {
		return "cookies/sec"
	}
	return "cookies/click"
}
