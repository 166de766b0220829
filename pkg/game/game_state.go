package game

import (
	"fmt"
	"log"

	"github.com/decker502/cookieclicker/pkg/config"
)

// 初始数值（Reset 后恢复到这些值）
const (
	DefaultCookies         = 0.0
	DefaultCookiesPerClick = 1.0
	DefaultCookiesPerSec   = 0.0
)

// GameState 点击游戏的进度模型
//
// 持有饼干余额、点击产量、被动产量以及商店物品和成就。
// 由控制器（场景）独占持有，并显式传递给存档管理器等子系统，不使用全局单例。
// 所有修改都发生在同一个逻辑线程中，不需要加锁。
type GameState struct {
	Cookies         float64 // 当前饼干数量（可以是小数，被动产出按 tick 累加）
	CookiesPerClick float64 // 每次点击获得的饼干
	CookiesPerSec   float64 // 每秒被动产出

	Upgrades     []*Item        // 点击升级（顺序即存档顺序）
	AutoClickers []*Item        // 自动点击器（顺序即存档顺序）
	Achievements []*Achievement // 成就（顺序即存档顺序）

	itemsByID map[string]*Item
}

// NewGameState 根据商店目录创建初始状态
//
// 参数：
//   - catalog: 已校验的目录配置
//
// 返回：
//   - *GameState: 初始状态（0 饼干，1 饼干/点击，0 饼干/秒）
//   - error: 目录中存在无法识别的成就类型或物品引用
func NewGameState(catalog *config.CatalogConfig) (*GameState, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}

	gs := &GameState{
		Cookies:         DefaultCookies,
		CookiesPerClick: DefaultCookiesPerClick,
		CookiesPerSec:   DefaultCookiesPerSec,
		itemsByID:       make(map[string]*Item),
	}

	gs.Upgrades = buildItems(catalog.Upgrades, ItemClickUpgrade)
	gs.AutoClickers = buildItems(catalog.AutoClickers, ItemAutoGenerator)

	for _, item := range gs.allItems() {
		if _, dup := gs.itemsByID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", item.ID)
		}
		gs.itemsByID[item.ID] = item
	}

	for _, ac := range catalog.Achievements {
		kind, err := ParseAchievementKind(ac.Kind)
		if err != nil {
			return nil, fmt.Errorf("achievement %s: %w", ac.ID, err)
		}
		if kind == AchievementItemOwned && gs.itemsByID[ac.Item] == nil {
			return nil, fmt.Errorf("achievement %s: unknown item %q", ac.ID, ac.Item)
		}
		gs.Achievements = append(gs.Achievements, &Achievement{
			ID:          ac.ID,
			Name:        ac.Name,
			Description: ac.Description,
			Kind:        kind,
			Threshold:   ac.Threshold,
			ItemID:      ac.Item,
		})
	}

	return gs, nil
}

// buildItems 将一组物品配置转换为 Item
func buildItems(group config.ItemGroupConfig, kind ItemKind) []*Item {
	items := make([]*Item, 0, len(group.Items))
	for _, ic := range group.Items {
		items = append(items, &Item{
			ID:          ic.ID,
			Name:        ic.Name,
			Description: ic.Description,
			Kind:        kind,
			BaseCost:    ic.BaseCost,
			Gain:        ic.Gain,
			GrowthRate:  group.GrowthRate,
		})
	}
	return items
}

// allItems 按存档顺序返回所有物品（先点击升级，后自动点击器）
func (gs *GameState) allItems() []*Item {
	items := make([]*Item, 0, len(gs.Upgrades)+len(gs.AutoClickers))
	items = append(items, gs.Upgrades...)
	return append(items, gs.AutoClickers...)
}

// AddCookies 增加饼干
// 负数和 0 会被忽略（饼干只会通过购买扣除）
func (gs *GameState) AddCookies(amount float64) {
	if amount <= 0 {
		return
	}
	gs.Cookies += amount
}

// Click 处理一次点击，返回本次获得的饼干数
func (gs *GameState) Click() float64 {
	gained := gs.CookiesPerClick
	gs.AddCookies(gained)
	return gained
}

// Tick 按固定节拍累加被动产出
//
// 参数：
//   - deltaFraction: 节拍间隔占一秒的比例（100ms 节拍为 0.1）
func (gs *GameState) Tick(deltaFraction float64) {
	gs.AddCookies(gs.CookiesPerSec * deltaFraction)
}

// Cost 返回物品当前价格（floor(BaseCost * GrowthRate^Level)）
func (gs *GameState) Cost(item *Item) float64 {
	return item.Cost()
}

// CanAfford 检查当前饼干是否足够购买物品
func (gs *GameState) CanAfford(item *Item) bool {
	return item != nil && gs.Cookies >= item.Cost()
}

// Purchase 购买物品
//
// 饼干不足时返回 false，状态不变（不依赖 UI 禁用按钮作为唯一保护）。
// 成功时扣除价格、等级 +1，并按物品类型增加点击产量或每秒产量。
func (gs *GameState) Purchase(item *Item) bool {
	if !gs.CanAfford(item) {
		return false
	}

	cost := item.Cost()
	gs.Cookies -= cost
	item.Level++

	switch item.Kind {
	case ItemClickUpgrade:
		gs.CookiesPerClick += item.Gain
	case ItemAutoGenerator:
		gs.CookiesPerSec += item.Gain
	}

	log.Printf("[GameState] Purchased %s %s (level %d) for %.0f cookies", item.Kind, item.ID, item.Level, cost)
	return true
}

// PurchaseByID 按物品 ID 购买，物品不存在时返回 false
func (gs *GameState) PurchaseByID(id string) bool {
	item, ok := gs.FindItem(id)
	if !ok {
		return false
	}
	return gs.Purchase(item)
}

// FindItem 按 ID 查找物品
func (gs *GameState) FindItem(id string) (*Item, bool) {
	item, ok := gs.itemsByID[id]
	return item, ok
}

// Snapshot 生成只读快照
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Cookies:           gs.Cookies,
		CookiesPerClick:   gs.CookiesPerClick,
		CookiesPerSec:     gs.CookiesPerSec,
		UpgradeLevels:     levelsOf(gs.Upgrades),
		AutoClickerLevels: levelsOf(gs.AutoClickers),
		ItemLevels:        make(map[string]int, len(gs.itemsByID)),
	}
	for id, item := range gs.itemsByID {
		s.ItemLevels[id] = item.Level
	}
	return s
}

// EvaluateAchievements 判定所有未解锁成就
//
// 返回本次新解锁的成就（按目录顺序），调用方用于刷新 UI 或弹出提示。
// 已解锁成就不会再次判定，条件不再满足也不会重新锁定。
func (gs *GameState) EvaluateAchievements() []*Achievement {
	snapshot := gs.Snapshot()

	var unlocked []*Achievement
	for _, ach := range gs.Achievements {
		if ach.Unlocked {
			continue
		}
		if ach.Evaluate(snapshot) {
			ach.Unlocked = true
			unlocked = append(unlocked, ach)
			log.Printf("[GameState] Achievement unlocked: %s", ach.ID)
		}
	}
	return unlocked
}

// UnlockedCount 返回已解锁成就数量
func (gs *GameState) UnlockedCount() int {
	count := 0
	for _, ach := range gs.Achievements {
		if ach.Unlocked {
			count++
		}
	}
	return count
}

// Reset 清空所有进度
// 饼干、产量恢复默认值，所有物品等级归零，所有成就重新锁定
func (gs *GameState) Reset() {
	gs.Cookies = DefaultCookies
	gs.CookiesPerClick = DefaultCookiesPerClick
	gs.CookiesPerSec = DefaultCookiesPerSec

	for _, item := range gs.allItems() {
		item.Level = 0
	}
	for _, ach := range gs.Achievements {
		ach.Unlocked = false
	}

	log.Printf("[GameState] Progress reset")
}

func levelsOf(items []*Item) []int {
	levels := make([]int, len(items))
	for i, item := range items {
		levels[i] = item.Level
	}
	return levels
}
