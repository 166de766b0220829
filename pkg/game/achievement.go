package game

import (
	"fmt"

	"github.com/decker502/cookieclicker/pkg/config"
)

// AchievementKind 成就判定类型
//
// 成就不保存闭包，而是保存“类型 + 参数”，
// 判定时对只读的 Snapshot 求值，便于单独测试，也不会混入存档数据。
type AchievementKind int

const (
	// AchievementCookiesAtLeast 当前饼干数 >= Threshold
	AchievementCookiesAtLeast AchievementKind = iota
	// AchievementAnyUpgradeOwned 拥有任意点击升级
	AchievementAnyUpgradeOwned
	// AchievementAnyAutoOwned 拥有任意自动点击器
	AchievementAnyAutoOwned
	// AchievementClickPowerAtLeast 每次点击产量 >= Threshold
	AchievementClickPowerAtLeast
	// AchievementPassiveRateAtLeast 每秒产量 >= Threshold
	AchievementPassiveRateAtLeast
	// AchievementItemOwned 指定 ID 的物品等级 > 0
	AchievementItemOwned
)

var achievementKindNames = map[string]AchievementKind{
	config.AchievementKindCookiesAtLeast:     AchievementCookiesAtLeast,
	config.AchievementKindAnyUpgradeOwned:    AchievementAnyUpgradeOwned,
	config.AchievementKindAnyAutoOwned:       AchievementAnyAutoOwned,
	config.AchievementKindClickPowerAtLeast:  AchievementClickPowerAtLeast,
	config.AchievementKindPassiveRateAtLeast: AchievementPassiveRateAtLeast,
	config.AchievementKindItemOwned:          AchievementItemOwned,
}

// ParseAchievementKind 将配置中的 kind 字符串转换为 AchievementKind
func ParseAchievementKind(name string) (AchievementKind, error) {
	kind, ok := achievementKindNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown achievement kind %q", name)
	}
	return kind, nil
}

// String 返回配置中使用的 kind 字符串
func (k AchievementKind) String() string {
	for name, kind := range achievementKindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Achievement 成就
//
// Unlocked 只会从 false 变为 true；只有 GameState.Reset 会重新锁定。
type Achievement struct {
	ID          string
	Name        string
	Description string
	Kind        AchievementKind
	Threshold   float64 // 阈值类成就使用
	ItemID      string  // AchievementItemOwned 使用
	Unlocked    bool
}

// Snapshot 游戏状态的只读快照，供成就判定使用
type Snapshot struct {
	Cookies           float64
	CookiesPerClick   float64
	CookiesPerSec     float64
	UpgradeLevels     []int
	AutoClickerLevels []int
	ItemLevels        map[string]int // 物品 ID -> 等级
}

// Evaluate 对快照求值，判断成就条件是否满足
// 纯函数：不读取也不修改 Unlocked
func (a *Achievement) Evaluate(s Snapshot) bool {
	switch a.Kind {
	case AchievementCookiesAtLeast:
		return s.Cookies >= a.Threshold
	case AchievementAnyUpgradeOwned:
		return anyPositive(s.UpgradeLevels)
	case AchievementAnyAutoOwned:
		return anyPositive(s.AutoClickerLevels)
	case AchievementClickPowerAtLeast:
		return s.CookiesPerClick >= a.Threshold
	case AchievementPassiveRateAtLeast:
		return s.CookiesPerSec >= a.Threshold
	case AchievementItemOwned:
		return s.ItemLevels[a.ItemID] > 0
	default:
		return false
	}
}

func anyPositive(levels []int) bool {
	for _, level := range levels {
		if level > 0 {
			return true
		}
	}
	return false
}
