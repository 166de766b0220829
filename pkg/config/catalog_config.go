package config

import (
	"fmt"

	"github.com/decker502/cookieclicker/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 成就类型标识（catalog.yaml 中 kind 字段的合法取值）
const (
	AchievementKindCookiesAtLeast     = "cookies_at_least"
	AchievementKindAnyUpgradeOwned    = "any_upgrade_owned"
	AchievementKindAnyAutoOwned       = "any_auto_owned"
	AchievementKindClickPowerAtLeast  = "click_power_at_least"
	AchievementKindPassiveRateAtLeast = "passive_rate_at_least"
	AchievementKindItemOwned          = "item_owned"
)

// ItemConfig 单个商店物品配置
type ItemConfig struct {
	ID          string  `yaml:"id"`          // 稳定标识符，成就通过它引用物品
	Name        string  `yaml:"name"`        // 显示名称
	BaseCost    float64 `yaml:"baseCost"`    // 0 级时的价格
	Gain        float64 `yaml:"gain"`        // 每级增加的产量（点击升级为 cookies/click，自动点击器为 cookies/sec）
	Description string  `yaml:"description"` // 描述文字
}

// ItemGroupConfig 一类物品（点击升级或自动点击器）的配置
type ItemGroupConfig struct {
	GrowthRate float64      `yaml:"growthRate"` // 价格增长倍率，必须大于 1
	Items      []ItemConfig `yaml:"items"`
}

// AchievementConfig 成就配置
type AchievementConfig struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Kind        string  `yaml:"kind"`      // 见 AchievementKind* 常量
	Threshold   float64 `yaml:"threshold"` // 阈值类成就使用
	Item        string  `yaml:"item"`      // item_owned 使用，引用物品 ID
}

// CatalogConfig 商店与成就目录
//
// 数组顺序就是存档中各数组的位置顺序。
type CatalogConfig struct {
	Upgrades     ItemGroupConfig     `yaml:"upgrades"`
	AutoClickers ItemGroupConfig     `yaml:"autoClickers"`
	Achievements []AchievementConfig `yaml:"achievements"`
}

// LoadCatalogConfig 从嵌入的 YAML 文件加载商店目录
// 参数：
//
//	filepath - 配置文件路径（如 "data/catalog.yaml"）
//
// 返回：
//
//	*CatalogConfig - 解析并校验后的配置
//	error - 读取、解析或校验失败
func LoadCatalogConfig(filepath string) (*CatalogConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filepath, err)
	}

	config, err := ParseCatalogConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return config, nil
}

// ParseCatalogConfig 解析并校验目录 YAML 数据
func ParseCatalogConfig(data []byte) (*CatalogConfig, error) {
	var config CatalogConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := validateCatalog(&config); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &config, nil
}

// validateCatalog 验证目录配置的完整性和合法性
func validateCatalog(config *CatalogConfig) error {
	itemIDs := make(map[string]bool)

	groups := []struct {
		name  string
		group *ItemGroupConfig
	}{
		{"upgrades", &config.Upgrades},
		{"autoClickers", &config.AutoClickers},
	}

	for _, g := range groups {
		if g.group.GrowthRate <= 1 {
			return fmt.Errorf("%s: growthRate must be greater than 1, got %v", g.name, g.group.GrowthRate)
		}
		if len(g.group.Items) == 0 {
			return fmt.Errorf("%s: at least one item is required", g.name)
		}

		for i, item := range g.group.Items {
			if item.ID == "" {
				return fmt.Errorf("%s[%d]: id is required", g.name, i)
			}
			if itemIDs[item.ID] {
				return fmt.Errorf("%s[%d]: duplicate item id %q", g.name, i, item.ID)
			}
			itemIDs[item.ID] = true

			if item.Name == "" {
				return fmt.Errorf("item %s: name is required", item.ID)
			}
			if item.BaseCost <= 0 {
				return fmt.Errorf("item %s: baseCost must be positive, got %v", item.ID, item.BaseCost)
			}
			if item.Gain <= 0 {
				return fmt.Errorf("item %s: gain must be positive, got %v", item.ID, item.Gain)
			}
			// 价格取整后仍需严格递增
			if item.BaseCost*(g.group.GrowthRate-1) < 1 {
				return fmt.Errorf("item %s: baseCost %v too small for growthRate %v", item.ID, item.BaseCost, g.group.GrowthRate)
			}
		}
	}

	achievementIDs := make(map[string]bool)
	for i, ach := range config.Achievements {
		if ach.ID == "" {
			return fmt.Errorf("achievements[%d]: id is required", i)
		}
		if achievementIDs[ach.ID] {
			return fmt.Errorf("achievements[%d]: duplicate achievement id %q", i, ach.ID)
		}
		achievementIDs[ach.ID] = true

		switch ach.Kind {
		case AchievementKindCookiesAtLeast, AchievementKindClickPowerAtLeast, AchievementKindPassiveRateAtLeast:
			if ach.Threshold <= 0 {
				return fmt.Errorf("achievement %s: threshold must be positive for kind %s", ach.ID, ach.Kind)
			}
		case AchievementKindAnyUpgradeOwned, AchievementKindAnyAutoOwned:
		case AchievementKindItemOwned:
			if !itemIDs[ach.Item] {
				return fmt.Errorf("achievement %s: unknown item %q", ach.ID, ach.Item)
			}
		default:
			return fmt.Errorf("achievement %s: unknown kind %q", ach.ID, ach.Kind)
		}
	}

	return nil
}
