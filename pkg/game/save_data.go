package game

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrRestoreMismatch 存档数组长度与当前目录不一致
	ErrRestoreMismatch = errors.New("save data does not match catalog")
	// ErrRestoreInvalid 存档数值非法（负数、NaN、Inf、负等级）
	ErrRestoreInvalid = errors.New("save data contains invalid values")
)

// SaveData 存档数据结构
//
// 数组按目录顺序与物品、成就一一对应。
// 只保存数值状态，成就判定逻辑不进入存档。
type SaveData struct {
	Cookies         float64 `yaml:"cookies"`
	CookiesPerClick float64 `yaml:"cookiesPerClick"`
	CookiesPerSec   float64 `yaml:"cookiesPerSec"`
	Upgrades        []int   `yaml:"upgrades"`     // 点击升级等级
	AutoClickers    []int   `yaml:"autoClickers"` // 自动点击器等级
	Achievements    []bool  `yaml:"achievements"` // 成就解锁标记
}

// Serialize 生成当前状态的存档快照
func (gs *GameState) Serialize() SaveData {
	data := SaveData{
		Cookies:         gs.Cookies,
		CookiesPerClick: gs.CookiesPerClick,
		CookiesPerSec:   gs.CookiesPerSec,
		Upgrades:        levelsOf(gs.Upgrades),
		AutoClickers:    levelsOf(gs.AutoClickers),
		Achievements:    make([]bool, len(gs.Achievements)),
	}
	for i, ach := range gs.Achievements {
		data.Achievements[i] = ach.Unlocked
	}
	return data
}

// Restore 从存档快照恢复状态
//
// 先完整校验，再一次性写入：任何错误都不会修改当前状态，
// 不会出现“恢复了一半”的模型。
//
// 返回：
//   - error: 包装 ErrRestoreMismatch 或 ErrRestoreInvalid
func (gs *GameState) Restore(data SaveData) error {
	if err := gs.validateSaveData(data); err != nil {
		return err
	}

	gs.Cookies = data.Cookies
	gs.CookiesPerClick = data.CookiesPerClick
	gs.CookiesPerSec = data.CookiesPerSec

	for i, item := range gs.Upgrades {
		item.Level = data.Upgrades[i]
	}
	for i, item := range gs.AutoClickers {
		item.Level = data.AutoClickers[i]
	}
	for i, ach := range gs.Achievements {
		ach.Unlocked = data.Achievements[i]
	}

	return nil
}

// validateSaveData 校验存档与当前目录是否匹配
func (gs *GameState) validateSaveData(data SaveData) error {
	if len(data.Upgrades) != len(gs.Upgrades) {
		return fmt.Errorf("%w: upgrades has %d entries, catalog has %d",
			ErrRestoreMismatch, len(data.Upgrades), len(gs.Upgrades))
	}
	if len(data.AutoClickers) != len(gs.AutoClickers) {
		return fmt.Errorf("%w: autoClickers has %d entries, catalog has %d",
			ErrRestoreMismatch, len(data.AutoClickers), len(gs.AutoClickers))
	}
	if len(data.Achievements) != len(gs.Achievements) {
		return fmt.Errorf("%w: achievements has %d entries, catalog has %d",
			ErrRestoreMismatch, len(data.Achievements), len(gs.Achievements))
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"cookies", data.Cookies},
		{"cookiesPerClick", data.CookiesPerClick},
		{"cookiesPerSec", data.CookiesPerSec},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s = %v", ErrRestoreInvalid, f.name, f.value)
		}
	}

	for i, level := range data.Upgrades {
		if level < 0 {
			return fmt.Errorf("%w: upgrades[%d] = %d", ErrRestoreInvalid, i, level)
		}
	}
	for i, level := range data.AutoClickers {
		if level < 0 {
			return fmt.Errorf("%w: autoClickers[%d] = %d", ErrRestoreInvalid, i, level)
		}
	}

	return nil
}
