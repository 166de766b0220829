package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/cookieclicker/pkg/game"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// upgradeKeys / autoClickerKeys 商店条目的购买快捷键（按目录顺序）
const (
	upgradeKeys     = "123456789"
	autoClickerKeys = "abcdefghi"
)

const helpMessage = "Space: click  1-9/a-i: buy  s/l: save/load  r: reset  m: sound  q: quit"

// clicker 终端前端的控制器
// 与 ClickerScene 共用 GameState / SaveManager / SettingsManager，只是输入和绘制换成了终端
type clicker struct {
	gameState       *game.GameState
	saveManager     *game.SaveManager
	settingsManager *game.SettingsManager
	sound           func() // 点击音效，可为 nil

	message      string // 状态栏消息
	confirmReset bool   // 等待 y/n 确认重置
}

func newClicker(gs *game.GameState, saves *game.SaveManager, settings *game.SettingsManager, sound func()) *clicker {
	return &clicker{
		gameState:       gs,
		saveManager:     saves,
		settingsManager: settings,
		sound:           sound,
		message:         helpMessage,
	}
}

// handleKey 处理一次按键，返回 false 表示退出
func (c *clicker) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	r := ev.Rune()
	if c.confirmReset {
		c.confirmReset = false
		if r == 'y' || r == 'Y' {
			c.gameState.Reset()
			c.notify("Game reset!")
		} else {
			c.notify("Reset cancelled")
		}
		return true
	}

	switch r {
	case 'q':
		return false
	case ' ':
		c.click()
	case 's':
		c.save()
	case 'l':
		c.load()
	case 'r':
		c.confirmReset = true
		c.message = "Are you sure you want to reset all progress? (y/n)"
	case 'm':
		c.notify("Sound " + onOff(c.settingsManager.ToggleSound()))
	default:
		c.buyByKey(r)
	}
	return true
}

func (c *clicker) click() {
	c.gameState.Click()
	if c.sound != nil && c.settingsManager.GetSettings().SoundEnabled {
		c.sound()
	}
	c.checkAchievements()
}

// buyByKey 将快捷键映射到商店条目并购买
func (c *clicker) buyByKey(r rune) {
	item := c.itemForKey(r)
	if item == nil {
		return
	}
	if !c.gameState.Purchase(item) {
		c.notify(fmt.Sprintf("Not enough cookies for %s", item.Name))
		return
	}
	c.notify(fmt.Sprintf("Bought %s (Lvl %d)", item.Name, item.Level))
	c.checkAchievements()
}

func (c *clicker) itemForKey(r rune) *game.Item {
	for i, item := range c.gameState.Upgrades {
		if shortcutKey(upgradeKeys, i) == r {
			return item
		}
	}
	for i, item := range c.gameState.AutoClickers {
		if shortcutKey(autoClickerKeys, i) == r {
			return item
		}
	}
	return nil
}

// tick 每 100ms 调用一次
func (c *clicker) tick(deltaFraction float64) {
	c.gameState.Tick(deltaFraction)
	c.checkAchievements()
}

func (c *clicker) save() {
	if err := c.saveManager.Save(c.gameState); err != nil {
		c.notify(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.notify("Game saved!")
}

func (c *clicker) load() {
	err := c.saveManager.Load(c.gameState)
	switch {
	case errors.Is(err, game.ErrNoSave):
		c.notify("No save found!")
	case err != nil:
		c.notify(fmt.Sprintf("Load failed: %v", err))
	default:
		c.checkAchievements()
		c.notify("Game loaded!")
	}
}

func (c *clicker) checkAchievements() {
	for _, ach := range c.gameState.EvaluateAchievements() {
		c.notify("Achievement unlocked: " + ach.Name)
	}
}

func (c *clicker) notify(message string) {
	log.Printf("[cookieterm] %s", message)
	c.message = message
}

// statusLines 返回顶部状态文字
func (c *clicker) statusLines() []string {
	gs := c.gameState
	return []string{
		"Cookies: " + utils.FormatCookies(gs.Cookies),
		fmt.Sprintf("per click: %s   per second: %s", utils.FormatCookies(gs.CookiesPerClick), utils.FormatRate(gs.CookiesPerSec)),
		fmt.Sprintf("Achievements: %d/%d", gs.UnlockedCount(), len(gs.Achievements)),
	}
}

// shortcutKey 返回第 index 个条目的快捷键
// 目录条目多于快捷键时，多出的条目没有快捷键（返回 0）
func shortcutKey(keys string, index int) rune {
	if index < 0 || index >= len(keys) {
		return 0
	}
	return rune(keys[index])
}

// shopLine 返回一个商店条目的显示文字，没有快捷键的条目留空
func (c *clicker) shopLine(key rune, item *game.Item) string {
	label := "   "
	if key != 0 {
		label = fmt.Sprintf("[%c]", key)
	}
	return fmt.Sprintf("%s %-16s Lvl %-3d +%v %-13s %12s", label, item.Name, item.Level,
		item.Gain, item.GainUnit(), utils.FormatCookies(c.gameState.Cost(item)))
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
