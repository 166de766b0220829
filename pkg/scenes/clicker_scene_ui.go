package scenes

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/entities"
	"github.com/decker502/cookieclicker/pkg/game"
	"github.com/decker502/cookieclicker/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor     = color.RGBA{R: 0x2b, G: 0x1d, B: 0x12, A: 0xff}
	panelColor          = color.RGBA{R: 0x45, G: 0x30, B: 0x1e, A: 0xff}
	panelBorderColor    = color.RGBA{R: 0x6b, G: 0x4a, B: 0x2e, A: 0xff}
	textColor           = color.RGBA{R: 0xff, G: 0xf4, B: 0xe0, A: 0xff}
	dimTextColor        = color.RGBA{R: 0xc8, G: 0xb4, B: 0x96, A: 0xff}
	lockedTextColor     = color.RGBA{R: 0x80, G: 0x70, B: 0x60, A: 0xff}
	unlockedTextColor   = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	unaffordableCostClr = color.RGBA{R: 0xe0, G: 0x7a, B: 0x5f, A: 0xff}
)

// entryBoxHeight 商品条目背景高度（条目之间留 6 像素间隔）
const entryBoxHeight = config.ShopEntryHeight - 6

// shopEntryView 商店条目的显示内容
type shopEntryView struct {
	ItemID      string
	Title       string // "Grandma (Lvl 2)"
	Gain        string // "+1 cookies/sec"
	Description string
	Cost        string // "Cost: 169"
	Affordable  bool
}

// achievementView 成就列表的一行
type achievementView struct {
	Label    string
	Unlocked bool
}

// sceneView 每次状态变化后重建的显示内容
// Draw 只读取 sceneView，不直接读取 GameState
type sceneView struct {
	Cookies       string
	Rate          string
	Upgrades      []shopEntryView
	AutoClickers  []shopEntryView
	Achievements  []achievementView
	UnlockedCount int
}

// buildSceneView 根据当前状态生成显示内容
func buildSceneView(gs *game.GameState) sceneView {
	v := sceneView{
		Cookies:       utils.FormatCookies(gs.Cookies),
		Rate:          utils.FormatRate(gs.CookiesPerSec),
		Upgrades:      buildShopEntries(gs, gs.Upgrades),
		AutoClickers:  buildShopEntries(gs, gs.AutoClickers),
		UnlockedCount: gs.UnlockedCount(),
	}
	for _, ach := range gs.Achievements {
		v.Achievements = append(v.Achievements, achievementView{
			Label:    ach.Name + ": " + ach.Description,
			Unlocked: ach.Unlocked,
		})
	}
	return v
}

func buildShopEntries(gs *game.GameState, items []*game.Item) []shopEntryView {
	entries := make([]shopEntryView, 0, len(items))
	for _, item := range items {
		entries = append(entries, shopEntryView{
			ItemID:      item.ID,
			Title:       fmt.Sprintf("%s (Lvl %d)", item.Name, item.Level),
			Gain:        fmt.Sprintf("+%s %s", formatNumber(item.Gain), item.GainUnit()),
			Description: item.Description,
			Cost:        "Cost: " + formatNumber(gs.Cost(item)),
			Affordable:  gs.CanAfford(item),
		})
	}
	return entries
}

// shopEntries 按存档顺序返回所有商店条目
func (v sceneView) shopEntries() []shopEntryView {
	entries := make([]shopEntryView, 0, len(v.Upgrades)+len(v.AutoClickers))
	entries = append(entries, v.Upgrades...)
	return append(entries, v.AutoClickers...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// createCommandButtons 创建 Save / Load / Reset 按钮
func (s *ClickerScene) createCommandButtons() {
	commands := []struct {
		label   string
		onClick func()
	}{
		{"Save", s.SaveGame},
		{"Load", s.LoadGame},
		{"Reset", s.RequestReset},
	}

	for i, cmd := range commands {
		entities.NewButton(s.entityManager,
			config.CommandButtonX(i), config.CommandButtonY,
			config.CommandButtonWidth, config.CommandButtonHeight,
			cmd.label, s.bodyFont, cmd.onClick)
	}
}

// createBuyButtons 为每个商店物品创建购买按钮
func (s *ClickerScene) createBuyButtons() {
	columns := []struct {
		x     float64
		items []*game.Item
	}{
		{config.UpgradeColumnX, s.gameState.Upgrades},
		{config.AutoClickerColumnX, s.gameState.AutoClickers},
	}

	for _, col := range columns {
		for i, item := range col.items {
			itemID := item.ID
			x, y := buyButtonPosition(col.x, i)
			s.buyButtons[itemID] = entities.NewBuyButton(s.entityManager, itemID,
				x, y, config.BuyButtonWidth, config.BuyButtonHeight,
				s.smallFont, func() { s.Buy(itemID) })
		}
	}
}

// buyButtonPosition 返回购买按钮左上角（条目右下角内侧）
func buyButtonPosition(columnX float64, index int) (float64, float64) {
	x := columnX + config.ShopEntryWidth - config.BuyButtonWidth - config.ShopEntryPadding
	y := config.ShopEntryY(index) + entryBoxHeight - config.BuyButtonHeight - config.ShopEntryPadding
	return x, y
}

// drawHUD 绘制饼干数量、每秒产量和设置状态
func (s *ClickerScene) drawHUD(screen *ebiten.Image) {
	utils.DrawText(screen, s.view.Cookies+" cookies", s.titleFont, config.HUDX, config.HUDCookiesY, textColor)
	utils.DrawText(screen, s.view.Rate+" cookies/sec", s.bodyFont, config.HUDX, config.HUDRateY, dimTextColor)

	settings := s.settingsManager.GetSettings()
	status := fmt.Sprintf("Sound %s [M]   Particles %s [P]", onOff(settings.SoundEnabled), onOff(settings.ShowParticles))
	utils.DrawText(screen, status, s.smallFont, config.HUDX, 8, dimTextColor)
}

// drawShop 绘制两列商店条目（购买按钮由 ButtonRenderSystem 绘制）
func (s *ClickerScene) drawShop(screen *ebiten.Image) {
	s.drawShopColumn(screen, "Upgrades", config.UpgradeColumnX, s.view.Upgrades)
	s.drawShopColumn(screen, "Auto Clickers", config.AutoClickerColumnX, s.view.AutoClickers)
}

func (s *ClickerScene) drawShopColumn(screen *ebiten.Image, title string, x float64, entries []shopEntryView) {
	utils.DrawText(screen, title, s.bodyFont, x, config.ShopTitleY, textColor)

	pad := config.ShopEntryPadding
	for i, entry := range entries {
		y := config.ShopEntryY(i)
		vector.DrawFilledRect(screen, float32(x), float32(y), config.ShopEntryWidth, entryBoxHeight, panelColor, false)
		vector.StrokeRect(screen, float32(x), float32(y), config.ShopEntryWidth, entryBoxHeight, 1, panelBorderColor, false)

		utils.DrawText(screen, entry.Title, s.bodyFont, x+pad, y+pad-2, textColor)
		utils.DrawText(screen, entry.Gain, s.smallFont, x+pad, y+pad+19, dimTextColor)
		utils.DrawText(screen, entry.Description, s.smallFont, x+pad, y+pad+36, lockedTextColor)

		costColor := dimTextColor
		if !entry.Affordable {
			costColor = unaffordableCostClr
		}
		utils.DrawRightAlignedText(screen, entry.Cost, s.smallFont, x+config.ShopEntryWidth-pad, y+pad, costColor)
	}
}

// drawAchievements 绘制成就列表（全部显示，已解锁的高亮）
func (s *ClickerScene) drawAchievements(screen *ebiten.Image) {
	header := fmt.Sprintf("Achievements (%d/%d)", s.view.UnlockedCount, len(s.view.Achievements))
	utils.DrawText(screen, header, s.bodyFont, config.HUDX, config.AchievementListY, textColor)

	for i, ach := range s.view.Achievements {
		clr := lockedTextColor
		if ach.Unlocked {
			clr = unlockedTextColor
		}
		y := config.AchievementListY + float64(i+1)*config.AchievementLineHeight
		utils.DrawText(screen, ach.Label, s.smallFont, config.HUDX, y, clr)
	}
}
