package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// tickInterval 被动产出节拍
const tickInterval = 100 * time.Millisecond

var (
	styleDefault    = tcell.StyleDefault
	styleTitle      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleAffordable = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLocked     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleUnlocked   = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleMessage    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// terminal 负责 tcell 屏幕的事件循环与绘制
type terminal struct {
	screen  tcell.Screen
	clicker *clicker
}

func newTerminal(screen tcell.Screen, c *clicker) *terminal {
	return &terminal{screen: screen, clicker: c}
}

// run 事件循环：按键立即处理，被动产出按固定节拍推进
func (t *terminal) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	t.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.clicker.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			t.draw()

		case <-ticker.C:
			t.clicker.tick(tickInterval.Seconds())
			t.draw()
		}
	}
}

// draw 重绘整个屏幕
func (t *terminal) draw() {
	t.screen.Clear()
	c := t.clicker
	gs := c.gameState

	y := 0
	for i, line := range c.statusLines() {
		style := styleDefault
		if i == 0 {
			style = styleTitle
		}
		t.drawText(0, y, line, style)
		y++
	}

	y++
	t.drawText(0, y, "Upgrades", styleTitle)
	y++
	for i, item := range gs.Upgrades {
		t.drawText(2, y, c.shopLine(shortcutKey(upgradeKeys, i), item), t.itemStyle(gs.CanAfford(item)))
		y++
	}

	y++
	t.drawText(0, y, "Auto Clickers", styleTitle)
	y++
	for i, item := range gs.AutoClickers {
		t.drawText(2, y, c.shopLine(shortcutKey(autoClickerKeys, i), item), t.itemStyle(gs.CanAfford(item)))
		y++
	}

	y++
	t.drawText(0, y, "Achievements", styleTitle)
	y++
	for _, ach := range gs.Achievements {
		style := styleLocked
		mark := "[ ]"
		if ach.Unlocked {
			style = styleUnlocked
			mark = "[x]"
		}
		t.drawText(2, y, mark+" "+ach.Name+": "+ach.Description, style)
		y++
	}

	_, height := t.screen.Size()
	t.drawText(0, height-1, c.message, styleMessage)
	t.screen.Show()
}

func (t *terminal) itemStyle(affordable bool) tcell.Style {
	if affordable {
		return styleAffordable
	}
	return styleLocked
}

func (t *terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
