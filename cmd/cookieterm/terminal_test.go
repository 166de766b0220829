package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/game"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLine(screen tcell.Screen, y int) string {
	width, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " \x00")
}

func TestTerminalDraw(t *testing.T) {
	c, _ := newTestClicker(t)
	c.gameState.Cookies = 42

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(100, 50)

	newTerminal(screen, c).draw()

	assert.Equal(t, "Cookies: 42", readLine(screen, 0))
	assert.Equal(t, "Upgrades", readLine(screen, 4))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(readLine(screen, 5)), "[1] Double Cookies"))
	assert.Equal(t, helpMessage, readLine(screen, 49))
}

// largeCatalog 生成每组 count 个物品的目录，多于快捷键数量
func largeCatalog(t *testing.T, count int) *game.GameState {
	t.Helper()

	var sb strings.Builder
	for _, group := range []string{"upgrades", "autoClickers"} {
		fmt.Fprintf(&sb, "%s:\n  growthRate: 1.25\n  items:\n", group)
		for i := 0; i < count; i++ {
			fmt.Fprintf(&sb, "    - id: %s_%d\n      name: %s %d\n      baseCost: %d\n      gain: 1\n",
				group, i, group, i, 10*(i+1))
		}
	}

	catalog, err := config.ParseCatalogConfig([]byte(sb.String()))
	require.NoError(t, err)
	gs, err := game.NewGameState(catalog)
	require.NoError(t, err)
	require.Len(t, gs.Upgrades, count)
	return gs
}

func TestTerminalDrawMoreItemsThanShortcuts(t *testing.T) {
	gs := largeCatalog(t, 12)
	c := newClicker(gs, game.NewSaveManager(nil), game.NewSettingsManager(nil), nil)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(100, 60)

	require.NotPanics(t, func() { newTerminal(screen, c).draw() })

	// 第 9 个升级仍有快捷键，第 10 个开始没有
	assert.True(t, strings.HasPrefix(readLine(screen, 13), "  [9] upgrades 8"))
	assert.True(t, strings.HasPrefix(readLine(screen, 14), "      upgrades 9"))
	assert.True(t, strings.HasPrefix(readLine(screen, 16), "      upgrades 11"))
}

func TestShortcutKeysBeyondCatalogLimit(t *testing.T) {
	gs := largeCatalog(t, 12)
	c := newClicker(gs, game.NewSaveManager(nil), game.NewSettingsManager(nil), nil)
	gs.Cookies = 1000

	c.handleKey(key('9'))
	c.handleKey(key('i'))

	assert.Equal(t, 1, gs.Upgrades[8].Level)
	assert.Equal(t, 1, gs.AutoClickers[8].Level)
	assert.Equal(t, rune(0), shortcutKey(upgradeKeys, 9))
	assert.Equal(t, 'a', shortcutKey(autoClickerKeys, 0))
	for _, item := range gs.Upgrades[9:] {
		assert.Zero(t, item.Level)
	}
}
