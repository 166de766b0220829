package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSerializeRestoreRoundTrip Restore(Serialize()) 还原所有可观察状态
func TestSerializeRestoreRoundTrip(t *testing.T) {
	src := newTestGameState(t)
	src.AddCookies(5_000)
	require.True(t, src.PurchaseByID("double_cookies"))
	require.True(t, src.PurchaseByID("double_cookies"))
	require.True(t, src.PurchaseByID("grandma"))
	require.True(t, src.PurchaseByID("robot"))
	src.Tick(0.3)
	src.EvaluateAchievements()

	data := src.Serialize()

	dst := newTestGameState(t)
	require.NoError(t, dst.Restore(data))

	assert.Equal(t, src.Cookies, dst.Cookies)
	assert.Equal(t, src.CookiesPerClick, dst.CookiesPerClick)
	assert.Equal(t, src.CookiesPerSec, dst.CookiesPerSec)
	assert.Equal(t, src.Serialize(), dst.Serialize())

	item, _ := dst.FindItem("double_cookies")
	assert.Equal(t, 2, item.Level)
	assert.Equal(t, src.UnlockedCount(), dst.UnlockedCount())
}

// TestSerializeLayout 存档数组与目录一一对应
func TestSerializeLayout(t *testing.T) {
	gs := newTestGameState(t)
	gs.Upgrades[3].Level = 4
	gs.AutoClickers[8].Level = 1
	gs.Achievements[2].Unlocked = true

	data := gs.Serialize()
	require.Len(t, data.Upgrades, len(gs.Upgrades))
	require.Len(t, data.AutoClickers, len(gs.AutoClickers))
	require.Len(t, data.Achievements, len(gs.Achievements))
	assert.Equal(t, 4, data.Upgrades[3])
	assert.Equal(t, 1, data.AutoClickers[8])
	assert.True(t, data.Achievements[2])
}

// TestRestoreRejectsBadData 非法存档返回错误且不修改当前状态
func TestRestoreRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *SaveData)
		wantErr error
	}{
		{"升级数组过短", func(d *SaveData) { d.Upgrades = d.Upgrades[:5] }, ErrRestoreMismatch},
		{"自动点击器数组过长", func(d *SaveData) { d.AutoClickers = append(d.AutoClickers, 1) }, ErrRestoreMismatch},
		{"成就数组缺失", func(d *SaveData) { d.Achievements = nil }, ErrRestoreMismatch},
		{"饼干为负", func(d *SaveData) { d.Cookies = -1 }, ErrRestoreInvalid},
		{"产量为 NaN", func(d *SaveData) { d.CookiesPerSec = math.NaN() }, ErrRestoreInvalid},
		{"点击产量为 Inf", func(d *SaveData) { d.CookiesPerClick = math.Inf(1) }, ErrRestoreInvalid},
		{"等级为负", func(d *SaveData) { d.AutoClickers[2] = -3 }, ErrRestoreInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestGameState(t)
			gs.AddCookies(500)
			require.True(t, gs.PurchaseByID("double_cookies"))
			gs.EvaluateAchievements()
			before := gs.Serialize()

			data := gs.Serialize()
			data.Cookies = 42
			data.Upgrades[0] = 7
			tt.mutate(&data)

			err := gs.Restore(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, gs.Serialize(), "state must stay at last-good values")
		})
	}
}
