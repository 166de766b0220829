package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveManagerRoundTrip 保存后用新的 GameState 读取，状态一致
func TestSaveManagerRoundTrip(t *testing.T) {
	manager := createTestGdataManager(t, "roundtrip")
	sm := NewSaveManager(manager)

	gs := newTestGameState(t)
	gs.AddCookies(1234.5)
	require.True(t, gs.PurchaseByID("grandma"))
	gs.EvaluateAchievements()

	require.False(t, sm.HasSave())
	require.NoError(t, sm.Save(gs))
	require.True(t, sm.HasSave())

	// 使用新的 SaveManager 实例验证数据已持久化
	loaded := newTestGameState(t)
	require.NoError(t, NewSaveManager(manager).Load(loaded))
	assert.Equal(t, gs.Serialize(), loaded.Serialize())
}

// TestSaveManagerOverwrites 再次保存覆盖旧存档
func TestSaveManagerOverwrites(t *testing.T) {
	sm := NewSaveManager(createTestGdataManager(t, "overwrite"))

	gs := newTestGameState(t)
	gs.AddCookies(10)
	require.NoError(t, sm.Save(gs))

	gs.AddCookies(90)
	require.NoError(t, sm.Save(gs))

	loaded := newTestGameState(t)
	require.NoError(t, sm.Load(loaded))
	assert.Equal(t, 100.0, loaded.Cookies)
}

// TestSaveManagerNoSave 没有存档时返回 ErrNoSave，状态不变
func TestSaveManagerNoSave(t *testing.T) {
	sm := NewSaveManager(createTestGdataManager(t, "nosave"))

	gs := newTestGameState(t)
	gs.AddCookies(77)
	before := gs.Serialize()

	err := sm.Load(gs)
	assert.True(t, errors.Is(err, ErrNoSave))
	assert.Equal(t, before, gs.Serialize())
}

// TestSaveManagerCorruptSave 存档损坏或与目录不匹配时报错，状态不变
func TestSaveManagerCorruptSave(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"YAML 无法解析", "cookies: [1, 2", ErrCorruptSave},
		{"字段类型错误", "cookies: lots", ErrCorruptSave},
		{"数组长度不匹配", "cookies: 5\ncookiesPerClick: 1\ncookiesPerSec: 0\nupgrades: [1]\nautoClickers: []\nachievements: []\n", ErrRestoreMismatch},
		{"空存档", "", ErrRestoreMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSaveManager(createTestGdataManager(t, "corrupt"))
			writeRawSave(t, sm, []byte(tt.raw))

			gs := newTestGameState(t)
			gs.AddCookies(3)
			before := gs.Serialize()

			err := sm.Load(gs)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, errors.Is(err, ErrNoSave))
			assert.Equal(t, before, gs.Serialize())
		})
	}
}

// TestSaveManagerDegradedMode gdata 不可用时存档保存在内存中
func TestSaveManagerDegradedMode(t *testing.T) {
	sm := NewSaveManager(nil)
	assert.False(t, sm.HasSave())

	gs := newTestGameState(t)
	assert.ErrorIs(t, sm.Load(gs), ErrNoSave)

	gs.AddCookies(64)
	require.NoError(t, sm.Save(gs))
	assert.True(t, sm.HasSave())

	loaded := newTestGameState(t)
	require.NoError(t, sm.Load(loaded))
	assert.Equal(t, 64.0, loaded.Cookies)

	assert.Error(t, sm.Save(nil))
	assert.Error(t, sm.Load(nil))
}
