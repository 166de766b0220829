package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultSettings 默认开启音效和粒子
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	require.NotNil(t, settings)
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.ShowParticles)
}

// TestSettingsManagerNilGdata gdataManager 为 nil 时的降级场景
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	require.NotNil(t, sm)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())

	// 降级模式下切换仍然生效，只是不持久化
	assert.False(t, sm.ToggleSound())
	assert.False(t, sm.GetSettings().SoundEnabled)
	assert.NoError(t, sm.Save())
}

// TestSettingsManagerPersistence 切换后的设置在新实例中仍然存在
func TestSettingsManagerPersistence(t *testing.T) {
	manager := createTestGdataManager(t, "settings")

	sm := NewSettingsManager(manager)
	assert.False(t, sm.ToggleParticles())
	assert.True(t, sm.GetSettings().SoundEnabled)

	reloaded := NewSettingsManager(manager)
	assert.False(t, reloaded.GetSettings().ShowParticles)
	assert.True(t, reloaded.GetSettings().SoundEnabled)

	assert.True(t, reloaded.ToggleParticles())
	assert.True(t, NewSettingsManager(manager).GetSettings().ShowParticles)
}

// TestSettingsManagerPartialData 缺失字段保持默认值
func TestSettingsManagerPartialData(t *testing.T) {
	manager := createTestGdataManager(t, "settings_partial")
	require.NoError(t, manager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundEnabled: false\n")))

	sm := NewSettingsManager(manager)
	assert.False(t, sm.GetSettings().SoundEnabled)
	assert.True(t, sm.GetSettings().ShowParticles)
}

// TestSettingsManagerCorruptData 损坏的设置回退到默认值
func TestSettingsManagerCorruptData(t *testing.T) {
	manager := createTestGdataManager(t, "settings_corrupt")
	require.NoError(t, manager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundEnabled: [nope")))

	sm := NewSettingsManager(manager)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
	assert.Error(t, sm.Load())
}

// TestSettingsIndependentOfSave 设置与存档互不影响
func TestSettingsIndependentOfSave(t *testing.T) {
	manager := createTestGdataManager(t, "settings_save")
	settings := NewSettingsManager(manager)
	settings.ToggleSound()

	saves := NewSaveManager(manager)
	gs := newTestGameState(t)
	gs.AddCookies(5)
	require.NoError(t, saves.Save(gs))

	assert.False(t, NewSettingsManager(manager).GetSettings().SoundEnabled)
}
