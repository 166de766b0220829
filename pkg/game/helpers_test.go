package game

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/cookieclicker/assets"
	"github.com/decker502/cookieclicker/pkg/config"
	"github.com/decker502/cookieclicker/pkg/embedded"
	"github.com/quasilyte/gdata/v2"
)

// loadTestCatalog 加载仓库中真实的 data/catalog.yaml
func loadTestCatalog(t *testing.T) *config.CatalogConfig {
	t.Helper()
	embedded.Init(assets.FS)

	catalog, err := config.LoadCatalogConfig("data/catalog.yaml")
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return catalog
}

// newTestGameState 基于真实目录创建初始状态
func newTestGameState(t *testing.T) *GameState {
	t.Helper()
	gs, err := NewGameState(loadTestCatalog(t))
	if err != nil {
		t.Fatalf("NewGameState failed: %v", err)
	}
	return gs
}

// createTestGdataManager 创建用于测试的 gdata Manager
// 每个测试使用独立的应用名，测试结束后删除数据目录
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tempHome, ".local", "share"))

	appName := fmt.Sprintf("cookie_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// writeRawSave 直接写入原始存档数据（模拟损坏或过期的存档）
func writeRawSave(t *testing.T, sm *SaveManager, data []byte) {
	t.Helper()
	if sm.gdataManager == nil {
		sm.memory = data
		return
	}
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		t.Fatalf("failed to write raw save: %v", err)
	}
}
