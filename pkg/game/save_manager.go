package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
// gdata 以“对象/属性”两级组织数据，存档只占用一个属性
const (
	saveObject   = "cookieClickerSave"
	saveProperty = "state"
)

var (
	// ErrNoSave 没有找到存档（提示性信息，不是故障）
	ErrNoSave = errors.New("no save found")
	// ErrCorruptSave 存档存在但无法解析
	ErrCorruptSave = errors.New("save data is corrupt")
)

// SaveManager 存档管理器
//
// 职责：
//   - 将 GameState 的存档快照序列化为 YAML，整体写入一个固定键（覆盖旧值）
//   - 读取该键并恢复 GameState
//
// 架构说明：
//   - 使用 gdata 跨平台存储（桌面端为用户数据目录，移动端为应用私有目录）
//   - gdataManager 为 nil 时进入降级模式：存档只保存在内存中，游戏仍可运行
//   - 不做版本迁移，也不做部分写入恢复
type SaveManager struct {
	gdataManager *gdata.Manager // gdata 存储管理器，可为 nil（降级模式）
	memory       []byte         // 降级模式下的内存存档
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存存档）
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	if gdataManager == nil {
		log.Printf("[SaveManager] Warning: gdata manager not available, saves are kept in memory only")
	}
	return &SaveManager{
		gdataManager: gdataManager,
	}
}

// HasSave 检查是否存在存档
func (sm *SaveManager) HasSave() bool {
	if sm.gdataManager == nil {
		return sm.memory != nil
	}
	return sm.gdataManager.ObjectPropExists(saveObject, saveProperty)
}

// Save 保存游戏状态（覆盖已有存档）
//
// 返回：
//   - error: 如果序列化或写入失败返回错误
func (sm *SaveManager) Save(gs *GameState) error {
	if gs == nil {
		return fmt.Errorf("GameState is nil")
	}

	data, err := yaml.Marshal(gs.Serialize())
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %w", err)
	}

	if sm.gdataManager == nil {
		sm.memory = data
		log.Printf("[SaveManager] Saved %d bytes to memory", len(data))
		return nil
	}

	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to write save data: %w", err)
	}

	log.Printf("[SaveManager] Saved game: cookies=%.1f, cpc=%.0f, cps=%.1f",
		gs.Cookies, gs.CookiesPerClick, gs.CookiesPerSec)
	return nil
}

// Load 读取存档并恢复游戏状态
//
// 返回：
//   - ErrNoSave: 没有存档，gs 保持不变
//   - 包装 ErrCorruptSave 的错误: 存档无法解析，gs 保持不变
//   - 包装 ErrRestoreMismatch / ErrRestoreInvalid 的错误: 存档与目录不匹配，gs 保持不变
func (sm *SaveManager) Load(gs *GameState) error {
	if gs == nil {
		return fmt.Errorf("GameState is nil")
	}

	raw, err := sm.read()
	if err != nil {
		return err
	}

	var data SaveData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}

	if err := gs.Restore(data); err != nil {
		return fmt.Errorf("failed to restore save data: %w", err)
	}

	log.Printf("[SaveManager] Loaded game: cookies=%.1f, cpc=%.0f, cps=%.1f",
		gs.Cookies, gs.CookiesPerClick, gs.CookiesPerSec)
	return nil
}

// read 读取原始存档数据
func (sm *SaveManager) read() ([]byte, error) {
	if sm.gdataManager == nil {
		if sm.memory == nil {
			return nil, ErrNoSave
		}
		return sm.memory, nil
	}

	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil, ErrNoSave
	}

	raw, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to read save data: %w", err)
	}
	return raw, nil
}
