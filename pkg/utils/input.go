// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针（鼠标或触摸）状态
type PointerState struct {
	X, Y         float64
	Pressed      bool // 是否处于按下状态
	JustPressed  bool // 本帧刚按下
	JustReleased bool // 本帧刚释放
}

// 触摸释放时 ebiten 已无法查询位置，使用最后一次触摸位置
var lastTouchX, lastTouchY int

// ReadPointer 读取本帧指针状态
// 优先检测触摸（移动设备），其次为鼠标左键（桌面设备）
func ReadPointer() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return PointerState{
			X:           float64(lastTouchX),
			Y:           float64(lastTouchY),
			Pressed:     true,
			JustPressed: len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
		}
	}

	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerState{
			X:            float64(lastTouchX),
			Y:            float64(lastTouchY),
			JustReleased: true,
		}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            float64(x),
		Y:            float64(y),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}
