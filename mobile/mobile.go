//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.cookieclicker -o build/android/cookieclicker.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/CookieClicker.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/cookieclicker/assets"
	"github.com/decker502/cookieclicker/pkg/app"
	"github.com/decker502/cookieclicker/pkg/embedded"
)

func init() {
	embedded.Init(assets.FS)

	// 移动端总是自动读取存档
	gameApp, err := app.NewApp(app.Config{
		Verbose:  true,
		AppName:  app.DefaultAppName,
		Autoload: true,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
