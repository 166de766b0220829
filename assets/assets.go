// Package assets 嵌入游戏数据文件
//
// FS 的根目录即本目录，文件路径以 "data/" 开头（如 "data/catalog.yaml"），
// 可以直接传给 embedded.Init。桌面端、移动端和终端版共用同一份数据。
package assets

import "embed"

// FS 商店目录与粒子配置
//
//go:embed data/catalog.yaml data/particles.yaml
var FS embed.FS
