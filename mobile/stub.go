//go:build !mobile

// 桌面和终端构建不带 mobile 标签，此时 ./mobile 包只剩 Dummy，
// 不会初始化 ebitenmobile，也不会在 init 中创建 App。
package mobile

// Dummy 与 mobile.go 中的同名函数对应，保证 ./... 在没有 mobile 标签时也能构建
func Dummy() {}
