package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度在空格处换行
//
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体，为 nil 时不换行
//   - maxWidth: 最大宽度（像素）
//
// 单个单词超过最大宽度时独占一行，不在单词中间断开。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	words := strings.Fields(textStr)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if MeasureTextWidth(candidate, font) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// MeasureTextWidth 测量单行文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// FormatCookies 饼干数量显示为向下取整的整数
func FormatCookies(cookies float64) string {
	return fmt.Sprintf("%.0f", math.Floor(cookies))
}

// FormatRate 每秒产量显示一位小数
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f", rate)
}
