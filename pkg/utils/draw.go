package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WithAlpha 按透明度缩放颜色（color.RGBA 为预乘格式，四个通道一起缩放）
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// DrawText 在 (x, y) 绘制左上对齐文字
func DrawText(screen *ebiten.Image, str string, font *text.GoTextFace, x, y float64, clr color.Color) {
	drawAligned(screen, str, font, x, y, clr, text.AlignStart, text.AlignStart)
}

// DrawRightAlignedText 绘制右对齐文字，(x, y) 为右上角
func DrawRightAlignedText(screen *ebiten.Image, str string, font *text.GoTextFace, x, y float64, clr color.Color) {
	drawAligned(screen, str, font, x, y, clr, text.AlignEnd, text.AlignStart)
}

// DrawCenteredText 以 (cx, cy) 为中心绘制文字
func DrawCenteredText(screen *ebiten.Image, str string, font *text.GoTextFace, cx, cy float64, clr color.Color) {
	drawAligned(screen, str, font, cx, cy, clr, text.AlignCenter, text.AlignCenter)
}

func drawAligned(screen *ebiten.Image, str string, font *text.GoTextFace, x, y float64, clr color.Color, primary, secondary text.Align) {
	if str == "" || font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	text.Draw(screen, str, font, op)
}
