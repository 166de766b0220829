package components

import "image/color"

// CrumbParticleComponent 饼干碎屑粒子
//
// 位置由 PositionComponent 保存，这里只保存运动和外观状态。
// 模拟以帧为单位推进：每帧位置加速度、VY 加重力、Size 乘衰减系数。
type CrumbParticleComponent struct {
	VX, VY   float64    // 速度（像素/帧）
	Age      int        // 已存活帧数
	Lifespan int        // 最大存活帧数（Age >= Lifespan 时销毁）
	Size     float64    // 正方形边长（像素）
	Color    color.RGBA // 从调色板中随机选取
}

// Alpha 返回当前透明度：1 - Age/Lifespan，限制在 [0, 1]
func (p *CrumbParticleComponent) Alpha() float64 {
	if p.Lifespan <= 0 {
		return 0
	}
	a := 1 - float64(p.Age)/float64(p.Lifespan)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Expired 粒子是否已到达寿命
func (p *CrumbParticleComponent) Expired() bool {
	return p.Age >= p.Lifespan
}
