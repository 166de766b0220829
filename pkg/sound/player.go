package sound

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ClickPlayer 桌面端点击音效播放器
// 为 nil 时 Play 不做任何事（音频不可用时的降级）
type ClickPlayer struct {
	context *audio.Context
	pcm     []byte
}

// NewClickPlayer 预先渲染点击音效
//
// 参数：
//   - context: ebiten 音频上下文，采样率须为 SampleRate
func NewClickPlayer(context *audio.Context) (*ClickPlayer, error) {
	pcm, err := ClickPCM(context.SampleRate(), ClickFrequency, ClickDuration)
	if err != nil {
		return nil, err
	}
	log.Printf("[ClickPlayer] Rendered click tone: %d bytes", len(pcm))
	return &ClickPlayer{context: context, pcm: pcm}, nil
}

// Play 播放一次点击音效
// 每次创建新的 Player，多次快速点击可以重叠
func (p *ClickPlayer) Play() {
	if p == nil {
		return
	}
	player := p.context.NewPlayerFromBytes(p.pcm)
	player.Play()
}
