package main

import (
	"log"
	"time"

	"github.com/decker502/cookieclicker/pkg/sound"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// beeper 通过 beep/speaker 播放点击音效
type beeper struct {
	sampleRate beep.SampleRate
}

// newBeeper 初始化扬声器，失败时返回 nil（终端版可以静音运行）
func newBeeper() *beeper {
	sampleRate := beep.SampleRate(sound.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[cookieterm] Audio initialization failed: %v", err)
		return nil
	}
	return &beeper{sampleRate: sampleRate}
}

// play 播放一次点击音效
func (b *beeper) play() {
	streamer, err := sound.ClickStreamer(b.sampleRate, sound.ClickFrequency, sound.ClickDuration)
	if err != nil {
		log.Printf("[cookieterm] Click tone failed: %v", err)
		return
	}
	speaker.Play(streamer)
}

func (b *beeper) close() {
	speaker.Close()
}
