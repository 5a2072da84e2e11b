package cmd

import (
	"path/filepath"

	"github.com/lupppig/dchunk/internal/progress"
	"github.com/vbauerster/mpb/v8"
)

type mpbContainer struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newMpbContainer(name string, total int64) *mpbContainer {
	p := progress.NewContainer()
	return &mpbContainer{
		p:   p,
		bar: progress.AddChunkBar(p, filepath.Base(name), total),
	}
}

func (c *mpbContainer) wait() {
	c.bar.SetTotal(-1, true)
	c.p.Wait()
}
