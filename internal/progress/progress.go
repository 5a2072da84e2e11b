package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Reader tracks bytes read and updates an mpb.Bar.
type Reader struct {
	r   io.Reader
	bar *mpb.Bar
}

func NewReader(r io.Reader, bar *mpb.Bar) *Reader {
	return &Reader{r: r, bar: bar}
}

func (pr *Reader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.bar.IncrBy(n)
	}
	return n, err
}

func NewContainer() *mpb.Progress {
	return mpb.New(mpb.WithWidth(64))
}

// AddChunkBar adds a byte-counting bar for a chunking run. A zero total
// renders as indeterminate (stdin or unknown-size input).
func AddChunkBar(p *mpb.Progress, name string, total int64) *mpb.Bar {
	if p == nil {
		return nil
	}
	return p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1}),
			decor.CountersKibiByte("% .2f / % .2f"),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Name(" chunking"), " [DONE]"),
		),
	)
}
