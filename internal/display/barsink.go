package display

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// BarSink renders batch progress as a terminal progress bar on stderr. It
// satisfies the pipeline's progress sink interface; errors from the bar are
// ignored; progress display is best effort.
type BarSink struct {
	bar *progressbar.ProgressBar
}

// NewBarSink builds a bar for a batch of total files.
func NewBarSink(total int) *BarSink {
	return &BarSink{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Progress advances the bar to done.
func (s *BarSink) Progress(done, total int) {
	_ = s.bar.Set(done)
}
