package progress

import (
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// ProgressBar tracks completed PUT/GET iterations during a run.
type ProgressBar struct {
	*pb.ProgressBar
}

// NewProgressBar instantiates and starts a bar over the planned iteration count.
func NewProgressBar(total int64) *ProgressBar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{counters . }} {{bar . }} {{percent . }} {{speed . }}`)
	bar.Start()

	return &ProgressBar{ProgressBar: bar}
}

// SetCaption sets the caption of the progress bar.
func (p *ProgressBar) SetCaption(caption string) *ProgressBar {
	p.ProgressBar.Set("prefix", caption)
	return p
}

// Increment advances the bar by one completed iteration. A nil bar (quiet
// mode) is a no-op, so workers never need to branch on it.
func (p *ProgressBar) Increment() {
	if p == nil {
		return
	}
	p.ProgressBar.Increment()
}

// Finish stops the bar after the last worker joins. No-op on a nil bar.
func (p *ProgressBar) Finish() {
	if p == nil {
		return
	}
	p.ProgressBar.Finish()
}
