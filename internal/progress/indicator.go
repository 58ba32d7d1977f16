package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Indicator wraps a spinner that is only active on interactive terminals.
// All methods are safe to call on a nil or disabled Indicator, so callers
// never need to branch on TTY state themselves.
type Indicator struct {
	spin    *spinner.Spinner
	enabled bool
}

// NewIndicator returns an Indicator enabled when stdout is a TTY.
// The spinner character set follows the detected terminal capabilities.
func NewIndicator() *Indicator {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return &Indicator{}
	}
	symbols := SelectSymbols(caps)
	return &Indicator{
		spin:    spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond),
		enabled: true,
	}
}

// Start begins spinning with the given message as the suffix.
func (i *Indicator) Start(message string) {
	if i == nil || !i.enabled {
		return
	}
	i.spin.Suffix = " " + message
	i.spin.Start()
}

// Stop halts the spinner and clears its line.
func (i *Indicator) Stop() {
	if i == nil || !i.enabled {
		return
	}
	i.spin.Stop()
}
