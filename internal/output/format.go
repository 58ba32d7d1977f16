package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintSuccess prints a colored success message.
// Uses green checkmark and cyan for the message body.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), cyan(message))
}

// PrintStep prints a colored step header (e.g., "[Step 1/4] Backup...").
// Uses cyan for the step indicator and white for the step name.
func PrintStep(out io.Writer, stepNum, totalSteps int, name string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan(fmt.Sprintf("[Step %d/%d]", stepNum, totalSteps)), white(name+"..."))
}

// PrintAdvisory prints a multi-line advisory notice framed by separator
// lines sized to the terminal. Uses yellow for the frame and the heading.
func PrintAdvisory(out io.Writer, heading string, lines []string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()

	width := GetTerminalWidth()
	if width > 60 {
		width = 60
	}
	rule := strings.Repeat("=", width)

	fmt.Fprintf(out, "\n%s\n", yellow(rule))
	fmt.Fprintf(out, "%s\n", yellow(heading))
	for _, line := range lines {
		fmt.Fprintf(out, "%s\n", line)
	}
	fmt.Fprintf(out, "%s\n\n", yellow(rule))
}
