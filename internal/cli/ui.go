package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/erdgraph/pkg/pipeline"
)

// out receives all user-facing status lines. Logs go to the CLI logger.
var out io.Writer = os.Stdout

// Palette (ANSI 256).
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorLink   = lipgloss.Color("75")
	colorBright = lipgloss.Color("255")
	colorMuted  = lipgloss.Color("245")
	colorFaint  = lipgloss.Color("240")
)

// Styles shared with the inspect view and the serve banner.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorAccent)
	StyleValue   = lipgloss.NewStyle().Foreground(colorBright)
	StyleDim     = lipgloss.NewStyle().Foreground(colorFaint)
	StyleLink    = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCached      = lipgloss.NewStyle().Foreground(colorOK)
	styleComputed    = lipgloss.NewStyle().Foreground(colorMuted)
	styleCommand     = lipgloss.NewStyle().Foreground(colorLink)
	styleKey         = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

// statusKind selects the leading icon of a status line.
type statusKind int

const (
	statusOK statusKind = iota
	statusFail
	statusWarn
	statusInfo
)

var statusIcons = map[statusKind]string{
	statusOK:   lipgloss.NewStyle().Foreground(colorOK).Render("✓"),
	statusFail: lipgloss.NewStyle().Foreground(colorFail).Render("✗"),
	statusWarn: lipgloss.NewStyle().Foreground(colorWarn).Render("!"),
	statusInfo: lipgloss.NewStyle().Foreground(colorMuted).Render("›"),
}

func printStatus(kind statusKind, msg string) {
	fmt.Fprintln(out, statusIcons[kind]+" "+msg)
}

func printSuccess(format string, args ...any) {
	printStatus(statusOK, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(statusFail, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(statusWarn, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(statusInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(out, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile announces a file that was written.
func printFile(path string) {
	fmt.Fprintln(out, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(out, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats summarizes a layout run, for example
// "3 tables · 9 columns · 2 relations · 14 junctions · cached".
func printStats(stats pipeline.Stats, cached bool) {
	fmt.Fprintln(out, "  "+statsLine(stats, cached))
}

func statsLine(stats pipeline.Stats, cached bool) string {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d tables", stats.Records)),
		StyleDim.Render(fmt.Sprintf("%d columns", stats.Fields)),
	}
	if stats.Edges > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d relations", stats.Edges)))
	}
	if stats.Junctions > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d junctions", stats.Junctions)))
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, styleComputed.Render("fresh"))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// printNextStep suggests the command to run after this one.
func printNextStep(description, cmd string) {
	fmt.Fprintln(out, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() { fmt.Fprintln(out) }
