package treenav

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig configures the console output of Print.
type PrintConfig struct {
	LineWidth int            // maximum display width of an output line; 0 means unlimited
	Indent    string         // indentation per level; defaults to two spaces
	Highlight *color.Color   // color for highlighted nodes; defaults to bold red
	Context   *uax11.Context // context for display width calculation; defaults to Latin
}

var setupGraphemes sync.Once

func (cfg *PrintConfig) normalize() *PrintConfig {
	c := PrintConfig{}
	if cfg != nil {
		c = *cfg
	}
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.Highlight == nil {
		c.Highlight = color.New(color.FgRed, color.Bold)
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// PrintConfigFromTerminal is a simple helper for creating a PrintConfig.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets LineWidth accordingly.
func PrintConfigFromTerminal() *PrintConfig {
	config := &PrintConfig{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 65
		}
	}
	tracer().Debugf("setting tree print line width to %d", config.LineWidth)
	return config
}

// Print writes the tree below root to w, one node per line, indented by depth.
// Nodes in highlight are colored with cfg.Highlight, which is meant to make
// paths stand out. Labels exceeding the line width are truncated on a
// grapheme boundary and marked with an ellipsis. cfg may be nil.
func (nav *Navigator[N]) Print(w io.Writer, root N, label func(N) string, cfg *PrintConfig, highlight ...N) error {
	cfg = cfg.normalize()
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	hl := make(map[N]bool, len(highlight))
	for _, n := range highlight {
		hl[n] = true
	}
	indentWidth := displayWidth(cfg.Indent, cfg.Context)
	return nav.Walk(root, func(node N, depth int) error {
		indent := strings.Repeat(cfg.Indent, depth)
		text := label(node)
		if cfg.LineWidth > 0 {
			text = truncate(text, cfg.LineWidth-depth*indentWidth, cfg.Context)
		}
		var err error
		if hl[node] {
			_, err = cfg.Highlight.Fprintln(w, indent+text)
		} else {
			_, err = fmt.Fprintln(w, indent+text)
		}
		return err
	})
}

const ellipsis = "…"

func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to at most width display cells, including a trailing
// ellipsis.
func truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 {
		return ""
	}
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := displayWidth(g, context)
		if used+gw > width-1 {
			break
		}
		b.WriteString(g)
		used += gw
	}
	b.WriteString(ellipsis)
	return b.String()
}
