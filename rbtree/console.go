package rbtree

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

// PrintConfig configures Fprint.
type PrintConfig struct {
	// Width clips output lines to this many terminal columns. 0 disables clipping.
	Width int
	// Colors enables ANSI colors for red and black nodes.
	Colors bool
	// Context determines the display width of labels. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
}

// ConsoleConfig is a simple helper for creating a PrintConfig.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and enables colors.
func ConsoleConfig() *PrintConfig {
	config := &PrintConfig{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		config.Context = uax11.ContextFromEnvironment()
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.Width = w
		}
	}
	tracer().Debugf("rbtree: console output width=%d, colors=%v", config.Width, config.Colors)
	return config
}

// Fprint writes the tree sideways to w, one node per line, with the root at
// the top and every left child before its right sibling. Red nodes are marked
// with "●" and printed in red, black nodes with "○". label renders a node's
// value; if it is nil, values are rendered with %v. A nil config is
// equivalent to an all-default PrintConfig.
func Fprint[K, V any](w io.Writer, t *Tree[K, V], label func(V) string, config *PrintConfig) {
	if config == nil {
		config = &PrintConfig{}
	}
	if label == nil {
		label = func(v V) string { return fmt.Sprintf("%v", v) }
	}
	p := treePrinter[V]{
		w:      w,
		label:  label,
		config: config,
		ctx:    config.Context,
		red:    color.New(color.FgRed, color.Bold),
		black:  color.New(color.FgBlack, color.Bold),
	}
	if p.ctx == nil {
		p.ctx = uax11.LatinContext
	}
	if config.Colors {
		p.red.EnableColor()
		p.black.EnableColor()
	} else {
		p.red.DisableColor()
		p.black.DisableColor()
	}
	root := t.hdr.root()
	if root == nil {
		io.WriteString(w, "(empty)\n")
		return
	}
	p.print(root, "", "")
}

type treePrinter[V any] struct {
	w      io.Writer
	label  func(V) string
	config *PrintConfig
	ctx    *uax11.Context
	red    *color.Color
	black  *color.Color
}

func (p *treePrinter[V]) print(n *Node[V], prefix, connector string) {
	p.line(prefix+connector, n)
	childPrefix := prefix
	switch connector {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	switch {
	case n.left != nil && n.right != nil:
		p.print(n.left, childPrefix, "├── ")
		p.print(n.right, childPrefix, "└── ")
	case n.left != nil:
		p.print(n.left, childPrefix, "└── ")
	case n.right != nil:
		p.print(n.right, childPrefix, "└── ")
	}
}

func (p *treePrinter[V]) line(lead string, n *Node[V]) {
	mark, c := "○", p.black
	if n.color == Red {
		mark, c = "●", p.red
	}
	text := p.clip(lead, mark+" "+p.label(n.value))
	fmt.Fprintf(p.w, "%s%s\n", lead, c.Sprint(text))
}

// clip shortens text such that lead+text fits into the configured width.
func (p *treePrinter[V]) clip(lead, text string) string {
	if p.config.Width <= 0 {
		return text
	}
	avail := p.config.Width - p.width(lead)
	if p.width(text) <= avail {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && p.width(string(runes))+1 > avail {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}

var setupGraphemes sync.Once

func (p *treePrinter[V]) width(s string) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), p.ctx)
}
