// Package playground holds the demo pages and plumbing for the autosize
// playground command. The layout math here is illustrative only.
package playground

import (
	"fmt"
	"sort"
	"strings"

	autosize "github.com/grindlemire/go-autosize"
)

// Page renders lines of text for a content area of the given size.
type Page func(size autosize.Size, cfg Config) []string

var pages = map[string]Page{
	"basic": basicPage,
	"grid":  gridPage,
	"list":  listPage,
	"chart": chartPage,
}

// PageNames returns the registered page names in sorted order.
func PageNames() []string {
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextPage returns the page after name in PageNames order, wrapping around.
func NextPage(name string) string {
	names := PageNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Render renders the named page. Unknown names render the basic page.
func Render(name string, size autosize.Size, cfg Config) []string {
	p, ok := pages[name]
	if !ok {
		p = basicPage
	}
	return p(size, cfg)
}

func basicPage(size autosize.Size, _ Config) []string {
	return []string{
		fmt.Sprintf("Width:  %d", size.Width),
		fmt.Sprintf("Height: %d", size.Height),
		"",
		"Resize the window to see these values update.",
	}
}

// GridColumns returns how many columns of at least minWidth fit in width.
// There is always at least one column.
func GridColumns(width, minWidth int) int {
	if minWidth < 1 {
		minWidth = 1
	}
	cols := width / minWidth
	if cols < 1 {
		return 1
	}
	return cols
}

func gridPage(size autosize.Size, cfg Config) []string {
	cols := GridColumns(size.Width, cfg.MinColumnWidth)
	colWidth := size.Width / cols
	lines := []string{fmt.Sprintf("%d columns of %d", cols, colWidth)}
	for start := 0; start < len(cfg.Items); start += cols {
		end := min(start+cols, len(cfg.Items))
		var b strings.Builder
		for _, item := range cfg.Items[start:end] {
			b.WriteString(fit(item, colWidth))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

// VisibleRange returns the half-open range of rows that fit in height when
// scrolled to offset. The range is clamped to total.
func VisibleRange(offset, height, rowHeight, total int) (start, end int) {
	if rowHeight < 1 {
		rowHeight = 1
	}
	start = max(0, min(offset/rowHeight, total))
	end = min(start+height/rowHeight, total)
	return start, end
}

func listPage(size autosize.Size, cfg Config) []string {
	// One line is reserved for the footer.
	start, end := VisibleRange(0, max(size.Height-1, 0), cfg.RowHeight, len(cfg.Items))
	lines := make([]string, 0, (end-start)*cfg.RowHeight+1)
	for _, item := range cfg.Items[start:end] {
		lines = append(lines, fit(item, size.Width))
		for i := 1; i < cfg.RowHeight; i++ {
			lines = append(lines, "")
		}
	}
	lines = append(lines, fmt.Sprintf("%d of %d rows visible", end-start, len(cfg.Items)))
	return lines
}

func chartPage(size autosize.Size, cfg Config) []string {
	peak := 0.0
	for _, v := range cfg.Bars {
		peak = max(peak, v)
	}
	const label = 6
	room := max(size.Width-label, 0)
	lines := make([]string, 0, len(cfg.Bars))
	for _, v := range cfg.Bars {
		n := 0
		if peak > 0 {
			n = int(v / peak * float64(room))
		}
		lines = append(lines, fmt.Sprintf("%5.1f %s", v, strings.Repeat("#", n)))
	}
	return lines
}

// fit pads or truncates s to exactly width runes.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
