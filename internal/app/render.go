// render.go renders the deployment detail pane.
//
// The selected deployment is described as a small markdown document (title,
// status badge, timings and the event log) and rendered through Glamour into
// the detail viewport.
//
// # Caching
//
// refreshDetail runs on every selection change and resize, so the last
// render is remembered by detailCacheKey: the deployment ID, the width
// bucket and the snapshot fetch time. A refresh with an equal key is a
// no-op and keeps the viewport's scroll position.
//
// # Glamour Renderers
//
// TermRenderer instances are cached per width bucket in an LRU bounded by
// maxRendererCacheEntries and protected by a mutex. The rendering style is
// read from RAILWAY_TIMELINE_GLAMOUR_STYLE or GLAMOUR_STYLE and defaults to
// "dark".
package app

import (
	"container/list"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

// GlamourStyleEnv overrides the Glamour style used for the detail pane.
const GlamourStyleEnv = "RAILWAY_TIMELINE_GLAMOUR_STYLE"

// detailCacheKey identifies the inputs of the last detail render.
type detailCacheKey struct {
	id        string
	width     int
	fetchedAt time.Time
}

var (
	// maxRendererCacheEntries bounds the number of width-specific Glamour
	// renderers retained in memory.
	maxRendererCacheEntries = 8

	rendererCacheMu sync.Mutex

	// rendererCache maps width buckets to reusable renderers.
	rendererCache = map[int]*glamour.TermRenderer{}

	// rendererCacheOrder tracks width buckets in LRU order (front = least recent,
	// back = most recent).
	rendererCacheOrder = list.New()

	rendererCacheNodes = map[int]*list.Element{}
)

// refreshDetail renders the selected deployment into the detail viewport.
func (m *Model) refreshDetail() {
	if !m.showDetail || m.detail.Width <= 0 {
		return
	}
	loc, ok := m.selected()
	if !ok {
		m.detailKey = detailCacheKey{}
		m.detail.SetContent(mutedStyle.Render("No deployment selected"))
		return
	}

	key := detailCacheKey{
		id:        loc.Deployment.ID,
		width:     renderWidthBucket(m.detail.Width),
		fetchedAt: m.snapshot.FetchedAt,
	}
	if key == m.detailKey {
		return
	}

	service := ""
	if loc.Service < len(m.snapshot.Project.Services) {
		service = m.snapshot.Project.Services[loc.Service].Name
	}
	m.detail.SetContent(renderMarkdown(deploymentMarkdown(service, loc.Deployment, m.now(), m.loc), key.width))
	m.detail.GotoTop()
	m.detailKey = key
}

// deploymentMarkdown describes one deployment as markdown. Times are shown
// in zone.
func deploymentMarkdown(service string, d deploy.Deployment, now time.Time, zone *time.Location) string {
	var b strings.Builder
	title := d.ID
	if service != "" {
		title = service + " / " + d.ID
	}
	fmt.Fprintf(&b, "## %s\n\n", title)

	style := d.Status.Style()
	label := style.Label
	if label == "" {
		label = string(d.Status)
	}
	fmt.Fprintf(&b, "**Status:** `%s`\n\n", label)

	if r, ok := d.Range(); ok {
		fmt.Fprintf(&b, "- Started: %s (%s ago)\n", r.Start.In(zone).Format(deploy.LabelLayout), timeutil.Elapsed(r.Start, now))
		fmt.Fprintf(&b, "- %s\n", timeutil.Took(r.Start, r.End))
	}
	if !d.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- Created: %s\n", d.CreatedAt.In(zone).Format(deploy.LabelLayout))
	}
	if !d.StatusUpdatedAt.IsZero() {
		fmt.Fprintf(&b, "- Status updated: %s\n", d.StatusUpdatedAt.In(zone).Format(deploy.LabelLayout))
	}

	if len(d.Events) > 0 {
		b.WriteString("\n| Step | Started | Took |\n|---|---|---|\n")
		for _, ev := range d.Events {
			took := "-"
			if !ev.CompletedAt.IsZero() {
				took = timeutil.Elapsed(ev.CreatedAt, ev.CompletedAt)
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				escapeTableCell(ev.Step), ev.CreatedAt.In(zone).Format(deploy.LabelLayout), took)
		}
	}
	return b.String()
}

func escapeTableCell(value string) string {
	if value == "" {
		return "-"
	}
	return strings.ReplaceAll(value, "|", `\|`)
}

// renderMarkdown converts markdown to ANSI output with a cached renderer for
// the given width. On failure the raw markdown is returned so the pane still
// shows something.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(width)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "error", err)
		return content
	}
	return out
}

// getRenderer returns a cached Glamour TermRenderer for the given width,
// creating one if it doesn't exist.
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[width]; ok {
		if node, ok := rendererCacheNodes[width]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = renderer
	rendererCacheNodes[width] = rendererCacheOrder.PushBack(width)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		width, _ := oldest.Value.(int)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, width)
		delete(rendererCacheNodes, width)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[int]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[int]*list.Element{}
}

// glamourStyleOption resolves the Glamour style. "auto" queries the terminal
// background; unknown names fall back to "dark".
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv(GlamourStyleEnv)))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	if style == "" {
		style = "dark"
	}
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	switch style {
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}
