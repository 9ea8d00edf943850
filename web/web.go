// Package web renders the computed layout as an HTML grid and serves it,
// together with a per-event detail view, an iCalendar export and a JSON
// view of the layout. It only consumes the core's output and never
// mutates it.
package web

import (
	"html/template"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-ap/errors"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/mariusor/render"
	"gitlab.com/golang-commonmark/markdown"

	timetable "github.com/shadowforce78/TimeTableLib"
	"github.com/shadowforce78/TimeTableLib/ical"
)

type LoggerFn func(string, ...interface{})

// Config wires the handler's collaborators.
type Config struct {
	Templates string
	Version   string
	LogFn     LoggerFn
	ErrFn     LoggerFn
}

// Handler owns the served state: the current schedule and layout, swapped
// atomically on refresh. Rendering failures are local; the computed data
// stays valid and reusable.
type Handler struct {
	mu     sync.RWMutex
	sched  *timetable.Schedule
	layout *timetable.Layout

	opts    timetable.Options
	ren     *render.Render
	version string
	log     LoggerFn
	err     LoggerFn
}

func New(cfg Config, opts timetable.Options) *Handler {
	h := Handler{
		opts:    opts.Normalized(),
		version: cfg.Version,
		log:     func(string, ...interface{}) {},
		err:     func(string, ...interface{}) {},
	}
	if cfg.LogFn != nil {
		h.log = cfg.LogFn
	}
	if cfg.ErrFn != nil {
		h.err = cfg.ErrFn
	}
	if cfg.Templates == "" {
		cfg.Templates = "templates"
	}
	if _, err := os.Stat(cfg.Templates); err != nil {
		// The grid cannot be rendered without its templates, but the
		// layout pipeline is unaffected and stays reusable.
		h.err("render target unavailable, templates missing at %s: %s", cfg.Templates, err)
	}
	// Rooting the FS at the templates directory keeps relative and
	// absolute paths working alike; render walks the FS, not the cwd.
	h.ren = render.New(render.Options{
		FileSystem: os.DirFS(cfg.Templates),
		Directory:  ".",
		Layout:     "main",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{{
			"categoryClass": timetable.CategoryClass,
			"markdown":      renderMarkdown,
			"lower":         strings.ToLower,
		}},
		Delims:          render.Delims{Left: "{{", Right: "}}"},
		Charset:         "UTF-8",
		HTMLContentType: "text/html",
	})
	return &h
}

// Update swaps in a freshly computed schedule and layout.
func (h *Handler) Update(sched *timetable.Schedule, layout *timetable.Layout) {
	h.mu.Lock()
	h.sched = sched
	h.layout = layout
	h.mu.Unlock()
}

func (h *Handler) current() (*timetable.Schedule, *timetable.Layout) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sched, h.layout
}

// Routes builds the HTTP surface.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.grid)
	r.Get("/event/{day}/{n}", h.detail)
	r.Get("/timetable.ics", ical.Handler(h.version, func() *timetable.Schedule {
		sched, _ := h.current()
		return sched
	}))
	r.Get("/api/layout", h.apiLayout)
	return r
}

func (h *Handler) grid(w http.ResponseWriter, _ *http.Request) {
	_, layout := h.current()
	if layout == nil {
		http.Error(w, "no timetable loaded", http.StatusServiceUnavailable)
		return
	}
	view := BuildGridView(layout, h.opts)
	if err := h.ren.HTML(w, http.StatusOK, "grid", view); err != nil {
		h.err("unable to render grid: %s", err)
		http.Error(w, "unable to render grid", http.StatusInternalServerError)
	}
}

// detail is the expanded view for a single event, addressed by its day
// column and its index within that column.
func (h *Handler) detail(w http.ResponseWriter, r *http.Request) {
	if !h.opts.ModalEnabled {
		http.NotFound(w, r)
		return
	}
	_, layout := h.current()
	if layout == nil {
		http.Error(w, "no timetable loaded", http.StatusServiceUnavailable)
		return
	}

	day := chi.URLParam(r, "day")
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	column, ok := layout.Columns[day]
	if err != nil || !ok || n < 0 || n >= len(column) {
		http.NotFound(w, r)
		return
	}

	ev := column[n].Event
	view := DetailView{
		Event:      ev,
		Class:      timetable.CategoryClass(ev.Category),
		ShowProf:   h.opts.ShowProf,
		ShowClasse: h.opts.ShowClasse,
	}
	if err := h.ren.HTML(w, http.StatusOK, "detail", view); err != nil {
		h.err("unable to render event detail: %s", err)
		http.Error(w, "unable to render event detail", http.StatusInternalServerError)
	}
}

// RenderGridTo writes the grid page to an arbitrary writer, for one-shot
// file output outside the HTTP server.
func (h *Handler) RenderGridTo(w io.Writer) error {
	_, layout := h.current()
	if layout == nil {
		return errors.Newf("no timetable loaded")
	}
	return h.ren.HTML(w, http.StatusOK, "grid", BuildGridView(layout, h.opts))
}

func (h *Handler) apiLayout(w http.ResponseWriter, _ *http.Request) {
	_, layout := h.current()
	if layout == nil {
		http.Error(w, "no timetable loaded", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(layout); err != nil {
		h.err("unable to encode layout: %s", err)
	}
}

func renderMarkdown(data string) template.HTML {
	md := markdown.New(
		markdown.HTML(false),
		markdown.Tables(true),
		markdown.Linkify(false),
		markdown.Typographer(true),
		markdown.Breaks(true),
	)
	return template.HTML(md.RenderToString([]byte(data)))
}
