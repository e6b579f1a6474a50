// Package shell implements the interactive browse session.
//
// A Session owns the mutable presentation state (the current query, the
// rendered result, the detail-view cursor and the layout) and is driven one
// input line at a time, so it can be exercised without a terminal.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/cellar/pkg/core"
	"github.com/aretw0/cellar/pkg/export"
	"github.com/aretw0/cellar/pkg/view"
)

// ErrUnknownCommand is returned for input that names no command.
var ErrUnknownCommand = errors.New("unknown command")

// Session is one interactive browse.
type Session struct {
	ctx       context.Context
	svc       *core.Service
	renderer  *view.Renderer
	out       io.Writer
	exportDir string
	now       func() time.Time

	query  core.Query
	result core.Result
	nav    *view.Navigator
	failed bool
}

// Config configures a Session.
type Config struct {
	Renderer  *view.Renderer
	Out       io.Writer
	ExportDir string
	Query     core.Query
	Now       func() time.Time
}

// New starts a session over the service's current catalog.
func New(ctx context.Context, svc *core.Service, cfg Config) *Session {
	if cfg.Renderer == nil {
		cfg.Renderer = view.NewRenderer(view.Config{Theme: svc.Theme(ctx)})
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Session{
		ctx:       ctx,
		svc:       svc,
		renderer:  cfg.Renderer,
		out:       cfg.Out,
		exportDir: cfg.ExportDir,
		now:       cfg.Now,
		query:     cfg.Query,
		nav:       view.NewNavigator(nil),
	}
	s.refresh()
	return s
}

// Query returns the active query.
func (s *Session) Query() core.Query {
	return s.query
}

// Result returns the last computed result.
func (s *Session) Result() core.Result {
	return s.result
}

// Navigator returns the detail-view cursor.
func (s *Session) Navigator() *view.Navigator {
	return s.nav
}

// Renderer returns the renderer in use.
func (s *Session) Renderer() *view.Renderer {
	return s.renderer
}

// MarkLoadFailed puts the session in the terminal "load failed" state.
func (s *Session) MarkLoadFailed() {
	s.failed = true
}

// Prompt returns the prompt for the next line.
func (s *Session) Prompt() string {
	if s.nav.IsOpen() {
		pos, total := s.nav.Position()
		return fmt.Sprintf("cellar [%d/%d]> ", pos, total)
	}
	return "cellar> "
}

// refresh recomputes the result from the full catalog and closes the
// detail view.
func (s *Session) refresh() {
	s.result = s.svc.Catalog().Apply(s.query)
	s.nav.Reset(s.result.Wines)
}

// Exec runs one input line. quit is true when the session should end.
// Errors describe bad input; the session stays usable after them.
func (s *Session) Exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	cmd, ok := commands[strings.ToLower(name)]
	if !ok {
		return false, fmt.Errorf("%w %q (try help)", ErrUnknownCommand, name)
	}
	return cmd.run(s, arg)
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// show prints the stats line and the cards.
func (s *Session) show() {
	if s.failed {
		s.println(s.renderer.LoadFailed())
		return
	}
	s.println(s.renderer.Stats(s.result))
	s.println(s.renderer.Cards(s.result.Wines))
}

// showDetail prints the wine under the cursor.
func (s *Session) showDetail() {
	w, ok := s.nav.Current()
	if !ok {
		return
	}
	note, _ := s.svc.Notes().Get(w.Name)
	pos, total := s.nav.Position()
	s.println(s.renderer.Detail(w, note, pos, total))
}

// requery applies a query change and shows the new result.
func (s *Session) requery(q core.Query) {
	s.query = q
	s.refresh()
	s.show()
}

func (s *Session) exportNow(dir string) (string, error) {
	if dir == "" {
		dir = s.exportDir
	}
	return export.ToFile(dir, s.now(), s.result.Wines, s.svc.Notes())
}

func parseVintageBound(s string) (int, error) {
	if s == "" || s == "-" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid vintage %q", s)
	}
	return n, nil
}
