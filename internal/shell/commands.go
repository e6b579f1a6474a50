package shell

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/cellar/pkg/core"
	"github.com/aretw0/cellar/pkg/view"
)

// ErrNoWineOpen is returned by commands that need the detail view.
var ErrNoWineOpen = errors.New("no wine open (use open <n>)")

type command struct {
	usage string
	help  string
	run   func(s *Session, arg string) (bool, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":         {"help", "show this list", cmdHelp},
		"ls":           {"ls", "show the current view", cmdList},
		"search":       {"search <text>", "filter by free text", cmdSearch},
		"clear-search": {"clear-search", "drop the search text", cmdClearSearch},
		"type":         {"type <value>", "toggle a type filter", toggler(func(f *core.FilterState) *[]string { return &f.Types })},
		"region":       {"region <value>", "toggle a region filter", toggler(func(f *core.FilterState) *[]string { return &f.Regions })},
		"grape":        {"grape <value>", "toggle a grape filter", toggler(func(f *core.FilterState) *[]string { return &f.Grapes })},
		"rating":       {"rating <min>", "minimum rating, 0 for any", cmdRating},
		"buy":          {"buy yes|no|both|any", "filter by would-buy-again", cmdBuy},
		"vintage":      {"vintage <min|-> [max|-]", "vintage range, - for open", cmdVintage},
		"sort":         {"sort <field> [asc|desc]", "sort by " + sortFieldList(), cmdSort},
		"clear":        {"clear", "reset all filters except search", cmdClear},
		"facets":       {"facets", "list filter options", cmdFacets},
		"stats":        {"stats", "show counters", cmdStats},
		"open":         {"open <n>", "open wine n of the view", cmdOpen},
		"next":         {"next", "next wine in the detail view", cmdNext},
		"prev":         {"prev", "previous wine in the detail view", cmdPrev},
		"close":        {"close", "close the detail view", cmdClose},
		"note":         {"note [text]", "show or set the open wine's note", cmdNote},
		"unnote":       {"unnote", "remove the open wine's note", cmdUnnote},
		"grid":         {"grid", "grid layout", layout(view.LayoutGrid)},
		"list":         {"list", "list layout", layout(view.LayoutList)},
		"theme":        {"theme [light|dark|toggle]", "show or change the theme", cmdTheme},
		"export":       {"export [dir]", "write the view to CSV", cmdExport},
		"reload":       {"reload", "fetch the collection again", cmdReload},
		"quit":         {"quit", "leave", cmdQuit},
		"exit":         {"exit", "leave", cmdQuit},
	}
}

// Commands returns the command names, sorted.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Complete returns the command names starting with line's first word.
func Complete(line string) []string {
	if strings.Contains(line, " ") {
		return nil
	}
	var out []string
	for _, name := range Commands() {
		if strings.HasPrefix(name, strings.ToLower(line)) {
			out = append(out, name)
		}
	}
	return out
}

func sortFieldList() string {
	fields := make([]string, len(core.SortFields))
	for i, f := range core.SortFields {
		fields[i] = string(f)
	}
	return strings.Join(fields, ", ")
}

func cmdHelp(s *Session, _ string) (bool, error) {
	for _, name := range Commands() {
		c := commands[name]
		if name == "exit" {
			continue
		}
		fmt.Fprintf(s.out, "  %-26s %s\n", c.usage, c.help)
	}
	return false, nil
}

func cmdList(s *Session, _ string) (bool, error) {
	s.show()
	return false, nil
}

func cmdSearch(s *Session, arg string) (bool, error) {
	q := s.query
	q.Filter.Search = arg
	s.requery(q)
	return false, nil
}

func cmdClearSearch(s *Session, _ string) (bool, error) {
	return cmdSearch(s, "")
}

func toggler(field func(*core.FilterState) *[]string) func(*Session, string) (bool, error) {
	return func(s *Session, arg string) (bool, error) {
		if arg == "" {
			return false, errors.New("missing value (see facets)")
		}
		q := s.query
		values := field(&q.Filter)
		*values = core.Toggle(*values, arg)
		s.requery(q)
		return false, nil
	}
}

func cmdRating(s *Session, arg string) (bool, error) {
	rating, err := strconv.ParseFloat(arg, 64)
	if err != nil || rating < 0 {
		return false, fmt.Errorf("invalid rating %q", arg)
	}
	q := s.query
	q.Filter.MinRating = rating
	s.requery(q)
	return false, nil
}

func cmdBuy(s *Session, arg string) (bool, error) {
	b, err := core.ParseBuyFilter(arg)
	if err != nil {
		return false, err
	}
	q := s.query
	q.Filter.Buy = b
	s.requery(q)
	return false, nil
}

func cmdVintage(s *Session, arg string) (bool, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 || len(fields) > 2 {
		return false, errors.New("usage: vintage <min|-> [max|-]")
	}
	lo, err := parseVintageBound(fields[0])
	if err != nil {
		return false, err
	}
	hi := 0
	if len(fields) == 2 {
		if hi, err = parseVintageBound(fields[1]); err != nil {
			return false, err
		}
	}
	q := s.query
	q.Filter.VintageMin, q.Filter.VintageMax = lo, hi
	s.requery(q)
	return false, nil
}

func cmdSort(s *Session, arg string) (bool, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 || len(fields) > 2 {
		return false, errors.New("usage: sort <field> [asc|desc]")
	}
	field, err := core.ParseSortField(fields[0])
	if err != nil {
		return false, err
	}
	dir := s.query.Direction
	if len(fields) == 2 {
		if dir, err = core.ParseDirection(fields[1]); err != nil {
			return false, err
		}
	}
	if dir == "" {
		dir = core.Asc
	}
	q := s.query
	q.SortBy, q.Direction = field, dir
	s.requery(q)
	return false, nil
}

func cmdClear(s *Session, _ string) (bool, error) {
	q := s.query
	q.Filter = core.FilterState{Search: q.Filter.Search}
	s.requery(q)
	return false, nil
}

func cmdFacets(s *Session, _ string) (bool, error) {
	s.println(s.renderer.Facets(s.svc.Catalog().Facets()))
	return false, nil
}

func cmdStats(s *Session, _ string) (bool, error) {
	s.println(s.renderer.Stats(s.result))
	return false, nil
}

func cmdOpen(s *Session, arg string) (bool, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return false, fmt.Errorf("invalid position %q", arg)
	}
	if !s.nav.Open(n - 1) {
		return false, fmt.Errorf("position %d out of range 1..%d", n, len(s.result.Wines))
	}
	s.showDetail()
	return false, nil
}

func cmdNext(s *Session, _ string) (bool, error) {
	if !s.nav.IsOpen() {
		return false, ErrNoWineOpen
	}
	if !s.nav.Next() {
		return false, errors.New("already at the last wine")
	}
	s.showDetail()
	return false, nil
}

func cmdPrev(s *Session, _ string) (bool, error) {
	if !s.nav.IsOpen() {
		return false, ErrNoWineOpen
	}
	if !s.nav.Prev() {
		return false, errors.New("already at the first wine")
	}
	s.showDetail()
	return false, nil
}

func cmdClose(s *Session, _ string) (bool, error) {
	s.nav.Close()
	return false, nil
}

func cmdNote(s *Session, arg string) (bool, error) {
	w, ok := s.nav.Current()
	if !ok {
		return false, ErrNoWineOpen
	}
	if arg == "" {
		note, ok := s.svc.Notes().Get(w.Name)
		if !ok {
			s.println("(no note)")
			return false, nil
		}
		s.println(note)
		return false, nil
	}
	if err := s.svc.SaveNote(s.ctx, w.Name, arg); err != nil {
		if errors.Is(err, core.ErrEmptyName) {
			return false, fmt.Errorf("note not saved: %w", err)
		}
		s.println("note kept for this session only:", err)
		return false, nil
	}
	s.println("note saved")
	return false, nil
}

func cmdUnnote(s *Session, _ string) (bool, error) {
	w, ok := s.nav.Current()
	if !ok {
		return false, ErrNoWineOpen
	}
	if err := s.svc.SaveNote(s.ctx, w.Name, ""); err != nil {
		if errors.Is(err, core.ErrEmptyName) {
			return false, fmt.Errorf("note not removed: %w", err)
		}
		s.println("note removed for this session only:", err)
		return false, nil
	}
	s.println("note removed")
	return false, nil
}

func layout(l view.Layout) func(*Session, string) (bool, error) {
	return func(s *Session, _ string) (bool, error) {
		s.renderer = s.renderer.WithLayout(l)
		s.show()
		return false, nil
	}
}

func cmdTheme(s *Session, arg string) (bool, error) {
	current := s.renderer.Config().Theme
	var next core.Theme
	switch strings.ToLower(arg) {
	case "":
		s.println(string(current))
		return false, nil
	case "toggle":
		next = current.Toggle()
	default:
		t, err := core.ParseTheme(arg)
		if err != nil {
			return false, err
		}
		next = t
	}
	s.svc.SetTheme(s.ctx, next)
	s.renderer = s.renderer.WithTheme(next)
	s.println("theme:", next)
	return false, nil
}

func cmdExport(s *Session, arg string) (bool, error) {
	path, err := s.exportNow(arg)
	if err != nil {
		return false, err
	}
	s.println("exported", len(s.result.Wines), "wines to", path)
	return false, nil
}

func cmdReload(s *Session, _ string) (bool, error) {
	if _, err := s.svc.Load(s.ctx); err != nil {
		s.failed = true
		s.show()
		return false, nil
	}
	s.failed = false
	s.refresh()
	s.show()
	return false, nil
}

func cmdQuit(*Session, string) (bool, error) {
	return true, nil
}
