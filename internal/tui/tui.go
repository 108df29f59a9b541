// Package tui implements an interactive outfit configurator: a single
// list of family/item rows, each item annotated with its current
// Required/Excluded/Available/Selected classification, updating live as
// the user selects items.
package tui

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/tchupp/weave/engine/catalog"
)

var (
	requiredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	excludedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	availableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	listWidth, listHeight = 80, 20
)

// item adapts a catalog.ItemStatus to bubbles/list.Item, carrying its
// family along so the delegate can render "family / item" rows out of a
// single flat list.
type item struct {
	family string
	status catalog.ItemStatus
}

func (i item) FilterValue() string { return i.family + " " + i.status.Item }

// statusDelegate renders each row styled by its catalog.StatusKind,
// reusing the same styleFor mapping the old hand-rolled view used.
type statusDelegate struct{}

func (statusDelegate) Height() int  { return 1 }
func (statusDelegate) Spacing() int { return 0 }
func (statusDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (statusDelegate) Render(w io.Writer, m list.Model, index int, it list.Item) {
	i, ok := it.(item)
	if !ok {
		return
	}
	cursor := "  "
	if index == m.Index() {
		cursor = cursorStyle.Render("> ")
	}
	row := fmt.Sprintf("%-8s %s/%s", i.status.Kind, i.family, i.status.Item)
	fmt.Fprint(w, cursor+styleFor(i.status.Kind).Render(row))
}

// AssemblyLoader reloads and compiles the catalog from its backing
// assembly, used both for the initial build and for --watch reloads.
type AssemblyLoader func() (*catalog.Catalog, error)

// Model is the bubbletea model driving the configurator. Navigation and
// filtering are delegated entirely to the embedded list.Model; Model
// itself only keeps the catalog.CatalogState the list's items are
// derived from.
type Model struct {
	load    AssemblyLoader
	state   *catalog.CatalogState
	list    list.Model
	err     error
	watched chan struct{}
}

// New builds a Model from a loader, compiling the initial catalog.
func New(load AssemblyLoader) (*Model, error) {
	cat, err := load()
	if err != nil {
		return nil, err
	}
	l := list.New(nil, statusDelegate{}, listWidth, listHeight)
	l.Title = "weave configurator"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("item", "items")

	m := &Model{load: load, state: catalog.NewCatalogState(cat), list: l}
	m.refresh()
	return m, nil
}

// Watch arranges for fsnotify events on path to trigger a catalog
// reload; call before starting the bubbletea program.
func (m *Model) Watch(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tui: starting watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("tui: watching %s: %w", path, err)
	}
	m.watched = make(chan struct{}, 1)
	go func() {
		var lastReload time.Time
		for range watcher.Events {
			if time.Since(lastReload) < 150*time.Millisecond {
				continue
			}
			lastReload = time.Now()
			m.watched <- struct{}{}
		}
	}()
	return watcher, nil
}

func (m *Model) Init() tea.Cmd { return m.waitForReload() }

func (m *Model) waitForReload() tea.Cmd {
	if m.watched == nil {
		return nil
	}
	return func() tea.Msg {
		<-m.watched
		return reloadMsg{}
	}
}

type reloadMsg struct{}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		// While the user is typing into the list's own filter prompt,
		// every key belongs to the list: don't steal enter/space/q.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", " ":
			m.toggleSelected()
			return m, nil
		}
	case reloadMsg:
		if cat, err := m.load(); err != nil {
			m.err = err
		} else {
			m.state = catalog.NewCatalogState(cat)
			m.refresh()
		}
		return m, m.waitForReload()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}
	return m.list.View() + footerStyle.Render("\nenter: select item   /: filter   q: quit\n")
}

func styleFor(kind catalog.StatusKind) lipgloss.Style {
	switch kind {
	case catalog.Required:
		return requiredStyle
	case catalog.Excluded:
		return excludedStyle
	case catalog.Selected:
		return selectedStyle
	default:
		return availableStyle
	}
}

// toggleSelected selects the item under the list's cursor. Selection
// history is monotonic (CatalogState only ever grows its history, spec
// §6), so there is no "unselect" — pressing enter on an already-selected
// item is a no-op.
func (m *Model) toggleSelected() {
	sel, ok := m.list.SelectedItem().(item)
	if !ok {
		return
	}

	byFam, next, err := m.state.Options([]catalog.Item{sel.status.Item}, nil)
	if err != nil {
		m.err = err
		return
	}
	m.state = next
	m.setItems(byFam)
}

func (m *Model) refresh() {
	byFam, next, err := m.state.Options(nil, nil)
	if err != nil {
		m.err = err
		return
	}
	m.state = next
	m.setItems(byFam)
}

// setItems flattens byFam into the sorted, family-then-item ordered
// slice the list.Model displays.
func (m *Model) setItems(byFam map[catalog.Family][]catalog.ItemStatus) {
	families := make([]catalog.Family, 0, len(byFam))
	for family := range byFam {
		families = append(families, family)
	}
	sort.Strings(families)

	items := make([]list.Item, 0, len(byFam))
	for _, family := range families {
		statuses := append([]catalog.ItemStatus(nil), byFam[family]...)
		sort.Slice(statuses, func(i, j int) bool { return statuses[i].Item < statuses[j].Item })
		for _, status := range statuses {
			items = append(items, item{family: string(family), status: status})
		}
	}
	m.list.SetItems(items)
}
