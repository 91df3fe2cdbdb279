package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"lasso/internal/config"
	"lasso/internal/content"
	"lasso/internal/domain"
	"lasso/internal/eventbus"
	coresearch "lasso/internal/search"
	"lasso/internal/ui/services/scroll"
	searchsvc "lasso/internal/ui/services/search"
	"lasso/internal/ui/views"
)

// chrome rows below the viewport: find bar + status bar
const chromeHeight = 2

// Model is the Bubble Tea model for the viewer
type Model struct {
	cfg       *config.Config
	configSvc config.ConfigService
	bus       eventbus.EventBus
	watcher   *content.Watcher

	styles        *views.Styles
	statusRender  *views.StatusRenderer
	sidebarRender *views.SidebarRenderer
	helpRender    *HelpRenderer
	helpOps       *HelpOps

	viewport  viewport.Model
	findInput textinput.Model
	searchSvc *searchsvc.Service
	scroller  *scroll.Scroller

	doc  *content.Document
	docs []domain.DocInfo

	sidebarVisible bool
	sidebarFocus   bool
	sidebarSel     int

	finding  bool // find bar has focus
	showHelp bool
	scanning bool

	width  int
	height int
	ready  bool
	errMsg string

	initialPath string
}

// NewModel creates the viewer model. The watcher may be nil (tests run
// without one); every use is nil-safe.
func NewModel(cfg *config.Config, configSvc config.ConfigService, bus eventbus.EventBus, watcher *content.Watcher, initialPath string) *Model {
	styles := views.NewStyles()

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = cfg.Search.Placeholder
	ti.CharLimit = 256

	m := &Model{
		cfg:            cfg,
		configSvc:      configSvc,
		bus:            bus,
		watcher:        watcher,
		styles:         styles,
		statusRender:   views.NewStatusRenderer(styles),
		sidebarRender:  views.NewSidebarRenderer(styles),
		helpRender:     NewHelpRenderer(),
		viewport:       viewport.New(0, 0),
		findInput:      ti,
		searchSvc:      searchsvc.NewService(bus),
		sidebarVisible: cfg.UISettings.SidebarVisible,
		initialPath:    initialPath,
	}

	m.scroller = scroll.NewScroller(&m.viewport)
	m.searchSvc.SetMatcherFunction(func(query string) []coresearch.Match {
		return coresearch.Index(m.doc, query)
	})
	m.searchSvc.SetScrollFunction(func(match coresearch.Match) {
		m.scroller.CenterOn(match.Line, 1)
	})

	return m
}

// SetProgram hands the model the running program so help can release the
// terminal for the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.initialPath == "" {
		return nil
	}
	return m.loadDocCmd(m.initialPath)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case EventMsg:
		return m.handleEvent(msg.Event)
	case docLoadedMsg:
		return m.handleDocLoaded(msg.doc)
	case docErrMsg:
		m.errMsg = msg.err.Error()
		m.bus.Publish(eventbus.ErrorEvent{Message: "failed to load " + msg.path, Err: msg.err})
		return m, nil
	case helpPagerMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.viewport.Width = m.contentWidth()
	m.viewport.Height = msg.Height - chromeHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.findInput.Width = m.contentWidth() - 12

	// Re-layout the document when the wrap width changed
	if m.doc != nil && m.doc.Width != m.wrapWidth() {
		return m, m.loadDocCmd(m.doc.Path)
	}
	m.refreshContent()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finding {
		return m.handleFindKey(msg)
	}
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}
	if m.sidebarFocus {
		return m.handleSidebarKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m *Model) handleFindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.finding = false
		m.findInput.Blur()
		m.searchSvc.Next()
		m.refreshContent()
		return m, nil
	case "shift+enter":
		m.finding = false
		m.findInput.Blur()
		m.searchSvc.Previous()
		m.refreshContent()
		return m, nil
	case "esc":
		m.finding = false
		m.findInput.Blur()
		m.findInput.SetValue("")
		m.searchSvc.Clear()
		m.refreshContent()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	m.searchSvc.SetQuery(m.findInput.Value())
	m.refreshContent()
	return m, cmd
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.sidebarSel < len(m.docs)-1 {
			m.sidebarSel++
		}
	case "k", "up":
		if m.sidebarSel > 0 {
			m.sidebarSel--
		}
	case "enter":
		if m.sidebarSel >= 0 && m.sidebarSel < len(m.docs) {
			m.sidebarFocus = false
			return m, m.loadDocCmd(m.docs[m.sidebarSel].Path)
		}
	case "tab", "esc":
		m.sidebarFocus = false
	case "q", "ctrl+c":
		return m, m.quit()
	}
	return m, nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, m.quit()
	case "/", "ctrl+f":
		m.finding = true
		m.errMsg = ""
		return m, m.findInput.Focus()
	case "n", "enter":
		m.searchSvc.Next()
		m.refreshContent()
		return m, nil
	case "N", "shift+enter":
		m.searchSvc.Previous()
		m.refreshContent()
		return m, nil
	case "esc":
		m.findInput.SetValue("")
		m.searchSvc.Clear()
		m.errMsg = ""
		m.refreshContent()
		return m, nil
	case "tab":
		if m.sidebarVisible {
			m.sidebarFocus = true
		}
		return m, nil
	case "b":
		m.toggleSidebar()
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	case "r":
		if m.doc != nil {
			return m, m.loadDocCmd(m.doc.Path)
		}
		return m, nil
	case "?":
		m.showHelp = true
		return m, nil
	case "H":
		return m, m.pagerHelpCmd()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.DocDiscoveredEvent:
		m.addDoc(e.Doc)
	case eventbus.ScanStartedEvent:
		m.scanning = true
	case eventbus.ScanCompletedEvent:
		m.scanning = false
	case eventbus.ContentChangedEvent:
		if m.doc != nil && m.doc.Path == e.Path {
			log.Debug().Str("path", e.Path).Msg("document changed on disk, reloading")
			return m, m.loadDocCmd(e.Path)
		}
	case eventbus.ErrorEvent:
		m.errMsg = e.Message
	}
	return m, nil
}

func (m *Model) handleDocLoaded(doc *content.Document) (tea.Model, tea.Cmd) {
	m.doc = doc
	m.errMsg = ""
	m.bus.Publish(eventbus.DocumentLoadedEvent{Path: doc.Path, Lines: doc.LineCount()})

	if m.watcher != nil {
		if err := m.watcher.Watch(doc.Path); err != nil {
			log.Warn().Err(err).Str("path", doc.Path).Msg("failed to watch document")
		}
	}

	// Content changed: recompute matches for the current query
	m.searchSvc.Refresh()
	m.refreshContent()
	m.viewport.GotoTop()
	return m, nil
}

// refreshContent pushes the document, with match highlighting, into the
// viewport
func (m *Model) refreshContent() {
	if m.doc == nil {
		return
	}

	byLine := coresearch.LineMatches(m.searchSvc.Matches())
	if len(byLine) == 0 {
		m.viewport.SetContent(m.doc.Content())
		return
	}

	active := m.searchSvc.ActiveIndex()
	lines := make([]string, m.doc.LineCount())
	for i := range lines {
		if ms, ok := byLine[i]; ok {
			lines[i] = views.HighlightLine(m.doc.Plain(i), ms, active, m.styles)
		} else {
			lines[i] = m.doc.Line(i)
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) addDoc(doc domain.DocInfo) {
	for _, d := range m.docs {
		if d.Path == doc.Path {
			return
		}
	}
	m.docs = append(m.docs, doc)
	sort.Slice(m.docs, func(i, j int) bool { return m.docs[i].Name < m.docs[j].Name })
}

func (m *Model) toggleSidebar() {
	m.sidebarVisible = !m.sidebarVisible
	m.sidebarFocus = false
	m.cfg.UISettings.SidebarVisible = m.sidebarVisible
	m.bus.Publish(eventbus.ConfigChangedEvent{})

	m.viewport.Width = m.contentWidth()
	m.refreshContent()
}

func (m *Model) quit() tea.Cmd {
	if err := m.configSvc.Save(m.cfg); err != nil {
		log.Warn().Err(err).Msg("failed to save config on exit")
	}
	return tea.Quit
}

func (m *Model) sidebarWidth() int {
	if !m.sidebarVisible {
		return 0
	}
	w := m.cfg.UISettings.SidebarWidth
	if w > m.width/2 {
		w = m.width / 2
	}
	return w
}

func (m *Model) contentWidth() int {
	w := m.width - m.sidebarWidth()
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) wrapWidth() int {
	if m.cfg.UISettings.WrapWidth > 0 {
		return m.cfg.UISettings.WrapWidth
	}
	return m.contentWidth()
}

func (m *Model) loadDocCmd(path string) tea.Cmd {
	width := m.wrapWidth()
	return func() tea.Msg {
		doc, err := content.Load(path, width)
		if err != nil {
			return docErrMsg{path: path, err: err}
		}
		return docLoadedMsg{doc: doc}
	}
}

func (m *Model) pagerHelpCmd() tea.Cmd {
	if m.helpOps == nil {
		return nil
	}
	helpContent := m.helpRender.RenderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(helpContent)}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	if m.showHelp {
		body = lipgloss.NewStyle().
			Width(m.contentWidth()).
			Height(m.viewport.Height).
			Render(m.helpRender.RenderHelpContent())
	} else {
		body = m.viewport.View()
	}

	if sidebar := m.sidebarRender.Render(views.SidebarState{
		Visible:   m.sidebarVisible,
		Focused:   m.sidebarFocus,
		Width:     m.sidebarWidth(),
		Height:    m.viewport.Height,
		Docs:      m.docs,
		Selection: m.sidebarSel,
		ActiveDoc: m.activeDocPath(),
	}); sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
	}

	return body + "\n" + m.findBarView() + "\n" + m.statusView()
}

func (m *Model) findBarView() string {
	if m.finding {
		return m.findInput.View()
	}
	if m.searchSvc.Query() != "" {
		line := m.styles.FindPrompt.Render("/") + m.searchSvc.Query()
		if counter := m.searchSvc.CounterText(); counter != "" {
			line += "  " + m.styles.Counter.Render(counter)
		} else if !m.searchSvc.NavEnabled() {
			line += "  " + m.styles.CounterEmpty.Render("no matches")
		}
		return line
	}
	return m.styles.Help.Render(m.helpRender.ShortHelp())
}

func (m *Model) statusView() string {
	state := views.StatusState{
		Width:         m.width,
		ScrollPercent: m.viewport.ScrollPercent(),
		Counter:       m.searchSvc.CounterText(),
		ErrorMessage:  m.errMsg,
		Scanning:      m.scanning,
	}
	if m.doc != nil {
		state.DocName = m.doc.Path
		state.DocKind = m.doc.Kind.String()
	} else {
		state.DocName = "no document"
	}
	return m.statusRender.Render(state)
}

func (m *Model) activeDocPath() string {
	if m.doc == nil {
		return ""
	}
	return m.doc.Path
}
