package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/rsinha/todotui/internal/model"
	"github.com/rsinha/todotui/internal/storage"
	"github.com/rsinha/todotui/internal/tasks"
	"github.com/rsinha/todotui/internal/view"
)

// Notification is the single active user-visible message. A new one
// supersedes whatever is currently displayed.
type Notification struct {
	Message  string
	Severity tasks.Severity
	At       time.Time
}

// notificationSlot adapts the repository's fire-and-forget notifier contract
// onto the model. It lives behind a pointer so repository calls made during
// Update are visible to the next render despite the model's value semantics.
type notificationSlot struct {
	current        *Notification
	desktopEnabled bool
	desktop        DesktopNotifier
}

func newNotificationSlot(desktopEnabled bool, desktop DesktopNotifier) *notificationSlot {
	if desktop == nil {
		desktop = NoopDesktopNotifier{}
	}
	return &notificationSlot{desktopEnabled: desktopEnabled, desktop: desktop}
}

func (s *notificationSlot) Notify(message string, severity tasks.Severity) {
	n := Notification{Message: message, Severity: severity, At: time.Now().UTC()}
	s.current = &n
	if s.desktopEnabled {
		_ = s.desktop.Send(n)
	}
}

func (s *notificationSlot) Current() *Notification {
	return s.current
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type ConfirmState struct {
	Active bool
	Prompt string
}

type KeyMap struct {
	Capture   key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	FilterAll key.Binding
	FilterAct key.Binding
	FilterCmp key.Binding
	Clear     key.Binding
	Theme     key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Capture:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "add task")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x/del", "delete")),
		FilterAll: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterAct: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterCmp: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Palette:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	}
}

// ShortHelp implements help.KeyMap for the footer line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Capture, k.Toggle, k.Delete, k.Clear, k.Theme, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Capture, k.Toggle, k.Delete},
		{k.FilterAll, k.FilterAct, k.FilterCmp},
		{k.Clear, k.Theme, k.Palette, k.Help, k.Quit},
	}
}

type Model struct {
	repo  *tasks.Repository
	store storage.KeyValueStore
	slot  *notificationSlot

	Filter      model.FilterMode
	Rows        []model.Task
	Counters    view.Counters
	Cursor      int
	CaptureMode bool
	Confirm     ConfirmState
	Palette     CommandPaletteState
	HelpVisible bool
	Dark        bool
	Keys        KeyMap
	Quitting    bool

	quickAddInput textinput.Model
	commandInput  textinput.Model
	helpModel     help.Model
}

type SetFilterMsg struct {
	Mode model.FilterMode
}

type AddTaskMsg struct {
	Text string
}

type ToggleTaskMsg struct {
	ID int64
}

type DeleteTaskMsg struct {
	ID int64
}

type ClearCompletedRequestMsg struct{}

type SetThemeMsg struct {
	Dark bool
}

// NewApp wires the repository, notification slot, and theme preference onto a
// fresh model. Load failures degrade to an empty collection inside the
// repository; only the returned error from unexpected store faults surfaces.
func NewApp(ctx context.Context, store storage.KeyValueStore, cfg RuntimeConfig) (Model, error) {
	slot := newNotificationSlot(cfg.DesktopNotifications, cfg.Desktop)
	repo := tasks.NewRepository(store, slot)
	err := repo.Load(ctx)

	m := Model{
		repo:        repo,
		store:       store,
		slot:        slot,
		Filter:      model.FilterAll,
		CaptureMode: true,
		Dark:        loadThemePreference(ctx, store),
		Keys:        DefaultKeyMap(),
	}
	m.initBubbleComponents()
	m.refresh()
	return m, err
}

func (m *Model) initBubbleComponents() {
	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42
	m.quickAddInput.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

// refresh rebuilds the whole visible projection and counters from current
// repository state. Every mutation path runs through here.
func (m *Model) refresh() {
	snapshot := m.repo.Snapshot()
	m.Rows = view.Apply(snapshot, m.Filter)
	m.Counters = view.Count(snapshot)
	if m.Cursor >= len(m.Rows) {
		m.Cursor = len(m.Rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) selectedRow() (model.Task, bool) {
	if len(m.Rows) == 0 || m.Cursor >= len(m.Rows) {
		return model.Task{}, false
	}
	return m.Rows[m.Cursor], true
}

// CurrentNotification exposes the active notification for rendering and tests.
func (m Model) CurrentNotification() *Notification {
	return m.slot.Current()
}
