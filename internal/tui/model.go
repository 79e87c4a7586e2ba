// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-client/internal/app"
	"github.com/MKhiriev/go-todo-client/internal/service"
	"github.com/MKhiriev/go-todo-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenAddForm
	screenEditForm
	screenToken
	screenImport
	screenBuildInfo
)

type operation string

const (
	opStart        operation = "start"
	opLoad         operation = "load"
	opAdd          operation = "add"
	opUpdate       operation = "update"
	opToggle       operation = "toggle"
	opDelete       operation = "delete"
	opPrivateMode  operation = "private_mode"
	opTheme        operation = "theme"
	opAuthenticate operation = "authenticate"
	opLogout       operation = "logout"
	opExport       operation = "export"
	opImport       operation = "import"
)

// Model is the root bubbletea model of the todo client. It never mutates
// todos itself: it forwards user actions to the client and redraws from the
// events the client publishes.
type Model struct {
	ctx    context.Context
	client service.TodoClient
	tier   models.Tier
	caps   models.Capabilities

	statusDuration time.Duration
	buildInfo      models.AppBuildInfo
	copyText       func(string) error

	todos       []models.Todo
	placeholder string
	idx         int
	loading     bool
	busy        int
	spinner     spinner.Model

	authenticated bool
	hasToken      bool
	expiresAt     *time.Time
	privateMode   bool
	theme         theme
	lastExport    string

	status   models.Status
	statusID int

	screen     screen
	addForm    todoFormModel
	editForm   todoFormModel
	tokenForm  tokenFormModel
	importForm importFormModel
	confirm    *confirmRequestMsg

	help     help.Model
	quitting bool
}

func NewModel(ctx context.Context, client service.TodoClient, statusDuration time.Duration, buildInfo models.AppBuildInfo) Model {
	tier := client.Tier()
	session := client.Session()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return Model{
		ctx:            ctx,
		client:         client,
		tier:           tier,
		caps:           tier.Capabilities(),
		statusDuration: statusDuration,
		buildInfo:      buildInfo,
		copyText:       clipboard.WriteAll,
		loading:        true,
		spinner:        s,
		authenticated:  session.Authenticated,
		hasToken:       session.HasToken(),
		expiresAt:      session.TokenExpiresAt,
		privateMode:    session.PrivateMode,
		theme:          newTheme(session.DarkMode),
		addForm:        newTodoFormModel(nil),
		tokenForm:      newTokenFormModel(),
		importForm:     newImportFormModel(),
		help:           help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run(opStart, m.client.Start))
}

// dispatch marks an operation in flight and returns the command running it.
func (m *Model) dispatch(op operation, fn func(ctx context.Context) error) tea.Cmd {
	m.busy++
	return m.run(op, fn)
}

func (m Model) run(op operation, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

// showStatus replaces the banner and schedules its removal. Only the timer
// of the latest message clears it.
func (m *Model) showStatus(status models.Status) tea.Cmd {
	m.statusID++
	m.status = status

	id := m.statusID
	return tea.Tick(m.statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clientEventMsg:
		return m.applyEvent(msg.event)
	case opDoneMsg:
		return m.finishOp(msg)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = models.Status{}
		}
		return m, nil
	case confirmRequestMsg:
		if m.confirm != nil {
			// one prompt at a time; a second one is declined
			msg.reply <- false
			return m, nil
		}
		m.confirm = &msg
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveInput(msg)
}

func (m Model) applyEvent(event models.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case models.TodosReplaced:
		m.todos = e.Todos
		m.placeholder = ""
		m.loading = false
		m.clampCursor()
	case models.TodosUnavailable:
		m.todos = nil
		m.placeholder = e.Message
		m.loading = false
		m.idx = 0
	case models.StatusPosted:
		return m, m.showStatus(e.Status)
	case models.PrivateModeChanged:
		m.privateMode = e.Enabled
	case models.ThemeChanged:
		m.theme = newTheme(e.Dark)
	case models.SessionChanged:
		m.authenticated = e.Authenticated
		m.hasToken = e.HasToken
		m.expiresAt = e.ExpiresAt
	case models.FormCleared:
		m.addForm = newTodoFormModel(nil)
		if m.screen == screenAddForm {
			m.screen = screenList
		}
	case models.ExportSaved:
		m.lastExport = e.Path
	}
	return m, nil
}

func (m Model) finishOp(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if m.busy > 0 {
		m.busy--
	}

	switch msg.op {
	case opStart, opLoad:
		m.loading = false
	case opAdd:
		m.addForm.submitting = false
	case opUpdate:
		m.editForm.submitting = false
		if msg.err == nil && m.screen == screenEditForm {
			m.screen = screenList
		}
	case opAuthenticate:
		m.tokenForm.submitting = false
		if msg.err == nil {
			m.tokenForm = newTokenFormModel()
			if m.screen == screenToken {
				m.screen = screenList
			}
		}
	case opImport:
		m.importForm.submitting = false
		if (msg.err == nil || errors.Is(msg.err, service.ErrCancelled)) && m.screen == screenImport {
			m.importForm = newImportFormModel()
			m.screen = screenList
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		return m.quit()
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	switch m.screen {
	case screenAddForm, screenEditForm:
		return m.updateTodoForm(msg)
	case screenToken:
		return m.updateTokenForm(msg)
	case screenImport:
		return m.updateImportForm(msg)
	case screenBuildInfo:
		if key.Matches(msg, keys.cancel, keys.info, keys.quit) {
			m.screen = screenList
		}
		return m, nil
	}

	return m.updateList(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		m.confirm.reply <- false
		m.confirm = nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm.reply <- true
		m.confirm = nil
	case key.Matches(msg, keys.no):
		m.confirm.reply <- false
		m.confirm = nil
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	client := m.client

	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.todos)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.dispatch(opLoad, client.LoadTodos)
	case key.Matches(msg, keys.theme):
		desired := !m.theme.dark
		return m, m.dispatch(opTheme, func(ctx context.Context) error {
			return client.ToggleDarkMode(ctx, desired)
		})
	case key.Matches(msg, keys.info):
		m.screen = screenBuildInfo
	case key.Matches(msg, keys.copy):
		return m, m.copySelected()

	case m.caps.CanWrite && key.Matches(msg, keys.add):
		m.screen = screenAddForm
		return m, textinput.Blink
	case m.caps.CanWrite && key.Matches(msg, keys.edit):
		todo, ok := m.current()
		if !ok {
			return m, nil
		}
		m.editForm = newTodoFormModel(&todo)
		m.screen = screenEditForm
		return m, textinput.Blink
	case m.caps.CanWrite && key.Matches(msg, keys.toggle):
		todo, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.dispatch(opToggle, func(ctx context.Context) error {
			return client.ToggleCompleted(ctx, todo.ID)
		})
	case m.caps.CanWrite && key.Matches(msg, keys.delete):
		todo, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.dispatch(opDelete, func(ctx context.Context) error {
			return client.DeleteTodo(ctx, todo.ID)
		})

	case m.caps.CanToggleMode && key.Matches(msg, keys.privateMode):
		// the control moves at once; a failure publishes the old value back
		desired := !m.privateMode
		m.privateMode = desired
		return m, m.dispatch(opPrivateMode, func(ctx context.Context) error {
			return client.TogglePrivateMode(ctx, desired)
		})

	case m.caps.UsesToken && key.Matches(msg, keys.token):
		m.tokenForm = newTokenFormModel()
		m.screen = screenToken
		return m, textinput.Blink
	case m.caps.UsesToken && key.Matches(msg, keys.logout):
		return m, m.dispatch(opLogout, client.Logout)

	case m.caps.CanImportExport && key.Matches(msg, keys.export):
		return m, m.dispatch(opExport, func(ctx context.Context) error {
			_, err := client.ExportTodos(ctx)
			return err
		})
	case m.caps.CanImportExport && key.Matches(msg, keys.importFile):
		m.screen = screenImport
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) updateTodoForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &m.addForm
	if m.screen == screenEditForm {
		form = &m.editForm
	}

	switch {
	case key.Matches(msg, keys.cancel):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.next):
		form.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.prev):
		form.moveFocus(-1)
		return m, nil
	case key.Matches(msg, keys.submit):
		if form.submitting {
			return m, nil
		}
		client := m.client

		if !form.editing {
			title, description := form.values()
			form.submitting = true
			return m, m.dispatch(opAdd, func(ctx context.Context) error {
				return client.AddTodo(ctx, title, description)
			})
		}

		upd := form.changes()
		if upd.IsEmpty() {
			m.screen = screenList
			return m, nil
		}
		id := form.original.ID
		form.submitting = true
		return m, m.dispatch(opUpdate, func(ctx context.Context) error {
			return client.UpdateTodo(ctx, id, upd)
		})
	}

	var cmd tea.Cmd
	*form, cmd = form.update(msg)
	return m, cmd
}

func (m Model) updateTokenForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.cancel):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.submit):
		if m.tokenForm.submitting {
			return m, nil
		}
		client := m.client
		candidate := m.tokenForm.input.Value()
		m.tokenForm.submitting = true
		return m, m.dispatch(opAuthenticate, func(ctx context.Context) error {
			return client.Authenticate(ctx, candidate)
		})
	}

	var cmd tea.Cmd
	m.tokenForm, cmd = m.tokenForm.update(msg)
	return m, cmd
}

func (m Model) updateImportForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.cancel):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.submit):
		if m.importForm.submitting {
			return m, nil
		}
		client := m.client
		path := strings.TrimSpace(m.importForm.input.Value())
		m.importForm.submitting = true
		return m, m.dispatch(opImport, func(ctx context.Context) error {
			_, err := client.ImportTodosFromFile(ctx, path)
			return err
		})
	}

	var cmd tea.Cmd
	m.importForm, cmd = m.importForm.update(msg)
	return m, cmd
}

// updateActiveInput forwards non-key messages such as cursor blinks to the
// focused input.
func (m Model) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenAddForm:
		m.addForm, cmd = m.addForm.update(msg)
	case screenEditForm:
		m.editForm, cmd = m.editForm.update(msg)
	case screenToken:
		m.tokenForm, cmd = m.tokenForm.update(msg)
	case screenImport:
		m.importForm, cmd = m.importForm.update(msg)
	}
	return m, cmd
}

func (m *Model) copySelected() tea.Cmd {
	todo, ok := m.current()
	if !ok {
		return m.showStatus(models.Status{Message: app.MsgNothingToCopy, Severity: models.SeverityError})
	}

	text := todo.Title
	if todo.Description != "" {
		text += "\n" + todo.Description
	}

	if err := m.copyText(text); err != nil {
		return m.showStatus(models.Status{Message: app.MsgCopyFailed, Severity: models.SeverityError})
	}
	return m.showStatus(models.Status{Message: app.MsgCopied, Severity: models.SeveritySuccess})
}

func (m Model) current() (models.Todo, bool) {
	if len(m.todos) == 0 || m.idx < 0 || m.idx >= len(m.todos) {
		return models.Todo{}, false
	}
	return m.todos[m.idx], true
}

func (m *Model) clampCursor() {
	if m.idx >= len(m.todos) {
		m.idx = len(m.todos) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	var body string
	switch m.screen {
	case screenBuildInfo:
		return t.app.Render(renderBuildInfoWindow(t, m.tier, m.buildInfo))
	case screenAddForm:
		body = renderPage(t, m.header(), m.addForm.view(t), m.help.ShortHelpView(keys.formHelp()))
	case screenEditForm:
		body = renderPage(t, m.header(), m.editForm.view(t), m.help.ShortHelpView(keys.formHelp()))
	case screenToken:
		body = renderPage(t, m.header(), m.tokenForm.view(t), m.help.ShortHelpView(keys.inputHelp()))
	case screenImport:
		body = renderPage(t, m.header(), m.importForm.view(t), m.help.ShortHelpView(keys.inputHelp()))
	default:
		body = renderPage(t, m.header(), m.listView(), m.help.ShortHelpView(keys.listHelp(m.caps)))
	}

	if m.confirm != nil {
		body += "\n\n" + renderConfirm(t, m.confirm.prompt)
	}
	if banner := m.statusView(); banner != "" {
		body += "\n\n" + banner
	}

	return t.app.Render(body)
}

func (m Model) header() string {
	title := fmt.Sprintf("TODO LIST · %s", strings.ToUpper(m.tier.String()))
	if m.loading || m.busy > 0 {
		title += " " + m.spinner.View()
	}
	return title
}

func (m Model) sessionView() string {
	var parts []string

	if m.caps.UsesToken {
		switch {
		case m.authenticated:
			parts = append(parts, "session: authenticated")
		case m.hasToken:
			parts = append(parts, "session: token set")
		default:
			parts = append(parts, "session: no token")
		}
		if m.expiresAt != nil {
			parts = append(parts, "expires "+m.expiresAt.Local().Format(time.DateTime))
		}
	}
	if m.caps.CanToggleMode {
		parts = append(parts, "private mode: "+onOff(m.privateMode))
	}

	mode := "light"
	if m.theme.dark {
		mode = "dark"
	}
	parts = append(parts, "theme: "+mode)

	return m.theme.muted.Render(strings.Join(parts, " | "))
}

func (m Model) listView() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.sessionView())
	b.WriteString("\n\n")

	switch {
	case m.placeholder != "":
		b.WriteString(t.failure.Render(m.placeholder))
	case m.loading && len(m.todos) == 0:
		b.WriteString(t.muted.Render(app.MsgLoading))
	case len(m.todos) == 0:
		b.WriteString(t.muted.Render(app.MsgNoTodos))
	default:
		for i, todo := range m.todos {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.todoRow(i, todo))
		}
	}

	if m.lastExport != "" {
		b.WriteString("\n\n")
		b.WriteString(t.muted.Render("last export: " + m.lastExport))
	}

	return b.String()
}

func (m Model) todoRow(i int, todo models.Todo) string {
	t := m.theme

	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}
	mark := "[ ] "
	if todo.Completed {
		mark = "[x] "
	}

	title := fitText(todo.Title, 60)
	switch {
	case todo.Completed:
		title = t.completed.Render(title)
	case i == m.idx:
		title = t.selected.Render(title)
	default:
		title = t.text.Render(title)
	}

	row := cursor + mark + title
	if todo.Description != "" {
		row += "  " + t.muted.Render(fitText(todo.Description, 60))
	}
	return row
}

func (m Model) statusView() string {
	if m.status.Message == "" {
		return ""
	}
	if m.status.Severity == models.SeverityError {
		return m.theme.failure.Render(m.status.Message)
	}
	return m.theme.success.Render(m.status.Message)
}
