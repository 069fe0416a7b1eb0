package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/MKhiriev/go-cipher-lab/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoMethods = errors.New("method catalog is not loaded")

type focusField int

const (
	focusMethod focusField = iota
	focusKey
	focusInput
	focusCount
)

const (
	strengthBarWidth = 20
	historyPreview   = 24
	historyRows      = 10
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	buildInfo models.AppBuildInfo

	methods   []models.MethodInfo
	methodIdx int
	mode      models.Mode
	focus     focusField

	keyInput  textinput.Model
	textInput textinput.Model
	spinner   spinner.Model

	result    models.TransformResult
	hasResult bool
	running   bool
	history   []models.HistoryEntry

	status        string
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo) appModel {
	keyInput := textinput.New()
	keyInput.Prompt = ""
	keyInput.CharLimit = 256

	textInput := textinput.New()
	textInput.Prompt = ""
	textInput.Placeholder = "text to transform"

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		mode:      models.Encrypt,
		focus:     focusMethod,
		keyInput:  keyInput,
		textInput: textInput,
		spinner:   s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadMethods(), m.cmdLoadHistory())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		return m.updateKeys(msg)
	case methodsLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.methods = msg.methods
		if m.methodIdx >= len(m.methods) {
			m.methodIdx = 0
		}
		m.applyKeyHint()
		return m, nil
	case transformDoneMsg:
		m.running = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.result = msg.result
		m.hasResult = true
		return m, m.cmdLoadHistory()
	case historyLoadedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history = msg.entries
		return m, nil
	case historyClearedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.history = nil
		m.status = "History cleared"
		return m, cmdClearStatus()
	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case errMsg:
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus - 1 + focusCount) % focusCount)
	case key.Matches(msg, keys.toggleMode):
		m.toggleMode()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.runTransform()
	case key.Matches(msg, keys.copy):
		if !m.hasResult || m.result.Output == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.result.Output)
	case key.Matches(msg, keys.reuse):
		if !m.hasResult {
			return m, nil
		}
		m.textInput.SetValue(m.result.Output)
		m.toggleMode()
		return m, nil
	case key.Matches(msg, keys.clearHistory):
		return m, m.cmdClearHistory()
	}

	if m.focus != focusMethod {
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.methodIdx > 0 {
			m.methodIdx--
			m.applyKeyHint()
		}
	case key.Matches(msg, keys.down):
		if m.methodIdx < len(m.methods)-1 {
			m.methodIdx++
			m.applyKeyHint()
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) setFocus(f focusField) (tea.Model, tea.Cmd) {
	m.focus = f
	m.keyInput.Blur()
	m.textInput.Blur()

	switch f {
	case focusKey:
		return m, m.keyInput.Focus()
	case focusInput:
		return m, m.textInput.Focus()
	}
	return m, nil
}

func (m appModel) runTransform() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	method, ok := m.currentMethod()
	if !ok {
		m.showErrorf(humanizeError(errNoMethods))
		return m, nil
	}

	m.running = true
	req := models.TransformRequest{
		Method: method.ID,
		Mode:   m.mode,
		Input:  m.textInput.Value(),
		Key:    m.keyInput.Value(),
	}
	return m, tea.Batch(m.spinner.Tick, m.cmdTransform(req))
}

func (m *appModel) toggleMode() {
	if m.mode.IsDecrypt() {
		m.mode = models.Encrypt
		return
	}
	m.mode = models.Decrypt
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) currentMethod() (models.MethodInfo, bool) {
	if m.methodIdx < 0 || m.methodIdx >= len(m.methods) {
		return models.MethodInfo{}, false
	}
	return m.methods[m.methodIdx], true
}

// applyKeyHint shows the default key of the selected method as placeholder.
func (m *appModel) applyKeyHint() {
	method, ok := m.currentMethod()
	if !ok {
		return
	}
	m.keyInput.Placeholder = keyHint(method)
}

func keyHint(method models.MethodInfo) string {
	switch method.ID {
	case models.Caesar:
		return "shift (default 3)"
	case models.RailFence:
		return "rails (default 3)"
	case models.XOR:
		return "keyword (default \"default\")"
	case models.Vigenere:
		return "keyword (default \"KEY\")"
	}
	switch method.KeyClass {
	case models.KeyNone:
		return "not used"
	case models.KeyPair:
		return "key pair (simulated)"
	}
	return "key"
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	body := renderPage("ENCRYPTION TOOL", m.renderForm(), m.renderHotKeys())
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}
	return appStyle.Render(body)
}

func (m appModel) renderForm() string {
	var b strings.Builder

	b.WriteString(m.focusMarker(focusMethod) + labelStyle.Render("Method") + "\n")
	if len(m.methods) == 0 {
		b.WriteString("    loading...\n")
	}
	for i, method := range m.methods {
		line := method.Name
		if method.Simulated {
			line += " (simulated)"
		}
		if i == m.methodIdx {
			b.WriteString("  > " + selectedStyle.Render(line) + "\n")
			continue
		}
		b.WriteString("    " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + labelStyle.Render("Mode") + renderMode(m.mode) + "\n")
	b.WriteString(m.focusMarker(focusKey) + labelStyle.Render("Key") + m.keyInput.View() + "\n")
	b.WriteString(m.focusMarker(focusInput) + labelStyle.Render("Input") + m.textInput.View() + "\n")
	b.WriteString("\n")

	output := "-"
	if m.running {
		output = m.spinner.View() + " working..."
	} else if m.hasResult {
		output = m.result.Output
	}
	b.WriteString("  " + labelStyle.Render("Output") + output + "\n")
	if m.hasResult {
		b.WriteString("  " + labelStyle.Render("Strength") + strengthBar(m.result.Strength, strengthBarWidth) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n  " + m.status + "\n")
	}

	b.WriteString("\n" + titleStyle.Render("History") + "\n")
	b.WriteString(renderHistory(m.history))

	return b.String()
}

func (m appModel) focusMarker(f focusField) string {
	if m.focus == f {
		return "▸ "
	}
	return "  "
}

func (m appModel) renderHotKeys() string {
	if m.focus == focusMethod {
		return "↑/↓: method  tab: next field  enter: run  ctrl+t: mode  ctrl+y: copy  ctrl+r: reuse output  ctrl+x: clear history  v: about  q: quit"
	}
	return "tab: next field  enter: run  ctrl+t: mode  ctrl+y: copy  ctrl+r: reuse output  ctrl+x: clear history"
}

func renderMode(mode models.Mode) string {
	if mode.IsDecrypt() {
		return "encrypt / " + selectedStyle.Render("[DECRYPT]")
	}
	return selectedStyle.Render("[ENCRYPT]") + " / decrypt"
}

func renderHistory(entries []models.HistoryEntry) string {
	if len(entries) == 0 {
		return "  no transforms yet\n"
	}

	var b strings.Builder
	for i, e := range entries {
		if i == historyRows {
			fmt.Fprintf(&b, "  ... %d more\n", len(entries)-historyRows)
			break
		}
		direction := "ENC"
		if e.Mode.IsDecrypt() {
			direction = "DEC"
		}
		fmt.Fprintf(&b, "  %s  %s  %-18s %q -> %q\n",
			e.Timestamp.Local().Format(time.TimeOnly),
			direction,
			fitText(e.MethodName, 18),
			fitText(e.Input, historyPreview),
			fitText(e.Output, historyPreview),
		)
	}
	return b.String()
}

func (m appModel) cmdLoadMethods() tea.Cmd {
	ctx := m.ctx
	svc := m.services.CipherService
	return func() tea.Msg {
		methods, err := svc.Methods(ctx)
		return methodsLoadedMsg{methods: methods, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		entries, err := svc.List(ctx)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdTransform(req models.TransformRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.CipherService
	return func() tea.Msg {
		result, err := svc.Transform(ctx, req)
		return transformDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.HistoryService
	return func() tea.Msg {
		return historyClearedMsg{err: svc.Clear(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
