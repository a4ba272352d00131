package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/color-picker/internal/model"
	"github.com/lunit-heesungyang/color-picker/internal/picker"
	"github.com/lunit-heesungyang/color-picker/internal/storage"
	"github.com/lunit-heesungyang/color-picker/internal/ui"
)

// copiedTimeout is how long the "copied" badge stays visible
const copiedTimeout = 2 * time.Second

const (
	hueRange      = 360
	percentRange  = 100
	fastStep      = 10
	presetsPerRow = 6
)

// Field identifies the control that has keyboard focus
type Field int

const (
	FieldHue Field = iota
	FieldSaturation
	FieldLightness
	FieldHex
	FieldRed
	FieldGreen
	FieldBlue
	FieldPresets
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldHue:
		return "Hue"
	case FieldSaturation:
		return "Saturation"
	case FieldLightness:
		return "Lightness"
	case FieldHex:
		return "HEX"
	case FieldRed:
		return "R"
	case FieldGreen:
		return "G"
	case FieldBlue:
		return "B"
	case FieldPresets:
		return "Presets"
	}
	return ""
}

// isText returns true for fields backed by a text input
func (f Field) isText() bool {
	return f >= FieldHex && f <= FieldBlue
}

// channel returns the RGB channel edited by an RGB field
func (f Field) channel() (model.Channel, int, bool) {
	switch f {
	case FieldRed:
		return model.ChannelRed, 0, true
	case FieldGreen:
		return model.ChannelGreen, 1, true
	case FieldBlue:
		return model.ChannelBlue, 2, true
	}
	return "", 0, false
}

// Options configures a new TUI model
type Options struct {
	// Config supplies the initial color and presets. Defaults are used if nil.
	Config *storage.Config
	// Storage is re-read whenever Changes fires
	Storage *storage.Storage
	Changes <-chan struct{}
	// Clipboard writes text to the system clipboard
	Clipboard func(string) error
	Logger    *log.Logger
}

// session is the app-level state fed by the engine's change notifications
type session struct {
	current string
	updates int
}

// Model is the main Bubble Tea model
type Model struct {
	// Core dependencies
	engine  *picker.Engine
	palette *model.Palette
	storage *storage.Storage
	changes <-chan struct{}
	copyFn  func(string) error
	logger  *log.Logger
	keys    KeyMap
	styles  Styles
	help    help.Model

	// App-level current color
	app *session

	// Window dimensions
	width  int
	height int

	// Focus state
	focus     Field
	presetIdx int

	// Sub-components
	hexInput  textinput.Model
	rgbInputs [3]textinput.Model

	// Copy state
	copied  string
	copyGen int

	statusMsg  string
	statusKind statusKind
}

// statusKind selects the style of the status line
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// New creates a new TUI model
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = storage.DefaultConfig()
	}
	palette, err := cfg.Palette()
	if err != nil {
		palette = model.DefaultPalette()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	app := &session{}
	engine := picker.New(cfg.Color, picker.WithListener(func(hex string) {
		app.current = hex
		app.updates++
		logger.Printf("color changed: %s", hex)
	}))
	app.current = engine.Canonical().Hex

	hex := textinput.New()
	hex.Prompt = ""
	hex.CharLimit = 7
	hex.Width = 7
	hex.Placeholder = "#000000"

	var rgb [3]textinput.Model
	for i, ch := range model.Channels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 5
		ti.Width = 3
		ti.Placeholder = ch.Label()
		rgb[i] = ti
	}

	m := Model{
		engine:    engine,
		palette:   palette,
		storage:   opts.Storage,
		changes:   opts.Changes,
		copyFn:    copyFn,
		logger:    logger,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		app:       app,
		focus:     FieldHue,
		hexInput:  hex,
		rgbInputs: rgb,
	}
	m.syncInputs()
	return m
}

// Engine returns the color state engine behind the model
func (m Model) Engine() *picker.Engine {
	return m.engine
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.listenForChanges()
}

// Sent when the config file changed on disk
type configChangedMsg struct{}

// Sent when the "copied" badge should disappear
type copyClearMsg struct {
	gen int
}

func (m Model) listenForChanges() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case copyClearMsg:
		if msg.gen == m.copyGen {
			m.copied = ""
		}
		return m, nil

	case configChangedMsg:
		m.reloadPresets()
		return m, m.listenForChanges()
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitText):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.CopyHex):
		return m.copyText("HEX", m.engine.Canonical().Hex)

	case key.Matches(msg, m.keys.CopyRGB):
		return m.copyText("RGB", m.engine.Canonical().RGBString())
	}

	if m.focus.isText() {
		return m.handleTextKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Inc):
		m.adjust(1)

	case key.Matches(msg, m.keys.Dec):
		m.adjust(-1)

	case key.Matches(msg, m.keys.IncFast):
		m.adjust(fastStep)

	case key.Matches(msg, m.keys.DecFast):
		m.adjust(-fastStep)

	case key.Matches(msg, m.keys.Apply):
		if m.focus == FieldPresets {
			m.applyPreset()
		}
	}

	return m, nil
}

func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.focus == FieldHex {
		before := m.hexInput.Value()
		m.hexInput, cmd = m.hexInput.Update(msg)
		value := m.hexInput.Value()
		if value == before {
			return m, cmd
		}

		switch m.engine.SetHex(value) {
		case picker.HexRejected:
			m.setInput(&m.hexInput, m.engine.HexText())
		case picker.HexApplied:
			m.syncInputs()
		}
		return m, cmd
	}

	ch, i, ok := m.focus.channel()
	if !ok {
		return m, nil
	}
	before := m.rgbInputs[i].Value()
	m.rgbInputs[i], cmd = m.rgbInputs[i].Update(msg)
	if value := m.rgbInputs[i].Value(); value != before {
		m.engine.SetRGBComponent(ch, value)
		m.syncInputs()
	}
	return m, cmd
}

func (m Model) setFocus(f Field) (Model, tea.Cmd) {
	m.focus = f
	m.hexInput.Blur()
	for i := range m.rgbInputs {
		m.rgbInputs[i].Blur()
	}

	switch {
	case f == FieldHex:
		m.hexInput.Focus()
	case f.isText():
		_, i, _ := f.channel()
		m.rgbInputs[i].Focus()
	default:
		return m, nil
	}
	return m, textinput.Blink
}

// adjust moves the focused slider or preset selection by delta
func (m *Model) adjust(delta int) {
	hsl := m.engine.Canonical().HSL

	switch m.focus {
	case FieldHue:
		if v := clamp(hsl.H+delta, 0, hueRange); v != hsl.H {
			m.engine.SetHue(v)
		}
	case FieldSaturation:
		if v := clamp(hsl.S+delta, 0, percentRange); v != hsl.S {
			m.engine.SetSaturation(v)
		}
	case FieldLightness:
		if v := clamp(hsl.L+delta, 0, percentRange); v != hsl.L {
			m.engine.SetLightness(v)
		}
	case FieldPresets:
		if m.palette.Len() == 0 {
			return
		}
		if delta == fastStep || delta == -fastStep {
			delta = delta / fastStep * presetsPerRow
		}
		m.presetIdx = clamp(m.presetIdx+delta, 0, m.palette.Len()-1)
		return
	default:
		return
	}
	m.syncInputs()
}

func (m *Model) applyPreset() {
	p := m.palette.Get(m.presetIdx)
	if p == nil {
		m.setStatus(statusError, "No presets configured")
		return
	}
	if err := m.engine.SetPreset(p.Hex); err != nil {
		m.setStatus(statusError, fmt.Sprintf("Error: %v", err))
		return
	}
	m.syncInputs()
	m.setStatus(statusInfo, fmt.Sprintf("Preset %s", p.Hex))
}

func (m Model) copyText(label, text string) (Model, tea.Cmd) {
	if err := m.copyFn(text); err != nil {
		m.logger.Printf("copy %s: %v", label, err)
		m.setStatus(statusError, fmt.Sprintf("Copy failed: %v", err))
		return m, nil
	}

	m.copied = label
	m.copyGen++
	m.setStatus(statusSuccess, fmt.Sprintf("Copied %s", text))

	gen := m.copyGen
	return m, tea.Tick(copiedTimeout, func(time.Time) tea.Msg {
		return copyClearMsg{gen: gen}
	})
}

func (m *Model) reloadPresets() {
	if m.storage == nil {
		return
	}
	cfg, err := m.storage.Load()
	if err != nil {
		m.logger.Printf("reload config: %v", err)
		m.setStatus(statusError, fmt.Sprintf("Config error: %v", err))
		return
	}
	palette, err := cfg.Palette()
	if err != nil {
		m.setStatus(statusError, fmt.Sprintf("Config error: %v", err))
		return
	}

	m.palette = palette
	if m.presetIdx >= palette.Len() {
		m.presetIdx = max(0, palette.Len()-1)
	}
	m.setStatus(statusSuccess, fmt.Sprintf("Reloaded %d presets", palette.Len()))
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.statusMsg = msg
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.statusKind {
	case statusSuccess:
		return m.styles.StatusBar.Foreground(m.styles.Copied.GetForeground())
	case statusError:
		return m.styles.StatusBar.Foreground(m.styles.Error.GetForeground())
	}
	return m.styles.StatusBar
}

// syncInputs rewrites the text inputs from the engine state
func (m *Model) syncInputs() {
	m.setInput(&m.hexInput, m.engine.HexText())

	rgb := m.engine.Canonical().RGB
	for i, ch := range model.Channels {
		m.setInput(&m.rgbInputs[i], strconv.Itoa(rgb.Get(ch)))
	}
}

func (m *Model) setInput(ti *textinput.Model, value string) {
	if ti.Value() == value {
		return
	}
	ti.SetValue(value)
	ti.CursorEnd()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	c := m.engine.Canonical()
	barWidth := clamp(m.width-24, 12, 60)

	header := m.styles.Header.Render(
		fmt.Sprintf("Color Picker  %s", strings.ToUpper(m.app.current)),
	)

	controls := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPreview(c, barWidth+14),
		"",
		m.renderSlider(FieldHue, fmt.Sprintf("%d°", c.HSL.H), c.HSL.H, hueRange, barWidth,
			func(v int) model.HSL { return model.HSL{H: v, S: 100, L: 50} }),
		m.renderSlider(FieldSaturation, fmt.Sprintf("%d%%", c.HSL.S), c.HSL.S, percentRange, barWidth,
			func(v int) model.HSL { return model.HSL{H: c.HSL.H, S: v, L: c.HSL.L} }),
		m.renderSlider(FieldLightness, fmt.Sprintf("%d%%", c.HSL.L), c.HSL.L, percentRange, barWidth,
			func(v int) model.HSL { return model.HSL{H: c.HSL.H, S: c.HSL.S, L: v} }),
		"",
		m.renderInputs(),
		"",
		m.renderPresets(),
	)

	footer := m.styles.Footer.Render(m.help.View(m.keys))
	status := m.statusStyle().Render(truncate(m.statusMsg, m.width-2))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.styles.Card.Render(controls),
		footer,
		status,
	))
}

func (m Model) renderPreview(c model.Canonical, width int) string {
	hex := strings.ToUpper(m.engine.HexText())
	if !m.engine.Synced() {
		hex += ui.IconPending
	}

	badge := ui.IconCopy + " ^x"
	if m.copied != "" {
		badge = fmt.Sprintf("%s %s copied!", ui.IconCopied, m.copied)
	}

	swatch := m.styles.Preview.
		Width(width).
		Height(3).
		Background(lipgloss.Color(c.Hex)).
		Foreground(labelColor(c.Hex)).
		Render(m.styles.PreviewLabel.Render(hex) + "  " + badge)

	info := m.styles.Value.Render(fmt.Sprintf("%s   %s", c.RGBString(), c.HSLString()))
	return lipgloss.JoinVertical(lipgloss.Left, swatch, info)
}

func (m Model) renderSlider(f Field, valueText string, value, maxValue, width int, at func(int) model.HSL) string {
	var bar strings.Builder
	for i := 0; i < width; i++ {
		rgb := model.HSLToRGB(at(i * maxValue / width))
		bar.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(model.RGBToHex(rgb))).
			Render(ui.SliderCell))
	}

	pos := 0
	if width > 1 {
		pos = clamp(value*(width-1)/maxValue, 0, width-1)
	}
	marker := strings.Repeat(" ", pos) + m.styles.Marker.Render(ui.IconMarker)

	label := m.renderLabel(f)
	indent := strings.Repeat(" ", lipgloss.Width(label))
	return lipgloss.JoinVertical(lipgloss.Left,
		label+bar.String()+" "+m.styles.Value.Render(valueText),
		indent+marker,
	)
}

func (m Model) renderLabel(f Field) string {
	if m.focus == f {
		return m.styles.FocusedLabel.Render(ui.IconFocus + " " + f.String())
	}
	return m.styles.Label.Render("  " + f.String())
}

func (m Model) renderInputs() string {
	hexBox := m.inputBox(FieldHex, m.hexInput.View())
	if !m.engine.Synced() {
		hexBox = lipgloss.JoinHorizontal(lipgloss.Center, hexBox, " ", m.styles.Partial.Render(ui.IconPending))
	}

	boxes := make([]string, 0, len(m.rgbInputs))
	for i := range m.rgbInputs {
		boxes = append(boxes, m.inputBox(FieldRed+Field(i), m.rgbInputs[i].View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, m.renderLabel(FieldHex), hexBox),
		lipgloss.JoinHorizontal(lipgloss.Center, m.styles.Label.Render("  RGB"), lipgloss.JoinHorizontal(lipgloss.Center, boxes...)),
	)
}

func (m Model) inputBox(f Field, content string) string {
	style := m.styles.InputBox
	if m.focus == f {
		style = m.styles.FocusedInputBox
	}
	return style.Render(content)
}

func (m Model) renderPresets() string {
	if m.palette.Len() == 0 {
		return m.renderLabel(FieldPresets) + m.styles.Value.Render("(none)")
	}

	current := m.engine.Canonical().Hex

	var rows []string
	var row strings.Builder
	for i, p := range m.palette.Presets {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(model.RGBToHex(p.RGB))).
			Render(ui.SwatchCell)
		switch {
		case m.focus == FieldPresets && i == m.presetIdx:
			row.WriteString("[" + swatch + "]")
		case strings.EqualFold(p.Hex, current):
			row.WriteString(m.styles.Copied.Render(ui.IconSelected) + swatch + " ")
		default:
			row.WriteString(" " + swatch + " ")
		}
		if (i+1)%presetsPerRow == 0 || i == m.palette.Len()-1 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}

	selected := ""
	if p := m.palette.Get(m.presetIdx); p != nil && m.focus == FieldPresets {
		selected = m.styles.Value.Render(" " + p.Hex)
	}
	rows[0] += selected

	indent := strings.Repeat(" ", lipgloss.Width(m.renderLabel(FieldPresets)))
	for i := 1; i < len(rows); i++ {
		rows[i] = indent + rows[i]
	}
	rows[0] = m.renderLabel(FieldPresets) + rows[0]
	return strings.Join(rows, "\n")
}

// Helper functions

// labelColor picks a readable text color for a swatch background
func labelColor(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ui.ColorOnDark
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return ui.ColorOnLight
	}
	return ui.ColorOnDark
}

// truncate shortens text to width using display width
func truncate(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
