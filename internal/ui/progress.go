package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"typeset/internal/driver"
)

// rowState is where a file is in the run, as shown in the status column.
type rowState uint8

const (
	rowQueued rowState = iota
	rowReading
	rowFormatting
	rowWriting
	rowDone
	rowCached
	rowFailed
)

var rowLabels = [...]string{"queued", "reading", "formatting", "writing", "done", "cached", "error"}

// доля работы, которую показывает полоса прогресса для каждого состояния
var rowWeights = [...]float64{0, 0.1, 0.5, 0.9, 1, 1, 1}

var rowColors = [...]lipgloss.Color{"7", "6", "6", "6", "2", "8", "1"}

func (s rowState) String() string { return rowLabels[s] }
func (s rowState) final() bool    { return s >= rowDone }

type row struct {
	path    string
	state   rowState
	elapsed time.Duration
	err     string
}

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []row
	byPath  map[string]int
	width   int
	closed  bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model with one row per file and an overall bar.
// The model quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]row, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = row{path: f}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

// next ждёт следующее событие драйвера.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.next())
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case spinner.TickMsg:
		if !m.closed {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	r := &m.rows[i]
	r.state = stateOf(ev)
	if r.state.final() {
		r.elapsed = ev.Elapsed
	}
	if ev.Err != nil {
		r.err = ev.Err.Error()
	}

	sum := 0.0
	for _, r := range m.rows {
		sum += rowWeights[r.state]
	}
	return m.bar.SetPercent(sum / float64(len(m.rows)))
}

func stateOf(ev driver.Event) rowState {
	switch ev.Status {
	case driver.StatusDone:
		return rowDone
	case driver.StatusSkipped:
		return rowCached
	case driver.StatusError:
		return rowFailed
	case driver.StatusWorking:
		switch ev.Stage {
		case driver.StageFormat:
			return rowFormatting
		case driver.StageWrite:
			return rowWriting
		}
		return rowReading
	}
	return rowQueued
}

func (m *progressModel) count(match func(rowState) bool) int {
	n := 0
	for _, r := range m.rows {
		if match(r.state) {
			n++
		}
	}
	return n
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder

	header := fmt.Sprintf("%s (%d/%d)", m.title, m.count(rowState.final), len(m.rows))
	if m.closed {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	const statusWidth, timeWidth = 12, 9
	nameWidth := max(m.width-statusWidth-timeWidth-6, 20)
	for _, r := range m.rows {
		status := lipgloss.NewStyle().Foreground(rowColors[r.state]).Render(fmt.Sprintf("%*s", statusWidth, r.state))
		took := ""
		if r.state.final() && r.elapsed > 0 {
			took = r.elapsed.Round(time.Millisecond).String()
		}
		fmt.Fprintf(&b, "  %s %*s %s\n", status, timeWidth, took, truncate(r.path, nameWidth))
		if r.err != "" {
			fmt.Fprintf(&b, "  %*s %s\n", statusWidth+timeWidth+1, "", truncate(r.err, nameWidth))
		}
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	fmt.Fprintf(&b, "\n%d done, %d cached, %d failed\n",
		m.count(func(s rowState) bool { return s == rowDone }),
		m.count(func(s rowState) bool { return s == rowCached }),
		m.count(func(s rowState) bool { return s == rowFailed }))
	return b.String()
}

// truncate shortens value to width display columns, the "..." tail included.
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
