package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llamaup/llamaup/internal/ui/benchmarks"
)

// PhaseView is one workflow phase as displayed in the dashboard.
type PhaseView struct {
	Name   string
	Done   bool
	Active bool
	Took   time.Duration
	Err    error
}

// logTail is how many recent install lines the dashboard keeps on screen.
const logTail = 6

// Model is the Bubble Tea model for the provisioning dashboard.
type Model struct {
	InstanceName string
	Location     string

	Phases []PhaseView
	Log    []string
	Warns  []string

	// ETA
	EstimatedRemaining time.Duration
	PerformanceScale   float64
	StartTime          time.Time
	phaseStart         time.Time
	completed          map[string]time.Duration

	// Animation
	SpinnerFrame int

	// UI state
	Width     int
	Height    int
	Err       error
	Done      bool
	QuitEarly bool
}

// NewModel creates a dashboard model for the given workflow phases.
func NewModel(instanceName, location string, phaseNames []string) Model {
	phases := make([]PhaseView, len(phaseNames))
	for i, name := range phaseNames {
		phases[i] = PhaseView{Name: name}
	}
	return Model{
		InstanceName:     instanceName,
		Location:         location,
		Phases:           phases,
		StartTime:        time.Now(),
		PerformanceScale: 1.0,
		completed:        make(map[string]time.Duration),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.QuitEarly = !m.Done && m.Err == nil
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)
		if msg.Err != nil {
			m.Err = msg.Err
		}

	case LogMsg:
		m.Log = append(m.Log, msg.Line)
		if len(m.Log) > logTail {
			m.Log = m.Log[len(m.Log)-logTail:]
		}

	case WarnMsg:
		m.Warns = append(m.Warns, msg.Text)

	case TickMsg:
		m.SpinnerFrame++
		m.updateETA()
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		for i := range m.Phases {
			m.Phases[i].Active = false
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Name == msg.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Everything before the reported phase is done by construction.
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	switch {
	case msg.Err != nil:
		m.Phases[idx].Err = msg.Err
		m.Phases[idx].Active = false
	case msg.Done:
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
		m.Phases[idx].Took = msg.Took
		m.completed[msg.Name] = msg.Took
	default:
		m.Phases[idx].Active = true
		m.phaseStart = time.Now()
	}
}

func (m *Model) updateETA() {
	current := ""
	for _, phase := range m.Phases {
		if phase.Active {
			current = phase.Name
			break
		}
	}
	if current == "" {
		m.EstimatedRemaining = 0
		return
	}

	elapsed := time.Since(m.phaseStart)
	m.PerformanceScale = benchmarks.PerformanceScale(current, elapsed, m.completed)
	m.EstimatedRemaining = benchmarks.EstimateRemainingWithScale(current, elapsed, m.completed, m.PerformanceScale)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
