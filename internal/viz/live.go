package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/chaosgen/internal/logistic"
)

const (
	graphWidth   = 72
	graphHeight  = 8
	window       = 120
	stepsPerTick = 2
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a coupled logistic map live, plotting the strided samples as
// they are produced. The transient phase runs up front so the view starts
// on the attractor.
type Model struct {
	params logistic.ParameterSet
	cfg    logistic.RunConfig

	x, y    float64
	sampled int
	histX   []float64
	histY   []float64
	paused  bool
	done    bool
}

func NewModel(params logistic.ParameterSet, cfg logistic.RunConfig) Model {
	x, y := params.X0, params.Y0
	for i := 0; i < cfg.NTransient; i++ {
		x, y = logistic.Step(x, y, params)
	}
	return Model{
		params: params,
		cfg:    cfg,
		x:      x,
		y:      y,
		histX:  []float64{x},
		histY:  []float64{y},
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case TickMsg:
		if m.paused || m.done {
			return m, tick()
		}
		for i := 0; i < stepsPerTick && !m.done; i++ {
			for k := 0; k < m.cfg.StepSize; k++ {
				m.x, m.y = logistic.Step(m.x, m.y, m.params)
			}
			m.histX = append(m.histX, m.x)
			m.histY = append(m.histY, m.y)
			m.sampled++
			if m.sampled >= m.cfg.NPoints {
				m.done = true
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("coupled logistic map"))
	b.WriteString("\n")

	b.WriteString(graphStyle.Render(plot(m.histX, "x")))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(plot(m.histY, "y")))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("params  "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("muX=%.3f muY=%.3f aXY=%.3f aYX=%.3f",
		m.params.MuX, m.params.MuY, m.params.AlphaXY, m.params.AlphaYX)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("samples "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d / %d", m.sampled, m.cfg.NPoints)))
	if m.paused {
		b.WriteString(valueStyle.Render("  [paused]"))
	}
	if m.done {
		b.WriteString(valueStyle.Render("  [done]"))
	}

	b.WriteString(helpStyle.Render("\nspace pause · q quit"))
	return b.String()
}

func plot(data []float64, caption string) string {
	if len(data) > window {
		data = data[len(data)-window:]
	}
	return asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(caption),
	)
}

// RunLive drives the live view until the run completes or the user quits.
func RunLive(params logistic.ParameterSet, cfg logistic.RunConfig) error {
	_, err := tea.NewProgram(NewModel(params, cfg)).Run()
	return err
}
