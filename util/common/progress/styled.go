package progress

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mocksmith/mocksmith-cli/internal/style"
)

// StyledReporter implements Reporter with Charm-themed output. A bubbles
// spinner animates on stderr between Start and End; step messages print
// above it through the running program so they are not overdrawn.
type StyledReporter struct {
	mu      sync.Mutex
	program *tea.Program
	running bool
}

// NewStyledReporter creates a reporter with lipgloss-styled output.
func NewStyledReporter() *StyledReporter {
	return &StyledReporter{}
}

// NewAutoReporter returns a StyledReporter when stdout is a TTY and colours
// are enabled, otherwise falls back to the plain ConsoleReporter.
// Use this in new code instead of NewConsoleReporter() to automatically
// get the best output for the environment.
func NewAutoReporter() Reporter {
	if term.IsTerminal(int(os.Stdout.Fd())) && style.Enabled {
		return NewStyledReporter()
	}
	return NewConsoleReporter()
}

var (
	startStyle   = lipgloss.NewStyle().Bold(true).Foreground(style.Cyan)
	stepStyle    = lipgloss.NewStyle().Foreground(style.Dim).PaddingLeft(2)
	errorStyle   = lipgloss.NewStyle().Foreground(style.Red).Bold(true).PaddingLeft(2)
	successStyle = lipgloss.NewStyle().Foreground(style.Green).Bold(true).PaddingLeft(2)
)

// spinnerModel is the minimal bubbletea model behind the reporter: it only
// relays tick messages to the spinner and renders it next to the message.
type spinnerModel struct {
	spinner spinner.Model
	message string
}

func newSpinnerModel(message string) spinnerModel {
	return spinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(style.Cyan)),
		),
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	return m.spinner.View() + stepStyle.Render(m.message)
}

func (r *StyledReporter) Start(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Println(startStyle.Render("⚡ " + message + "..."))

	r.program = tea.NewProgram(
		newSpinnerModel(message),
		tea.WithOutput(os.Stderr),
	)
	r.running = true
	go func() {
		_, _ = r.program.Run()
	}()
}

func (r *StyledReporter) Step(message string) {
	r.println(stepStyle.Render("→ " + message + "..."))
}

func (r *StyledReporter) Error(message string) {
	r.println(errorStyle.Render("✗ " + message))
}

func (r *StyledReporter) Success(message string) {
	r.println(successStyle.Render("✓ " + message))
}

func (r *StyledReporter) End() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		r.program.Quit()
		r.running = false
	}
}

// println routes output through the running program so lines land above
// the spinner; before Start or after End it degrades to plain printing.
func (r *StyledReporter) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		r.program.Println(line)
		return
	}
	fmt.Println(line)
}
