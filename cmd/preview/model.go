package preview

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gookit/color"
	"github.com/zctpy/paiban/pkg/log"
	"github.com/zctpy/paiban/pkg/parser"
	"github.com/zctpy/paiban/pkg/render"
	"github.com/zctpy/paiban/pkg/theme"
	"github.com/zctpy/paiban/pkg/watch"
)

const logLimit = 8

type ProgramCfg struct {
	FS       fs.FS
	Name     string // document inside FS
	Out      string // path of the HTML file
	Themes   *theme.Catalog
	Theme    *theme.Theme
	Interval time.Duration
	Debounce time.Duration
	Log      log.Logger
}

type renderedMsg struct {
	stats render.Stats
	at    time.Time
	err   error
}

type model struct {
	cfg     ProgramCfg
	poller  *watch.Poller
	changes <-chan watch.Event
	stop    context.CancelFunc

	theme    int
	stats    render.Stats
	rendered time.Time
	lastErr  error
	logs     []string
	showLog  bool
	width    int
	help     help.Model
	quitting bool
}

func newModel(cfg ProgramCfg) model {
	if cfg.Log == nil {
		cfg.Log = log.NewEmptyLog()
	}
	if cfg.Themes == nil {
		cfg.Themes = theme.Builtin()
	}
	if cfg.Theme == nil {
		cfg.Theme = cfg.Themes.Default()
	}

	p := watch.NewPoller(cfg.FS)
	ctx, stop := context.WithCancel(context.Background())

	m := model{
		cfg:     cfg,
		poller:  p,
		changes: watch.Debounce(ctx, p.Events(), cfg.Debounce),
		stop:    stop,
		help:    help.New(),
	}
	for i, t := range cfg.Themes.Themes() {
		if t.ID == cfg.Theme.ID {
			m.theme = i
		}
	}
	return m
}

func (m model) currentTheme() *theme.Theme {
	return m.cfg.Themes.Themes()[m.theme]
}

// renderDoc renders the document with t and writes the HTML output
func renderDoc(cfg ProgramCfg, t *theme.Theme) tea.Cmd {
	return func() tea.Msg {
		data, err := fs.ReadFile(cfg.FS, cfg.Name)
		if err != nil {
			return renderedMsg{err: err, at: time.Now()}
		}
		out, err := render.New(t).HTML(string(data))
		if err != nil {
			return renderedMsg{err: err, at: time.Now()}
		}
		if err := os.WriteFile(cfg.Out, []byte(out), 0644); err != nil {
			return renderedMsg{err: err, at: time.Now()}
		}
		return renderedMsg{stats: render.Analyze(parser.Parse(string(data))), at: time.Now()}
	}
}

// Init optionally returns an initial command we should run.
func (m model) Init() tea.Cmd {
	if err := m.poller.Add(m.cfg.Name); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return tea.Batch(
		renderDoc(m.cfg, m.currentTheme()),
		startPoller(m.poller, m),
		waitForChange(m.changes),
		waitForErrors(m.poller.Errors()),
	)
}

func (m model) close() {
	m.poller.Close()
	m.stop()
}

func (m *model) addLog(format string, v ...any) {
	line := time.Now().Format("15:04:05 ") + fmt.Sprintf(format, v...)
	m.logs = append(m.logs, line)
	if len(m.logs) > logLimit*4 {
		m.logs = m.logs[len(m.logs)-logLimit:]
	}
	m.cfg.Log.Info(format, v...)
}

// Update is called when messages are received. The idea is that you inspect the
// message and send back an updated model accordingly. You can also return
// a command, which is a function that performs I/O and returns a message.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			m.close()
			return m, tea.Quit
		case key.Matches(msg, keys.Render):
			return m, renderDoc(m.cfg, m.currentTheme())
		case key.Matches(msg, keys.Theme):
			m.theme = (m.theme + 1) % len(m.cfg.Themes.Themes())
			m.addLog("theme %s", m.currentTheme().ID)
			return m, renderDoc(m.cfg, m.currentTheme())
		case key.Matches(msg, keys.Log):
			m.showLog = !m.showLog
			return m, nil
		}
	case changeMsg:
		m.addLog("%s %s", msg.Op, msg.Name)
		if msg.Op == watch.Remove {
			return m, waitForChange(m.changes)
		}
		return m, tea.Batch(renderDoc(m.cfg, m.currentTheme()), waitForChange(m.changes))
	case renderedMsg:
		m.lastErr = msg.err
		if msg.err != nil {
			m.addLog("render failed: %v", msg.err)
			m.cfg.Log.Error("render %s: %v", m.cfg.Name, msg.err)
			return m, nil
		}
		m.stats = msg.stats
		m.rendered = msg.at
		return m, nil
	case errMsg:
		m.lastErr = msg.err
		m.addLog("error: %v", msg.err)
		m.cfg.Log.Error("watch %s: %v", m.cfg.Name, msg.err)
		return m, waitForErrors(m.poller.Errors())
	case stoppedMsg:
		return m, nil
	}
	return m, nil
}

// View returns a string based on data in the model. That string which will be
// rendered to the terminal.
func (m model) View() string {
	if m.quitting {
		return ""
	}
	width := max(m.width, 40)

	result := fmt.Sprintf(" %s  Watch: %s\n", color.Green.Sprint("➜"), color.Cyan.Sprint(tail(m.cfg.Name, width/2)))
	result += fmt.Sprintf("    Output: %s\n", color.Cyan.Sprint(tail(m.cfg.Out, width-12)))
	t := m.currentTheme()
	result += fmt.Sprintf("    Theme: %s %s\n", color.HEX(t.PreviewColor).Sprint("■"), t.Name)

	if m.lastErr != nil {
		result += fmt.Sprintf(" %s  %s\n", color.Red.Sprint("✗"), m.lastErr)
	} else if !m.rendered.IsZero() {
		result += fmt.Sprintf(" %s  Rendered at %s: %s\n", color.Green.Sprint("✓"), m.rendered.Format("15:04:05"), printStats(m.stats))
	}

	if m.showLog {
		result += "\n" + printLog(m.logs, logLimit)
	}

	return result + "\n" + m.help.View(keys) + "\n"
}

func NewProgram(cfg ProgramCfg) *tea.Program {
	return tea.NewProgram(newModel(cfg))
}
