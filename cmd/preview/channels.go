package preview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zctpy/paiban/pkg/watch"
)

type changeMsg watch.Event

type errMsg struct{ err error }

// stoppedMsg is sent once the change stream is closed
type stoppedMsg struct{}

func waitForChange(ch <-chan watch.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return stoppedMsg{}
		}
		return changeMsg(e)
	}
}

func waitForErrors(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{<-ch}
	}
}

func startPoller(p *watch.Poller, m model) tea.Cmd {
	return func() tea.Msg {
		go func() {
			if err := p.Start(m.cfg.Interval); err != nil {
				m.cfg.Log.Error("poller: %v", err)
			}
		}()
		return nil
	}
}
