package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// notice is a transient message shown below the content card.
type notice struct {
	id   int
	kind noticeKind
	text string
}

type noticeExpiredMsg struct{ id int }

// setNotice replaces the current notice and schedules its expiry.
func (m *Model) setNotice(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	id := m.noticeSeq
	m.notice = notice{id: id, kind: kind, text: text}
	return tea.Tick(NoticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m Model) renderNotice() string {
	if m.notice.text == "" {
		return ""
	}
	styles := m.theme.Styles()
	style := styles.AccentText
	switch m.notice.kind {
	case noticeSuccess:
		style = styles.SuccessText
	case noticeError:
		style = styles.DangerText
	}
	return styles.Footer.Render(style.Render(m.notice.text))
}
