package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ui"
)

// sessionUser picks the time-tracking user for an SSH session
func (s *Server) sessionUser(sshUser string) string {
	if s.useSSHUser && sshUser != "" {
		return sshUser
	}
	return s.userID
}

// teaHandler mounts a fresh clock widget for each SSH session.
// The widget is disposed when the session ends, however it ends.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
	userID := s.sessionUser(sess.User())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user_id", userID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	clock := ui.NewClockModel(s.tracker, userID, ui.ClockOptions{
		Keys:     s.keys,
		Subtitle: fmt.Sprintf("user %s via ssh", userID),
	})

	go endSession(sess.Context(), clock, sessionID, time.Now())

	return clock, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// endSession disposes the session's clock once the SSH session is gone
func endSession(ctx context.Context, clock *ui.ClockModel, sessionID string, startTime time.Time) {
	<-ctx.Done()
	clock.Dispose()
	logging.Logger.Info("SSH session ended",
		"session_id", sessionID,
		"duration", time.Since(startTime).String())
}
