package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
)

const shutdownTimeout = 30 * time.Second

// Options configures the SSH server
type Options struct {
	AuthorizedKeysPath string // defaults to ~/.ssh/authorized_keys
	Host               string
	HostKeyDir         string // defaults to $PUNCH_HOME/ssh
	Keys               config.KeyBindingsConfig
	Port               string
	Tracker            ports.TimeTracker
	UserID             string // used when UseSSHUser is false or the SSH user is empty
	UseSSHUser         bool
}

// Server serves the clock widget over SSH
type Server struct {
	address            string
	authorizedKeysPath string
	keys               config.KeyBindingsConfig
	tracker            ports.TimeTracker
	useSSHUser         bool
	userID             string
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options) (*Server, error) {
	if opts.Tracker == nil {
		return nil, errors.New("time tracker is required")
	}

	hostKeyDir := opts.HostKeyDir
	if hostKeyDir == "" {
		hostKeyDir = config.GetSSHDir()
	}
	if err := os.MkdirAll(hostKeyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	authorizedKeysPath := opts.AuthorizedKeysPath
	if authorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	s := &Server{
		address:            net.JoinHostPort(opts.Host, opts.Port),
		authorizedKeysPath: authorizedKeysPath,
		keys:               opts.Keys,
		tracker:            opts.Tracker,
		useSSHUser:         opts.UseSSHUser,
		userID:             opts.UserID,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(filepath.Join(hostKeyDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return s.address
}

// Serve accepts SSH connections on ln until ctx is canceled.
// A nil ln listens on the configured address.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", s.address)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", s.address, err)
		}
	}

	logging.Logger.Info("Starting SSH server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
