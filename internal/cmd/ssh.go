package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/ports"
	"github.com/renato0307/punch/internal/server"
	"github.com/renato0307/punch/internal/ui"
)

// SSHCmd serves the clock TUI over SSH, one widget per session
type SSHCmd struct {
	AuthorizedKeys string `help:"authorized_keys file of accepted client keys (default: ~/.ssh/authorized_keys)"`
	Host           string `help:"Host to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
	UseSSHUser     bool   `help:"Clock in as the SSH user name instead of --user" name:"use-ssh-user"`
}

// newServer applies settings.json and builds the SSH server clocking through tracker
func (s *SSHCmd) newServer(cli *CLI, tracker ports.TimeTracker) (*server.Server, error) {
	if s.Host == "" {
		s.Host = config.DefaultSSHHost
	}
	if s.Port == "" {
		s.Port = config.DefaultSSHPort
	}
	if cli.settings != nil {
		if s.Host == config.DefaultSSHHost && cli.settings.SSHHost != "" {
			s.Host = cli.settings.SSHHost
		}
		if s.Port == config.DefaultSSHPort && cli.settings.SSHPort != "" {
			s.Port = cli.settings.SSHPort
		}
	}

	keys, err := cli.keyBindings(ui.GetDefaultKeyBindings())
	if err != nil {
		return nil, err
	}

	return server.NewServer(server.Options{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		Host:               s.Host,
		Keys:               keys,
		Port:               s.Port,
		Tracker:            tracker,
		UserID:             cli.User,
		UseSSHUser:         s.UseSSHUser,
	})
}

// Run executes the ssh command
func (s *SSHCmd) Run(cli *CLI) error {
	srv, err := s.newServer(cli, cli.Container.Client)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cli.out(), "SSH server listening on %s\n", srv.Address())
	return srv.Serve(ctx, nil)
}
