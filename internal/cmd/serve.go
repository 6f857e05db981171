package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/punch/internal/adapters/timetracker"
	"github.com/renato0307/punch/internal/api"
	"github.com/renato0307/punch/internal/config"
	"github.com/renato0307/punch/internal/logging"
	"github.com/renato0307/punch/internal/ports"
	"github.com/renato0307/punch/internal/version"
)

// ServeCmd runs the time-tracking HTTP service backed by sqlite
type ServeCmd struct {
	DB        string `help:"Path of the timesheet database (default: $PUNCH_HOME/timesheet.db)"`
	Listen    string `help:"Address to listen on" default:"127.0.0.1:8080" env:"PUNCH_LISTEN_ADDRESS"`
	RateLimit int    `help:"Requests per minute allowed per client IP" default:"120"`
	WithSSH   bool   `help:"Also serve the clock over SSH using ssh_host and ssh_port from settings.json" name:"with-ssh"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if s.Listen == config.DefaultListenAddress && !hasEnv("PUNCH_LISTEN_ADDRESS") && cli.settings.ListenAddress != "" {
			s.Listen = cli.settings.ListenAddress
		}
		if s.DB == "" && cli.settings.DBPath != "" {
			s.DB = cli.settings.DBPath
		}
	}
	if s.DB == "" {
		s.DB = config.GetDBPath()
	}

	timesheet, err := cli.Container.OpenTimesheet(config.ExpandPath(s.DB))
	if err != nil {
		return fmt.Errorf("failed to open timesheet: %w", err)
	}

	router := api.NewRouter(timesheet, api.RouterConfig{
		RateLimit: api.RateLimitConfig{
			RequestLimit: s.RateLimit,
			WindowSize:   time.Minute,
		},
	})

	ln, err := net.Listen("tcp", s.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Listen, err)
	}
	fmt.Fprintf(cli.out(), "Time-tracking service listening on http://%s\n", ln.Addr().String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Serve(gctx, ln, router)
	})

	if s.WithSSH {
		tracker, err := s.sshTracker(cli, ln.Addr())
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}

		sshCmd := SSHCmd{}
		srv, err := sshCmd.newServer(cli, tracker)
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		fmt.Fprintf(cli.out(), "Clock served over SSH on %s\n", srv.Address())
		g.Go(func() error {
			return srv.Serve(gctx, nil)
		})
	}

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Service stopped with error", "error", err)
		return err
	}
	return nil
}

// sshTracker is the client SSH clocks use to reach this service.
// It targets the listener, not the configured service URL.
func (s *ServeCmd) sshTracker(cli *CLI, addr net.Addr) (ports.TimeTracker, error) {
	return timetracker.NewClient(listenerURL(addr), timetracker.Options{
		Timeout:   time.Duration(cli.RequestTimeout) * time.Second,
		UserAgent: "punch/" + version.Version,
	})
}

// listenerURL is the base URL for reaching a listener from this host.
// Wildcard addresses are dialed on loopback.
func listenerURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		if ip.To4() != nil {
			host = "127.0.0.1"
		} else {
			host = "::1"
		}
	}
	return "http://" + net.JoinHostPort(host, port)
}
