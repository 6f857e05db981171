package harness

import (
	"bytes"
	"net"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"
)

const serviceStartTimeout = 15 * time.Second

// Service is a punch time-tracking service running in the background
type Service struct {
	URL    string
	cmd    *exec.Cmd
	stderr bytes.Buffer
}

// StartService runs `punch serve` on a free local port and points env at it.
// The process is interrupted when the test completes.
func StartService(tb testing.TB, env *TestEnvironment) *Service {
	tb.Helper()

	addr := freeAddress(tb)
	svc := &Service{URL: "http://" + addr}

	svc.cmd = exec.Command(binaryPath, "serve", "--listen", addr)
	svc.cmd.Env = env.Environ()
	svc.cmd.Stderr = &svc.stderr
	if err := svc.cmd.Start(); err != nil {
		tb.Fatalf("Failed to start service: %v", err)
	}
	tb.Cleanup(svc.stop)

	if !waitReady(svc.URL) {
		tb.Fatalf("Service did not become ready on %s.\nStderr: %s", addr, svc.stderr.String())
	}

	env.SetEnv("PUNCH_SERVICE_URL", svc.URL)
	return svc
}

// Post sends an empty POST to path on the service
func (s *Service) Post(tb testing.TB, path string) int {
	tb.Helper()
	resp, err := http.Post(s.URL+path, "application/json", nil)
	if err != nil {
		tb.Fatalf("POST %s failed: %v", path, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func (s *Service) stop() {
	if s.cmd.Process == nil {
		return
	}
	_ = s.cmd.Process.Signal(os.Interrupt)

	done := make(chan struct{})
	go func() {
		_ = s.cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		_ = s.cmd.Process.Kill()
		<-done
	}
}

// freeAddress reserves a loopback port and releases it for the service to bind
func freeAddress(tb testing.TB) string {
	tb.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("Failed to reserve port: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()
	return addr
}

func waitReady(baseURL string) bool {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(serviceStartTimeout)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/TimeEntry/current?userId=probe")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
