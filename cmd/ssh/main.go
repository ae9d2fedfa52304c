package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/tomz197/quizboss/internal/config"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultMaxSessions = 64
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Warn("Failed to load .env", "err", err)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	if lvl, err := log.ParseLevel(config.GetEnv("QUIZBOSS_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}
	log.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	games := newSessionLimiter(config.GetEnvInt("SSH_MAX_SESSIONS", defaultMaxSessions))

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("Failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("Server error", "err", err)
		}
	}()

	<-done
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("Shutdown error", "err", err)
	}
}

// sessionLimiter caps the number of concurrent fights. Every SSH session runs
// its own independent fight.
type sessionLimiter struct {
	mu     sync.Mutex
	active int
	limit  int // 0 means unlimited
}

func newSessionLimiter(limit int) *sessionLimiter {
	return &sessionLimiter{limit: limit}
}

func (l *sessionLimiter) acquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.limit > 0 && l.active >= l.limit {
		return false
	}
	l.active++
	return true
}

func (l *sessionLimiter) release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active--
}

// middleware handles SSH sessions and runs a fight for each one.
func (l *sessionLimiter) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		if !l.acquire() {
			fmt.Fprintln(sess, "The arena is full. Please try again in a few minutes.")
			return
		}
		defer l.release()

		id := uuid.NewString()
		logger := log.Default().With("session", id, "user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "cols", pty.Window.Width, "rows", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		reader := bufio.NewReader(sess)
		if err := loop.Run(reader, sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Logger:       logger,
		}); err != nil {
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
