package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	DefaultBinary     = "blockterm"
)

var ErrNoListenAddress = errors.New("server: listen address must be specified")

// Server hosts the terminal client over SSH. Every session with a PTY runs
// its own client process.
type Server struct {
	ListenAddress string
	Binary        string
	HostKeyFile   string
	IdleTimeout   time.Duration

	// Args are passed to every client process before the nickname flag.
	Args []string

	mu     sync.Mutex
	server *ssh.Server
}

func setWinsize(f *os.File, w, h int) error {
	return pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
}

// CommandArgs is the client command line for an SSH user.
func (s *Server) CommandArgs(user string) []string {
	args := append([]string{}, s.Args...)
	return append(args, "-nick", NicknameOrRandom(user))
}

func (s *Server) sshHandle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	args := s.CommandArgs(sess.User())
	cmd := exec.CommandContext(cmdCtx, s.Binary, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	log.Printf("session from %s as %s: %s %v", sess.RemoteAddr(), sess.User(), s.Binary, args)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := setWinsize(f, win.Width, win.Height); err != nil {
				log.Printf("failed to resize pty: %v", err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	status := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		}
		log.Printf("session of %s ended: %v", sess.User(), err)
	}

	sess.Exit(status)
}

func (s *Server) newSSHServer() (*ssh.Server, error) {
	if s.ListenAddress == "" {
		return nil, ErrNoListenAddress
	}
	if s.Binary == "" {
		s.Binary = DefaultBinary
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = ServerIdleTimeout
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.sshHandle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	// Without a key file the server generates a key per run.
	if s.HostKeyFile != "" {
		if _, err := os.Stat(s.HostKeyFile); err == nil {
			if err := server.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
				return nil, fmt.Errorf("server: host key: %w", err)
			}
		} else {
			log.Printf("host key %s not found, using a generated key", s.HostKeyFile)
		}
	}

	return server, nil
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	server, err := s.newSSHServer()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.server = server
	s.mu.Unlock()

	log.Printf("listening for ssh on %s, running %s", s.ListenAddress, s.Binary)
	err = server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	if server == nil {
		return nil
	}

	return server.Shutdown(ctx)
}
