package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qnkhuat/blockterm/pkg"
	"github.com/qnkhuat/blockterm/pkg/config"
)

func main() {
	cfg, err := config.Load(config.GetEnv("BLOCKTERM_ENV", config.DefaultEnvFile))
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	var (
		binary  string
		logPath string
	)

	flag.StringVar(&cfg.SSHAddr, "addr", cfg.SSHAddr, "ssh listen address")
	flag.StringVar(&cfg.HostKeyFile, "host-key", cfg.HostKeyFile, "path to ssh host key")
	flag.StringVar(&binary, "binary", pkg.DefaultBinary, "path to the blockterm client")
	flag.StringVar(&logPath, "log", cfg.LogFile, "path to log file")
	flag.Parse()

	pkg.InitLog(logPath, "SERVER: ")
	if logPath == "" {
		log.SetOutput(os.Stderr)
	}
	log.Println("Server started")

	s := &pkg.Server{
		ListenAddress: cfg.SSHAddr,
		Binary:        binary,
		HostKeyFile:   cfg.HostKeyFile,
		Args:          flag.Args(),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil {
			log.Fatalf("failed to serve: %s", err)
		}
	case sig := <-sigc:
		log.Printf("received %s, shutting down", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Printf("failed to shut down: %s", err)
		}
	}
}
