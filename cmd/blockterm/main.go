package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/qnkhuat/blockterm/pkg"
	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/qnkhuat/blockterm/pkg/game"
	"github.com/qnkhuat/blockterm/pkg/gui"
	"github.com/qnkhuat/blockterm/pkg/sound"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load(config.GetEnv("BLOCKTERM_ENV", config.DefaultEnvFile))
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	var (
		nickname    string
		startMatrix string
		tickMs      int
		logDebug    bool
		logVerbose  bool
	)

	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "path to log file")
	flag.StringVar(&nickname, "nick", "", "nickname")
	flag.StringVar(&startMatrix, "matrix", "", "pre-fill board with cells: x,y,x,y,...")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "piece sequence seed, 0 for random")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "board width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "board height")
	flag.IntVar(&tickMs, "tick", int(cfg.Tick/time.Millisecond), "gravity interval in milliseconds")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "theme name")
	flag.StringVar(&cfg.ThemesFile, "themes", cfg.ThemesFile, "path to JSON themes file")
	flag.BoolVar(&cfg.Sound, "sound", cfg.Sound, "enable sound effects")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.BoolVar(&logVerbose, "verbose", false, "enable verbose logging")
	flag.Parse()

	cfg.Tick = time.Duration(tickMs) * time.Millisecond
	if logVerbose {
		cfg.LogLevel = game.LogVerbose
	} else if logDebug {
		cfg.LogLevel = game.LogDebug
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("failed to start blockterm: non-interactive terminals are not supported")
	}

	prefill, err := config.ParseCells(startMatrix)
	if err != nil {
		log.Fatal(err)
	}

	theme, err := gui.Lookup(cfg.Theme, cfg.ThemesFile)
	if err != nil {
		log.Fatalf("failed to load theme %q: %s", cfg.Theme, err)
	}

	pkg.InitLog(cfg.LogFile, "CLIENT: ")
	log.Println("New Client")

	var fx sound.Effects = sound.Nop{}
	if cfg.Sound {
		if sp, err := sound.NewSpeaker(); err != nil {
			log.Printf("sound disabled: %s", err)
		} else {
			fx = sp
		}
	}

	player := pkg.NewPlayer(nickname)
	cl, err := pkg.NewClient(cfg, theme, player, fx, prefill)
	if err != nil {
		log.Fatal(err)
	}

	defer func() {
		if r := recover(); r != nil {
			cl.App.Stop()

			log.Println(string(debug.Stack()))
			log.Fatalf("panic: %+v", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cl.Run(ctx); err != nil {
		log.Fatalf("failed to run application: %s", err)
	}

	printSummary(player)
}

func printSummary(p *pkg.Player) {
	if p.Games == 0 {
		return
	}

	bold := color.New(color.Bold)
	bold.Printf("%s", p.Name)
	color.New(color.FgHiBlack).Printf(" played %d game(s)\n", p.Games)
	color.Cyan("  last  %d\n", p.Last)
	color.Green("  best  %d\n", p.Best)
}
