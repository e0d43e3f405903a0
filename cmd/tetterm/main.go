package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/qnkhuat/tetterm/pkg"
	"github.com/qnkhuat/tetterm/pkg/game"
	"github.com/qnkhuat/tetterm/pkg/gui"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

var rootCmd = &cobra.Command{
	Use:           "tetterm",
	Short:         "Falling blocks in your terminal",
	Long:          "Falling blocks in your terminal.\n\n" + controls(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := pkg.Load(cmd.Flags(), configPath)
		if err != nil {
			return err
		}

		return play(cfg)
	},
}

func init() {
	rootCmd.Flags().AddFlagSet(pkg.Flags("tetterm"))
}

func controls() string {
	var buf bytes.Buffer
	gui.PrintControls(&buf)

	return buf.String()
}

func play(cfg *pkg.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logger, logFile, err := pkg.InitLog(cfg.Log.Path, "TETTERM", cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger = logger.With("game", uuid.New().String()[:8])

	g, err := game.New(cfg.Game(), game.WithLogger(logger))
	if err != nil {
		return err
	}

	nick := pkg.Nickname(cfg.Nick)
	logger.Info("new game", "nick", nick, "seed", g.Seed())

	session := gui.NewSession(g, gui.Config{
		Nick:   nick,
		Tick:   cfg.Tick,
		Theme:  gui.ThemeBasic,
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() { // Down when receive killed signal
		select {
		case sig := <-sigc:
			logger.Info("received signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := session.Run(ctx); err != nil {
		logger.Error("session ended", "err", err)
		return err
	}

	logger.Info("session ended", "score", g.Score(), "lines", g.Lines(), "level", g.Level())
	printSummary(g, session)

	return nil
}

func printSummary(g *game.Game, session *gui.Session) {
	label := color.New(color.FgCyan)
	value := color.New(color.Bold)

	label.Print("Score  ")
	value.Println(g.Score())
	label.Print("Level  ")
	value.Println(g.Level())
	label.Print("Lines  ")
	value.Println(g.Lines())
	label.Print("Pieces ")
	value.Println(g.Pieces())
	label.Print("Time   ")
	value.Println(pkg.FormatDuration(session.Played()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tetterm: %v\n", err)
		os.Exit(1)
	}
}
