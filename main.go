package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/customeros/namesherpa/cli"
	"github.com/customeros/namesherpa/internal/config"
	"github.com/customeros/namesherpa/internal/logger"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		cli.PrintUsage(os.Stdout)
		return
	}

	if args[0] == "version" {
		cli.Version(os.Stdout)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(args, cfg, log); err != nil {
		log.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		log.Sync()
		os.Exit(1)
	}
}

func run(args []string, cfg *config.Config, log *zap.Logger) error {
	composer, err := cli.BuildComposer(cfg, log)
	if err != nil {
		return err
	}

	switch args[0] {
	case "generate":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: namesherpa generate <male|female> [style]")
		}
		style := ""
		if len(args) == 3 {
			style = args[2]
		}
		return cli.Generate(os.Stdout, composer, args[1], style)
	case "pronounce":
		if len(args) != 2 {
			return fmt.Errorf("usage: namesherpa pronounce <romaji>")
		}
		return cli.Pronounce(os.Stdout, args[1])
	case "styles":
		return cli.ListStyles(os.Stdout, composer)
	case "bulk":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.Bulk(ctx, composer, cfg, log, args[1:])
	case "interactive":
		return cli.Interactive(os.Stdin, os.Stdout, composer)
	default:
		cli.PrintUsage(os.Stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
