// Command lox runs a lox script, or starts an interactive session when no
// script is given.
//
//	lox [flags] [script]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lpahlavi/jlox/pkg/diag"
	"github.com/lpahlavi/jlox/pkg/driver"
	"github.com/lpahlavi/jlox/pkg/logger"
)

const cliToolVersion = "lox 0.1.0-dev"

type cliOptions struct {
	configPath string
	dumpTokens bool
	dumpAST    bool
	logLevel   string
	logFormat  string
	version    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }

	var opts cliOptions
	fs.StringVar(&opts.configPath, "config", "", "path to a lox config file (default: search upward for .lox.yml, lox.yml, lox.yaml, lox.toml)")
	fs.BoolVar(&opts.dumpTokens, "tokens", false, "print the token stream before running")
	fs.BoolVar(&opts.dumpAST, "ast", false, "print the parsed syntax tree before running")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return diag.ExitOK
		}
		return diag.ExitUsage
	}
	if opts.version {
		fmt.Fprintln(stdout, cliToolVersion)
		return diag.ExitOK
	}
	if fs.NArg() > 1 {
		printUsage(stderr, fs)
		return diag.ExitUsage
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "lox: %v\n", err)
		return diag.ExitConfigError
	}
	log, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "lox: %v\n", err)
		return diag.ExitConfigError
	}
	defer closeLog()
	if cfg.Path != "" {
		log.Debug("loaded config", "path", cfg.Path)
	}

	session := driver.NewSession(driver.SessionOptions{
		Stdout:       stdout,
		MaxCallDepth: cfg.MaxCallDepth,
		Logger:       log,
		DumpTokens:   opts.dumpTokens,
		DumpAST:      opts.dumpAST,
	})
	renderer := driver.NewRenderer(stderr, cfg.Color)

	if fs.NArg() == 1 {
		return runScript(fs.Arg(0), session, renderer, cfg, stderr)
	}
	return runRepl(stdin, stdout, stderr, session, renderer, cfg, log)
}

func loadConfig(opts cliOptions) (driver.Config, error) {
	var (
		cfg driver.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = driver.LoadConfig(opts.configPath)
	} else {
		cfg, err = driver.DiscoverConfig(".")
	}
	if err != nil {
		return driver.Config{}, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	return cfg, nil
}

func newLogger(cfg driver.Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	lc, err := cfg.LoggerConfig(stderr)
	if err != nil {
		return nil, nil, err
	}
	return logger.New(lc)
}

func runScript(path string, session *driver.Session, renderer *driver.Renderer, cfg driver.Config, stderr io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "lox: %v\n", err)
		return diag.ExitNoInput
	}
	res := session.Run(string(src))
	renderer.RenderAll(res.Diagnostics, string(src))
	return cfg.ExitCodes.Code(res.Diagnostics)
}
