// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

// DNS Zone Transfer Assessment
//
// Resolves the nameservers of a domain, attempts an AXFR with each of them,
// and renders the A and CNAME records of the first zone that is transferred.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/caffix/stringset"
	"github.com/fatih/color"
	"github.com/owasp-amass/zonetransfer/config"
	"github.com/owasp-amass/zonetransfer/enum"
	"github.com/owasp-amass/zonetransfer/format"
	"github.com/owasp-amass/zonetransfer/output"
	"github.com/owasp-amass/zonetransfer/resolvers"
)

const usageMsg = "<domain> [--output-format|-f {csv,stdout,graph,dot}] [options]"

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	// Colors used to ease the reading of program output
	g = color.New(color.FgHiGreen)
	r = color.New(color.FgHiRed)
)

var errMissingDomain = errors.New("a domain name must be provided")

type zoneArgs struct {
	Domain       string
	OutputFormat string
	Resolvers    *stringset.Set
	Port         int
	Timeout      int
	Options      struct {
		DemoMode bool
		Help     bool
		NoColor  bool
		Silent   bool
		Verbose  bool
		Version  bool
	}
	Filepaths struct {
		Directory string
		LogFile   string
	}
}

func defineArgumentFlags(zoneFlags *flag.FlagSet, args *zoneArgs) {
	zoneFlags.StringVar(&args.OutputFormat, "output-format", config.DefaultOutputFormat, "Output format ("+strings.Join(output.Formats, ", ")+")")
	zoneFlags.StringVar(&args.OutputFormat, "f", config.DefaultOutputFormat, "Output format (shorthand for -output-format)")
	zoneFlags.Var(args.Resolvers, "r", "IP addresses of DNS resolvers separated by commas (can be used multiple times)")
	zoneFlags.IntVar(&args.Port, "port", config.DefaultPort, "Port used to contact the nameservers for zone transfers")
	zoneFlags.IntVar(&args.Timeout, "timeout", int(config.DefaultTimeout/time.Second), "Number of seconds allowed for each DNS operation")
}

func defineOptionFlags(zoneFlags *flag.FlagSet, args *zoneArgs) {
	zoneFlags.BoolVar(&args.Options.Help, "h", false, "Show the program usage message")
	zoneFlags.BoolVar(&args.Options.Help, "help", false, "Show the program usage message")
	zoneFlags.BoolVar(&args.Options.Version, "version", false, "Print the version number of this binary")
	zoneFlags.BoolVar(&args.Options.DemoMode, "demo", false, "Censor output to make it suitable for demonstrations")
	zoneFlags.BoolVar(&args.Options.NoColor, "nocolor", false, "Disable colorized output")
	zoneFlags.BoolVar(&args.Options.Silent, "silent", false, "Disable the progress messages and the summary")
	zoneFlags.BoolVar(&args.Options.Verbose, "v", false, "Output status / debug / troubleshooting info")
}

func defineFilepathFlags(zoneFlags *flag.FlagSet, args *zoneArgs) {
	zoneFlags.StringVar(&args.Filepaths.Directory, "dir", "", "Path to the directory containing the output files")
	zoneFlags.StringVar(&args.Filepaths.LogFile, "log", "", "Path to the log file where debug messages will be written")
}

func newArgs() *zoneArgs {
	return &zoneArgs{Resolvers: stringset.New()}
}

// parseArgs accepts the flags both before and after the domain name.
func parseArgs(zoneFlags *flag.FlagSet, args *zoneArgs, clArgs []string) error {
	var positional []string

	for {
		if err := zoneFlags.Parse(clArgs); err != nil {
			return err
		}

		rest := zoneFlags.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		clArgs = rest[1:]
	}

	if args.Options.Help || args.Options.Version {
		return nil
	}

	switch len(positional) {
	case 0:
		return errMissingDomain
	case 1:
		args.Domain = positional[0]
	default:
		return fmt.Errorf("unexpected arguments: %s", strings.Join(positional[1:], " "))
	}
	return nil
}

// OverrideConfig implements the config.Updater interface.
func (z zoneArgs) OverrideConfig(conf *config.Config) error {
	conf.Domain = z.Domain
	if z.OutputFormat != "" {
		conf.OutputFormat = z.OutputFormat
	}
	if z.Filepaths.Directory != "" {
		conf.Dir = z.Filepaths.Directory
	}
	if z.Resolvers != nil && z.Resolvers.Len() > 0 {
		conf.SetResolvers(z.Resolvers.Slice()...)
	}
	conf.Port = z.Port
	conf.Timeout = time.Duration(z.Timeout) * time.Second
	conf.DemoMode = z.Options.DemoMode
	return nil
}

func commandUsage(msg string, zoneFlags *flag.FlagSet, errBuf *bytes.Buffer) {
	format.PrintBanner()
	g.Fprintf(color.Error, "Usage: %s %s\n\n", path.Base(os.Args[0]), msg)
	zoneFlags.PrintDefaults()
	g.Fprintln(color.Error, errBuf.String())
}

func selectLogger(cfg *config.Config, verbose bool, logfile string) (*slog.Logger, func(), error) {
	var writers []io.Writer
	closer := func() {}

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, closer, fmt.Errorf("failed to open the log file: %w", err)
		}

		writers = append(writers, f)
		closer = func() { _ = f.Close() }
	}
	if verbose {
		writers = append(writers, color.Error)
	}
	if len(writers) == 0 {
		return cfg.Log, closer, nil
	}
	return cfg.NewLogger(io.MultiWriter(writers...), slog.LevelDebug), closer, nil
}

func run(ctx context.Context, clArgs []string) int {
	args := newArgs()
	defer args.Resolvers.Close()

	zoneFlags := flag.NewFlagSet("zonetransfer", flag.ContinueOnError)
	defaultBuf := new(bytes.Buffer)
	zoneFlags.SetOutput(defaultBuf)

	defineArgumentFlags(zoneFlags, args)
	defineOptionFlags(zoneFlags, args)
	defineFilepathFlags(zoneFlags, args)

	if len(clArgs) < 1 {
		commandUsage(usageMsg, zoneFlags, defaultBuf)
		return exitUsage
	}
	if err := parseArgs(zoneFlags, args, clArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			commandUsage(usageMsg, zoneFlags, defaultBuf)
			return exitSuccess
		}
		r.Fprintf(color.Error, "%v\n", err)
		return exitUsage
	}
	if args.Options.Help {
		commandUsage(usageMsg, zoneFlags, defaultBuf)
		return exitSuccess
	}
	if args.Options.Version {
		fmt.Fprintf(color.Error, "%s\n", format.Version)
		return exitSuccess
	}
	if args.Options.NoColor {
		color.NoColor = true
	}
	cfg := config.NewConfig()
	// Override configuration with the command-line arguments
	if err := cfg.UpdateConfig(*args); err != nil {
		r.Fprintf(color.Error, "Configuration error: %v\n", err)
		return exitUsage
	}

	logger, closeLog, err := selectLogger(cfg, args.Options.Verbose, args.Filepaths.LogFile)
	if err != nil {
		r.Fprintf(color.Error, "%v\n", err)
		return exitFailure
	}
	defer closeLog()
	cfg.Log = logger

	if err := cfg.CheckSettings(); err != nil {
		r.Fprintf(color.Error, "Configuration error: %v\n", err)
		return exitUsage
	}

	renderer, err := output.NewRenderer(cfg.OutputFormat, cfg.Dir, color.Output)
	if err != nil {
		r.Fprintf(color.Error, "%v\n", err)
		return exitUsage
	}

	cfg.Log.Debug("starting the zone transfer assessment", "domain", cfg.Domain,
		"format", cfg.OutputFormat, "resolvers", cfg.Resolvers, "port", cfg.Port)
	client := resolvers.NewResolver(cfg.Resolvers, cfg.Port, cfg.Timeout, cfg.Log)

	// Silent runs only drop the progress lines and the summary
	progress := color.Error
	if args.Options.Silent {
		progress = io.Discard
	}

	res, err := enum.NewEnumeration(cfg, client, renderer, progress).Start(ctx)
	if err != nil {
		r.Fprintf(color.Error, "%v\n", err)
		return exitFailure
	}

	format.FprintSummary(progress, res.Server.Address.String(), res.Records, cfg.DemoMode)
	return exitSuccess
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
