// Package main provides the CLI entry point for fileops.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/fileops/pkg/adapters/logger"
	"github.com/user/fileops/pkg/adapters/osfilesystem"
	"github.com/user/fileops/pkg/config"
	"github.com/user/fileops/pkg/fileops"
	"github.com/user/fileops/pkg/ports"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "fileops",
		Usage:   l10n.T("List, read, copy and convert files"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"C"},
				Usage:   l10n.T("Path to a YAML config file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Commands: []*cli.Command{
			lsCommand(),
			catCommand(),
			linesCommand(),
			jsonCommand(),
			cpCommand(),
			mvCommand(),
			writeCommand(),
			convertCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env assembles the library and configuration for a command invocation.
type env struct {
	ops *fileops.Ops
	cfg config.Config
	log ports.Logger
}

func newEnv(c *cli.Context) (*env, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	level := cfg.LogLevel
	if c.String("log-level") != "" {
		level = c.String("log-level")
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(level))
	}

	return &env{
		ops: fileops.New(osfilesystem.New(), log),
		cfg: cfg,
		log: log,
	}, nil
}

// encodingOrDefault resolves the effective encoding for a command.
func (e *env) encodingOrDefault(name string) string {
	if name != "" {
		return name
	}
	return e.cfg.DefaultEncoding
}

func encodingFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "encoding",
		Aliases: []string{"e"},
		Usage:   l10n.T("Character encoding of the file (default: utf-8)"),
	}
}

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     l10n.T("List files in a directory by prefix and suffix"),
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "prefix", Aliases: []string{"p"}, Usage: l10n.T("Base name prefix to match")},
			&cli.StringFlag{Name: "suffix", Aliases: []string{"s"}, Usage: l10n.T("Base name suffix to match")},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit(l10n.T("ls requires exactly one directory argument"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			paths, err := e.ops.ListFiles(c.Args().Get(0), c.String("prefix"), c.String("suffix"))
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		},
	}
}

func catCommand() *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     l10n.T("Print a file's content"),
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			encodingFlag(),
			&cli.BoolFlag{Name: "binary", Aliases: []string{"b"}, Usage: l10n.T("Write raw bytes without decoding")},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit(l10n.T("cat requires exactly one file argument"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			path := c.Args().Get(0)
			if c.Bool("binary") {
				data, err := e.ops.ReadBinaryFile(path)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(data)
				return err
			}
			text, err := e.ops.ReadFile(path, e.encodingOrDefault(c.String("encoding")))
			if err != nil {
				return err
			}
			fmt.Print(text)
			return nil
		},
	}
}

func linesCommand() *cli.Command {
	return &cli.Command{
		Name:      "lines",
		Usage:     l10n.T("Print a file's content split into lines"),
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{encodingFlag()},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit(l10n.T("lines requires exactly one file argument"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			lines, err := e.ops.ReadFileLines(c.Args().Get(0), e.encodingOrDefault(c.String("encoding")))
			if err != nil {
				return err
			}
			for i, line := range lines {
				fmt.Printf("%d: %s\n", i+1, line)
			}
			return nil
		},
	}
}

func jsonCommand() *cli.Command {
	return &cli.Command{
		Name:      "json",
		Usage:     l10n.T("Parse a JSON file and pretty-print it"),
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{encodingFlag()},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit(l10n.T("json requires exactly one file argument"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			var v interface{}
			if err := e.ops.ReadJSONFile(c.Args().Get(0), e.encodingOrDefault(c.String("encoding")), &v); err != nil {
				return err
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func cpCommand() *cli.Command {
	return &cli.Command{
		Name:      "cp",
		Usage:     l10n.T("Copy one or more files"),
		ArgsUsage: "<src>... <dest>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ignore-missing",
				Aliases: []string{"i"},
				Usage:   l10n.T("Skip missing source files instead of failing"),
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return cli.Exit(l10n.T("cp requires at least one source and a destination"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			args := c.Args().Slice()
			srcs, dest := args[:len(args)-1], args[len(args)-1]

			if len(srcs) == 1 {
				if err := e.ops.CopyFile(srcs[0], dest); err != nil {
					return err
				}
				e.log.Info("Copied %s", srcs[0])
				return nil
			}

			ignoreMissing := c.Bool("ignore-missing") || e.cfg.IgnoreMissing
			if err := e.ops.CopyFiles(srcs, dest, ignoreMissing); err != nil {
				return err
			}
			e.log.Info("Copied %d files to %s", len(srcs), dest)
			return nil
		},
	}
}

func mvCommand() *cli.Command {
	return &cli.Command{
		Name:      "mv",
		Usage:     l10n.T("Move a file"),
		ArgsUsage: "<src> <dest>",
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit(l10n.T("mv requires a source and a destination"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			src, dest := c.Args().Get(0), c.Args().Get(1)
			if err := e.ops.MoveFile(src, dest); err != nil {
				return err
			}
			e.log.Info("Moved %s to %s", src, dest)
			return nil
		},
	}
}

func writeCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     l10n.T("Write standard input to a file"),
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{encodingFlag()},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return cli.Exit(l10n.T("write requires exactly one file argument"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			path := c.Args().Get(0)
			if err := e.ops.WriteFile(path, string(input), e.encodingOrDefault(c.String("encoding"))); err != nil {
				return err
			}
			e.log.Info("Wrote %s", path)
			return nil
		},
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     l10n.T("Convert a file's character encoding"),
		ArgsUsage: "<src> <dest>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    l10n.T("Source file encoding"),
			},
			&cli.StringFlag{
				Name:     "to",
				Aliases:  []string{"t"},
				Required: true,
				Usage:    l10n.T("Destination file encoding"),
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cli.Exit(l10n.T("convert requires a source and a destination"), 2)
			}
			e, err := newEnv(c)
			if err != nil {
				return err
			}
			src, dest := c.Args().Get(0), c.Args().Get(1)
			if err := e.ops.ConvertFileCharset(src, dest, c.String("from"), c.String("to")); err != nil {
				return err
			}
			e.log.Info("Converted %s to %s", src, dest)
			return nil
		},
	}
}
