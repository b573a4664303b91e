package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	charmlog "github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	strufinternal "github.com/nmoutschen/struf/internal/struf"
)

var Version = "dev"

var (
	bFlag       = flag.StringP("tags", "b", "", "comma-separated build tags")
	tFlag       = flag.BoolP("tests", "t", false, "include tests")
	oFlag       = flag.StringP("output", "o", "struf_gen.go", "output file name")
	cFlag       = flag.StringP("color", "c", "auto", "colorize (auto|always|never)")
	vFlag       = flag.BoolP("verbose", "v", false, "print debug messages")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func init() {
	strufinternal.Version = Version
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: struf [flags] [packages]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *versionFlag {
		fmt.Println("struf", Version)
		return
	}

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix: "struf",
		Level:  charmlog.InfoLevel,
	})
	if *vFlag {
		logger.SetLevel(charmlog.DebugLevel)
	}

	wd, err := os.Getwd()
	if err != nil {
		logger.Fatal(err)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		logger.Fatal("invalid --color value", "value", *cFlag)
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outs, err := strufinternal.Main(ctx, logger, wd, os.Environ(), *bFlag, *tFlag, *oFlag, patterns)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		stop()
		os.Exit(1)
	}

	// Write in a stable order
	paths := make([]string, 0, len(outs))
	for out := range outs {
		paths = append(paths, out)
	}
	slices.Sort(paths)

	for _, out := range paths {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			logger.Error("failed to write", "path", out, "err", err)
			stop()
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos  = regexp.MustCompile(`(?m)^[^\s:]+\.go:\d+:\d+:`)
	reHint = regexp.MustCompile(`\([^()]*\)$`)
)

// colorize adds ANSI color codes to the message. Positions are dimmed and
// hints at the end of lines are highlighted.
func colorize(message string) string {
	const (
		yellow = "\033[33m"
		dim    = "\033[2m"
		reset  = "\033[0m"
	)

	lines := strings.Split(message, "\n")
	for i, line := range lines {
		line = rePos.ReplaceAllStringFunc(line, func(s string) string {
			return dim + s + reset
		})
		line = reHint.ReplaceAllStringFunc(line, func(s string) string {
			return yellow + s + reset
		})
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
