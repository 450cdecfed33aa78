package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initialLineBuf is the starting scan buffer; it grows without limit for
// longer lines.
const initialLineBuf = 64 * 1024

// The loggers stay no-ops until initLogger runs, so matching is silent when
// called outside the CLI.
var (
	logger   = zap.NewNop()
	matchLog = logger.Named("matchLine")
	scanLog  = logger.Named("scanAndPrint")
)

func initLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "parsing log level")
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr), lvl)
	setLoggers(core)
	return nil
}

// setLoggers builds the package loggers on top of core once, so the per-line
// path never names a logger itself.
func setLoggers(core zapcore.Core) {
	logger = zap.New(core)
	matchLog = logger.Named("matchLine")
	scanLog = logger.Named("scanAndPrint")
}

// scanAndPrint reads reader line by line, applies pattern, writes matching
// lines to out (prefixed with name when addPrefix is set) and reports whether
// any line matched. The first compile error stops the scan.
func scanAndPrint(out io.Writer, name string, reader io.Reader, pattern string,
	addPrefix, quiet bool) (bool, error) {

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, initialLineBuf), math.MaxInt)
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		scanLog.Debug("scanning line", zap.String("source", name), zap.String("line", line))
		ok, err := matchLine(line, pattern)
		if err != nil {
			return found, err
		}
		if !ok {
			continue
		}
		found = true
		if quiet {
			continue
		}
		if addPrefix {
			_, err = fmt.Fprintf(out, "%s:%s\n", name, line)
		} else {
			_, err = fmt.Fprintln(out, line)
		}
		if err != nil {
			return found, errors.Wrapf(err, "writing match from %s", name)
		}
	}
	if err := scanner.Err(); err != nil {
		return found, errors.Wrapf(err, "reading %s", name)
	}
	return found, nil
}

// formatNodes renders a compiled sequence one element per entry, for logs
// and test failure output.
func formatNodes(nodes []node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = formatNode(n)
	}
	return out
}

func formatNode(n node) string {
	switch x := n.(type) {
	case *literalNode:
		return fmt.Sprintf("Literal(%q)", x.char)
	case *digitNode:
		return "Digit"
	case *alnumNode:
		return "Alnum"
	case *charClassNode:
		chars := make([]string, 0, len(x.set))
		for c := range x.set {
			chars = append(chars, string(c))
		}
		sort.Strings(chars)
		if x.negated {
			return fmt.Sprintf("NegatedCharGroup(%q)", strings.Join(chars, ""))
		}
		return fmt.Sprintf("CharGroup(%q)", strings.Join(chars, ""))
	case *startAnchorNode:
		return fmt.Sprintf("StartAnchor(%q)", x.char)
	case *endAnchorNode:
		return "EndAnchor(" + formatNode(x.child) + ")"
	case *repNode:
		return "OneOrMore(" + formatNode(x.child) + ")"
	default:
		return fmt.Sprintf("unknown(%T)", n)
	}
}
