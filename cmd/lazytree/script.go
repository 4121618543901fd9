package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	lazytree "github.com/absolutelightning/go-lazy-search-tree"

	"github.com/pkg/errors"
)

var (
	errUnknownOp   = errors.New("unknown operation")
	errMissingArg  = errors.New("missing operand")
	errExtraArgs   = errors.New("unexpected operands")
	errNoSnapshot  = errors.New("no snapshot to restore")
	errUnknownKeys = errors.New("unknown key type")
)

var nullaryOps = map[string]bool{
	"min": true, "max": true, "gc": true, "clear": true, "size": true, "height": true,
	"soft": true, "hard": true, "dump": true, "clone": true, "restore": true,
}

// interpreter replays tree operations, one per line, against a single tree
// and writes each result to out.
type interpreter[E any] struct {
	tree     *lazytree.LazyTree[E]
	snapshot *lazytree.LazyTree[E]
	parse    func(string) (E, error)
	out      io.Writer
	log      *slog.Logger
}

func newInterpreter[E any](tree *lazytree.LazyTree[E], parse func(string) (E, error), out io.Writer, log *slog.Logger) *interpreter[E] {
	return &interpreter[E]{
		tree:  tree,
		parse: parse,
		out:   out,
		log:   log,
	}
}

// replayScript runs every operation in r against a fresh tree keyed by the
// given key type.
func replayScript(r io.Reader, keys string, out io.Writer, log *slog.Logger, dump bool) error {
	switch keys {
	case "int":
		return newInterpreter(lazytree.New[int](), strconv.Atoi, out, log).replay(r, dump)
	case "string":
		return newInterpreter(lazytree.New[string](), parseString, out, log).replay(r, dump)
	default:
		return errors.Wrapf(errUnknownKeys, "%q", keys)
	}
}

func parseString(s string) (string, error) {
	return s, nil
}

func (it *interpreter[E]) replay(r io.Reader, dump bool) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := it.exec(strings.Fields(line)); err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading script")
	}

	it.log.Info("script finished", "lines", lineNumber, "size", it.tree.Size(), "sizeHard", it.tree.SizeHard())
	if dump {
		return it.tree.Fprint(it.out)
	}
	return nil
}

func (it *interpreter[E]) exec(fields []string) error {
	op, args := fields[0], fields[1:]
	it.log.Debug("exec", "op", op, "args", args)

	switch op {
	case "insert", "remove", "remove-hard", "find", "contains":
		if len(args) == 0 {
			return errors.Wrap(errMissingArg, op)
		}
		for _, arg := range args {
			x, err := it.parse(arg)
			if err != nil {
				return errors.Wrapf(err, "%s %s", op, arg)
			}
			it.execValue(op, arg, x)
		}
		return nil
	}

	if !nullaryOps[op] {
		return errors.Wrap(errUnknownOp, op)
	}
	if len(args) != 0 {
		return errors.Wrapf(errExtraArgs, "%s %s", op, strings.Join(args, " "))
	}

	switch op {
	case "min":
		it.printf("min: %s\n", it.result(it.tree.FindMin()))
	case "max":
		it.printf("max: %s\n", it.result(it.tree.FindMax()))
	case "gc":
		before := it.tree.SizeHard()
		it.tree.CollectGarbage()
		reclaimed := before - it.tree.SizeHard()
		it.log.Info("collected garbage", "reclaimed", reclaimed, "sizeHard", it.tree.SizeHard())
		it.printf("gc: reclaimed %d\n", reclaimed)
	case "clear":
		it.tree.Clear()
		it.printf("clear\n")
	case "size":
		it.printf("size: %d hard: %d\n", it.tree.Size(), it.tree.SizeHard())
	case "height":
		it.printf("height: %d\n", it.tree.Height())
	case "soft":
		it.printf("soft: %s\n", it.visit(it.tree.TraverseSoft))
	case "hard":
		it.printf("hard: %s\n", it.visit(it.tree.TraverseHard))
	case "dump":
		return it.tree.Fprint(it.out)
	case "clone":
		it.snapshot = it.tree.Clone()
		it.printf("clone: snapshot of %d values\n", it.snapshot.Size())
	case "restore":
		if it.snapshot == nil {
			return errNoSnapshot
		}
		it.tree = it.snapshot.Clone()
		it.printf("restore: %d values\n", it.tree.Size())
	}
	return nil
}

func (it *interpreter[E]) execValue(op, arg string, x E) {
	switch op {
	case "insert":
		it.printf("insert %s: %t\n", arg, it.tree.Insert(x))
	case "remove":
		it.printf("remove %s: %t\n", arg, it.tree.Remove(x))
	case "remove-hard":
		it.printf("remove-hard %s: %t\n", arg, it.tree.RemoveHard(x))
	case "find":
		it.printf("find %s: %s\n", arg, it.result(it.tree.Find(x)))
	case "contains":
		it.printf("contains %s: %t\n", arg, it.tree.Contains(x))
	}
}

func (it *interpreter[E]) result(v E, err error) string {
	switch {
	case errors.Is(err, lazytree.ErrNotFound):
		return "(not found)"
	case errors.Is(err, lazytree.ErrEmptyTree):
		return "(empty)"
	}
	return fmt.Sprint(v)
}

func (it *interpreter[E]) visit(traverse func(lazytree.VisitFn[E])) string {
	var buf bytes.Buffer
	traverse(lazytree.PrintVisitor[E](&buf))
	return strings.TrimSuffix(buf.String(), " ")
}

func (it *interpreter[E]) printf(format string, a ...any) {
	fmt.Fprintf(it.out, format, a...)
}
