/*
Package script runs line oriented query scripts against the structures of this module.

A script builds one structure at a time and then issues updates and queries on it; every
query writes one line of output. Tokens are separated by white space and '#' starts a
comment that runs to the end of the line.

	seg <sum|max|min|xor|gcd|lcm|modsum|modprod> v...
	lazy <add-sum|add-max|add-min|set-sum|set-max|set-min> v...
	fenwick v...
	uf n
	update i v | get i | range a b | apply a b v
	add i v | sum i | psum a b
	unite a b | find i | joint a b | count i | group i | groups
	inversions v...
*/
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrUnknown     = errors.New("unknown command")
	ErrNoStructure = errors.New("no structure for command")
	ErrArgs        = errors.New("wrong number of arguments")
	ErrModulus     = errors.New("modulus not configured")
)

// ExecError is a failed script line. Err is either a parse error or the panic value of
// the structure the line ran against.
type ExecError struct {
	Line int
	Cmd  string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Cmd, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Runner keeps the structure a script is working on between lines. It isn't safe for
// concurrent use.
type Runner struct {
	log *zap.Logger
	mod uint64

	tb   table
	lazy *lazyTable
	fw   *fenwick
	uf   *unionFind

	lines, queries int
}

type Option func(*Runner)

// WithLogger logs every executed command at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(u *Runner) {
		u.log = log
	}
}

// WithModulus sets the modulus of modsum and modprod trees.
func WithModulus(mod uint64) Option {
	return func(u *Runner) {
		u.mod = mod
	}
}

func NewRunner(opts ...Option) *Runner {
	u := &Runner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run executes r line by line, writing the query results to w. It stops at the first
// failed line, returning an *ExecError, or when ctx is done.
func (u *Runner) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 16<<20)
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		u.lines++
		out, err := u.Exec(u.lines, sc.Text())
		if err != nil {
			u.log.Error("script failed", zap.Int("line", u.lines), zap.Error(err))
			return err
		}
		for _, s := range out {
			if _, err = fmt.Fprintln(bw, s); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	u.log.Info("script done", zap.Int("lines", u.lines), zap.Int("queries", u.queries))
	return nil
}

// Exec runs a single line, numbered n for errors, and returns its output lines.
func (u *Runner) Exec(n int, line string) (out []string, err error) {
	args := fields(line)
	if len(args) == 0 {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("%v", r)
			}
			out, err = nil, &ExecError{n, args[0], e}
		}
	}()
	u.log.Debug("exec", zap.Int("line", n), zap.Strings("args", args))
	out, err = u.exec(args[0], args[1:])
	if err != nil {
		return nil, &ExecError{n, args[0], err}
	}
	u.queries += len(out)
	return out, nil
}

// fields splits a line on white space, dropping the comment.
func fields(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}
