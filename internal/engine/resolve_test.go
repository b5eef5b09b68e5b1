package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	flowerrors "github.com/wexinc/flow/internal/errors"
	"github.com/wexinc/flow/internal/logging"
)

// scriptedQuerier answers queries from a map and records the order asked.
type scriptedQuerier struct {
	answers map[string]string
	fail    map[string]error
	asked   []string
}

func (q *scriptedQuerier) Query(_ context.Context, name string) (string, error) {
	q.asked = append(q.asked, name)
	if err, ok := q.fail[name]; ok {
		return "", err
	}
	return q.answers[name], nil
}

// errReader fails every read.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestResolveQueriesInOrder(t *testing.T) {
	q := &scriptedQuerier{answers: map[string]string{"b": "B", "a": "A", "c": "C"}}
	r := NewResolver(NoInput(), q)

	got, err := r.Resolve(context.Background(), []string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if diff := cmp.Diff(Binding{"a": "A", "b": "B", "c": "C"}, got); diff != "" {
		t.Errorf("binding mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, q.asked); diff != "" {
		t.Errorf("query order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveBindsVerbatim(t *testing.T) {
	q := &scriptedQuerier{answers: map[string]string{"x": "  spaced \n"}}
	r := NewResolver(NoInput(), q)

	got, err := r.Resolve(context.Background(), []string{"x"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got["x"] != "  spaced \n" {
		t.Errorf("x = %q, want value bound verbatim", got["x"])
	}
}

func TestResolvePipedInput(t *testing.T) {
	tests := []struct {
		name      string
		piped     string
		wantInput string
		wantAsked []string
	}{
		{name: "single newline stripped", piped: "abc\n", wantInput: "abc", wantAsked: nil},
		{name: "crlf stripped", piped: "abc\r\n", wantInput: "abc", wantAsked: nil},
		{name: "only one newline stripped", piped: "abc\n\n", wantInput: "abc\n", wantAsked: nil},
		{name: "no newline", piped: "abc", wantInput: "abc", wantAsked: nil},
		{name: "inner whitespace kept", piped: "  a b  \n", wantInput: "  a b  ", wantAsked: nil},
		{name: "empty falls back to query", piped: "", wantInput: "typed", wantAsked: []string{"input"}},
		{name: "lone newline falls back to query", piped: "\n", wantInput: "typed", wantAsked: []string{"input"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &scriptedQuerier{answers: map[string]string{"input": "typed"}}
			r := NewResolver(NewInput(strings.NewReader(tt.piped)), q)

			got, err := r.Resolve(context.Background(), []string{"input"})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got["input"] != tt.wantInput {
				t.Errorf("input = %q, want %q", got["input"], tt.wantInput)
			}
			if diff := cmp.Diff(tt.wantAsked, q.asked); diff != "" {
				t.Errorf("queries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolvePipedInputOnlyForInputVariable(t *testing.T) {
	q := &scriptedQuerier{answers: map[string]string{"name": "Ann"}}
	piped := strings.NewReader("should not be read\n")
	r := NewResolver(NewInput(piped), q)

	got, err := r.Resolve(context.Background(), []string{"name"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got["name"] != "Ann" {
		t.Errorf("name = %q, want %q", got["name"], "Ann")
	}
	if piped.Len() == 0 {
		t.Error("piped input was consumed although no input variable exists")
	}
}

func TestResolveTerminalInputIsQueried(t *testing.T) {
	q := &scriptedQuerier{answers: map[string]string{"input": "typed"}}
	r := NewResolver(NoInput(), q)

	got, err := r.Resolve(context.Background(), []string{"input"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got["input"] != "typed" {
		t.Errorf("input = %q, want %q", got["input"], "typed")
	}
}

func TestResolvePipedReadErrorFallsBack(t *testing.T) {
	var logs bytes.Buffer
	q := &scriptedQuerier{answers: map[string]string{"input": "typed"}}
	r := NewResolver(NewInput(errReader{}), q)
	r.SetLogger(logging.NewWithWriter(&logs, &logging.Config{Level: logging.LevelDebug}))

	got, err := r.Resolve(context.Background(), []string{"input"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got["input"] != "typed" {
		t.Errorf("input = %q, want %q", got["input"], "typed")
	}
	if !strings.Contains(logs.String(), "failed to read piped input") {
		t.Errorf("expected read failure to be logged, got %q", logs.String())
	}
}

func TestResolveQueryFailure(t *testing.T) {
	cause := errors.New("interrupted")
	q := &scriptedQuerier{
		answers: map[string]string{"a": "A", "c": "C"},
		fail:    map[string]error{"b": cause},
	}
	r := NewResolver(NoInput(), q)

	got, err := r.Resolve(context.Background(), []string{"a", "b", "c"})
	if err == nil {
		t.Fatal("Resolve() expected error")
	}
	if got != nil {
		t.Errorf("Resolve() returned partial binding %v", got)
	}
	if !errors.Is(err, flowerrors.ErrResolution) {
		t.Errorf("error = %v, want ErrResolution", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error does not wrap cause: %v", err)
	}
	fe, ok := flowerrors.As(err)
	if !ok || fe.Details["variable"] != "b" {
		t.Errorf("error details = %v, want variable b", fe)
	}
	if diff := cmp.Diff([]string{"a", "b"}, q.asked); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := &scriptedQuerier{}
	r := NewResolver(NoInput(), q)

	_, err := r.Resolve(ctx, []string{"a"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if len(q.asked) != 0 {
		t.Errorf("queried %v after cancellation", q.asked)
	}
}

func TestResolveWithoutQuerier(t *testing.T) {
	r := NewResolver(NoInput(), nil)

	_, err := r.Resolve(context.Background(), []string{"a"})
	if !errors.Is(err, ErrNoQuerier) {
		t.Errorf("error = %v, want ErrNoQuerier", err)
	}

	got, err := r.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve(nil) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Resolve(nil) = %v, want empty binding", got)
	}
}

func TestQueryFunc(t *testing.T) {
	var q Querier = QueryFunc(func(_ context.Context, name string) (string, error) {
		return strings.ToUpper(name), nil
	})
	got, err := q.Query(context.Background(), "abc")
	if err != nil || got != "ABC" {
		t.Errorf("Query() = %q, %v; want %q, nil", got, err, "ABC")
	}
}

// cancellingReader cancels the context on its first read and then yields its
// content, like a writer killed by the same interrupt.
type cancellingReader struct {
	cancel context.CancelFunc
	r      *strings.Reader
}

func (c *cancellingReader) Read(p []byte) (int, error) {
	c.cancel()
	return c.r.Read(p)
}

// blockingReader never returns until release is closed.
type blockingReader struct {
	release chan struct{}
}

func (b blockingReader) Read([]byte) (int, error) {
	<-b.release
	return 0, io.EOF
}

func TestResolvePipedInputInterrupted(t *testing.T) {
	tests := []struct {
		name  string
		input func(cancel context.CancelFunc) (io.Reader, func())
	}{
		{
			name: "writer ends after interrupt",
			input: func(cancel context.CancelFunc) (io.Reader, func()) {
				return &cancellingReader{cancel: cancel, r: strings.NewReader("partial\n")}, func() {}
			},
		},
		{
			name: "read blocks after interrupt",
			input: func(cancel context.CancelFunc) (io.Reader, func()) {
				b := blockingReader{release: make(chan struct{})}
				time.AfterFunc(10*time.Millisecond, cancel)
				return b, func() { close(b.release) }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			reader, release := tt.input(cancel)
			defer release()

			q := &scriptedQuerier{answers: map[string]string{"input": "typed"}}
			r := NewResolver(NewInput(reader), q)

			got, err := r.Resolve(ctx, []string{"input", "name"})
			if got != nil {
				t.Errorf("Resolve() returned binding %v after interrupt", got)
			}
			if !errors.Is(err, flowerrors.ErrResolution) {
				t.Errorf("error = %v, want ErrResolution", err)
			}
			if !errors.Is(err, context.Canceled) {
				t.Errorf("error = %v, want context.Canceled", err)
			}
			if len(q.asked) != 0 {
				t.Errorf("queried %v after interrupt", q.asked)
			}
		})
	}
}
