package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bytedance/sonic"
)

// Reporter 接收单个算法的结果，会被多个 goroutine 并发调用
type Reporter interface {
	Report(ctx context.Context, o Outcome) error
}

// TextReporter 每个结果输出一行 "<Label>: <count>"
type TextReporter struct {
	mu          sync.Mutex
	w           io.Writer
	showElapsed bool
}

func NewTextReporter(w io.Writer, showElapsed bool) *TextReporter {
	return &TextReporter{w: w, showElapsed: showElapsed}
}

func (r *TextReporter) Report(_ context.Context, o Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.showElapsed {
		_, err = fmt.Fprintf(r.w, "%s: %d (%s)\n", o.Label, o.Result.Count, o.Result.Elapsed)
	} else {
		_, err = fmt.Fprintf(r.w, "%s: %d\n", o.Label, o.Result.Count)
	}
	return err
}

// record 结果的 JSON 表示，标准输出和 kafka 消息共用
type record struct {
	Label     string `json:"label"`
	Count     int    `json:"count"`
	ElapsedNs int64  `json:"elapsed_ns"`
}

func encode(o Outcome) ([]byte, error) {
	return sonic.Marshal(record{
		Label:     o.Label,
		Count:     o.Result.Count,
		ElapsedNs: o.Result.Elapsed.Nanoseconds(),
	})
}

// JSONReporter 每个结果输出一行 JSON
type JSONReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (r *JSONReporter) Report(_ context.Context, o Outcome) error {
	b, err := encode(o)
	if err != nil {
		return fmt.Errorf("encode %s: %w", o.Label, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = r.w.Write(append(b, '\n'))
	return err
}

// Reporters 把结果依次交给每个 Reporter，所有错误合并返回
type Reporters []Reporter

func (rs Reporters) Report(ctx context.Context, o Outcome) error {
	var errs []error
	for _, r := range rs {
		if err := r.Report(ctx, o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
