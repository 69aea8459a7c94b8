package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
	"golang.org/x/sync/errgroup"

	"common-numbers/intersection"
)

// Mode 决定并发任务失败时的处理方式
type Mode string

const (
	// ModeChecked 收集每个任务的 panic 与上报错误，Run 返回合并后的错误
	ModeChecked Mode = "checked"
	// ModeDetached 只等待任务结束，panic 由 go-zero 恢复并记录日志，不检查结果
	ModeDetached Mode = "detached"
)

var (
	ErrComparatorPanic = errors.New("comparator panicked")
	ErrUnknownMode     = errors.New("unknown run mode")
	// ErrNoResult 任务没有正常结束（detached 模式下 panic 之后的状态）
	ErrNoResult = errors.New("comparator produced no result")
)

// ParseMode 解析配置中的运行模式
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeChecked, ModeDetached:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Outcome 单个算法的运行结果
type Outcome struct {
	Label  string
	Result intersection.Result
	Err    error
}

// Runner 为每个算法克隆一份输入，各自在独立的 goroutine 中并发执行
type Runner struct {
	mode     Mode
	reporter Reporter
}

func NewRunner(mode Mode, reporter Reporter) (*Runner, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	return &Runner{mode: mode, reporter: reporter}, nil
}

// Run 并发执行 cmps 并等待全部结束。
// 每个算法结束后立即上报，上报顺序不确定；返回的 outcomes 与 cmps 顺序一致。
func (r *Runner) Run(ctx context.Context, a, b intersection.Sequence,
	cmps []intersection.Comparator) ([]Outcome, error) {
	outcomes := make([]Outcome, len(cmps))
	tasks := make([]func() error, len(cmps))

	for i, c := range cmps {
		outcomes[i] = Outcome{Label: c.Label, Err: ErrNoResult}
		// 副本的所有权转移给任务，任务之间没有共享的可变数据
		ca, cb := a.Clone(), b.Clone()
		tasks[i] = func() error {
			res := c.Run(ca, cb)
			o := Outcome{Label: c.Label, Result: res}
			outcomes[i] = o

			logx.WithContext(ctx).Infow("comparator finished",
				logx.Field("label", c.Label),
				logx.Field("count", res.Count),
				logx.Field("elapsed", res.Elapsed.String()))

			if err := r.reporter.Report(ctx, o); err != nil {
				return fmt.Errorf("report %s: %w", c.Label, err)
			}
			return nil
		}
	}

	if r.mode == ModeDetached {
		runDetached(ctx, tasks)
		return outcomes, nil
	}

	errs := runChecked(tasks)
	for i, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, ErrComparatorPanic) {
			err = fmt.Errorf("%s: %w", cmps[i].Label, err)
			outcomes[i].Err = err
			errs[i] = err
		}
		logx.WithContext(ctx).Errorf("checked task: %v", err)
	}
	return outcomes, errors.Join(errs...)
}

// runChecked 等待所有任务，收集全部错误而不是只保留第一个
func runChecked(tasks []func() error) []error {
	var g errgroup.Group
	// 每个任务只写自己的下标，Wait 之后再读
	errs := make([]error, len(tasks))

	for i, task := range tasks {
		g.Go(func() error {
			errs[i] = protect(task)
			return nil // 不返回错误，一个算法失败不影响其他算法
		})
	}

	g.Wait()
	return errs
}

// runDetached 与原始程序一致：只 join，不检查任务的结果
func runDetached(ctx context.Context, tasks []func() error) {
	rg := threading.NewRoutineGroup()
	for _, task := range tasks {
		rg.RunSafe(func() {
			if err := task(); err != nil {
				logx.WithContext(ctx).Errorf("detached task: %v", err)
			}
		})
	}
	rg.Wait()
}

func protect(task func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrComparatorPanic, p)
		}
	}()
	return task()
}
