package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/zeromicro/go-zero/core/logx"

	"common-numbers/bench"
	"common-numbers/config"
	"common-numbers/intersection"
)

var configFile = flag.String("f", "", "the config file, empty for defaults")

func main() {
	flag.Parse()

	if err := run(context.Background(), *configFile, os.Stdout); err != nil {
		logx.Error(err)
		logx.Close()
		os.Exit(1)
	}
	logx.Close()
}

func run(ctx context.Context, path string, stdout io.Writer) error {
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	logx.MustSetup(c.Log)
	// 标准输出只留给结果
	logx.SetWriter(logx.NewWriter(os.Stderr))

	if c.Gops.Enabled {
		if err := agent.Listen(agent.Options{Addr: c.Gops.Addr}); err != nil {
			return fmt.Errorf("start gops agent: %w", err)
		}
		defer agent.Close()
	}

	reporter, closeFn, err := newReporter(c, stdout)
	if err != nil {
		return err
	}
	defer closeFn()

	mode, err := bench.ParseMode(c.Mode)
	if err != nil {
		return err
	}
	runner, err := bench.NewRunner(mode, reporter)
	if err != nil {
		return err
	}

	a, b := intersection.Inputs()
	_, err = runner.Run(ctx, a, b, intersection.Standard())
	return err
}

func newReporter(c config.Config, stdout io.Writer) (bench.Reporter, func(), error) {
	var out bench.Reporter
	switch c.Output.Format {
	case "text":
		out = bench.NewTextReporter(stdout, c.Output.ShowElapsed)
	case "json":
		out = bench.NewJSONReporter(stdout)
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", c.Output.Format)
	}

	if !c.Kafka.Enabled() {
		return out, func() {}, nil
	}

	w := bench.NewKafkaWriter(c.Kafka.Brokers, c.Kafka.Topic)
	closeFn := func() {
		if err := w.Close(); err != nil {
			logx.Errorf("close kafka writer: %v", err)
		}
	}
	return bench.Reporters{out, bench.NewKafkaReporter(w)}, closeFn, nil
}
