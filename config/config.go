package config

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

/*
配置只影响输出与运行方式，输入规模固定为 intersection.SizeA / SizeB，不可配置。

优先级：配置文件 > 结构体 tag 中的默认值。
不指定配置文件时不读取任何文件和环境变量。
*/

// Config 应用配置
type Config struct {
	Log    logx.LogConf
	Mode   string `json:",default=checked,options=checked|detached"`
	Output OutputConf
	Gops   GopsConf
	Kafka  KafkaConf
}

// OutputConf 标准输出格式
type OutputConf struct {
	Format      string `json:",default=text,options=text|json"`
	ShowElapsed bool   `json:",default=false"`
}

// GopsConf gops 诊断 agent
type GopsConf struct {
	Enabled bool   `json:",default=false"`
	Addr    string `json:",optional"`
}

// KafkaConf 配置了 Brokers 时把每个算法的结果发布到 Topic
type KafkaConf struct {
	Brokers []string `json:",optional"`
	Topic   string   `json:",default=common-numbers"`
}

// Enabled 是否需要发布到 kafka
func (c KafkaConf) Enabled() bool {
	return len(c.Brokers) > 0
}

// Load 读取配置；path 为空时只填充默认值
func Load(path string) (Config, error) {
	var c Config
	if path == "" {
		if err := conf.FillDefault(&c); err != nil {
			return Config{}, fmt.Errorf("fill default config: %w", err)
		}
		return c, nil
	}

	if err := conf.Load(path, &c); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}
