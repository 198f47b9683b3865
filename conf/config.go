package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 配置加载（数据库、链节点、费率等）

type Db struct {
	DbName   string `yaml:"dbname"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

// RedisConfig is used to configure redis
type RedisConfig struct {
	Addr         string `yaml:"address"`
	Password     string `yaml:"password"`
	Db           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool-size"`
	MinIdleConns int    `yaml:"min-idle-conns"`
	IdleTimeout  int    `yaml:"idle-timeout"`
}

// ChainConfig 链节点配置，只做只读调用
type ChainConfig struct {
	RpcUrl         string `yaml:"rpc-url"`
	ChainId        int64  `yaml:"chain-id"`
	RequestTimeout int    `yaml:"request-timeout"` // 秒
}

// StrategyConfig 策略聚合相关参数
type StrategyConfig struct {
	// 饼图 top 持仓数量，其余合并为 Other
	TopHoldings int `yaml:"top-holdings"`
	// TVL 刷新间隔（秒），0 表示不从链上刷新
	TvlRefreshInterval int `yaml:"tvl-refresh-interval"`
}

type KafkaConfig struct {
	Broker string `yaml:"broker"`
	// 为空则不发布订单事件
	OrderTopic string `yaml:"order-topic"`
	// 成交回报的消费主题，为空则不消费
	FillTopic string `yaml:"fill-topic"`
	GroupId   string `yaml:"group-id"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`
	ExternalURL  string `yaml:"external_url"`

	Db       `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Redis    RedisConfig    `yaml:"redis"`
	Chain    ChainConfig    `yaml:"chain"`
	Strategy StrategyConfig `yaml:"strategy"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	if AppConfig.Strategy.TopHoldings == 0 {
		AppConfig.Strategy.TopHoldings = 5
	}
	return nil
}
