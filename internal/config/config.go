package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 牌型浏览器配置
type Config struct {
	UI     UIConfig     `yaml:"ui"`
	Search SearchConfig `yaml:"search"`
}

// UIConfig 界面配置
type UIConfig struct {
	MaxResults int `yaml:"max_results"` // 结果列表最多展示的条目数
}

// SearchConfig 搜索配置
type SearchConfig struct {
	MaxRun int `yaml:"max_run"` // 连续类牌型搜索的最大长度
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.UI.MaxResults == 0 {
		cfg.UI.MaxResults = 30
	}
	if cfg.Search.MaxRun == 0 {
		cfg.Search.MaxRun = 12
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		UI: UIConfig{
			MaxResults: 30,
		},
		Search: SearchConfig{
			MaxRun: 12,
		},
	}
}
