package config

// Moderation 内容审核配置
type Moderation struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	ApiKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
	Timeout int    `json:"timeout" yaml:"timeout"` // 秒，0 用默认值
}

func ProvideModerationConfig(c *Config) *Moderation {
	if c.Moderation == nil {
		return &Moderation{}
	}
	return c.Moderation
}
