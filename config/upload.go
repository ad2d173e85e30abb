package config

// Upload 上传文件配置
type Upload struct {
	Dir     string `json:"dir" yaml:"dir"`           // 本地存储目录
	BaseURL string `json:"base_url" yaml:"base_url"` // 对外访问前缀
	MaxSize int64  `json:"max_size" yaml:"max_size"` // 单文件大小上限（字节）
}

func ProvideUploadConfig(c *Config) *Upload {
	if c.Upload == nil {
		return &Upload{Dir: "public/uploads", BaseURL: "/uploads", MaxSize: 10 << 20}
	}
	return c.Upload
}
