package config

import "time"

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int    `json:"access_expire" yaml:"access_expire"`   // 秒
	RefreshExpire int    `json:"refresh_expire" yaml:"refresh_expire"` // 秒
}

func (j *Jwt) AccessTTL() time.Duration {
	return time.Duration(j.AccessExpire) * time.Second
}

func (j *Jwt) RefreshTTL() time.Duration {
	return time.Duration(j.RefreshExpire) * time.Second
}
