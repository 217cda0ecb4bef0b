package config

import (
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

type Config struct {
	Name         string `json:",default=chessrules"`
	ListenOn     string `json:",default=:3000"`
	AllowOrigins string `json:",default=http://localhost:5173"`
	WebSocket    struct {
		ReadBufferSize  int `json:",default=1024"`
		WriteBufferSize int `json:",default=1024"`
	}
	Log logx.LogConf
}

// Origins returns AllowOrigins as a list.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
