package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/benbeisheim/chessrules-backend/internal/config"
	"github.com/benbeisheim/chessrules-backend/internal/server"
	"github.com/benbeisheim/chessrules-backend/internal/service"
)

var configFile = flag.String("f", "etc/server.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)
	app := server.NewApp(c, gameService)

	logx.Infof("Starting %s at %s...", c.Name, c.ListenOn)
	if err := app.Listen(c.ListenOn); err != nil {
		logx.Must(err)
	}
}
