package main

import (
	"context"

	"github.com/cghdev/userdesk/internal/client/cli"
	"github.com/cghdev/userdesk/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
