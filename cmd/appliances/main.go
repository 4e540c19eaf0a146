package main

import (
	"github.com/larsks/appliances/internal/app"
	"github.com/larsks/appliances/internal/cli"
)

func main() {
	cli.StandardMain(
		func() cli.Configurable { return app.NewConfig() },
		app.NewHandler(nil),
	)
}
