package main

import (
	"context"

	"policerecords/internal/config"
	"policerecords/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app := server.NewApp(cfg)
	app.Run(ctx)
}
