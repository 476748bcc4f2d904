package main

import (
	"go.uber.org/fx"

	"github.com/bibegs/dramawallah-bot/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
