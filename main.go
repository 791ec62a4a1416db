package main

import (
	_ "github.com/gogf/gf/contrib/drivers/sqlite/v2"

	_ "media-clip-service/internal/packed"

	"github.com/gogf/gf/v2/os/gctx"

	"media-clip-service/internal/cmd"
)

func main() {
	cmd.Main.Run(gctx.GetInitCtx())
}
