package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/decker502/movirte/pkg/app"
	"github.com/decker502/movirte/pkg/embedded"
)

func main() {
	var (
		configPath = flag.String("config", "", "配置文件路径（默认使用内嵌的 data/movirte.yaml）")
		framesDir  = flag.String("frames", ".", "帧序列根目录，frames.dir 相对于该目录")
		verbose    = flag.Bool("verbose", false, "显示详细日志")
		watch      = flag.Bool("watch", false, "监听配置文件变化并热重载（需要 -config）")
		debug      = flag.Bool("debug", false, "显示调试信息（运行中按 F3 切换）")
		fullscreen = flag.Bool("fullscreen", false, "以全屏启动（运行中按 F11 切换）")
	)
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	player, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		FramesDir:  *framesDir,
		Watch:      *watch,
		Debug:      *debug,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	if err := player.Run(); err != nil {
		log.Fatal(err)
	}
}
