// genframes 生成校准用帧序列
//
// 每帧带有帧号二维码和文字，用于检查滚动映射、插值和 cover 裁剪。
// 文件名与播放器配置中的帧序列规则一致：
//
//	go run ./cmd/genframes -out . -count 120
//	go run . -frames . -config my.yaml
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/movirte/pkg/config"
)

var (
	// 命令行参数
	outDir     = flag.String("out", ".", "输出根目录，帧写入 <out>/<frames.dir>")
	configPath = flag.String("config", "", "读取帧序列设置的配置文件（默认使用内置设置）")
	count      = flag.Int("count", 0, "帧数量（0 表示使用配置中的 frames.count）")
	width      = flag.Int("width", 1920, "帧宽度")
	height     = flag.Int("height", 1080, "帧高度")
	workers    = flag.Int("workers", 8, "并发编码数（0 表示不限制）")
)

func main() {
	flag.Parse()

	cfg := config.DefaultPlayerConfig()
	if *configPath != "" {
		loaded, err := config.LoadPlayerConfig(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		cfg = loaded
	}
	seq := cfg.Sequence()
	if *count > 0 {
		seq.Count = *count
	}
	if *width <= 0 || *height <= 0 {
		log.Fatalf("帧尺寸必须为正数: %dx%d", *width, *height)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	log.Printf("Generating %d frames (%dx%d) into %s ...", seq.Count, *width, *height, *outDir)
	if err := generate(ctx, *outDir, seq, *width, *height, *workers); err != nil {
		log.Fatalf("生成失败: %v", err)
	}
	log.Printf("Done in %v, first frame: %s", time.Since(start).Round(time.Millisecond), seq.Path(0))
}
