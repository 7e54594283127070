package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/transitface/pkg/app"
	"github.com/decker502/transitface/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	dataDir := flag.String("data-dir", "", "从磁盘目录读取 data/（默认使用嵌入资源）")
	configPath := flag.String("config", app.DefaultConfigPath, "应用配置文件路径")
	flag.Parse()

	embedded.Init(dataFS)

	var dataFiles fs.FS = embedded.FS()
	if *dataDir != "" {
		dataFiles = os.DirFS(*dataDir)
	}

	faceApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		DataFS:     dataFiles,
		ConfigPath: *configPath,
	})
	if err != nil {
		// NewApp 在非 verbose 模式下会关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("表盘初始化失败: %v", err)
	}
	defer faceApp.Close()

	window := faceApp.WindowConfig()
	w, h := faceApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetFullscreen(window.Fullscreen)

	if err := ebiten.RunGame(faceApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
