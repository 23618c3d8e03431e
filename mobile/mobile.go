//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口（Android 和 iOS）
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	make prepare-mobile
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.spider -o build/android/spider.aar ./mobile
package mobile

import (
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/spider/pkg/app"
	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/embedded"
	"github.com/decker502/spider/pkg/logging"
)

func init() {
	logging.Configure(os.Stderr, true)
	log := logging.For("Mobile")

	embedded.Init(dataFS)
	manifest, err := embedded.Manifest()
	if err != nil {
		log.Fatal("manifest missing", "err", err)
	}
	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		log.Fatal("assets missing", "err", err)
	}

	cfg := app.Config{Assets: assets, Manifest: manifest}
	if storage, err := gdata.Open(gdata.Config{AppName: config.StorageAppName}); err != nil {
		log.Warn("save data unavailable", "err", err)
	} else {
		cfg.Props = storage
	}

	game, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal("game initialisation failed", "err", err)
	}
	mobile.SetGame(game)
}

// Dummy 导出后 ebitenmobile 才能识别此包
func Dummy() {}
