package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/spider/pkg/logging"
	"github.com/decker502/spider/pkg/render"
)

// ErrResourceLoad 包装所有已声明资源的加载失败
var ErrResourceLoad = errors.New("resource load failed")

// Loader 是加载组需要的资源管理器子集
type Loader interface {
	// LoadTexture 加载相对于资源根目录的图片
	LoadTexture(name string) (render.Texture, error)
	// LoadFont 解析清单中的字体ID
	LoadFont(id string) (render.Font, error)
	// SolidTexture 返回颜色为 c 的程序生成 1x1 纹理
	SolidTexture(c color.RGBA) render.Texture
}

// ResourceManager 从资源文件系统加载并缓存图片和字体
// 每个资源最多加载一次，之后的请求直接返回缓存
type ResourceManager struct {
	assets   fs.FS
	config   *ResourceConfig
	images   map[string]*ebiten.Image
	fonts    map[string]render.Font
	solids   map[color.RGBA]*ebiten.Image
	fontData map[string]*text.GoTextFaceSource
	log      *log.Logger
}

// NewResourceManager 创建一个从 assets 读取资源的管理器
//
// 参数：
//   - assets: 资源根目录（--assets 的 os.DirFS，或嵌入的文件系统）
//   - cfg: 解析后的清单，用于解析字体ID
func NewResourceManager(assets fs.FS, cfg *ResourceConfig) *ResourceManager {
	return &ResourceManager{
		assets:   assets,
		config:   cfg,
		images:   make(map[string]*ebiten.Image),
		fonts:    make(map[string]render.Font),
		solids:   make(map[color.RGBA]*ebiten.Image),
		fontData: make(map[string]*text.GoTextFaceSource),
		log:      logging.For("ResourceManager"),
	}
}

// Config 返回创建管理器时使用的清单
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// LoadImage 加载 PNG 或 JPEG 图片并缓存
//
// 参数：
//   - name: 相对于资源根目录、以斜杠分隔的路径
//     （如 "ThemePacks/Original/Card/Card.png"）
//
// 返回：
//   - *ebiten.Image: 解码后的图片
//   - error: 文件不存在或无法解码时返回，包装 ErrResourceLoad
//
// 示例：
//
//	img, err := rm.LoadImage("Menu/SpiderCard.png")
//	if err != nil {
//	    return err
//	}
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	name = path.Clean(name)
	if cached, ok := rm.images[name]; ok {
		return cached, nil
	}

	file, err := rm.assets.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: open image %s: %w", ErrResourceLoad, name, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: decode image %s: %w", ErrResourceLoad, name, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.images[name] = ebitenImg
	rm.log.Debug("image loaded", "path", name, "size", img.Bounds().Size())
	return ebitenImg, nil
}

// LoadTexture 实现 Loader 接口
func (rm *ResourceManager) LoadTexture(name string) (render.Texture, error) {
	img, err := rm.LoadImage(name)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GetImage 返回缓存的图片，未加载过时返回 nil
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.images[path.Clean(name)]
}

// LoadFont 将清单字体ID解析为字体并缓存
//
// 没有文件的字体使用内置位图字体。字体文件只解析一次，
// 不同字号的字体共享同一份数据。
//
// 返回：
//   - render.Font: 字体
//   - error: ID 未知、文件不存在或不是字体文件时返回，
//     包装 ErrResourceLoad
func (rm *ResourceManager) LoadFont(id string) (render.Font, error) {
	if cached, ok := rm.fonts[id]; ok {
		return cached, nil
	}
	if rm.config == nil {
		return nil, fmt.Errorf("%w: font %q: no resource config", ErrResourceLoad, id)
	}
	spec, ok := rm.config.Fonts[id]
	if !ok {
		return nil, fmt.Errorf("%w: font %q is not declared in the manifest", ErrResourceLoad, id)
	}

	var face render.Font
	if spec.File == "" {
		face = render.BuiltinFace()
	} else {
		source, err := rm.fontSource(spec.File)
		if err != nil {
			return nil, err
		}
		face = render.NewFace(&text.GoTextFace{
			Source:    source,
			Size:      spec.Size,
			Direction: text.DirectionLeftToRight,
		})
	}

	rm.fonts[id] = face
	rm.log.Debug("font loaded", "id", id, "file", spec.File, "size", spec.Size)
	return face, nil
}

// goFonts 是编译进二进制的字体文件
// 清单中用 "go:" 开头的文件名代替路径来选择它们
var goFonts = map[string][]byte{
	"go:regular": goregular.TTF,
	"go:bold":    gobold.TTF,
}

func (rm *ResourceManager) fontSource(name string) (*text.GoTextFaceSource, error) {
	data, builtin := goFonts[name]
	if !builtin {
		name = path.Clean(name)
	}
	if cached, ok := rm.fontData[name]; ok {
		return cached, nil
	}
	if !builtin {
		var err error
		if data, err = fs.ReadFile(rm.assets, name); err != nil {
			return nil, fmt.Errorf("%w: read font %s: %w", ErrResourceLoad, name, err)
		}
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parse font %s: %w", ErrResourceLoad, name, err)
	}
	rm.fontData[name] = source
	return source, nil
}

// SolidTexture 实现 Loader 接口，纹理是生成的而不是加载的，不会失败
func (rm *ResourceManager) SolidTexture(c color.RGBA) render.Texture {
	if cached, ok := rm.solids[c]; ok {
		return cached
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	rm.solids[c] = img
	return img
}
