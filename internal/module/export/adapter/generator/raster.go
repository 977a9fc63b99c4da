package generator

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

// Raster は共有入力から決定的なPNGプレビューカードを生成するExecutorです
// 同じ入力からは常に同じ画像が生成されます
//
// 設定:
//   - width: 画像幅ピクセル（デフォルト256、範囲16〜4096）
//   - height: 画像高さピクセル（デフォルト160、範囲16〜4096）
func Raster(ctx context.Context, input *domain.Input, cfg domain.Config) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	width, err := intOption(cfg, "width", 256)
	if err != nil {
		return nil, err
	}
	height, err := intOption(cfg, "height", 160)
	if err != nil {
		return nil, err
	}
	if width < 16 || width > 4096 || height < 16 || height > 4096 {
		return nil, fmt.Errorf("width/height は16〜4096の範囲である必要があります (got %dx%d)", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// 入力内容のハッシュから背景色を決める
	h := fnv.New32a()
	h.Write([]byte(input.Name))
	h.Write(input.Data)
	seed := h.Sum32()
	background := color.RGBA{
		R: uint8(seed),
		G: uint8(seed >> 8),
		B: uint8(seed >> 16),
		A: 0xff,
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, background)
		}
	}

	// 入力バイト列に応じたストライプを重ねる
	if len(input.Data) > 0 {
		stripeHeight := height / 8
		if stripeHeight < 1 {
			stripeHeight = 1
		}
		for y := 0; y < height; y += stripeHeight * 2 {
			b := input.Data[(y/stripeHeight)%len(input.Data)]
			stripe := color.RGBA{R: b, G: b ^ 0x55, B: b ^ 0xaa, A: 0xff}
			for yy := y; yy < y+stripeHeight && yy < height; yy++ {
				for x := 0; x < width; x++ {
					img.SetRGBA(x, yy, stripe)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("PNGエンコードに失敗: %w", err)
	}

	return buf.Bytes(), nil
}
