package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
)

// probeRune 用来判断字体是否包含中文字形
const probeRune = '利'

// cjkFontCandidates 常见系统中文字体；freetype 只能解析单个 TrueType 字体，不支持 .ttc 合集与 CFF 轮廓的 .otf
var cjkFontCandidates = []string{
	// Linux
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/google-droid/DroidSansFallback.ttf",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttf",
	"/usr/share/fonts/truetype/arphic/uming.ttf",
	"/usr/share/fonts/noto/NotoSansSC-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansSC-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansCJKsc-Regular.ttf",
	// macOS
	"/Library/Fonts/Arial Unicode.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/System/Library/Fonts/STHeiti Light.ttf",
	"/System/Library/Fonts/STHeiti Medium.ttf",
	// Windows
	`C:\Windows\Fonts\simhei.ttf`,
	`C:\Windows\Fonts\simkai.ttf`,
	`C:\Windows\Fonts\msyh.ttf`,
}

// cjkFontDirs 候选列表都不存在时扫描的字体目录
var cjkFontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

// loadFont 读取并解析 TrueType 字体
func loadFont(path string) (*truetype.Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	font, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return font, nil
}

// hasCJK 字体是否包含中文字形，缺字时 Index 返回 0 (.notdef)
func hasCJK(font *truetype.Font) bool {
	return font != nil && font.Index(probeRune) != 0
}

// discoverCJKFont 先按候选列表、再扫描字体目录查找可用的中文字体，找不到时返回空路径
func discoverCJKFont(candidates, dirs []string) (string, *truetype.Font) {
	for _, p := range candidates {
		if font, err := loadFont(p); err == nil && hasCJK(font) {
			return p, font
		}
	}

	for _, dir := range dirs {
		var (
			found string
			font  *truetype.Font
		)
		_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".ttf") {
				return nil
			}
			f, err := loadFont(p)
			if err != nil || !hasCJK(f) {
				return nil
			}
			found, font = p, f
			return fs.SkipAll
		})
		if font != nil {
			return found, font
		}
	}
	return "", nil
}
