package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WorkbookName 默认的数据文件名
const WorkbookName = "index.xlsx"

// DeploymentPath 部署环境中的固定路径
const DeploymentPath = "/mount/src/macrorisk/index.xlsx"

// ErrWorkbookNotFound 所有候选路径都不存在
var ErrWorkbookNotFound = errors.New("workbook not found")

// DefaultPaths 默认查找顺序：工作目录、可执行文件所在目录、部署路径
func DefaultPaths() []string {
	paths := []string{WorkbookName}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), WorkbookName))
	}
	return append(paths, DeploymentPath)
}

// ResolveWorkbook 按顺序返回第一个存在的文件的绝对路径
func ResolveWorkbook(paths []string) (string, error) {
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil || fi.IsDir() {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return p, nil
		}
		return abs, nil
	}
	return "", fmt.Errorf("%w. 尝试过的路径：\n%s", ErrWorkbookNotFound, strings.Join(paths, "\n"))
}
