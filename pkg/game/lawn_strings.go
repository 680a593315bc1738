package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/decker502/pvz-setup/pkg/embedded"
)

// DefaultLawnStringsPath 界面文本文件位置
const DefaultLawnStringsPath = "data/LawnStrings.txt"

// LawnStrings 界面文本字符串管理器
// 从 LawnStrings.txt 加载文本，支持通过键快速查询
type LawnStrings struct {
	strings map[string]string // 键 -> 文本映射
}

// NewLawnStrings 从 embedded 文件加载界面文本
//
// 文件格式：
//
//	[KEY]
//	文本内容
//
// 示例：
//
//	[DRAW_PLANT]
//	Draw Plant
func NewLawnStrings(filePath string) (*LawnStrings, error) {
	file, err := embedded.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open LawnStrings file %s: %w", filePath, err)
	}
	defer file.Close()

	ls, err := ParseLawnStrings(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read LawnStrings file %s: %w", filePath, err)
	}
	return ls, nil
}

// ParseLawnStrings 解析 [KEY] / 文本 交替的格式，键后的第一行非空文本为值
func ParseLawnStrings(r io.Reader) (*LawnStrings, error) {
	ls := &LawnStrings{
		strings: make(map[string]string),
	}

	scanner := bufio.NewScanner(r)
	var currentKey string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentKey = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		if currentKey != "" {
			ls.strings[currentKey] = line
			currentKey = ""
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ls, nil
}

// GetString 根据键获取文本
// 键不存在（或 ls 为 nil）时返回 "[key]"，方便在界面上发现缺失的文本
func (ls *LawnStrings) GetString(key string) string {
	if ls != nil {
		if text, ok := ls.strings[key]; ok {
			return text
		}
	}
	return "[" + key + "]"
}

// Len 已加载的键数量
func (ls *LawnStrings) Len() int {
	if ls == nil {
		return 0
	}
	return len(ls.strings)
}
