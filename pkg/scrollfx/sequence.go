// Package scrollfx 实现滚动驱动的帧序列动画核心
//
// 该包不依赖任何渲染引擎：帧句柄、绘制表面、滚动源和元素几何/样式都通过接口注入，
// 由 pkg/app 和 pkg/ui 提供 Ebitengine 实现，测试中使用内存中的假实现。
//
// 数据流：滚动事件 -> 滚动比例 -> 目标帧 + 阈值编排；每个 tick：插值 -> 绘制。
package scrollfx

import (
	"fmt"
	"net/url"
	"strings"
)

// Sequence 描述帧序列的资源寻址方式
//
// 第 i 帧（从 0 开始）的文件名为 "{Prefix}_{i+1 补零到 Digits 位}{Ext}"，位于 Dir 目录下。
type Sequence struct {
	Dir    string
	Prefix string
	Ext    string
	Digits int
	Count  int
}

// Name 返回第 index 帧的原始文件名（未编码）
func (s Sequence) Name(index int) string {
	digits := s.Digits
	if digits <= 0 {
		digits = 5
	}
	ext := s.Ext
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s_%0*d%s", s.Prefix, digits, index+1, ext)
}

// Path 返回第 index 帧的相对路径（未编码），用于 fs.FS 打开文件
func (s Sequence) Path(index int) string {
	if s.Dir == "" {
		return s.Name(index)
	}
	return strings.TrimSuffix(s.Dir, "/") + "/" + s.Name(index)
}

// URI 返回第 index 帧的 URI，目录和文件名分别做百分号编码
func (s Sequence) URI(index int) string {
	name := url.PathEscape(s.Name(index))
	if s.Dir == "" {
		return name
	}
	return url.PathEscape(strings.TrimSuffix(s.Dir, "/")) + "/" + name
}

// Valid 检查索引是否在 [0, Count) 范围内
func (s Sequence) Valid(index int) bool {
	return index >= 0 && index < s.Count
}
