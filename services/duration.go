package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"HeadacheGo/models"
)

const (
	hourMarker   = "小时"
	minuteMarker = "分钟"
)

// ComputeDuration 计算持续时间并格式化为小时分钟标签。
// 调用方需保证 end 不早于 start。
func ComputeDuration(start, end time.Time) (label string, totalMinutes float64) {
	totalMinutes = end.Sub(start).Minutes()
	hours := int(totalMinutes) / 60
	minutes := int(totalMinutes) % 60
	return fmt.Sprintf("%d%s%d%s", hours, hourMarker, minutes, minuteMarker), totalMinutes
}

// ParseDurationLabel 从"H小时M分钟"标签反解总分钟数。
// 标签同时是存储格式，解析失败按数据完整性错误处理。
func ParseDurationLabel(label string) (float64, error) {
	i := strings.Index(label, hourMarker)
	if i < 0 {
		return 0, &models.DataIntegrityError{Message: fmt.Sprintf("持续时间标签格式错误: %q", label)}
	}
	rest, ok := strings.CutSuffix(label[i+len(hourMarker):], minuteMarker)
	if !ok {
		return 0, &models.DataIntegrityError{Message: fmt.Sprintf("持续时间标签格式错误: %q", label)}
	}
	hours, err := strconv.Atoi(label[:i])
	if err != nil {
		return 0, &models.DataIntegrityError{Message: fmt.Sprintf("持续时间标签小时数无效: %q", label)}
	}
	minutes, err := strconv.Atoi(rest)
	if err != nil {
		return 0, &models.DataIntegrityError{Message: fmt.Sprintf("持续时间标签分钟数无效: %q", label)}
	}
	return float64(hours*60 + minutes), nil
}
