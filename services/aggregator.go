package services

import (
	"fmt"
	"sort"
	"time"

	"HeadacheGo/models"
)

// 持续时间分桶，左闭右开区间
var durationBins = []struct {
	Label string
	Lo    float64
	Hi    float64 // 负数表示无上界
}{
	{"0-30分钟", 0, 30},
	{"30-60分钟", 30, 60},
	{"60-120分钟", 60, 120},
	{"120分钟以上", 120, -1},
}

// SeveritySeries 头痛严重程度随时间变化，按日期排序的散点序列
func SeveritySeries(records []models.Record) []models.SeverityPoint {
	points := make([]models.SeverityPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, models.SeverityPoint{Date: rec.Date, Severity: rec.Severity})
	}
	// YYYY-MM-DD 的字典序即时间序，同日保持录入顺序
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// MonthlyCounts 按月份统计头痛次数
func MonthlyCounts(records []models.Record) ([]models.CategoryCount, error) {
	keys := make([]string, 0, len(records))
	for _, rec := range records {
		d, err := time.Parse(models.DateLayout, rec.Date)
		if err != nil {
			return nil, &models.DataIntegrityError{Message: fmt.Sprintf("日期格式错误: %q", rec.Date)}
		}
		keys = append(keys, d.Format("2006-01"))
	}
	return countByCategory(keys), nil
}

// WeekdayCounts 按星期几统计头痛次数。桶序由调用方决定
func WeekdayCounts(records []models.Record) ([]models.CategoryCount, error) {
	keys := make([]string, 0, len(records))
	for _, rec := range records {
		d, err := time.Parse(models.DateLayout, rec.Date)
		if err != nil {
			return nil, &models.DataIntegrityError{Message: fmt.Sprintf("日期格式错误: %q", rec.Date)}
		}
		keys = append(keys, d.Weekday().String())
	}
	return countByCategory(keys), nil
}

// DurationBinCounts 头痛持续时间分布。
// 分钟数从持续时间标签反解，标签解析失败时整个报表报错，
// 而不是悄悄丢掉该行导致分布失真。
func DurationBinCounts(records []models.Record) ([]models.CategoryCount, error) {
	keys := make([]string, 0, len(records))
	for _, rec := range records {
		minutes, err := ParseDurationLabel(rec.Duration)
		if err != nil {
			return nil, err
		}
		keys = append(keys, binLabel(minutes))
	}
	return countByCategory(keys), nil
}

// SeverityCounts 按严重程度分布
func SeverityCounts(records []models.Record) []models.CategoryCount {
	keys := make([]string, 0, len(records))
	for _, rec := range records {
		keys = append(keys, fmt.Sprintf("%d", rec.Severity))
	}
	return countByCategory(keys)
}

// LocationCounts 头痛部位分布。
// 一条记录可含多个部位标签，拆开后逐个计数，
// 同时标注"左侧"和"右侧"的记录在两个桶里各计一次。
func LocationCounts(records []models.Record) []models.CategoryCount {
	keys := make([]string, 0, len(records))
	for _, rec := range records {
		keys = append(keys, rec.Locations()...)
	}
	return countByCategory(keys)
}

func binLabel(minutes float64) string {
	for _, bin := range durationBins {
		if minutes >= bin.Lo && (bin.Hi < 0 || minutes < bin.Hi) {
			return bin.Label
		}
	}
	// 分钟数非负（End ≥ Start），最后一个桶无上界，不会走到这里
	return durationBins[len(durationBins)-1].Label
}

// countByCategory 统计每个类别的出现次数，
// 次数降序、同次数按类别名升序，保证输出确定
func countByCategory(keys []string) []models.CategoryCount {
	counts := make(map[string]int)
	for _, key := range keys {
		counts[key]++
	}
	result := make([]models.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, models.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}
