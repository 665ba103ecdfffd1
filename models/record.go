package models

import (
	"fmt"
	"strconv"
	"strings"
)

// 时间格式
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
	ClockLayout    = "15:04"
)

// 头痛部位
const (
	LocationLeft      = "左侧"
	LocationRight     = "右侧"
	LocationBilateral = "双侧"
)

// LocationSeparator 多个部位标签在存储时的连接符
const LocationSeparator = ", "

// Columns CSV表头，列顺序固定
var Columns = []string{"Date", "Start Time", "End Time", "Duration", "Severity", "Remarks", "Location", "Total Minutes"}

// Record 头痛记录模型
type Record struct {
	Date         string  `json:"date"`         // YYYY-MM-DD
	StartTime    string  `json:"startTime"`    // YYYY-MM-DD HH:MM
	EndTime      string  `json:"endTime"`      // YYYY-MM-DD HH:MM
	Duration     string  `json:"duration"`     // H小时M分钟
	Severity     int     `json:"severity"`     // 1-5
	Remarks      string  `json:"remarks"`
	Location     string  `json:"location"`     // 单个部位或以", "连接的多个部位
	TotalMinutes float64 `json:"totalMinutes"`
}

// Locations 拆分部位字段，一条记录可能包含多个部位标签
func (r Record) Locations() []string {
	return strings.Split(r.Location, LocationSeparator)
}

// CSVRow 按Columns顺序输出一行
func (r Record) CSVRow() []string {
	return []string{
		r.Date,
		r.StartTime,
		r.EndTime,
		r.Duration,
		strconv.Itoa(r.Severity),
		r.Remarks,
		r.Location,
		FormatMinutes(r.TotalMinutes),
	}
}

// RecordFromRow 按列名索引还原一条记录
func RecordFromRow(row []string, index map[string]int) (Record, error) {
	get := func(col string) string { return row[index[col]] }

	severity, err := strconv.Atoi(get("Severity"))
	if err != nil {
		return Record{}, &DataIntegrityError{Message: fmt.Sprintf("严重程度不是整数: %q", get("Severity"))}
	}
	totalMinutes, err := strconv.ParseFloat(get("Total Minutes"), 64)
	if err != nil {
		return Record{}, &DataIntegrityError{Message: fmt.Sprintf("总分钟数不是数字: %q", get("Total Minutes"))}
	}

	return Record{
		Date:         get("Date"),
		StartTime:    get("Start Time"),
		EndTime:      get("End Time"),
		Duration:     get("Duration"),
		Severity:     severity,
		Remarks:      get("Remarks"),
		Location:     get("Location"),
		TotalMinutes: totalMinutes,
	}, nil
}

// FormatMinutes 分钟数的存储格式，整数值不带小数点
func FormatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// JoinLocations 将多个部位标签连接为存储格式
func JoinLocations(labels []string) string {
	return strings.Join(labels, LocationSeparator)
}

// ValidLocation 判断是否为有效的部位标签
func ValidLocation(label string) bool {
	switch label {
	case LocationLeft, LocationRight, LocationBilateral:
		return true
	}
	return false
}
