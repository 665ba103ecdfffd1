package models

// CategoryCount 分类计数，图表的通用数据点
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SeverityPoint 严重程度时间序列数据点
type SeverityPoint struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Severity int    `json:"severity"`
}

// ChartResponse 图表响应结构体，data为渲染就绪的数据集
type ChartResponse struct {
	Title string      `json:"title"`
	Data  interface{} `json:"data"`
}
