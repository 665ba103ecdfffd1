package models

// CreateRecordRequest 添加头痛记录请求结构体
type CreateRecordRequest struct {
	Date       string   `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime  string   `json:"startTime" binding:"required"` // HH:MM
	EndTime    string   `json:"endTime" binding:"required"`   // HH:MM
	EndNextDay bool     `json:"endNextDay"`                   // 结束时间是否在次日（跨午夜）
	Severity   int      `json:"severity" binding:"required,min=1,max=5"`
	Remarks    string   `json:"remarks"`
	Locations  []string `json:"locations" binding:"required,min=1"`
}

// UpdateRecordsRequest 批量更新记录请求结构体，整表替换
type UpdateRecordsRequest struct {
	Records []Record `json:"records"`
}
