package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"HeadacheGo/config"
	"HeadacheGo/models"
	"HeadacheGo/services"
	"HeadacheGo/store"

	"github.com/gin-gonic/gin"
)

type RecordController struct {
	store store.Store
}

func NewRecordController(s store.Store) *RecordController {
	return &RecordController{store: s}
}

// CreateRecord 添加头痛记录
func (rc *RecordController) CreateRecord(c *gin.Context) {
	var req models.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请确保所有字段都已正确填写"})
		return
	}

	for _, label := range req.Locations {
		if !models.ValidLocation(label) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的头痛部位: " + label})
			return
		}
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "日期格式错误，请检查输入日期"})
		return
	}
	startClock, err := time.Parse(models.ClockLayout, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "时间格式错误，请检查输入时间"})
		return
	}
	endClock, err := time.Parse(models.ClockLayout, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "时间格式错误，请检查输入时间"})
		return
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), startClock.Hour(), startClock.Minute(), 0, 0, time.Local)
	end := time.Date(date.Year(), date.Month(), date.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.Local)
	if req.EndNextDay {
		end = end.AddDate(0, 0, 1)
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "结束时间不能早于开始时间"})
		return
	}

	duration, totalMinutes := services.ComputeDuration(start, end)
	rec := models.Record{
		Date:         req.Date,
		StartTime:    start.Format(models.DateTimeLayout),
		EndTime:      end.Format(models.DateTimeLayout),
		Duration:     duration,
		Severity:     req.Severity,
		Remarks:      req.Remarks,
		Location:     models.JoinLocations(req.Locations),
		TotalMinutes: totalMinutes,
	}

	if err := rc.store.Append(rec); err != nil {
		config.Logger.Errorw("添加记录失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "记录保存失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "记录已添加",
		"record":  rec,
	})
}

// ListRecords 获取头痛记录列表，按录入顺序
func (rc *RecordController) ListRecords(c *gin.Context) {
	records, err := rc.store.Load()
	if err != nil {
		config.Logger.Errorw("读取记录失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// UpdateRecords 批量更新记录，整表替换
func (rc *RecordController) UpdateRecords(c *gin.Context) {
	var req models.UpdateRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if err := rc.store.Replace(req.Records); err != nil {
		config.Logger.Errorw("更新记录失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "记录更新失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "记录已更新"})
}

// DeleteRecord 按位置索引删除记录
func (rc *RecordController) DeleteRecord(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的记录索引"})
		return
	}

	if err := rc.store.Delete(index); err != nil {
		if errors.Is(err, models.ErrIndexOutOfRange) {
			c.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
			return
		}
		config.Logger.Errorw("删除记录失败", "error", err, "index", index)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "记录删除失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "记录已删除"})
}

// DownloadCSV 下载数据文件，内容与磁盘编码逐字节一致
func (rc *RecordController) DownloadCSV(c *gin.Context) {
	data, err := rc.store.Raw()
	if err != nil {
		config.Logger.Errorw("读取数据文件失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据文件读取失败"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="headache_data.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
