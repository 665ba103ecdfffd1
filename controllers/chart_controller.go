package controllers

import (
	"net/http"

	"HeadacheGo/config"
	"HeadacheGo/models"
	"HeadacheGo/services"
	"HeadacheGo/store"

	"github.com/gin-gonic/gin"
)

type ChartController struct {
	store store.Store
}

func NewChartController(s store.Store) *ChartController {
	return &ChartController{store: s}
}

// SeveritySeries 头痛严重程度随时间变化
func (cc *ChartController) SeveritySeries(c *gin.Context) {
	records, ok := cc.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{
		Title: "头痛严重程度随时间变化图",
		Data:  services.SeveritySeries(records),
	})
}

// MonthlyCounts 按月份统计头痛次数
func (cc *ChartController) MonthlyCounts(c *gin.Context) {
	records, ok := cc.loadRecords(c)
	if !ok {
		return
	}
	data, err := services.MonthlyCounts(records)
	if err != nil {
		cc.reportError(c, "按月份统计失败", err)
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{Title: "按月份统计头痛次数", Data: data})
}

// WeekdayCounts 按星期几统计头痛次数
func (cc *ChartController) WeekdayCounts(c *gin.Context) {
	records, ok := cc.loadRecords(c)
	if !ok {
		return
	}
	data, err := services.WeekdayCounts(records)
	if err != nil {
		cc.reportError(c, "按星期几统计失败", err)
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{Title: "按星期几统计头痛次数", Data: data})
}

// DurationBinCounts 头痛持续时间分布
func (cc *ChartController) DurationBinCounts(c *gin.Context) {
	records, ok := cc.loadRecords(c)
	if !ok {
		return
	}
	data, err := services.DurationBinCounts(records)
	if err != nil {
		cc.reportError(c, "持续时间分布统计失败", err)
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{Title: "头痛持续时间分布", Data: data})
}

// SeverityCounts 按严重程度分布
func (cc *ChartController) SeverityCounts(c *gin.Context) {
	records, ok := cc.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{
		Title: "按严重程度分布",
		Data:  services.SeverityCounts(records),
	})
}

// LocationCounts 头痛部位分布
func (cc *ChartController) LocationCounts(c *gin.Context) {
	records, ok := cc.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.ChartResponse{
		Title: "头痛部位分布",
		Data:  services.LocationCounts(records),
	})
}

// loadRecords 读取全部记录，失败时直接写出错误响应。
// 单个报表的数据完整性错误不影响其他报表
func (cc *ChartController) loadRecords(c *gin.Context) ([]models.Record, bool) {
	records, err := cc.store.Load()
	if err != nil {
		cc.reportError(c, "读取记录失败", err)
		return nil, false
	}
	return records, true
}

func (cc *ChartController) reportError(c *gin.Context, msg string, err error) {
	config.Logger.Errorw(msg, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
