package routes

import (
	"HeadacheGo/controllers"
	"HeadacheGo/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s store.Store) {
	recordController := controllers.NewRecordController(s)
	chartController := controllers.NewChartController(s)

	api := r.Group("/api/v1")
	{
		// 记录相关接口
		api.POST("/records", recordController.CreateRecord)
		api.GET("/records", recordController.ListRecords)
		api.PUT("/records", recordController.UpdateRecords)
		api.DELETE("/records/:index", recordController.DeleteRecord)
		api.GET("/records/download", recordController.DownloadCSV)

		// 图表数据接口
		api.GET("/charts/severity-series", chartController.SeveritySeries)
		api.GET("/charts/monthly", chartController.MonthlyCounts)
		api.GET("/charts/weekday", chartController.WeekdayCounts)
		api.GET("/charts/duration", chartController.DurationBinCounts)
		api.GET("/charts/severity", chartController.SeverityCounts)
		api.GET("/charts/location", chartController.LocationCounts)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
