package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HeadacheGo/models"
)

type categoryChart struct {
	Title string                 `json:"title"`
	Data  []models.CategoryCount `json:"data"`
}

func TestSeveritySeriesChart(t *testing.T) {
	r, s := setupRouter(t)
	seedRecords(t, s)

	w := doJSON(r, http.MethodGet, "/api/v1/charts/severity-series", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Title string                 `json:"title"`
		Data  []models.SeverityPoint `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "头痛严重程度随时间变化图", resp.Title)
	assert.Equal(t, []models.SeverityPoint{
		{Date: "2024-01-05", Severity: 3},
		{Date: "2024-01-12", Severity: 1},
		{Date: "2024-02-01", Severity: 5},
	}, resp.Data)
}

func TestMonthlyChart(t *testing.T) {
	r, s := setupRouter(t)
	seedRecords(t, s)

	w := doJSON(r, http.MethodGet, "/api/v1/charts/monthly", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp categoryChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "按月份统计头痛次数", resp.Title)
	assert.Equal(t, []models.CategoryCount{
		{Category: "2024-01", Count: 2},
		{Category: "2024-02", Count: 1},
	}, resp.Data)
}

func TestWeekdayChart(t *testing.T) {
	r, s := setupRouter(t)
	seedRecords(t, s)

	w := doJSON(r, http.MethodGet, "/api/v1/charts/weekday", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp categoryChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []models.CategoryCount{
		{Category: "Friday", Count: 2},
		{Category: "Thursday", Count: 1},
	}, resp.Data)
}

func TestDurationChart(t *testing.T) {
	r, s := setupRouter(t)
	seedRecords(t, s)

	w := doJSON(r, http.MethodGet, "/api/v1/charts/duration", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp categoryChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 90 -> [60,120)，20 -> [0,30)，180 -> [120,∞)
	assert.Equal(t, []models.CategoryCount{
		{Category: "0-30分钟", Count: 1},
		{Category: "120分钟以上", Count: 1},
		{Category: "60-120分钟", Count: 1},
	}, resp.Data)
}

func TestSeverityChart(t *testing.T) {
	r, s := setupRouter(t)
	seedRecords(t, s)

	w := doJSON(r, http.MethodGet, "/api/v1/charts/severity", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp categoryChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []models.CategoryCount{
		{Category: "1", Count: 1},
		{Category: "3", Count: 1},
		{Category: "5", Count: 1},
	}, resp.Data)
}

func TestLocationChart(t *testing.T) {
	r, s := setupRouter(t)
	seedRecords(t, s)

	w := doJSON(r, http.MethodGet, "/api/v1/charts/location", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp categoryChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// "左侧, 右侧" 的记录拆成两个桶各计一次
	assert.Equal(t, []models.CategoryCount{
		{Category: "左侧", Count: 2},
		{Category: "双侧", Count: 1},
		{Category: "右侧", Count: 1},
	}, resp.Data)
}

func TestChartsEmptyData(t *testing.T) {
	r, _ := setupRouter(t)

	for _, path := range []string{
		"/api/v1/charts/severity-series",
		"/api/v1/charts/monthly",
		"/api/v1/charts/weekday",
		"/api/v1/charts/duration",
		"/api/v1/charts/severity",
		"/api/v1/charts/location",
	} {
		w := doJSON(r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), path)
		assert.Empty(t, resp.Data, path)
	}
}

// 单个报表的数据完整性错误不应拖垮其他报表
func TestMalformedDurationOnlyBreaksDurationChart(t *testing.T) {
	r, s := setupRouter(t)
	require.NoError(t, s.Save([]models.Record{
		{
			Date: "2024-01-05", StartTime: "2024-01-05 09:00", EndTime: "2024-01-05 10:30",
			Duration: "九十分钟", Severity: 3, Location: "左侧", TotalMinutes: 90,
		},
	}))

	w := doJSON(r, http.MethodGet, "/api/v1/charts/duration", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "持续时间标签")

	w = doJSON(r, http.MethodGet, "/api/v1/charts/monthly", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/charts/location", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
