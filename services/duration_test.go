package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HeadacheGo/models"
)

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		name        string
		start, end  time.Time
		wantLabel   string
		wantMinutes float64
	}{
		{
			name:        "一个半小时",
			start:       time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
			end:         time.Date(2024, 1, 1, 10, 30, 0, 0, time.Local),
			wantLabel:   "1小时30分钟",
			wantMinutes: 90,
		},
		{
			name:        "零时长",
			start:       time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
			end:         time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
			wantLabel:   "0小时0分钟",
			wantMinutes: 0,
		},
		{
			name:        "不足一小时",
			start:       time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
			end:         time.Date(2024, 1, 1, 9, 45, 0, 0, time.Local),
			wantLabel:   "0小时45分钟",
			wantMinutes: 45,
		},
		{
			name:        "跨午夜",
			start:       time.Date(2024, 1, 1, 23, 30, 0, 0, time.Local),
			end:         time.Date(2024, 1, 2, 0, 15, 0, 0, time.Local),
			wantLabel:   "0小时45分钟",
			wantMinutes: 45,
		},
		{
			name:        "超过两小时",
			start:       time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local),
			end:         time.Date(2024, 1, 1, 10, 5, 0, 0, time.Local),
			wantLabel:   "2小时5分钟",
			wantMinutes: 125,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, minutes := ComputeDuration(tt.start, tt.end)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestParseDurationLabel(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"1小时30分钟", 90},
		{"0小时0分钟", 0},
		{"0小时45分钟", 45},
		{"10小时5分钟", 605},
	}

	for _, tt := range tests {
		got, err := ParseDurationLabel(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestParseDurationLabelMalformed(t *testing.T) {
	for _, label := range []string{"", "90分钟", "1小时", "abc小时5分钟", "1小时x分钟", "小时分钟"} {
		_, err := ParseDurationLabel(label)
		var integrityErr *models.DataIntegrityError
		assert.ErrorAs(t, err, &integrityErr, label)
	}
}

// 标签是存储格式，必须能无损反解出分钟数
func TestDurationLabelRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 10, 6, 0, 0, 0, time.Local)
	for _, minutes := range []int{0, 1, 29, 30, 59, 60, 61, 90, 119, 120, 360, 1440} {
		end := start.Add(time.Duration(minutes) * time.Minute)
		label, total := ComputeDuration(start, end)

		parsed, err := ParseDurationLabel(label)
		require.NoError(t, err, label)
		assert.Equal(t, total, parsed, label)
	}
}
