package schema

import (
	"time"

	"gorm.io/datatypes"
)

// PollAnalysis caches the AI analysis of a poll for one set of results.
// StatsHash is the sha256 of the canonical JSON of the result stats.
type PollAnalysis struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	PollID    string         `gorm:"column:poll_id;not null;type:text;uniqueIndex:idx_poll_analyses_poll_stats"`
	StatsHash string         `gorm:"column:stats_hash;not null;type:text;uniqueIndex:idx_poll_analyses_poll_stats"`
	Stats     datatypes.JSON `gorm:"column:stats;not null;type:jsonb"`
	Analysis  string         `gorm:"column:analysis;not null;type:text"`
	Model     string         `gorm:"column:model;type:text"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (PollAnalysis) TableName() string {
	return "poll_analyses"
}
