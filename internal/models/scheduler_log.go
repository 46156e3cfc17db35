package models

import (
	"time"
)

// Scheduler run statuses
const (
	SchedulerStatusStart   = "START"
	SchedulerStatusRunning = "RUNNING"
	SchedulerStatusSuccess = "SUCCESS"
	SchedulerStatusFailed  = "FAILED"
)

// SchedulerLog represents the log_schedullers table, one row per status change of a job run
type SchedulerLog struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	DocumentID       string    `json:"document_id" gorm:"column:document_id;index"`
	SchedullerCode   string    `json:"scheduller_code" gorm:"column:scheduller_code"`
	Message          string    `json:"message" gorm:"column:message;type:text"`
	StatusScheduller string    `json:"status_scheduller" gorm:"column:status_scheduller"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "log_schedullers"
}
