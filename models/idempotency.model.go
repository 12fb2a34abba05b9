package models

import (
	"time"

	"gorm.io/gorm"
)

// IdempotencyKey stores one processed mutating request per client-supplied key.
// A completed row short-circuits retries with the stored response.
type IdempotencyKey struct {
	gorm.Model
	Key            string     `json:"key" gorm:"uniqueIndex;size:128;not null"`
	UserID         uint       `json:"user_id" gorm:"index"`
	RequestHash    string     `json:"request_hash" gorm:"size:64;not null"`
	Method         string     `json:"method"`
	Path           string     `json:"path"`
	ResponseStatus int        `json:"response_status"`
	ResponseBody   []byte     `json:"-"`
	CompletedAt    *time.Time `json:"completed_at"`
}
