package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultTripImage is the placeholder asset path used when no image is supplied.
const DefaultTripImage = "/public/assets/mountains.jpg"

// StringList stores a set of tags as a JSON-encoded column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// Trip represents a logged trip owned by exactly one user.
type Trip struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uint       `json:"userId" gorm:"not null;index"`
	User        User       `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Country     string     `json:"country" gorm:"size:255;not null"`
	DateFrom    time.Time  `json:"dateFrom" gorm:"type:date;not null"`
	DateTo      time.Time  `json:"dateTo" gorm:"type:date;not null"`
	TripType    StringList `json:"tripType" gorm:"type:json"`
	Tags        StringList `json:"tags" gorm:"type:json"`
	Budget      *string    `json:"budget" gorm:"size:255"`
	Description *string    `json:"description" gorm:"type:text"`
	Image       string     `json:"image" gorm:"size:512;not null"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate assigns a UUID before inserting the record.
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
