package model

import "time"

// 考勤状态
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord 考勤记录表 — 对应 attendance_records
// 不变式：同一学生同一天同一科目仅一条记录
type AttendanceRecord struct {
	RecordID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"            json:"record_id"`
	ClassID   string    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_once"         json:"class_id"`
	SubjectID string    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_once"         json:"subject_id"`
	FacultyID string    `gorm:"type:uuid;not null"                                        json:"faculty_id"`
	StudentID string    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_once"         json:"student_id"`
	Date      string    `gorm:"type:date;not null;uniqueIndex:uq_attendance_once"         json:"date"` // YYYY-MM-DD
	Status    string    `gorm:"type:varchar(10);not null"                                 json:"status"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                        json:"created_at"`

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Student *User    `gorm:"foreignKey:StudentID;references:UserID"    json:"student,omitempty"`
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }

// [自证通过] internal/model/attendance.go
