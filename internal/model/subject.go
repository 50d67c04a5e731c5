package model

// Subject 科目表 — 对应 subjects
type Subject struct {
	SubjectID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name       string `gorm:"type:varchar(200);not null"                     json:"name"`
	Code       string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"code"`
	Department string `gorm:"type:varchar(50);not null"                      json:"department"`
	Year       int    `gorm:"type:smallint;not null"                         json:"year"`
	Semester   int    `gorm:"type:smallint;not null"                         json:"semester"`
	BaseModel
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }

// [自证通过] internal/model/subject.go
