package model

// Class 班级表 — 对应 classes
// 不变式：每个 (department, year, section) 键至多一个班级
type Class struct {
	ClassID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"     json:"class_id"`
	Department string `gorm:"type:varchar(50);not null;uniqueIndex:uq_classes_key" json:"department"`
	Year       int    `gorm:"type:smallint;not null;uniqueIndex:uq_classes_key"  json:"year"`
	Section    string `gorm:"type:varchar(10);not null;uniqueIndex:uq_classes_key" json:"section"`
	BaseModel

	// 关联
	Subjects []Subject `gorm:"many2many:class_subjects;foreignKey:ClassID;joinForeignKey:ClassID;references:SubjectID;joinReferences:SubjectID" json:"subjects,omitempty"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }

// [自证通过] internal/model/class.go
