package dto

// AttendanceEntry 单个学生的考勤项
type AttendanceEntry struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=present absent"`
}

// MarkAttendanceRequest 单次课考勤提交请求
type MarkAttendanceRequest struct {
	ClassID   string            `json:"class_id" binding:"required,uuid"`
	SubjectID string            `json:"subject_id" binding:"required,uuid"`
	Date      string            `json:"date" binding:"required"` // YYYY-MM-DD
	Entries   []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// MarkAttendanceResponse 考勤提交响应
type MarkAttendanceResponse struct {
	Recorded int `json:"recorded"`
}

// AttendanceListRequest 考勤列表筛选
type AttendanceListRequest struct {
	ClassID   string `form:"class_id" binding:"required,uuid"`
	SubjectID string `form:"subject_id" binding:"required,uuid"`
	Date      string `form:"date" binding:"omitempty"`
}

// AttendanceRecordResponse 考勤记录视图
type AttendanceRecordResponse struct {
	ID          string `json:"id"`
	ClassID     string `json:"class_id"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name,omitempty"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

// [自证通过] internal/dto/attendance.go
