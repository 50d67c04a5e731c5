package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bhargavi2520/SAMS-sub000/config"
	"github.com/bhargavi2520/SAMS-sub000/internal/api/handler"
	"github.com/bhargavi2520/SAMS-sub000/internal/api/middleware"
	"github.com/bhargavi2520/SAMS-sub000/internal/model"
	"github.com/bhargavi2520/SAMS-sub000/pkg/jwt"
	"github.com/bhargavi2520/SAMS-sub000/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录接口额外限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 班级目录
			classes := authorized.Group("/classes")
			{
				classes.GET("", h.Class.List)
				classes.GET("/lookup", h.Class.Get)
				classes.POST("", middleware.RoleAuth(model.RoleAdmin, model.RoleHOD), h.Class.Create)
				classes.PUT("/subjects", middleware.RoleAuth(model.RoleAdmin, model.RoleHOD), h.Class.SetSubjects)
			}

			// 科目目录
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.List)
				subjects.GET("/:id", h.Subject.Get)
				subjects.POST("", middleware.RoleAuth(model.RoleAdmin, model.RoleHOD), h.Subject.Create)
			}

			// 教师-科目分配
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", h.Assignment.List)
				assignments.POST("", middleware.RoleAuth(model.RoleAdmin, model.RoleHOD), h.Assignment.Assign)
				assignments.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin, model.RoleHOD), h.Assignment.Remove)
			}

			// 课程表：解析 / 提交 / 查询
			schedules := authorized.Group("/schedules")
			{
				schedules.GET("/resolve", h.Schedule.Resolve)
				schedules.GET("/timetable", h.Schedule.GetTimetable)
				schedules.POST("/timetable", middleware.RoleAuth(model.RoleAdmin, model.RoleHOD), h.Schedule.SaveTimetable)
			}

			// 考勤
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", middleware.RoleAuth(model.RoleAdmin, model.RoleHOD, model.RoleFaculty), h.Attendance.ListByClass)
				attendance.GET("/me", h.Attendance.MyAttendance)
				attendance.POST("", middleware.RoleAuth(model.RoleFaculty, model.RoleHOD), h.Attendance.Mark)
			}

			// 课程表导出
			export := authorized.Group("/export")
			{
				export.GET("/timetable.xlsx", h.Export.TimetableXLSX)
				export.GET("/timetable.ics", h.Export.TimetableICS)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
