// Package router maps URLs to handlers and applies the route-level middleware.
package router

import (
	"ecycle/config"
	"ecycle/internal/delivery/http/middleware"
	"ecycle/internal/delivery/http/router/handler"
	"ecycle/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects everything the route table needs.
type RouterParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.Metrics

	RequestIDMiddleware *middleware.RequestIDMiddleware
	AuthMiddleware      *middleware.AuthMiddleware
	MetricsMiddleware   *middleware.MetricsMiddleware

	HomeHandler      *handler.HomeHandler
	LocatorHandler   *handler.LocatorHandler
	LearnHandler     *handler.LearnHandler
	EstimateHandler  *handler.EstimateHandler
	DashboardHandler *handler.DashboardHandler
	UserHandler      *handler.UserHandler
	FacilityHandler  *handler.FacilityAPIHandler
	SchoolHandler    *handler.SchoolHandler
	HealthHandler    *handler.HealthHandler
}

// RegisterRoutes wires all routes of the application.
func RegisterRoutes(e *echo.Echo, params RouterParams) {
	e.Use(params.RequestIDMiddleware.Process)
	e.Use(params.MetricsMiddleware.Process)
	e.Use(params.AuthMiddleware.Identify)

	// Web pages.
	e.GET("/", params.HomeHandler.Home)
	e.GET("/locator/", params.LocatorHandler.Locator)
	e.POST("/locator/", params.LocatorHandler.Locator)
	e.GET("/learn/", params.LearnHandler.Learn)
	e.GET("/estimate/", params.EstimateHandler.EstimateForm)
	e.POST("/estimate/", params.EstimateHandler.Estimate)

	// Account flows.
	e.GET("/register/", params.UserHandler.RegisterForm)
	e.POST("/register/", params.UserHandler.Register)
	e.GET("/login/", params.UserHandler.LoginForm)
	e.POST("/login/", params.UserHandler.Login)
	e.GET("/logout/", params.UserHandler.Logout)

	// The dashboard requires a valid session.
	dashboard := e.Group("/dashboard", params.AuthMiddleware.Authenticate)
	dashboard.GET("/", params.DashboardHandler.Dashboard)
	dashboard.POST("/", params.DashboardHandler.Recycle)

	// Machine-readable facility feed.
	api := e.Group("/api")
	api.GET("/facilities/", params.FacilityHandler.Feed)
	api.GET("/facilities/:id/qr", params.FacilityHandler.LocationQR)

	// School roster CRUD.
	school := api.Group("/school")
	school.POST("/classrooms/", params.SchoolHandler.CreateClassRoom)
	school.GET("/classrooms/", params.SchoolHandler.ListClassRooms)
	school.GET("/classrooms/:id", params.SchoolHandler.GetClassRoom)
	school.DELETE("/classrooms/:id", params.SchoolHandler.DeleteClassRoom)
	school.GET("/classrooms/:id/subjects", params.SchoolHandler.ListSubjects)
	school.GET("/classrooms/:id/students", params.SchoolHandler.ListStudents)

	school.POST("/subjects/", params.SchoolHandler.CreateSubject)
	school.GET("/subjects/:id", params.SchoolHandler.GetSubject)
	school.DELETE("/subjects/:id", params.SchoolHandler.DeleteSubject)

	school.POST("/teachers/", params.SchoolHandler.CreateTeacher)
	school.GET("/teachers/", params.SchoolHandler.ListTeachers)
	school.GET("/teachers/:id", params.SchoolHandler.GetTeacher)
	school.DELETE("/teachers/:id", params.SchoolHandler.DeleteTeacher)

	school.POST("/students/", params.SchoolHandler.CreateStudent)
	school.GET("/students/:id", params.SchoolHandler.GetStudent)
	school.DELETE("/students/:id", params.SchoolHandler.DeleteStudent)
	school.GET("/students/:id/attendance", params.SchoolHandler.ListAttendance)
	school.GET("/students/:id/marks", params.SchoolHandler.ListMarks)
	school.POST("/attendance/", params.SchoolHandler.RecordAttendance)
	school.POST("/marks/", params.SchoolHandler.RecordMark)

	// Operational endpoints.
	e.GET("/health", params.HealthHandler.Check)
	if params.Config.Metrics != nil && params.Config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	}
}
