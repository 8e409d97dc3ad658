// Package router contains routing setup for the HTTP delivery.
package router

import (
	"pssports/internal/delivery/http/middleware"
	"pssports/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RoleHandler       *handler.RoleHandler
	SchoolHandler     *handler.SchoolHandler
	TrainerHandler    *handler.TrainerHandler
	PlayerHandler     *handler.PlayerHandler
	GuardianHandler   *handler.GuardianHandler
	ModalityHandler   *handler.ModalityHandler
	CategoryHandler   *handler.CategoryHandler
	ClassHandler      *handler.ClassHandler
	EnrollmentHandler *handler.EnrollmentHandler
	LeadHandler       *handler.LeadHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Everything
// except /health, /auth/* and the public magic-link resolution requires a
// bearer access token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/refresh-token", p.AuthHandler.RefreshToken)
		authGroup.POST("/logout", p.AuthHandler.Logout)
	}

	// Trial visitors resolve their booking link without a session.
	e.GET("/agendamento/:token", p.LeadHandler.ResolveMagicToken)

	authenticated := e.Group("", p.AuthMiddleware.Authenticate)

	userGroup := authenticated.Group("/users")
	{
		userGroup.POST("", p.UserHandler.Create)
		userGroup.GET("", p.UserHandler.List)
		userGroup.GET("/:id", p.UserHandler.GetByID)
		userGroup.PUT("/:id", p.UserHandler.Update)
		userGroup.DELETE("/:id", p.UserHandler.Delete)
	}

	roleGroup := authenticated.Group("/roles")
	{
		roleGroup.POST("", p.RoleHandler.Create)
		roleGroup.GET("", p.RoleHandler.List)
		roleGroup.GET("/:id", p.RoleHandler.GetByID)
		roleGroup.PUT("/:id", p.RoleHandler.Update)
		roleGroup.DELETE("/:id", p.RoleHandler.Delete)
	}

	userRoleGroup := authenticated.Group("/users-roles")
	{
		userRoleGroup.POST("", p.RoleHandler.Assign)
		userRoleGroup.DELETE("", p.RoleHandler.Unassign)
		userRoleGroup.GET("/:userId", p.RoleHandler.ListByUser)
	}

	schoolGroup := authenticated.Group("/schools")
	{
		schoolGroup.POST("", p.SchoolHandler.Create)
		schoolGroup.GET("", p.SchoolHandler.List)
		schoolGroup.GET("/:id", p.SchoolHandler.GetByID)
		schoolGroup.PUT("/:id", p.SchoolHandler.Update)
		schoolGroup.DELETE("/:id", p.SchoolHandler.Delete)
	}

	trainerGroup := authenticated.Group("/trainers")
	{
		trainerGroup.POST("", p.TrainerHandler.Create)
		trainerGroup.GET("", p.TrainerHandler.List)
		trainerGroup.GET("/:id", p.TrainerHandler.GetByID)
		trainerGroup.PUT("/:id", p.TrainerHandler.Update)
		trainerGroup.DELETE("/:id", p.TrainerHandler.Delete)
	}

	playerGroup := authenticated.Group("/players")
	{
		playerGroup.POST("", p.PlayerHandler.Create)
		playerGroup.GET("", p.PlayerHandler.List)
		playerGroup.GET("/:id", p.PlayerHandler.GetByID)
		playerGroup.PUT("/:id", p.PlayerHandler.Update)
		playerGroup.DELETE("/:id", p.PlayerHandler.Delete)
	}

	guardianGroup := authenticated.Group("/guardians")
	{
		guardianGroup.POST("", p.GuardianHandler.Create)
		guardianGroup.GET("", p.GuardianHandler.List)
		guardianGroup.GET("/:id", p.GuardianHandler.GetByID)
		guardianGroup.PUT("/:id", p.GuardianHandler.Update)
		guardianGroup.DELETE("/:id", p.GuardianHandler.Delete)
		guardianGroup.POST("/:id/players/:playerId", p.GuardianHandler.LinkPlayer)
		guardianGroup.DELETE("/:id/players/:playerId", p.GuardianHandler.UnlinkPlayer)
		guardianGroup.GET("/:id/players", p.GuardianHandler.ListPlayers)
	}

	modalityGroup := authenticated.Group("/modalities")
	{
		modalityGroup.POST("", p.ModalityHandler.Create)
		modalityGroup.GET("", p.ModalityHandler.List)
		modalityGroup.GET("/:id", p.ModalityHandler.GetByID)
		modalityGroup.PUT("/:id", p.ModalityHandler.Update)
		modalityGroup.DELETE("/:id", p.ModalityHandler.Delete)
	}

	categoryGroup := authenticated.Group("/categories")
	{
		categoryGroup.POST("", p.CategoryHandler.Create)
		categoryGroup.GET("", p.CategoryHandler.List)
		categoryGroup.GET("/:id", p.CategoryHandler.GetByID)
		categoryGroup.PUT("/:id", p.CategoryHandler.Update)
		categoryGroup.DELETE("/:id", p.CategoryHandler.Delete)
	}

	classGroup := authenticated.Group("/classes")
	{
		classGroup.POST("", p.ClassHandler.Create)
		classGroup.GET("", p.ClassHandler.List)
		classGroup.GET("/:id", p.ClassHandler.GetByID)
		classGroup.PUT("/:id", p.ClassHandler.Update)
		classGroup.DELETE("/:id", p.ClassHandler.Delete)
	}

	enrollmentGroup := authenticated.Group("/enrollments")
	{
		enrollmentGroup.POST("", p.EnrollmentHandler.Create)
		enrollmentGroup.GET("", p.EnrollmentHandler.List)
		enrollmentGroup.GET("/:id", p.EnrollmentHandler.GetByID)
		enrollmentGroup.PUT("/:id", p.EnrollmentHandler.Update)
		enrollmentGroup.DELETE("/:id", p.EnrollmentHandler.Delete)
	}

	attendanceGroup := authenticated.Group("/attendances")
	{
		attendanceGroup.POST("", p.EnrollmentHandler.CreateAttendance)
		attendanceGroup.GET("", p.EnrollmentHandler.ListAttendances)
		attendanceGroup.GET("/:id", p.EnrollmentHandler.GetAttendanceByID)
		attendanceGroup.PUT("/:id", p.EnrollmentHandler.UpdateAttendance)
		attendanceGroup.DELETE("/:id", p.EnrollmentHandler.DeleteAttendance)
	}

	leadGroup := authenticated.Group("/leads")
	{
		leadGroup.POST("", p.LeadHandler.Create)
		leadGroup.GET("", p.LeadHandler.List)
		leadGroup.GET("/:id", p.LeadHandler.GetByID)
		leadGroup.PUT("/:id", p.LeadHandler.Update)
		leadGroup.DELETE("/:id", p.LeadHandler.Delete)
		leadGroup.POST("/:id/magic-link", p.LeadHandler.IssueMagicLink)
	}
}
