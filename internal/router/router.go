package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"carelink/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	caregiverHandler *handler.CaregiverHandler,
	memberHandler *handler.MemberHandler,
	addressHandler *handler.AddressHandler,
	jobHandler *handler.JobHandler,
	jobApplicationHandler *handler.JobApplicationHandler,
	appointmentHandler *handler.AppointmentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:user_id", userHandler.GetUser)
	api.POST("/users", userHandler.CreateUser)
	api.PUT("/users/:user_id", userHandler.UpdateUser)
	api.DELETE("/users/:user_id", userHandler.DeleteUser)

	api.GET("/caregivers", caregiverHandler.ListCaregivers)
	api.GET("/caregivers/:caregiver_user_id", caregiverHandler.GetCaregiver)
	api.POST("/caregivers", caregiverHandler.CreateCaregiver)
	api.PUT("/caregivers/:caregiver_user_id", caregiverHandler.UpdateCaregiver)
	api.DELETE("/caregivers/:caregiver_user_id", caregiverHandler.DeleteCaregiver)

	api.GET("/members", memberHandler.ListMembers)
	api.GET("/members/:member_user_id", memberHandler.GetMember)
	api.POST("/members", memberHandler.CreateMember)
	api.PUT("/members/:member_user_id", memberHandler.UpdateMember)
	api.DELETE("/members/:member_user_id", memberHandler.DeleteMember)

	api.GET("/addresses", addressHandler.ListAddresses)
	api.GET("/addresses/:member_user_id", addressHandler.GetAddress)
	api.POST("/addresses", addressHandler.CreateAddress)
	api.PUT("/addresses/:member_user_id", addressHandler.UpdateAddress)
	api.DELETE("/addresses/:member_user_id", addressHandler.DeleteAddress)

	api.GET("/jobs", jobHandler.ListJobs)
	api.GET("/jobs/:job_id", jobHandler.GetJob)
	api.POST("/jobs", jobHandler.CreateJob)
	api.PUT("/jobs/:job_id", jobHandler.UpdateJob)
	api.DELETE("/jobs/:job_id", jobHandler.DeleteJob)

	api.GET("/job-applications", jobApplicationHandler.ListJobApplications)
	api.GET("/job-applications/:caregiver_user_id/:job_id", jobApplicationHandler.GetJobApplication)
	api.POST("/job-applications", jobApplicationHandler.CreateJobApplication)
	api.PUT("/job-applications/:caregiver_user_id/:job_id", jobApplicationHandler.MoveJobApplication)
	api.DELETE("/job-applications/:caregiver_user_id/:job_id", jobApplicationHandler.DeleteJobApplication)

	api.GET("/appointments", appointmentHandler.ListAppointments)
	api.GET("/appointments/:appointment_id", appointmentHandler.GetAppointment)
	api.POST("/appointments", appointmentHandler.CreateAppointment)
	api.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
	api.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
