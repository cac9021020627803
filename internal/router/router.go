package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/config"
	apierrors "github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/errors"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/handlers"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/logger"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/middleware"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/repository"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/services"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/validation"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers on top of db and
// registers every route.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(logger.Middleware())
	r.Use(apierrors.Recovery())
	r.Use(middleware.CORS(cfg))

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	pageRepo := repository.NewPageRepository(db)
	functionalityRepo := repository.NewFunctionalityRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)
	userRepo := repository.NewRequirementUserRepository(db)

	validator := validation.MustNewValidator()

	// Services
	projectService := services.NewProjectService(projectRepo)
	pageService := services.NewPageService(pageRepo, projectRepo)
	functionalityService := services.NewFunctionalityService(functionalityRepo, pageRepo, validator)
	workflowService := services.NewWorkflowService(workflowRepo, projectRepo)
	userService := services.NewRequirementUserService(userRepo, projectRepo, pageRepo, functionalityRepo)

	// Handlers
	projectHandler := handlers.NewProjectHandler(projectService)
	pageHandler := handlers.NewPageHandler(pageService)
	functionalityHandler := handlers.NewFunctionalityHandler(functionalityService)
	workflowHandler := handlers.NewWorkflowHandler(workflowService)
	userHandler := handlers.NewRequirementUserHandler(userService)

	r.GET("/health", handlers.HealthCheck)

	projectID := middleware.ParseIDParam("id", "project")
	pageID := middleware.ParseIDParam("id", "page")
	functionalityID := middleware.ParseIDParam("id", "functionality")
	workflowID := middleware.ParseIDParam("id", "workflow")
	userID := middleware.ParseIDParam("id", "user")
	byProject := middleware.ParseIDParam("projectId", "project")
	byPage := middleware.ParseIDParam("pageId", "page")

	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			for _, path := range []string{"", "/"} {
				projects.GET(path, apierrors.Handle("Failed to fetch projects", projectHandler.ListProjects))
				projects.POST(path, apierrors.Handle("Failed to create project", projectHandler.CreateProject))
			}
			projects.GET("/:id", projectID, apierrors.Handle("Failed to fetch project", projectHandler.GetProject))
			projects.PUT("/:id", projectID, apierrors.Handle("Failed to update project", projectHandler.UpdateProject))
			projects.DELETE("/:id", projectID, apierrors.Handle("Failed to delete project", projectHandler.DeleteProject))
		}

		users := api.Group("/users")
		{
			users.GET("/project/:projectId", byProject, apierrors.Handle("Failed to fetch users", userHandler.ListUsers))
			for _, path := range []string{"", "/"} {
				users.POST(path, apierrors.Handle("Failed to create user", userHandler.CreateUser))
			}
			users.GET("/:id", userID, apierrors.Handle("Failed to fetch user", userHandler.GetUser))
			users.PUT("/:id", userID, apierrors.Handle("Failed to update user", userHandler.UpdateUser))
			users.DELETE("/:id", userID, apierrors.Handle("Failed to delete user", userHandler.DeleteUser))
		}

		pages := api.Group("/pages")
		{
			pages.GET("/project/:projectId", byProject, apierrors.Handle("Failed to fetch pages", pageHandler.ListPages))
			for _, path := range []string{"", "/"} {
				pages.POST(path, apierrors.Handle("Failed to create page", pageHandler.CreatePage))
			}
			pages.GET("/:id", pageID, apierrors.Handle("Failed to fetch page", pageHandler.GetPage))
			pages.PUT("/:id", pageID, apierrors.Handle("Failed to update page", pageHandler.UpdatePage))
			pages.DELETE("/:id", pageID, apierrors.Handle("Failed to delete page", pageHandler.DeletePage))
		}

		functionalities := api.Group("/functionalities")
		{
			functionalities.GET("/page/:pageId", byPage, apierrors.Handle("Failed to fetch functionalities", functionalityHandler.ListFunctionalities))
			for _, path := range []string{"", "/"} {
				functionalities.POST(path, apierrors.Handle("Failed to create functionality", functionalityHandler.CreateFunctionality))
			}
			functionalities.GET("/:id", functionalityID, apierrors.Handle("Failed to fetch functionality", functionalityHandler.GetFunctionality))
			functionalities.PUT("/:id", functionalityID, apierrors.Handle("Failed to update functionality", functionalityHandler.UpdateFunctionality))
			functionalities.DELETE("/:id", functionalityID, apierrors.Handle("Failed to delete functionality", functionalityHandler.DeleteFunctionality))
		}

		workflows := api.Group("/workflows")
		{
			workflows.GET("/project/:projectId", byProject, apierrors.Handle("Failed to fetch workflows", workflowHandler.ListWorkflows))
			for _, path := range []string{"", "/"} {
				workflows.POST(path, apierrors.Handle("Failed to create workflow", workflowHandler.CreateWorkflow))
			}
			workflows.GET("/:id", workflowID, apierrors.Handle("Failed to fetch workflow", workflowHandler.GetWorkflow))
			workflows.PUT("/:id", workflowID, apierrors.Handle("Failed to update workflow", workflowHandler.UpdateWorkflow))
			workflows.DELETE("/:id", workflowID, apierrors.Handle("Failed to delete workflow", workflowHandler.DeleteWorkflow))
		}
	}

	r.NoRoute(apierrors.NotFoundRoute)

	return r
}
