package services

import (
	"context"
	"testing"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/database"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/repository"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/validation"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceTestEnv struct {
	db            *gorm.DB
	projects      *ProjectService
	pages         *PageService
	functionality *FunctionalityService
	workflows     *WorkflowService
	users         *RequirementUserService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(database.Models...))

	projectRepo := repository.NewProjectRepository(db)
	pageRepo := repository.NewPageRepository(db)
	functionalityRepo := repository.NewFunctionalityRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)
	userRepo := repository.NewRequirementUserRepository(db)
	validator := validation.MustNewValidator()

	return serviceTestEnv{
		db:            db,
		projects:      NewProjectService(projectRepo),
		pages:         NewPageService(pageRepo, projectRepo),
		functionality: NewFunctionalityService(functionalityRepo, pageRepo, validator),
		workflows:     NewWorkflowService(workflowRepo, projectRepo),
		users:         NewRequirementUserService(userRepo, projectRepo, pageRepo, functionalityRepo),
	}
}

func strPtr(s string) *string {
	return &s
}

func (env serviceTestEnv) createProject(t *testing.T, name string) *models.Project {
	t.Helper()
	project, err := env.projects.CreateProject(context.Background(), CreateProjectInput{Name: name})
	require.NoError(t, err)
	return project
}

func (env serviceTestEnv) createPage(t *testing.T, projectID uint64, name string) *models.Page {
	t.Helper()
	page, err := env.pages.CreatePage(context.Background(), CreatePageInput{ProjectID: projectID, Name: name})
	require.NoError(t, err)
	return page
}

func (env serviceTestEnv) createFunctionality(t *testing.T, pageID uint64, name string) *models.Functionality {
	t.Helper()
	functionality, err := env.functionality.CreateFunctionality(context.Background(), CreateFunctionalityInput{
		PageID: pageID,
		Name:   name,
		Type:   models.FunctionalityTypeButton,
	})
	require.NoError(t, err)
	return functionality
}

func TestProjectService_CreateAndUpdate(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.projects.CreateProject(ctx, CreateProjectInput{Name: "  "})
	require.ErrorIs(t, err, ErrProjectNameRequired)

	project, err := env.projects.CreateProject(ctx, CreateProjectInput{Name: "Shop", Description: strPtr("")})
	require.NoError(t, err)
	require.Nil(t, project.Description)

	updated, err := env.projects.UpdateProject(ctx, project.ID, UpdateProjectInput{Description: strPtr("Online store")})
	require.NoError(t, err)
	require.Equal(t, "Shop", updated.Name)
	require.Equal(t, "Online store", *updated.Description)
	require.Equal(t, project.CreatedAt.Unix(), updated.CreatedAt.Unix())

	_, err = env.projects.UpdateProject(ctx, project.ID, UpdateProjectInput{Name: strPtr("")})
	require.ErrorIs(t, err, ErrProjectNameEmpty)

	_, err = env.projects.UpdateProject(ctx, 999, UpdateProjectInput{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrProjectNotFound)

	require.ErrorIs(t, env.projects.DeleteProject(ctx, 999), ErrProjectNotFound)
}

func TestPageService_CreateRequiresProject(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.pages.CreatePage(ctx, CreatePageInput{Name: "Home"})
	require.ErrorIs(t, err, ErrPageFieldsRequired)

	_, err = env.pages.CreatePage(ctx, CreatePageInput{ProjectID: 42, Name: "Home"})
	require.ErrorIs(t, err, ErrParentProjectNotFound)
}

func TestPageService_GetPageIncludesFunctionalities(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	project := env.createProject(t, "Shop")
	page := env.createPage(t, project.ID, "Checkout")

	loaded, err := env.pages.GetPage(ctx, page.ID)
	require.NoError(t, err)
	require.Empty(t, loaded.Functionalities)

	env.createFunctionality(t, page.ID, "Pay")
	env.createFunctionality(t, page.ID, "Cancel")

	loaded, err = env.pages.GetPage(ctx, page.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Functionalities, 2)

	_, err = env.pages.GetPage(ctx, 999)
	require.ErrorIs(t, err, ErrPageNotFound)
}

func TestFunctionalityService_Validation(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	project := env.createProject(t, "Shop")
	page := env.createPage(t, project.ID, "Checkout")

	tests := []struct {
		name    string
		input   CreateFunctionalityInput
		wantErr error
	}{
		{
			name:    "missing type",
			input:   CreateFunctionalityInput{PageID: page.ID, Name: "Pay"},
			wantErr: ErrFunctionalityFieldsRequired,
		},
		{
			name:    "unknown type",
			input:   CreateFunctionalityInput{PageID: page.ID, Name: "Pay", Type: "link"},
			wantErr: ErrInvalidFunctionalityType,
		},
		{
			name:    "unknown page",
			input:   CreateFunctionalityInput{PageID: 999, Name: "Pay", Type: models.FunctionalityTypeButton},
			wantErr: ErrParentPageNotFound,
		},
		{
			name: "fields not a list",
			input: CreateFunctionalityInput{
				PageID: page.ID, Name: "Signup", Type: models.FunctionalityTypeForm,
				Fields: datatypes.JSON(`{"name":"email"}`),
			},
			wantErr: ErrInvalidFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.functionality.CreateFunctionality(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFunctionalityService_FieldsStoredVerbatim(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	project := env.createProject(t, "Shop")
	page := env.createPage(t, project.ID, "Signup")

	fields := `[{"name":"email","type":"text","required":true,"validation":"email"}]`
	created, err := env.functionality.CreateFunctionality(ctx, CreateFunctionalityInput{
		PageID: page.ID,
		Name:   "Signup form",
		Type:   models.FunctionalityTypeForm,
		Fields: datatypes.JSON(fields),
	})
	require.NoError(t, err)

	loaded, err := env.functionality.GetFunctionality(ctx, created.ID)
	require.NoError(t, err)
	require.JSONEq(t, fields, string(loaded.Fields))

	// Type is checked again when supplied on update
	bad := models.FunctionalityType("link")
	_, err = env.functionality.UpdateFunctionality(ctx, created.ID, UpdateFunctionalityInput{Type: &bad})
	require.ErrorIs(t, err, ErrInvalidFunctionalityType)

	table := models.FunctionalityTypeTable
	updated, err := env.functionality.UpdateFunctionality(ctx, created.ID, UpdateFunctionalityInput{
		Type:          &table,
		DataToDisplay: strPtr("orders"),
	})
	require.NoError(t, err)
	require.Equal(t, models.FunctionalityTypeTable, updated.Type)
	require.Equal(t, "Signup form", updated.Name)
	require.JSONEq(t, fields, string(updated.Fields))

	cleared, err := env.functionality.UpdateFunctionality(ctx, created.ID, UpdateFunctionalityInput{Fields: datatypes.JSON("null")})
	require.NoError(t, err)
	require.Nil(t, cleared.Fields)
}

func TestWorkflowService_FlowchartStoredVerbatim(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	project := env.createProject(t, "Shop")

	_, err := env.workflows.CreateWorkflow(ctx, CreateWorkflowInput{ProjectID: project.ID})
	require.ErrorIs(t, err, ErrWorkflowFieldsRequired)

	// Any JSON value is accepted as the graph
	list, err := env.workflows.CreateWorkflow(ctx, CreateWorkflowInput{
		ProjectID:     project.ID,
		Name:          "Sketch",
		FlowchartData: datatypes.JSON(`[1,2]`),
	})
	require.NoError(t, err)
	require.JSONEq(t, `[1,2]`, string(list.FlowchartData))

	odd, err := env.workflows.UpdateWorkflow(ctx, list.ID, UpdateWorkflowInput{FlowchartData: datatypes.JSON(`{"nodes":"oops"}`)})
	require.NoError(t, err)
	require.JSONEq(t, `{"nodes":"oops"}`, string(odd.FlowchartData))

	graph := `{"nodes":[{"id":"1","data":{"label":"Start"}}],"edges":[{"id":"e1","source":"1","target":"9"}]}`
	workflow, err := env.workflows.CreateWorkflow(ctx, CreateWorkflowInput{
		ProjectID:     project.ID,
		Name:          "Checkout",
		FlowchartData: datatypes.JSON(graph),
	})
	require.NoError(t, err)

	loaded, err := env.workflows.GetWorkflow(ctx, workflow.ID)
	require.NoError(t, err)
	require.JSONEq(t, graph, string(loaded.FlowchartData))

	renamed, err := env.workflows.UpdateWorkflow(ctx, workflow.ID, UpdateWorkflowInput{Name: strPtr("Payment")})
	require.NoError(t, err)
	require.JSONEq(t, graph, string(renamed.FlowchartData))

	require.NoError(t, env.workflows.DeleteWorkflow(ctx, workflow.ID))
	_, err = env.workflows.GetWorkflow(ctx, workflow.ID)
	require.ErrorIs(t, err, ErrWorkflowNotFound)
}

func TestRequirementUserService_AccessLists(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	project := env.createProject(t, "Shop")
	var pageIDs []uint64
	for _, name := range []string{"Home", "Cart", "Checkout", "Account"} {
		pageIDs = append(pageIDs, env.createPage(t, project.ID, name).ID)
	}
	pay := env.createFunctionality(t, pageIDs[2], "Pay")

	user, err := env.users.CreateUser(ctx, CreateUserInput{
		ProjectID:           project.ID,
		Name:                "Customer",
		Privileges:          []string{"read", "purchase"},
		PageAccess:          []uint64{pageIDs[0], pageIDs[1], pageIDs[2], pageIDs[0]},
		FunctionalityAccess: []uint64{pay.ID},
	})
	require.NoError(t, err)

	loaded, err := env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, loaded.PageAccess, 3)
	require.Len(t, loaded.FunctionalityAccess, 1)
	require.Equal(t, []string{"read", "purchase"}, []string(loaded.Privileges))

	// Replace {1,2,3} with [2,4], functionality access omitted
	replacement := []uint64{pageIDs[1], pageIDs[3]}
	_, err = env.users.UpdateUser(ctx, user.ID, UpdateUserInput{PageAccess: &replacement})
	require.NoError(t, err)

	loaded, err = env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, replacement, accessPageIDs(loaded))
	require.Len(t, loaded.FunctionalityAccess, 1)

	// An empty list clears
	empty := []uint64{}
	_, err = env.users.UpdateUser(ctx, user.ID, UpdateUserInput{FunctionalityAccess: &empty})
	require.NoError(t, err)

	loaded, err = env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, loaded.FunctionalityAccess)
	require.Len(t, loaded.PageAccess, 2)
}

func TestRequirementUserService_AccessMustExist(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	shop := env.createProject(t, "Shop")
	blog := env.createProject(t, "Blog")
	shopPage := env.createPage(t, shop.ID, "Home")
	blogPage := env.createPage(t, blog.ID, "Posts")
	blogButton := env.createFunctionality(t, blogPage.ID, "Publish")

	_, err := env.users.CreateUser(ctx, CreateUserInput{ProjectID: shop.ID})
	require.ErrorIs(t, err, ErrUserFieldsRequired)

	_, err = env.users.CreateUser(ctx, CreateUserInput{ProjectID: 999, Name: "Ghost"})
	require.ErrorIs(t, err, ErrParentProjectNotFound)

	_, err = env.users.CreateUser(ctx, CreateUserInput{
		ProjectID:  shop.ID,
		Name:       "Editor",
		PageAccess: []uint64{shopPage.ID, 12345},
	})
	require.ErrorIs(t, err, ErrInvalidPageAccess)

	_, err = env.users.CreateUser(ctx, CreateUserInput{
		ProjectID:           shop.ID,
		Name:                "Editor",
		FunctionalityAccess: []uint64{12345},
	})
	require.ErrorIs(t, err, ErrInvalidFunctionalityAccess)

	users, err := env.users.ListUsersByProject(ctx, shop.ID)
	require.NoError(t, err)
	require.Empty(t, users)

	// Existing rows are accepted even when they sit in another project
	user, err := env.users.CreateUser(ctx, CreateUserInput{
		ProjectID:           shop.ID,
		Name:                "Editor",
		PageAccess:          []uint64{shopPage.ID, blogPage.ID},
		FunctionalityAccess: []uint64{blogButton.ID},
	})
	require.NoError(t, err)

	loaded, err := env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint64{shopPage.ID, blogPage.ID}, accessPageIDs(loaded))
	require.Len(t, loaded.FunctionalityAccess, 1)

	missing := []uint64{shopPage.ID, 12345}
	_, err = env.users.UpdateUser(ctx, user.ID, UpdateUserInput{Name: strPtr("Chief"), PageAccess: &missing})
	require.ErrorIs(t, err, ErrInvalidPageAccess)

	loaded, err = env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Editor", loaded.Name)
	require.Len(t, loaded.PageAccess, 2)

	_, err = env.users.UpdateUser(ctx, 999, UpdateUserInput{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRequirementUserService_EmptyPrivilegesKept(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	project := env.createProject(t, "Shop")

	user, err := env.users.CreateUser(ctx, CreateUserInput{ProjectID: project.ID, Name: "Guest", Privileges: []string{}})
	require.NoError(t, err)
	require.NotNil(t, user.Privileges)

	loaded, err := env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Privileges)
	require.Empty(t, loaded.Privileges)

	omitted, err := env.users.CreateUser(ctx, CreateUserInput{ProjectID: project.ID, Name: "Visitor"})
	require.NoError(t, err)

	loaded, err = env.users.GetUser(ctx, omitted.ID)
	require.NoError(t, err)
	require.Nil(t, loaded.Privileges)
}

func TestProjectService_DeleteCascades(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	project := env.createProject(t, "Shop")
	page := env.createPage(t, project.ID, "Home")
	button := env.createFunctionality(t, page.ID, "Buy")
	_, err := env.users.CreateUser(ctx, CreateUserInput{
		ProjectID:           project.ID,
		Name:                "Customer",
		PageAccess:          []uint64{page.ID},
		FunctionalityAccess: []uint64{button.ID},
	})
	require.NoError(t, err)

	require.NoError(t, env.projects.DeleteProject(ctx, project.ID))

	_, err = env.projects.GetProject(ctx, project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
	_, err = env.pages.GetPage(ctx, page.ID)
	require.ErrorIs(t, err, ErrPageNotFound)
	_, err = env.functionality.GetFunctionality(ctx, button.ID)
	require.ErrorIs(t, err, ErrFunctionalityNotFound)

	var accessRows int64
	require.NoError(t, env.db.Model(&models.UserPageAccess{}).Count(&accessRows).Error)
	require.Zero(t, accessRows)
}

func accessPageIDs(user *models.RequirementUser) []uint64 {
	ids := make([]uint64, 0, len(user.PageAccess))
	for _, access := range user.PageAccess {
		ids = append(ids, access.PageID)
	}
	return ids
}
