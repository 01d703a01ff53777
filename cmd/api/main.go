package main

import (
	"fmt"
	"net/http"

	"github.com/fc-hr/worklog-backend-go/internal/config"
	appHTTP "github.com/fc-hr/worklog-backend-go/internal/handler/http"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/cron"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/database"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/jwt"
	"github.com/fc-hr/worklog-backend-go/internal/repository/postgresql"
	authService "github.com/fc-hr/worklog-backend-go/internal/service/auth"
	userService "github.com/fc-hr/worklog-backend-go/internal/service/user"
	worklogService "github.com/fc-hr/worklog-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	worklogRepo := postgresql.NewWorklogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	worklogSvc := worklogService.NewWorklogService(worklogRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	worklogHandler := appHTTP.NewWorklogHandler(worklogSvc)

	scheduler := cron.NewScheduler()
	worklogJobs := cron.NewWorklogJobs(worklogSvc, cfg.Worklog.AggregationInterval)
	worklogJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		worklogHandler,
		userHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
