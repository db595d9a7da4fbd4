package main

import (
	"fmt"
	"net/http"

	"github.com/atlasaero/hr-time-backend-go/internal/config"
	appHTTP "github.com/atlasaero/hr-time-backend-go/internal/handler/http"
	"github.com/atlasaero/hr-time-backend-go/internal/pkg/database"
	"github.com/atlasaero/hr-time-backend-go/internal/pkg/jwt"
	"github.com/atlasaero/hr-time-backend-go/internal/repository/postgresql"
	worklogService "github.com/atlasaero/hr-time-backend-go/internal/service/worklog"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	worklogRepo := postgresql.NewWorklogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	worklogSvc := worklogService.NewWorklogService(worklogRepo, employeeRepo)

	worklogHandler := appHTTP.NewWorklogHandler(worklogSvc)

	router := appHTTP.NewRouter(JWTService, worklogHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
