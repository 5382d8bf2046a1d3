package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hubtrack/attendance-backend-go/internal/config"
	attendanceDomain "github.com/hubtrack/attendance-backend-go/internal/domain/attendance"
	employeeDomain "github.com/hubtrack/attendance-backend-go/internal/domain/employee"
	officeDomain "github.com/hubtrack/attendance-backend-go/internal/domain/office"
	appHTTP "github.com/hubtrack/attendance-backend-go/internal/handler/http"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/cron"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/database"
	"github.com/hubtrack/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/hubtrack/attendance-backend-go/internal/repository/memory"
	"github.com/hubtrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hubtrack/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/hubtrack/attendance-backend-go/internal/service/employee"
	officeService "github.com/hubtrack/attendance-backend-go/internal/service/office"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	var (
		employeeRepo   employeeDomain.EmployeeRepository
		officeRepo     officeDomain.OfficeRepository
		attendanceRepo attendanceDomain.AttendanceRepository
		limitStore     ratelimit.Store
	)

	switch cfg.Store.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		officeRepo = postgresql.NewOfficeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
		limitStore = postgresql.NewRateLimitStore(db)
	case "memory":
		employeeRepo = memory.NewEmployeeRepository()
		officeRepo = memory.NewOfficeRepository()
		attendanceRepo = memory.NewAttendanceRepository()
		limitStore = ratelimit.NewMemoryStore()
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}

	limiter := ratelimit.NewLimiter(limitStore, cfg.Attendance.RateLimitInterval)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, officeRepo)
	officeSvc := officeService.NewOfficeService(officeRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		officeRepo,
		cfg.Attendance.GeofenceRadiusMeters,
		cfg.Attendance.Cooldown,
		loc,
	)

	gatewayHandler := appHTTP.NewGatewayHandler(employeeSvc, officeSvc, attendanceSvc, limiter)
	router := appHTTP.NewRouter(gatewayHandler, cfg.App.Env)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("rate-limit-purge", time.Hour, func(ctx context.Context) error {
		_, err := limiter.Purge(ctx, time.Hour)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
