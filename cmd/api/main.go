package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/config"
	appHTTP "github.com/easycodingbd/hazira-backend-go/internal/handler/http"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/bkash"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/cron"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/database"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/device"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
	"github.com/easycodingbd/hazira-backend-go/internal/repository/postgresql"
	attendanceService "github.com/easycodingbd/hazira-backend-go/internal/service/attendance"
	companyService "github.com/easycodingbd/hazira-backend-go/internal/service/company"
	departmentService "github.com/easycodingbd/hazira-backend-go/internal/service/department"
	employeeService "github.com/easycodingbd/hazira-backend-go/internal/service/employee"
	holidayService "github.com/easycodingbd/hazira-backend-go/internal/service/holiday"
	leaveService "github.com/easycodingbd/hazira-backend-go/internal/service/leave"
	payrollService "github.com/easycodingbd/hazira-backend-go/internal/service/payroll"
	subscriptionService "github.com/easycodingbd/hazira-backend-go/internal/service/subscription"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	bkashClient := bkash.NewClient(cfg.Bkash)
	gateway := device.NewAgentClient(cfg.Attendance.AgentURL)
	reconciler := attendanceService.NewReconciler(punchRepo, leaveRepo, holidayRepo, cfg.Location())

	companySvc := companyService.NewCompanyService(companyRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, companyRepo, subscriptionRepo)
	attendanceSvc := attendanceService.NewAttendanceService(reconciler, employeeRepo, departmentRepo, gateway, cfg.Attendance)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, departmentRepo, reconciler, cfg.Location())
	subscriptionSvc := subscriptionService.NewSubscriptionService(subscriptionRepo, bkashClient)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("device-sync", cfg.Attendance.DeviceSyncInterval, attendanceSvc.SyncAll)
	scheduler.AddJob("subscription-expiry", time.Hour, func(ctx context.Context) error {
		expired, err := subscriptionRepo.ExpireOutdated(ctx)
		if err != nil {
			return err
		}
		if expired > 0 {
			slog.Info("Expired outdated subscriptions", "count", expired)
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, cfg.Attendance.PushKey, appHTTP.Handlers{
		Company:      appHTTP.NewCompanyHandler(companySvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Subscription: appHTTP.NewSubscriptionHandler(subscriptionSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
