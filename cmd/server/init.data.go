package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	employeemodels "github.com/batkt/sudalgaaQRBackend/internal/api/employee/models"
	employeesvc "github.com/batkt/sudalgaaQRBackend/internal/api/employee/service"
	"github.com/batkt/sudalgaaQRBackend/internal/api/middleware"
	settingsmodels "github.com/batkt/sudalgaaQRBackend/internal/api/settings/models"
	settingssvc "github.com/batkt/sudalgaaQRBackend/internal/api/settings/service"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
	"github.com/batkt/sudalgaaQRBackend/internal/logger"
)

// InitDefaultData seeds the admin account and the settings document on a
// fresh database. Only runs in init mode; existing documents are never
// overwritten.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("Init mode disabled, skipping default data")
		return
	}

	ctx := context.Background()

	if err := seedAdminEmployee(ctx); err != nil {
		log.Fatalf("Failed to seed admin employee: %v", err)
	}
	if err := seedDefaultSetting(ctx); err != nil {
		log.Fatalf("Failed to seed default setting: %v", err)
	}

	log.Info("Default data initialized")
}

// seedAdminEmployee creates the admin login when no account has it yet. The
// initial password is the configured import default and must be changed
// after first login.
func seedAdminEmployee(ctx context.Context) error {
	employeeService, err := employeesvc.NewEmployeeService()
	if err != nil {
		return err
	}

	count, err := employeeService.CountDocuments(ctx, bson.M{"loginName": "admin"})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Admin employee already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(global.ServerConfig.ImportDefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := employeemodels.Employee{
		Name:        "Админ",
		LoginName:   "admin",
		Password:    string(hash),
		AccessLevel: middleware.AccessLevelAdmin,
	}
	if _, err := employeeService.InsertOne(ctx, admin); err != nil {
		return err
	}

	logger.GetAppLogger().Info("Seeded admin employee")
	return nil
}

// seedDefaultSetting inserts the settings document with the default
// thresholds when the collection is empty.
func seedDefaultSetting(ctx context.Context) error {
	settingService, err := settingssvc.NewSettingService()
	if err != nil {
		return err
	}

	count, err := settingService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.GetAppLogger().Info("Setting document already exists")
		return nil
	}

	setting := settingsmodels.Setting{
		NegativeThreshold:   2,
		PositiveThreshold:   4,
		BroadColumnFallback: true,
	}
	if _, err := settingService.InsertOne(ctx, setting); err != nil {
		return err
	}

	logger.GetAppLogger().Info("Seeded default setting")
	return nil
}
