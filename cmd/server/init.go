package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/batkt/sudalgaaQRBackend/config"
	attendancemodels "github.com/batkt/sudalgaaQRBackend/internal/api/attendance/models"
	departmentmodels "github.com/batkt/sudalgaaQRBackend/internal/api/department/models"
	employeemodels "github.com/batkt/sudalgaaQRBackend/internal/api/employee/models"
	responsemodels "github.com/batkt/sudalgaaQRBackend/internal/api/response/models"
	settingsmodels "github.com/batkt/sudalgaaQRBackend/internal/api/settings/models"
	surveymodels "github.com/batkt/sudalgaaQRBackend/internal/api/survey/models"
	"github.com/batkt/sudalgaaQRBackend/internal/database"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
)

// InitGlobal initializes the process-wide state every domain service depends
// on. Order matters: config before database, database before indexes.
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initValidator registers the custom validators (objectid, register).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB connects to MongoDB, ensures every collection exists
// and builds the indexes declared on the model structs.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)

	indexed := []struct {
		collection string
		model      interface{}
	}{
		{global.ColNames.Employees, employeemodels.Employee{}},
		{global.ColNames.Departments, departmentmodels.Department{}},
		{global.ColNames.QuestionSets, surveymodels.QuestionSet{}},
		{global.ColNames.Responses, responsemodels.Response{}},
		{global.ColNames.Attendance, attendancemodels.Attendance{}},
		{global.ColNames.Settings, settingsmodels.Setting{}},
		{global.ColNames.Keywords, settingsmodels.Keyword{}},
	}
	for _, entry := range indexed {
		if err := database.CreateIndexes(context.TODO(), db.Collection(entry.collection), entry.model); err != nil {
			logrus.Fatalf("Failed to create indexes for %s: %v", entry.collection, err)
		}
	}
	logrus.Info("Ensured collection indexes")
}
