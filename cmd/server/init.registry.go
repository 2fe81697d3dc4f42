package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/batkt/sudalgaaQRBackend/config"
	"github.com/batkt/sudalgaaQRBackend/internal/global"
)

// InitRegistry registers every MongoDB collection the services resolve at
// construction time.
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections registers the collections named in global.ColNames.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	colNames := []string{
		global.ColNames.Employees,
		global.ColNames.Departments,
		global.ColNames.QuestionSets,
		global.ColNames.Responses,
		global.ColNames.Attendance,
		global.ColNames.Settings,
		global.ColNames.Keywords,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
