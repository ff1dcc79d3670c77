package main

import (
	"os"

	"github.com/DragianXOG/diet-app/config"
	"github.com/DragianXOG/diet-app/routes"
	"github.com/DragianXOG/diet-app/services"
	"github.com/DragianXOG/diet-app/utils"
)

func main() {
	if err := utils.InitLogger(os.Getenv("LOG_MODE")); err != nil {
		panic(err)
	}
	defer utils.Log.Sync()

	config.InitDB()

	if config.App.CatalogPath != "" {
		if err := services.LoadCatalog(config.App.CatalogPath); err != nil {
			utils.Log.Warn("catalog load failed, using built-in tables",
				"path", config.App.CatalogPath, "err", err)
		}
	}

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.Log.Info("listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		utils.Log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
