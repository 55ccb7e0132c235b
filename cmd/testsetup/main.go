package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/facemask-detection/roboflow-tools/pkg/config"
	"github.com/facemask-detection/roboflow-tools/pkg/setup"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	checker := setup.NewChecker(cfg, os.Stdout)
	if !checker.RunAll(context.Background()) {
		os.Exit(1)
	}
}
