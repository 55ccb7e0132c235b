package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/facemask-detection/roboflow-tools/pkg/config"
	apperrors "github.com/facemask-detection/roboflow-tools/pkg/errors"
	"github.com/facemask-detection/roboflow-tools/pkg/uploader"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	service := uploader.New(cfg)
	if err := service.Run(context.Background()); err != nil {
		if !apperrors.IsCancelled(err) {
			log.WithError(err).Error("Upload aborted")
		}
		os.Exit(1)
	}
}
