package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"myplanner/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
