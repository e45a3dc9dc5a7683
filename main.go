package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/loxcraft/loxvm/cmd"
)

func main() {
	if err := cmd.App().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(cmd.ExitUsage)
	}
}
