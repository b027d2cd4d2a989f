package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := Execute(); err != nil {
		logrus.StandardLogger().Errorln(err)
		os.Exit(1)
	}
}
