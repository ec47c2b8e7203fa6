package main

import (
	"os"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/pkg/logger"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger.Log.Errorf("%v", err)
		os.Exit(1)
	}
}
