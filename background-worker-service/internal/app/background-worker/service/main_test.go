package service

import (
	"io"
	"os"
	"testing"

	"trustmarket/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter("background-worker-service", "error", io.Discard)
	os.Exit(m.Run())
}
