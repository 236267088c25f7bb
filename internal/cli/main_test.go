package cli

import (
	"io"
	"os"
	"testing"

	"github.com/alimgiray/repostats/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}
