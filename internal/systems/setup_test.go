package systems

import (
	"os"
	"testing"

	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	// Глобальный логгер нужен системам до запуска тестов
	logger.Init()

	os.Exit(m.Run())
}
