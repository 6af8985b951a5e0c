package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/infrastructure/persistence/memory"
	"github.com/bnema/mytab/internal/infrastructure/storage"
	"github.com/bnema/mytab/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestStore(t *testing.T) *settings.Store {
	t.Helper()
	return settings.NewStore(testContext(), storage.NewAdapter(memory.NewKeyValueRepository(), ""))
}

// sequentialIDs returns "id-1", "id-2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
