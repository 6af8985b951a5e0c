package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/bnema/mytab/internal/application/settings"
	"github.com/bnema/mytab/internal/domain/entity"
	"github.com/bnema/mytab/internal/domain/validation"
	"github.com/bnema/mytab/internal/logging"
)

const importSuccessMessage = "configuration imported"

// TransferConfigUseCase exports and imports the versioned config document.
type TransferConfigUseCase struct {
	store *settings.Store
	now   func() time.Time
}

// NewTransferConfigUseCase creates a new config import/export use case.
func NewTransferConfigUseCase(store *settings.Store) *TransferConfigUseCase {
	return &TransferConfigUseCase{store: store, now: time.Now}
}

// WithClock replaces the time source used for export timestamps.
func (uc *TransferConfigUseCase) WithClock(now func() time.Time) *TransferConfigUseCase {
	uc.now = now
	return uc
}

// Export captures the exportable subset of the store.
func (uc *TransferConfigUseCase) Export(ctx context.Context) (*entity.ConfigDocument, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("exporting config")

	var doc *entity.ConfigDocument
	uc.store.Mutate(func() {
		doc = &entity.ConfigDocument{
			Version:    entity.ConfigDocumentVersion,
			ExportTime: entity.FormatExportTime(uc.now()),
			Data: entity.ConfigData{
				Groups:          uc.store.Groups.Get(),
				Bookmarks:       uc.store.Bookmarks.Get(),
				BackgroundURL:   uc.store.BackgroundURL.Get(),
				WallpaperSource: uc.store.WallpaperSource.Get(),
				CurrentEngine:   uc.store.SearchEngine.Get(),
				ShowClock:       uc.store.ShowClock.Get(),
				ShowSeconds:     uc.store.ShowSeconds.Get(),
				Use24Hour:       uc.store.Use24Hour.Get(),
			},
		}
	})

	log.Info().
		Int("groups", len(doc.Data.Groups)).
		Int("bookmarks", len(doc.Data.Bookmarks)).
		Msg("config exported")
	return doc, nil
}

// ExportJSON renders the export document with two-space indentation and
// returns it with its suggested file name.
func (uc *TransferConfigUseCase) ExportJSON(ctx context.Context) (data []byte, filename string, err error) {
	doc, err := uc.Export(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode config: %w", err)
	}

	exported, err := time.Parse(entity.ExportTimeLayout, doc.ExportTime)
	if err != nil {
		exported = uc.now()
	}
	return data, ExportFileName(exported), nil
}

// ExportFileName returns mytab-config-YYYY-MM-DD.json for the UTC date of t.
func ExportFileName(t time.Time) string {
	return "mytab-config-" + t.UTC().Format(time.DateOnly) + ".json"
}

// Import reads, validates and applies a config document. size is the
// declared length of r, or a negative value when unknown. Nothing is applied
// unless the whole document is valid.
func (uc *TransferConfigUseCase) Import(ctx context.Context, r io.Reader, size int64) (*entity.ImportResult, error) {
	log := logging.FromContext(ctx)
	log.Debug().Int64("size", size).Msg("importing config")

	if size > validation.MaxConfigDocumentSize {
		return nil, parseError(validation.ErrFileTooLarge)
	}

	raw, err := io.ReadAll(io.LimitReader(r, validation.MaxConfigDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	payload, err := validation.ParseConfigDocument(raw)
	if err != nil {
		log.Warn().Err(err).Msg("config file rejected")
		return nil, parseError(err)
	}

	uc.store.Mutate(func() {
		if payload.HasGroups {
			uc.store.Groups.Set(payload.Groups)
		}
		if payload.HasBookmarks {
			uc.store.Bookmarks.Set(payload.Bookmarks)
		}
		if payload.BackgroundURL != "" {
			uc.store.BackgroundURL.Set(payload.BackgroundURL)
		}
		if payload.WallpaperSource != "" {
			uc.store.WallpaperSource.Set(payload.WallpaperSource)
		}
		if payload.CurrentEngine != "" {
			uc.store.SearchEngine.Set(payload.CurrentEngine)
		}
		if payload.ShowClock != nil {
			uc.store.ShowClock.Set(*payload.ShowClock)
		}
		if payload.ShowSeconds != nil {
			uc.store.ShowSeconds.Set(*payload.ShowSeconds)
		}
		if payload.Use24Hour != nil {
			uc.store.Use24Hour.Set(*payload.Use24Hour)
		}
		uc.store.RestoreInvariants(ctx)
	})

	log.Info().
		Int("groups", len(payload.Groups)).
		Int("bookmarks", len(payload.Bookmarks)).
		Str("export_time", payload.ExportTime).
		Msg("config imported")

	return &entity.ImportResult{
		Success:    true,
		Message:    importSuccessMessage,
		ImportTime: payload.ExportTime,
	}, nil
}

func parseError(err error) error {
	return fmt.Errorf("failed to parse config file: %w", err)
}

// DocumentSchema returns the JSON schema of the export document.
func (uc *TransferConfigUseCase) DocumentSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&entity.ConfigDocument{})
	schema.Title = "mytab configuration export"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return data, nil
}
