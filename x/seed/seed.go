// Package seed resets the store and fills it with fixture data
package seed

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/totegamma/fellowship/core"
)

var tracer = otel.Tracer("seed")

// Run drops and recreates both tables, inserts the fixtures and applies Associations.
// Everything after the drop runs in one transaction.
func Run(ctx context.Context, db *gorm.DB) error {
	ctx, span := tracer.Start(ctx, "Seed.Run")
	defer span.End()

	db = db.WithContext(ctx)

	// characters references races, drop it first
	if err := db.Migrator().DropTable(&core.Character{}, &core.Race{}); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to drop tables")
	}
	if err := db.AutoMigrate(&core.Race{}, &core.Character{}); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to migrate tables")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		races := append([]core.Race(nil), Races...)
		if err := tx.CreateInBatches(&races, 100).Error; err != nil {
			return errors.Wrap(err, "failed to insert races")
		}

		characters := append([]core.Character(nil), Characters...)
		if err := tx.CreateInBatches(&characters, 100).Error; err != nil {
			return errors.Wrap(err, "failed to insert characters")
		}

		for raceID, characterIDs := range Associations {
			err := tx.Model(&core.Character{}).Where("id IN ?", characterIDs).Update("race_id", raceID).Error
			if err != nil {
				return errors.Wrapf(err, "failed to associate race %d", raceID)
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	slog.InfoContext(
		ctx,
		"database populated",
		slog.Int("races", len(Races)),
		slog.Int("characters", len(Characters)),
		slog.String("module", "seed"),
	)
	return nil
}
