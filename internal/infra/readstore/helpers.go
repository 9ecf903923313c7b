package readstore

import (
	"errors"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"repairbook/internal/infra"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func wrapRead(msg string, err error) error {
	kind := infra.KindDBFailure
	if errors.Is(err, pgx.ErrNoRows) {
		kind = infra.KindNotFound
	}
	return infra.WrapRepoErr(slog.Default(), kind, msg, err)
}
