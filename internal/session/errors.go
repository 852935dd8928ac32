package session

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

func errGameNotFound(id uuid.UUID) error {
	return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
}
