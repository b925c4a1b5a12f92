package service

import (
	"errors"

	"monster-arena/internal/pkg/xerrors"
	"monster-arena/internal/repository/interfaces"
)

// toAppError 把仓储层错误转换为业务错误
func toAppError(err error, operation, table, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, interfaces.ErrMonsterNotFound):
		return xerrors.NewMonsterNotFoundError(id)
	case errors.Is(err, interfaces.ErrBattleNotFound):
		return xerrors.NewBattleNotFoundError(id)
	}
	if _, ok := xerrors.As(err); ok {
		return err
	}
	return xerrors.NewDatabaseError(operation, table, err)
}
