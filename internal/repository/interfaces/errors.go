package interfaces

import "errors"

var (
	// ErrMonsterNotFound 怪物不存在
	ErrMonsterNotFound = errors.New("monster not found")
	// ErrBattleNotFound 对战记录不存在
	ErrBattleNotFound = errors.New("battle not found")
)
