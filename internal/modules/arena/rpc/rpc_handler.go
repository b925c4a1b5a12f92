// Package rpc 竞技场模块的 mqant RPC 处理器
//
// 请求与响应都使用 structpb.Struct, 业务错误通过 success/error_code/error_message 字段返回,
// 不作为 RPC 错误抛出。
package rpc

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/modules/arena/service"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/xerrors"
)

// ArenaRPCHandler 竞技场 RPC 处理器
type ArenaRPCHandler struct {
	monsterService *service.MonsterService
	battleService  *service.BattleService
	logger         log.Logger
}

// NewArenaRPCHandler 创建 RPC 处理器
func NewArenaRPCHandler(monsterService *service.MonsterService, battleService *service.BattleService, logger log.Logger) *ArenaRPCHandler {
	return &ArenaRPCHandler{
		monsterService: monsterService,
		battleService:  battleService,
		logger:         logger,
	}
}

// ResolveBattle 发起对战, 请求字段: monster_a, monster_b, verbose
func (h *ArenaRPCHandler) ResolveBattle(req *structpb.Struct) (*structpb.Struct, error) {
	ctx := context.Background()
	fields := req.GetFields()

	input := service.BattleInput{
		MonsterA: fields["monster_a"].GetStringValue(),
		MonsterB: fields["monster_b"].GetStringValue(),
	}
	h.logger.InfoContext(ctx, "RPC ResolveBattle 请求",
		log.String("monster_a", input.MonsterA),
		log.String("monster_b", input.MonsterB))

	result, err := h.battleService.CreateBattle(ctx, input, fields["verbose"].GetBoolValue())
	if err != nil {
		return h.failure(ctx, "ResolveBattle", err)
	}

	rounds := make([]any, 0, len(result.Rounds))
	for _, r := range result.Rounds {
		rounds = append(rounds, map[string]any{
			"round":       r.Number,
			"attacker_id": r.AttackerID,
			"defender_id": r.DefenderID,
			"damage":      r.Damage,
			"defender_hp": r.DefenderHP,
		})
	}

	b := result.Battle
	return structpb.NewStruct(map[string]any{
		"success": true,
		"battle": map[string]any{
			"id":        b.ID,
			"monster_a": b.MonsterA,
			"monster_b": b.MonsterB,
			"winner":    b.Winner.String,
		},
		"rounds": rounds,
	})
}

// GetMonster 查询怪物, 请求字段: id
func (h *ArenaRPCHandler) GetMonster(req *structpb.Struct) (*structpb.Struct, error) {
	ctx := context.Background()
	id := req.GetFields()["id"].GetStringValue()

	monster, err := h.monsterService.GetMonster(ctx, id)
	if err != nil {
		return h.failure(ctx, "GetMonster", err)
	}

	return structpb.NewStruct(map[string]any{
		"success": true,
		"monster": monsterFields(monster),
	})
}

func monsterFields(m *arena.Monster) map[string]any {
	return map[string]any{
		"id":        m.ID,
		"name":      m.Name,
		"image_url": m.ImageURL,
		"attack":    m.Attack,
		"defense":   m.Defense,
		"hp":        m.HP,
		"speed":     m.Speed,
	}
}

func (h *ArenaRPCHandler) failure(ctx context.Context, method string, err error) (*structpb.Struct, error) {
	appErr, ok := xerrors.As(err)
	if !ok {
		appErr = xerrors.NewWithError(xerrors.CodeInternalError, xerrors.CodeInternalError.Message(), err)
	}
	h.logger.WarnContext(ctx, "RPC 请求失败",
		log.String("method", method),
		log.Int("error_code", appErr.Code.ToInt()),
		log.String("error", appErr.Error()))

	return structpb.NewStruct(map[string]any{
		"success":       false,
		"error_code":    appErr.Code.ToInt(),
		"error_message": appErr.Message,
	})
}
