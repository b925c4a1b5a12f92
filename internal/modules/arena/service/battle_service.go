package service

import (
	"context"

	"github.com/aarondl/null/v8"

	"monster-arena/internal/battle"
	"monster-arena/internal/entity/arena"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/metrics"
	"monster-arena/internal/pkg/notify"
	"monster-arena/internal/pkg/validation"
	"monster-arena/internal/pkg/xerrors"
	"monster-arena/internal/repository/interfaces"
)

// BattleInput 发起对战的输入
type BattleInput struct {
	MonsterA string `json:"monster_a" validate:"required"`
	MonsterB string `json:"monster_b" validate:"required"`
}

// BattleResult 对战结果, Rounds 只在请求逐回合记录时填充且不会持久化
type BattleResult struct {
	Battle *arena.Battle
	Rounds []battle.Round
}

// BattleService 对战服务
type BattleService struct {
	monsterRepo interfaces.MonsterRepository
	battleRepo  interfaces.BattleRepository
	publisher   notify.Publisher
	logger      log.Logger
}

// NewBattleService 创建对战服务
func NewBattleService(monsterRepo interfaces.MonsterRepository, battleRepo interfaces.BattleRepository, publisher notify.Publisher) *BattleService {
	if publisher == nil {
		publisher = notify.NewPublisher()
	}
	return &BattleService{
		monsterRepo: monsterRepo,
		battleRepo:  battleRepo,
		publisher:   publisher,
		logger:      log.GetLogger().With("service", "battle"),
	}
}

// CreateBattle 校验双方怪物, 结算并保存对战结果
func (s *BattleService) CreateBattle(ctx context.Context, input BattleInput, withRounds bool) (*BattleResult, error) {
	if input.MonsterA == "" {
		return nil, xerrors.New(xerrors.CodeInvalidParams, "monster_a 不能为空").WithMetadata("field", "monster_a")
	}
	if input.MonsterB == "" {
		return nil, xerrors.New(xerrors.CodeInvalidParams, "monster_b 不能为空").WithMetadata("field", "monster_b")
	}

	a, err := s.snapshot(ctx, input.MonsterA)
	if err != nil {
		return nil, err
	}
	b, err := s.snapshot(ctx, input.MonsterB)
	if err != nil {
		return nil, err
	}

	var outcome battle.Outcome
	if withRounds {
		outcome = battle.ResolveWithLog(a, b)
	} else {
		outcome = battle.Resolve(a, b)
	}

	record := &arena.Battle{
		MonsterA: a.ID,
		MonsterB: b.ID,
		Winner:   null.NewString(outcome.WinnerID, outcome.WinnerID != ""),
	}
	if err := s.battleRepo.Create(ctx, record); err != nil {
		return nil, toAppError(err, "insert", arena.TableNames.Battles, outcome.WinnerID)
	}

	metrics.DefaultBusinessMetrics.RecordBattle(outcome.WinnerID == outcome.FirstID, outcome.Attacks, metrics.GetServiceName())

	event := notify.BattleResolvedEvent{
		BattleID: record.ID,
		MonsterA: record.MonsterA,
		MonsterB: record.MonsterB,
		Winner:   outcome.WinnerID,
		Attacks:  outcome.Attacks,
	}
	if err := s.publisher.Publish(ctx, notify.SubjectBattleResolved, event); err != nil {
		s.logger.WarnContext(ctx, "发布对战事件失败", log.String("battle_id", record.ID), log.String("error", err.Error()))
	}
	log.LogBusinessEvent(ctx, "battle_resolved", "battle", record.ID, map[string]any{
		"winner":  outcome.WinnerID,
		"first":   outcome.FirstID,
		"attacks": outcome.Attacks,
	})

	return &BattleResult{Battle: record, Rounds: outcome.Rounds}, nil
}

// snapshot 读取怪物当前属性; ID 格式错误和不存在都返回怪物不存在
func (s *BattleService) snapshot(ctx context.Context, rawID string) (battle.Snapshot, error) {
	monsterID, ok := validation.NormalizeUUID(rawID)
	if !ok {
		return battle.Snapshot{}, xerrors.NewMonsterNotFoundError(rawID)
	}
	m, err := s.monsterRepo.GetByID(ctx, monsterID)
	if err != nil {
		return battle.Snapshot{}, toAppError(err, "get", arena.TableNames.Monsters, monsterID)
	}
	return battle.Snapshot{
		ID:      m.ID,
		Attack:  m.Attack,
		Defense: m.Defense,
		HP:      m.HP,
		Speed:   m.Speed,
	}, nil
}

// ListBattles 获取对战记录列表
func (s *BattleService) ListBattles(ctx context.Context, params interfaces.BattleQueryParams) ([]*arena.Battle, int64, error) {
	if params.MonsterID != "" {
		monsterID, ok := validation.NormalizeUUID(params.MonsterID)
		if !ok {
			// 非法的怪物ID不可能出现在任何对战中
			return []*arena.Battle{}, 0, nil
		}
		params.MonsterID = monsterID
	}

	battles, total, err := s.battleRepo.List(ctx, params)
	if err != nil {
		return nil, 0, toAppError(err, "list", arena.TableNames.Battles, "")
	}
	return battles, total, nil
}

// GetBattle 根据ID获取对战记录
func (s *BattleService) GetBattle(ctx context.Context, rawID string) (*arena.Battle, error) {
	battleID, ok := validation.NormalizeUUID(rawID)
	if !ok {
		return nil, xerrors.NewBattleNotFoundError(rawID)
	}
	b, err := s.battleRepo.GetByID(ctx, battleID)
	if err != nil {
		return nil, toAppError(err, "get", arena.TableNames.Battles, battleID)
	}
	return b, nil
}

// DeleteBattle 删除对战记录
func (s *BattleService) DeleteBattle(ctx context.Context, rawID string) error {
	battleID, ok := validation.NormalizeUUID(rawID)
	if !ok {
		return xerrors.NewBattleNotFoundError(rawID)
	}
	if err := s.battleRepo.Delete(ctx, battleID); err != nil {
		return toAppError(err, "delete", arena.TableNames.Battles, battleID)
	}
	return nil
}
