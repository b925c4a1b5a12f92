package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/metrics"
	"monster-arena/internal/pkg/notify"
	"monster-arena/internal/pkg/validation"
	"monster-arena/internal/pkg/validator"
	"monster-arena/internal/pkg/xerrors"
	"monster-arena/internal/repository/interfaces"
)

// CSVColumns 导入文件必须包含的列, 顺序以文件表头为准
var CSVColumns = []string{"name", "attack", "defense", "hp", "speed", "image_url"}

// MonsterInput 创建或整体更新怪物时的输入
type MonsterInput struct {
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	Attack   int    `json:"attack" validate:"gte=0,lte=100"`
	Defense  int    `json:"defense"`
	HP       int    `json:"hp"`
	Speed    int    `json:"speed"`
}

func (in MonsterInput) apply(m *arena.Monster) {
	m.Name = in.Name
	m.ImageURL = in.ImageURL
	m.Attack = in.Attack
	m.Defense = in.Defense
	m.HP = in.HP
	m.Speed = in.Speed
}

// MonsterService 怪物服务
type MonsterService struct {
	monsterRepo interfaces.MonsterRepository
	publisher   notify.Publisher
	logger      log.Logger
}

// NewMonsterService 创建怪物服务
func NewMonsterService(monsterRepo interfaces.MonsterRepository, publisher notify.Publisher) *MonsterService {
	if publisher == nil {
		publisher = notify.NewPublisher()
	}
	return &MonsterService{
		monsterRepo: monsterRepo,
		publisher:   publisher,
		logger:      log.GetLogger().With("service", "monster"),
	}
}

// ListMonsters 获取怪物列表
func (s *MonsterService) ListMonsters(ctx context.Context, params interfaces.MonsterQueryParams) ([]*arena.Monster, int64, error) {
	monsters, total, err := s.monsterRepo.List(ctx, params)
	if err != nil {
		return nil, 0, toAppError(err, "list", arena.TableNames.Monsters, "")
	}
	return monsters, total, nil
}

// GetMonster 根据ID获取怪物, ID 格式错误与不存在同样处理
func (s *MonsterService) GetMonster(ctx context.Context, rawID string) (*arena.Monster, error) {
	monsterID, ok := validation.NormalizeUUID(rawID)
	if !ok {
		return nil, xerrors.NewMonsterNotFoundError(rawID)
	}
	monster, err := s.monsterRepo.GetByID(ctx, monsterID)
	if err != nil {
		return nil, toAppError(err, "get", arena.TableNames.Monsters, monsterID)
	}
	return monster, nil
}

// CreateMonster 创建怪物
func (s *MonsterService) CreateMonster(ctx context.Context, input MonsterInput) (*arena.Monster, error) {
	if err := validator.Struct(&input); err != nil {
		return nil, err
	}

	monster := &arena.Monster{}
	input.apply(monster)
	if err := s.monsterRepo.Create(ctx, monster); err != nil {
		return nil, toAppError(err, "insert", arena.TableNames.Monsters, "")
	}

	log.LogBusinessEvent(ctx, "monster_created", "monster", monster.ID, map[string]any{"name": monster.Name})
	return monster, nil
}

// UpdateMonster 整体更新怪物属性
func (s *MonsterService) UpdateMonster(ctx context.Context, monsterID string, input MonsterInput) (*arena.Monster, error) {
	monster, err := s.GetMonster(ctx, monsterID)
	if err != nil {
		return nil, err
	}
	if err := validator.Struct(&input); err != nil {
		return nil, err
	}

	input.apply(monster)
	if err := s.monsterRepo.Update(ctx, monster); err != nil {
		return nil, toAppError(err, "update", arena.TableNames.Monsters, monster.ID)
	}
	return monster, nil
}

// DeleteMonster 删除怪物
func (s *MonsterService) DeleteMonster(ctx context.Context, rawID string) error {
	monsterID, ok := validation.NormalizeUUID(rawID)
	if !ok {
		return xerrors.NewMonsterNotFoundError(rawID)
	}
	if err := s.monsterRepo.Delete(ctx, monsterID); err != nil {
		return toAppError(err, "delete", arena.TableNames.Monsters, monsterID)
	}

	log.LogBusinessEvent(ctx, "monster_deleted", "monster", monsterID, nil)
	return nil
}

// ImportCSV 从 CSV 批量导入怪物
//
// 任一行缺列、数值无法解析或校验失败时整个文件被拒绝, 不会写入任何数据。
// 解析通过后逐行写入, 单行失败只记录日志; 全部失败时返回 CodeImportFailed。
func (s *MonsterService) ImportCSV(ctx context.Context, r io.Reader) ([]*arena.Monster, error) {
	inputs, err := ParseMonsterCSV(r)
	if err != nil {
		return nil, err
	}

	created := make([]*arena.Monster, 0, len(inputs))
	ids := make([]string, 0, len(inputs))
	failed := 0
	for i, input := range inputs {
		monster := &arena.Monster{}
		input.apply(monster)
		if err := s.monsterRepo.Create(ctx, monster); err != nil {
			failed++
			s.logger.WarnContext(ctx, "导入怪物失败",
				log.Int("row", i+2),
				log.String("name", input.Name),
				log.String("error", err.Error()))
			continue
		}
		created = append(created, monster)
		ids = append(ids, monster.ID)
	}

	metrics.DefaultBusinessMetrics.RecordImport(len(created), failed, metrics.GetServiceName())

	if len(created) == 0 {
		return nil, xerrors.New(xerrors.CodeImportFailed, fmt.Sprintf("%d 行全部写入失败", failed))
	}

	event := notify.MonsterImportedEvent{Created: len(created), Failed: failed, MonsterIDs: ids}
	if err := s.publisher.Publish(ctx, notify.SubjectMonsterImported, event); err != nil {
		s.logger.WarnContext(ctx, "发布导入事件失败", log.String("error", err.Error()))
	}
	log.LogBusinessEvent(ctx, "monsters_imported", "monster", "", map[string]any{
		"created": len(created),
		"failed":  failed,
	})

	return created, nil
}

// ParseMonsterCSV 解析并校验 CSV 内容
func ParseMonsterCSV(r io.Reader) ([]MonsterInput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, xerrors.FromCode(xerrors.CodeImportEmpty)
	}
	if err != nil {
		return nil, incomplete(1, err.Error())
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
		index[col] = i
	}
	for _, col := range CSVColumns {
		if _, ok := index[col]; !ok {
			return nil, incomplete(1, "缺少列 "+col)
		}
	}

	var inputs []MonsterInput
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, incomplete(row, err.Error())
		}

		input, err := parseRecord(record, index)
		if err != nil {
			return nil, incomplete(row, err.Error())
		}
		if err := validator.Struct(&input); err != nil {
			msg := err.Error()
			if appErr, ok := xerrors.As(err); ok {
				msg = appErr.Message
			}
			return nil, xerrors.New(xerrors.CodeMonsterInvalid, fmt.Sprintf("第 %d 行: %s", row, msg)).
				WithMetadata("row", row)
		}
		inputs = append(inputs, input)
	}

	if len(inputs) == 0 {
		return nil, xerrors.FromCode(xerrors.CodeImportEmpty)
	}
	return inputs, nil
}

func parseRecord(record []string, index map[string]int) (MonsterInput, error) {
	field := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}

	input := MonsterInput{
		Name:     field("name"),
		ImageURL: field("image_url"),
	}
	stats := []struct {
		col string
		dst *int
	}{
		{"attack", &input.Attack},
		{"defense", &input.Defense},
		{"hp", &input.HP},
		{"speed", &input.Speed},
	}
	for _, st := range stats {
		v, err := strconv.Atoi(field(st.col))
		if err != nil {
			return MonsterInput{}, fmt.Errorf("%s 不是整数: %q", st.col, field(st.col))
		}
		*st.dst = v
	}
	return input, nil
}

func incomplete(row int, reason string) *xerrors.AppError {
	return xerrors.FromCode(xerrors.CodeImportIncomplete).
		WithMetadata("row", row).
		WithMetadata("reason", reason)
}
