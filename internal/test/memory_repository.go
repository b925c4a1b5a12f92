package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/repository/interfaces"
)

// MonsterRepository 内存怪物仓储, 可注入错误
type MonsterRepository struct {
	mu        sync.Mutex
	Monsters  map[string]*arena.Monster
	CreateErr func(m *arena.Monster) error
	ListErr   error
}

// NewMonsterRepository 创建内存怪物仓储
func NewMonsterRepository(monsters ...*arena.Monster) *MonsterRepository {
	r := &MonsterRepository{Monsters: map[string]*arena.Monster{}}
	for _, m := range monsters {
		r.Monsters[m.ID] = m
	}
	return r
}

func (r *MonsterRepository) GetByID(_ context.Context, id string) (*arena.Monster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.Monsters[id]
	if !ok {
		return nil, interfaces.ErrMonsterNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MonsterRepository) List(_ context.Context, _ interfaces.MonsterQueryParams) ([]*arena.Monster, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*arena.Monster, 0, len(r.Monsters))
	for _, m := range r.Monsters {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *MonsterRepository) Create(_ context.Context, m *arena.Monster) error {
	if r.CreateErr != nil {
		if err := r.CreateErr(m); err != nil {
			return err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	cp := *m
	r.Monsters[m.ID] = &cp
	return nil
}

func (r *MonsterRepository) Update(_ context.Context, m *arena.Monster) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Monsters[m.ID]; !ok {
		return interfaces.ErrMonsterNotFound
	}
	cp := *m
	r.Monsters[m.ID] = &cp
	return nil
}

func (r *MonsterRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Monsters[id]; !ok {
		return interfaces.ErrMonsterNotFound
	}
	delete(r.Monsters, id)
	return nil
}

// BattleRepository 内存对战记录仓储
type BattleRepository struct {
	mu        sync.Mutex
	Battles   map[string]*arena.Battle
	CreateErr error
}

// NewBattleRepository 创建内存对战记录仓储
func NewBattleRepository() *BattleRepository {
	return &BattleRepository{Battles: map[string]*arena.Battle{}}
}

func (r *BattleRepository) GetByID(_ context.Context, id string) (*arena.Battle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.Battles[id]
	if !ok {
		return nil, interfaces.ErrBattleNotFound
	}
	return b, nil
}

func (r *BattleRepository) List(_ context.Context, params interfaces.BattleQueryParams) ([]*arena.Battle, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*arena.Battle, 0, len(r.Battles))
	for _, b := range r.Battles {
		if params.MonsterID != "" && b.MonsterA != params.MonsterID && b.MonsterB != params.MonsterID {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *BattleRepository) Create(_ context.Context, b *arena.Battle) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = uuid.New().String()
	r.Battles[b.ID] = b
	return nil
}

func (r *BattleRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Battles[id]; !ok {
		return interfaces.ErrBattleNotFound
	}
	delete(r.Battles, id)
	return nil
}

// PublishedEvent 记录的一条事件
type PublishedEvent struct {
	Subject string
	Payload any
}

// RecordingPublisher 记录所有发布的事件
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, subject string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, PublishedEvent{Subject: subject, Payload: payload})
	return p.Err
}
