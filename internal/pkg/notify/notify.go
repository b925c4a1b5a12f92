package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
)

// 竞技场事件主题
const (
	SubjectBattleResolved  = "arena.battle.resolved"
	SubjectMonsterImported = "arena.monster.imported"
)

var (
	ncMu sync.RWMutex
	nc   *nats.Conn
)

// SetNatsConn 设置全局 NATS 连接（由 main 提供）
func SetNatsConn(conn *nats.Conn) {
	ncMu.Lock()
	defer ncMu.Unlock()
	nc = conn
}

// Conn 返回全局 NATS 连接, 可能为 nil
func Conn() *nats.Conn {
	ncMu.RLock()
	defer ncMu.RUnlock()
	return nc
}

// Publisher 事件发布接口
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// NatsPublisher 使用全局 NATS 连接发布 JSON 事件
type NatsPublisher struct{}

// NewPublisher 创建基于全局连接的发布器
func NewPublisher() *NatsPublisher {
	return &NatsPublisher{}
}

// Publish 没有连接时静默降级
func (p *NatsPublisher) Publish(ctx context.Context, subject string, payload any) error {
	conn := Conn()
	if conn == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化事件失败 %s: %w", subject, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return conn.Publish(subject, data)
}

// BattleResolvedEvent 对战结算完成事件
type BattleResolvedEvent struct {
	BattleID string `json:"battle_id"`
	MonsterA string `json:"monster_a"`
	MonsterB string `json:"monster_b"`
	Winner   string `json:"winner"`
	Attacks  int    `json:"attacks"`
}

// MonsterImportedEvent CSV 导入完成事件
type MonsterImportedEvent struct {
	Created    int      `json:"created"`
	Failed     int      `json:"failed"`
	MonsterIDs []string `json:"monster_ids"`
}
