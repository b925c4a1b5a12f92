// Package battle 实现怪物对战结算引擎
//
// 引擎是纯函数: 输入两份怪物属性快照, 输出胜者ID。
// 不做任何 I/O, 不持有共享状态, 可以被任意数量的请求并发调用。
package battle

// Snapshot 怪物属性快照(对战开始时刻的只读副本)
type Snapshot struct {
	ID      string
	Attack  int
	Defense int
	HP      int
	Speed   int
}

// Round 单次攻击记录
type Round struct {
	Number     int    `json:"round"`
	AttackerID string `json:"attacker_id"`
	DefenderID string `json:"defender_id"`
	Damage     int    `json:"damage"`
	DefenderHP int    `json:"defender_hp"`
}

// Outcome 对战结果
type Outcome struct {
	WinnerID string
	FirstID  string
	SecondID string
	// Attacks 实际发生的攻击次数
	Attacks int
	// Rounds 仅在 ResolveWithLog 时填充
	Rounds []Round
}

// MinDamage 单次攻击的最小伤害
const MinDamage = 1

// Resolve 结算一场对战, 返回胜者
func Resolve(a, b Snapshot) Outcome {
	return simulate(a, b, false)
}

// ResolveWithLog 结算一场对战, 同时返回逐次攻击记录
func ResolveWithLog(a, b Snapshot) Outcome {
	return simulate(a, b, true)
}

// TurnOrder 计算出手顺序
//
// 速度高者先手; 速度相同攻击高者先手; 两者都相同时ID字典序较小者先手,
// ID也相同则 a 先手。
func TurnOrder(a, b Snapshot) (first, second Snapshot) {
	switch {
	case a.Speed != b.Speed:
		if a.Speed > b.Speed {
			return a, b
		}
		return b, a
	case a.Attack != b.Attack:
		if a.Attack > b.Attack {
			return a, b
		}
		return b, a
	case b.ID < a.ID:
		return b, a
	default:
		return a, b
	}
}

// Damage 计算攻击伤害, 最少为 MinDamage
func Damage(attack, defense int) int {
	if d := attack - defense; d > MinDamage {
		return d
	}
	return MinDamage
}

// simulate 参数按值传入, hp 只在局部副本上扣减
func simulate(a, b Snapshot, withLog bool) Outcome {
	first, second := TurnOrder(a, b)
	out := Outcome{FirstID: first.ID, SecondID: second.ID}

	// 开局血量已经 <= 0 的一方直接落败
	if second.HP <= 0 {
		out.WinnerID = first.ID
		return out
	}
	if first.HP <= 0 {
		out.WinnerID = second.ID
		return out
	}

	round := 0
	for {
		round++

		second.HP -= Damage(first.Attack, second.Defense)
		out.Attacks++
		if withLog {
			out.Rounds = append(out.Rounds, newRound(round, first, second))
		}
		if second.HP <= 0 {
			out.WinnerID = first.ID
			return out
		}

		first.HP -= Damage(second.Attack, first.Defense)
		out.Attacks++
		if withLog {
			out.Rounds = append(out.Rounds, newRound(round, second, first))
		}
		if first.HP <= 0 {
			out.WinnerID = second.ID
			return out
		}
	}
}

func newRound(n int, attacker, defender Snapshot) Round {
	return Round{
		Number:     n,
		AttackerID: attacker.ID,
		DefenderID: defender.ID,
		Damage:     Damage(attacker.Attack, defender.Defense),
		DefenderHP: defender.HP,
	}
}
