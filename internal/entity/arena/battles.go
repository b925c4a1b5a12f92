package arena

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"
)

// Battle is an object representing the database table.
type Battle struct {
	ID        string      `boil:"id" json:"id" toml:"id" yaml:"id"`
	MonsterA  string      `boil:"monster_a" json:"monster_a" toml:"monster_a" yaml:"monster_a"`
	MonsterB  string      `boil:"monster_b" json:"monster_b" toml:"monster_b" yaml:"monster_b"`
	Winner    null.String `boil:"winner" json:"winner,omitempty" toml:"winner" yaml:"winner,omitempty"`
	CreatedAt null.Time   `boil:"created_at" json:"created_at,omitempty" toml:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt null.Time   `boil:"updated_at" json:"updated_at,omitempty" toml:"updated_at" yaml:"updated_at,omitempty"`
}

var BattleColumns = struct {
	ID        string
	MonsterA  string
	MonsterB  string
	Winner    string
	CreatedAt string
	UpdatedAt string
}{
	ID:        "id",
	MonsterA:  "monster_a",
	MonsterB:  "monster_b",
	Winner:    "winner",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

var battleAllColumns = []string{"id", "monster_a", "monster_b", "winner", "created_at", "updated_at"}

// BattleSlice is an alias for a slice of pointers to Battle.
type BattleSlice []*Battle

type battleQuery struct {
	*queries.Query
}

// Battles retrieves all the records using an executor.
func Battles(mods ...qm.QueryMod) battleQuery {
	mods = append(mods, qm.From("\"battles\""))
	q := NewQuery(mods...)
	queries.SetSelect(q, []string{"\"battles\".*"})
	return battleQuery{q}
}

// FindBattle retrieves a single record by ID with an executor.
func FindBattle(ctx context.Context, exec boil.ContextExecutor, id string) (*Battle, error) {
	return Battles(qm.Where("id = ?", id)).One(ctx, exec)
}

// One returns a single battle record from the query.
func (q battleQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Battle, error) {
	o := &Battle{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "arena: failed to execute a one query for battles")
	}

	return o, nil
}

// All returns all Battle records from the query.
func (q battleQuery) All(ctx context.Context, exec boil.ContextExecutor) (BattleSlice, error) {
	var o []*Battle

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "arena: failed to assign all query results to Battle slice")
	}

	return o, nil
}

// Count returns the count of all Battle records in the query.
func (q battleQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "arena: failed to count battles rows")
	}

	return count, nil
}

// Insert a single record using an executor. Battles are never updated
// after creation, so both timestamps are set to the insert time.
func (o *Battle) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	if o == nil {
		return errors.New("arena: no battles provided for insertion")
	}

	currTime := time.Now().In(boil.GetLocation())
	if !o.CreatedAt.Valid {
		o.CreatedAt = null.TimeFrom(currTime)
	}
	if !o.UpdatedAt.Valid {
		o.UpdatedAt = null.TimeFrom(currTime)
	}

	query := fmt.Sprintf("INSERT INTO \"battles\" (\"%s\") VALUES (%s)",
		strings.Join(battleAllColumns, "\",\""),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(battleAllColumns), 1, 1),
	)
	vals := []any{o.ID, o.MonsterA, o.MonsterB, o.Winner, o.CreatedAt, o.UpdatedAt}

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, vals)
	}

	if _, err := exec.ExecContext(ctx, query, vals...); err != nil {
		return errors.Wrap(err, "arena: unable to insert into battles")
	}
	return nil
}

// Delete deletes a single Battle record with an executor.
func (o *Battle) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	if o == nil {
		return 0, errors.New("arena: no Battle provided for delete")
	}

	query := "DELETE FROM \"battles\" WHERE \"id\"=$1"

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, o.ID)
	}

	result, err := exec.ExecContext(ctx, query, o.ID)
	if err != nil {
		return 0, errors.Wrap(err, "arena: unable to delete from battles")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "arena: failed to get rows affected by delete for battles")
	}

	return rowsAff, nil
}
