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

// Monster is an object representing the database table.
type Monster struct {
	ID        string    `boil:"id" json:"id" toml:"id" yaml:"id"`
	Name      string    `boil:"name" json:"name" toml:"name" yaml:"name"`
	ImageURL  string    `boil:"image_url" json:"image_url" toml:"image_url" yaml:"image_url"`
	Attack    int       `boil:"attack" json:"attack" toml:"attack" yaml:"attack"`
	Defense   int       `boil:"defense" json:"defense" toml:"defense" yaml:"defense"`
	HP        int       `boil:"hp" json:"hp" toml:"hp" yaml:"hp"`
	Speed     int       `boil:"speed" json:"speed" toml:"speed" yaml:"speed"`
	CreatedAt null.Time `boil:"created_at" json:"created_at,omitempty" toml:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt null.Time `boil:"updated_at" json:"updated_at,omitempty" toml:"updated_at" yaml:"updated_at,omitempty"`
}

var MonsterColumns = struct {
	ID        string
	Name      string
	ImageURL  string
	Attack    string
	Defense   string
	HP        string
	Speed     string
	CreatedAt string
	UpdatedAt string
}{
	ID:        "id",
	Name:      "name",
	ImageURL:  "image_url",
	Attack:    "attack",
	Defense:   "defense",
	HP:        "hp",
	Speed:     "speed",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

var MonsterTableColumns = struct {
	ID        string
	Name      string
	CreatedAt string
}{
	ID:        "monsters.id",
	Name:      "monsters.name",
	CreatedAt: "monsters.created_at",
}

var (
	monsterAllColumns        = []string{"id", "name", "image_url", "attack", "defense", "hp", "speed", "created_at", "updated_at"}
	monsterUpdatableColumns  = []string{"name", "image_url", "attack", "defense", "hp", "speed", "updated_at"}
	monsterPrimaryKeyColumns = []string{"id"}
)

var TableNames = struct {
	Monsters string
	Battles  string
}{
	Monsters: "monsters",
	Battles:  "battles",
}

// MonsterSlice is an alias for a slice of pointers to Monster.
type MonsterSlice []*Monster

type monsterQuery struct {
	*queries.Query
}

// Monsters retrieves all the records using an executor.
func Monsters(mods ...qm.QueryMod) monsterQuery {
	mods = append(mods, qm.From("\"monsters\""))
	q := NewQuery(mods...)
	queries.SetSelect(q, []string{"\"monsters\".*"})
	return monsterQuery{q}
}

// FindMonster retrieves a single record by ID with an executor.
func FindMonster(ctx context.Context, exec boil.ContextExecutor, id string) (*Monster, error) {
	return Monsters(qm.Where("id = ?", id)).One(ctx, exec)
}

// One returns a single monster record from the query.
func (q monsterQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Monster, error) {
	o := &Monster{}

	queries.SetLimit(q.Query, 1)

	err := q.Bind(ctx, exec, o)
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, errors.Wrap(err, "arena: failed to execute a one query for monsters")
	}

	return o, nil
}

// All returns all Monster records from the query.
func (q monsterQuery) All(ctx context.Context, exec boil.ContextExecutor) (MonsterSlice, error) {
	var o []*Monster

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "arena: failed to assign all query results to Monster slice")
	}

	return o, nil
}

// Count returns the count of all Monster records in the query.
func (q monsterQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "arena: failed to count monsters rows")
	}

	return count, nil
}

// Insert a single record using an executor. CreatedAt and UpdatedAt are
// populated when they are not already set.
func (o *Monster) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	if o == nil {
		return errors.New("arena: no monsters provided for insertion")
	}

	currTime := time.Now().In(boil.GetLocation())
	if !o.CreatedAt.Valid {
		o.CreatedAt = null.TimeFrom(currTime)
	}
	if !o.UpdatedAt.Valid {
		o.UpdatedAt = null.TimeFrom(currTime)
	}

	query := fmt.Sprintf("INSERT INTO \"monsters\" (\"%s\") VALUES (%s)",
		strings.Join(monsterAllColumns, "\",\""),
		strmangle.Placeholders(dialect.UseIndexPlaceholders, len(monsterAllColumns), 1, 1),
	)
	vals := []any{o.ID, o.Name, o.ImageURL, o.Attack, o.Defense, o.HP, o.Speed, o.CreatedAt, o.UpdatedAt}

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, vals)
	}

	if _, err := exec.ExecContext(ctx, query, vals...); err != nil {
		return errors.Wrap(err, "arena: unable to insert into monsters")
	}
	return nil
}

// Update uses an executor to update the Monster. UpdatedAt is always
// refreshed. Returns the number of rows affected.
func (o *Monster) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	o.UpdatedAt = null.TimeFrom(time.Now().In(boil.GetLocation()))

	query := fmt.Sprintf("UPDATE \"monsters\" SET %s WHERE %s",
		strmangle.SetParamNames("\"", "\"", 1, monsterUpdatableColumns),
		strmangle.WhereClause("\"", "\"", len(monsterUpdatableColumns)+1, monsterPrimaryKeyColumns),
	)
	vals := []any{o.Name, o.ImageURL, o.Attack, o.Defense, o.HP, o.Speed, o.UpdatedAt, o.ID}

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, vals)
	}

	result, err := exec.ExecContext(ctx, query, vals...)
	if err != nil {
		return 0, errors.Wrap(err, "arena: unable to update monsters row")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "arena: failed to get rows affected by update for monsters")
	}

	return rowsAff, nil
}

// Delete deletes a single Monster record with an executor.
func (o *Monster) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	if o == nil {
		return 0, errors.New("arena: no Monster provided for delete")
	}

	query := "DELETE FROM \"monsters\" WHERE \"id\"=$1"

	if boil.IsDebug(ctx) {
		writer := boil.DebugWriterFrom(ctx)
		fmt.Fprintln(writer, query)
		fmt.Fprintln(writer, o.ID)
	}

	result, err := exec.ExecContext(ctx, query, o.ID)
	if err != nil {
		return 0, errors.Wrap(err, "arena: unable to delete from monsters")
	}

	rowsAff, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "arena: failed to get rows affected by delete for monsters")
	}

	return rowsAff, nil
}
