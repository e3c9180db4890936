package inmem_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lagoon/shared/dto"
	"lagoon/shared/model"
	"lagoon/shared/repository/inmem"
)

type record struct {
	ID     string     `db:"id"`
	Name   string     `db:"name"`
	Amount float64    `db:"amount"`
	DeadAt *time.Time `db:"dead_at"`
	model.Metadata
}

func eq(field string, value any) dto.Filter {
	return dto.Filter{Field: field, Operator: dto.FilterOperatorEq, Value: value}
}

func seed(t *testing.T) *inmem.Repository[record] {
	t.Helper()

	repo := inmem.NewRepository[record]()
	ctx := context.Background()

	rows := []record{
		{ID: "a", Name: "Blue Lagoon", Amount: 100, Metadata: model.Metadata{CreatedBy: "one"}},
		{ID: "b", Name: "Green Falls", Amount: 200, Metadata: model.Metadata{CreatedBy: "two"}},
		{ID: "c", Name: "Blue River", Amount: 300, Metadata: model.Metadata{CreatedBy: "one"}},
	}

	for _, row := range rows {
		assert.NoError(t, repo.Insert(ctx, row))
	}

	return repo
}

func TestRepository_GetByFilter(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	got, err := repo.Get(ctx, dto.FilterGroup{Filters: []any{eq("id", "b")}})

	assert.NoError(t, err)
	assert.Equal(t, "Green Falls", got.Name)

	missing, err := repo.Get(ctx, dto.FilterGroup{Filters: []any{eq("id", "zzz")}})

	assert.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestRepository_FilterOperators(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter dto.FilterGroup
		want   int
	}{
		{"eq", dto.FilterGroup{Filters: []any{eq("name", "Blue Lagoon")}}, 1},
		{"like is case-insensitive substring", dto.FilterGroup{Filters: []any{dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "blue"}}}, 2},
		{"gte on numbers", dto.FilterGroup{Filters: []any{dto.Filter{Field: "amount", Operator: dto.FilterOperatorGreaterEq, Value: 200.0}}}, 2},
		{"in list", dto.FilterGroup{Filters: []any{dto.Filter{Field: "id", Operator: dto.FilterOperatorIn, Value: []string{"a", "c"}}}}, 2},
		{"embedded metadata column", dto.FilterGroup{Filters: []any{eq("created_by", "one")}}, 2},
		{"and group", dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{eq("created_by", "one"), dto.Filter{Field: "amount", Operator: dto.FilterOperatorGreaterEq, Value: 200.0}}}, 1},
		{"or group", dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{eq("id", "a"), eq("id", "b")}}, 2},
		{"nested group", dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{eq("created_by", "one"), dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{eq("id", "a"), eq("id", "b")}}}}, 1},
		{"is null", dto.FilterGroup{Filters: []any{dto.Filter{Field: "dead_at", Operator: dto.FilterIsNull}}}, 3},
		{"is not null", dto.FilterGroup{Filters: []any{dto.Filter{Field: "dead_at", Operator: dto.FilterIsNotNull}}}, 0},
		{"empty group matches everything", dto.FilterGroup{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := repo.Count(ctx, tt.filter)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestRepository_GetAllPagination(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	page1, err := repo.GetAll(ctx, dto.QueryParams{Page: 1, Limit: 2}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, page1, 2)

	page2, err := repo.GetAll(ctx, dto.QueryParams{Page: 2, Limit: 2}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, page2, 1)

	page3, err := repo.GetAll(ctx, dto.QueryParams{Page: 3, Limit: 2}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Empty(t, page3)
}

func TestRepository_Update(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	now := time.Now()
	updates := map[string]any{
		"name":    "Renamed",
		"dead_at": now,
	}

	err := repo.Update(ctx, updates, dto.FilterGroup{Filters: []any{eq("id", "a")}})
	assert.NoError(t, err)

	got, err := repo.Get(ctx, dto.FilterGroup{Filters: []any{eq("id", "a")}})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.NotNil(t, got.DeadAt, "expected assignment into a pointer column")

	t.Run("nil clears a nullable column", func(t *testing.T) {
		err := repo.Update(ctx, map[string]any{"dead_at": nil}, dto.FilterGroup{Filters: []any{eq("id", "a")}})
		assert.NoError(t, err)

		got, err := repo.Get(ctx, dto.FilterGroup{Filters: []any{eq("id", "a")}})
		assert.NoError(t, err)
		assert.Nil(t, got.DeadAt)
	})

	t.Run("unknown column errors", func(t *testing.T) {
		err := repo.Update(ctx, map[string]any{"bogus": 1}, dto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	err := repo.Delete(ctx, dto.FilterGroup{Filters: []any{eq("created_by", "one")}})
	assert.NoError(t, err)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_Exist(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	exists, err := repo.Exist(ctx, dto.FilterGroup{Filters: []any{eq("id", "a")}})
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exist(ctx, dto.FilterGroup{Filters: []any{eq("id", "zzz")}})
	assert.NoError(t, err)
	assert.False(t, exists)
}
