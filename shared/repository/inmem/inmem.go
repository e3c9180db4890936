package inmem

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"lagoon/shared/dto"
)

// Repository is an in-memory stand-in for the sqlx-backed generic repository.
// It evaluates the same FilterGroup DSL against struct fields addressed by
// their db tags, which lets service tests run end to end without a database.
// Filtering, unlike the SQL implementation, ignores the Table qualifier.
type Repository[T any] struct {
	mu   sync.Mutex
	rows []T
}

func NewRepository[T any]() *Repository[T] {
	return &Repository[T]{}
}

func (repo *Repository[T]) Insert(_ context.Context, model T) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.rows = append(repo.rows, model)

	return nil
}

func (repo *Repository[T]) Get(_ context.Context, filter dto.FilterGroup, _ ...string) (T, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, row := range repo.rows {
		if matchGroup(row, filter) {
			return row, nil
		}
	}

	var zero T

	return zero, nil
}

func (repo *Repository[T]) GetAll(_ context.Context, params dto.QueryParams, filter dto.FilterGroup, _ ...string) ([]T, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var models []T

	for _, row := range repo.rows {
		if matchGroup(row, filter) {
			models = append(models, row)
		}
	}

	if params.Page > 0 && params.Limit > 0 {
		offset := (params.Page - 1) * params.Limit
		if offset >= len(models) {
			return nil, nil
		}

		end := min(offset+params.Limit, len(models))
		models = models[offset:end]
	} else if params.Limit > 0 && params.Limit < len(models) {
		models = models[:params.Limit]
	}

	return models, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	count, err := repo.Count(ctx, filter)

	return count > 0, err
}

func (repo *Repository[T]) Count(_ context.Context, filter dto.FilterGroup) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	count := 0

	for _, row := range repo.rows {
		if matchGroup(row, filter) {
			count++
		}
	}

	return count, nil
}

func (repo *Repository[T]) Update(_ context.Context, mod map[string]any, filter dto.FilterGroup) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.rows {
		if !matchGroup(repo.rows[i], filter) {
			continue
		}

		for column, value := range mod {
			if err := setColumn(&repo.rows[i], column, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func (repo *Repository[T]) Delete(_ context.Context, filter dto.FilterGroup) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	kept := repo.rows[:0]

	for _, row := range repo.rows {
		if !matchGroup(row, filter) {
			kept = append(kept, row)
		}
	}

	repo.rows = kept

	return nil
}

func matchGroup[T any](row T, group dto.FilterGroup) bool {
	if len(group.Filters) == 0 {
		return true
	}

	anyMatched := false

	for _, raw := range group.Filters {
		matched := false

		switch filter := raw.(type) {
		case dto.Filter:
			matched = matchFilter(row, filter)
		case dto.FilterGroup:
			matched = matchGroup(row, filter)
		}

		if group.Operator == dto.FilterGroupOperatorOr {
			anyMatched = anyMatched || matched
		} else if !matched {
			return false
		}
	}

	if group.Operator == dto.FilterGroupOperatorOr {
		return anyMatched
	}

	return true
}

func matchFilter[T any](row T, filter dto.Filter) bool {
	field, ok := columnValue(reflect.ValueOf(row), filter.Field)
	if !ok {
		return false
	}

	switch filter.Operator {
	case dto.FilterOperatorEq:
		return compare(field, filter.Value) == 0
	case dto.FilterOperatorNotEq:
		return compare(field, filter.Value) != 0
	case dto.FilterOperatorLessEq:
		return compare(field, filter.Value) <= 0
	case dto.FilterOperatorGreaterEq:
		return compare(field, filter.Value) >= 0
	case dto.FilterOperatorLike:
		want := strings.ToLower(fmt.Sprintf("%v", filter.Value))

		return strings.Contains(strings.ToLower(fmt.Sprintf("%v", field)), want)
	case dto.FilterOperatorIn:
		values := reflect.ValueOf(filter.Value)
		if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
			return false
		}

		for idx := range values.Len() {
			if compare(field, values.Index(idx).Interface()) == 0 {
				return true
			}
		}

		return false
	case dto.FilterIsNull:
		return isNil(field)
	case dto.FilterIsNotNull:
		return !isNil(field)
	default:
		return false
	}
}

// columnValue resolves a db-tagged column on the row, descending into
// embedded structs the way the SQL repository's column scan does.
func columnValue(value reflect.Value, column string) (any, bool) {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, false
		}

		value = value.Elem()
	}

	valueType := value.Type()

	for i := range valueType.NumField() {
		field := valueType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if nested, ok := columnValue(value.Field(i), column); ok {
				return nested, true
			}

			continue
		}

		if field.Tag.Get("db") == column {
			return value.Field(i).Interface(), true
		}
	}

	return nil, false
}

func setColumn[T any](row *T, column string, newValue any) error {
	value := reflect.ValueOf(row).Elem()
	field, ok := findColumnField(value, column)

	if !ok {
		return fmt.Errorf("unknown column %q for %T", column, *row)
	}

	incoming := reflect.ValueOf(newValue)

	switch {
	case newValue == nil:
		field.Set(reflect.Zero(field.Type()))
	case incoming.Type().AssignableTo(field.Type()):
		field.Set(incoming)
	case incoming.Type().ConvertibleTo(field.Type()):
		field.Set(incoming.Convert(field.Type()))
	case field.Kind() == reflect.Pointer && incoming.Type().AssignableTo(field.Type().Elem()):
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(incoming)
		field.Set(ptr)
	default:
		return fmt.Errorf("cannot assign %T to column %q", newValue, column)
	}

	return nil
}

func findColumnField(value reflect.Value, column string) (reflect.Value, bool) {
	valueType := value.Type()

	for i := range valueType.NumField() {
		field := valueType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if nested, ok := findColumnField(value.Field(i), column); ok {
				return nested, true
			}

			continue
		}

		if field.Tag.Get("db") == column {
			return value.Field(i), true
		}
	}

	return reflect.Value{}, false
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// compare orders two scalar values, returning -1, 0, or 1. Times, numbers,
// and strings order naturally; everything else falls back to string equality.
func compare(left, right any) int {
	if lt, ok := timeValue(left); ok {
		if rt, ok := timeValue(right); ok {
			return lt.Compare(rt)
		}
	}

	if lf, ok := floatValue(left); ok {
		if rf, ok := floatValue(right); ok {
			switch {
			case lf < rf:
				return -1
			case lf > rf:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(fmt.Sprintf("%v", deref(left)), fmt.Sprintf("%v", deref(right)))
}

func deref(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}

	return value
}

func timeValue(value any) (time.Time, bool) {
	switch v := deref(value).(type) {
	case time.Time:
		return v, true
	default:
		return time.Time{}, false
	}
}

func floatValue(value any) (float64, bool) {
	rv := reflect.ValueOf(deref(value))

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
