package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"strconv"
	"strings"

	"lagoon/shared/cache"
	"lagoon/shared/constant"
	"lagoon/shared/dto"
	"lagoon/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the given parts into a colon-separated cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the prefix plus a digest of the
// query parameters and filters, so distinct listings cache independently.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	payload, err := json.Marshal(struct {
		Params dto.QueryParams
		Filter dto.FilterGroup
	}{params, filter})
	if err != nil {
		return BuildCacheKey(prefix, "all")
	}

	digest := fnv.New32a()
	_, _ = digest.Write(payload)

	return BuildCacheKey(prefix, fmt.Sprintf("%08x", digest.Sum32()))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
