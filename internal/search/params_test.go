package search

import (
	"reflect"
	"testing"

	"legal-research-assistant/internal/intent"
)

func TestBuild(t *testing.T) {
	t.Run("time range lowers to two where clauses", func(t *testing.T) {
		it := intent.Intent{
			TimeRange: &intent.TimeRange{From: "2022-01-01", To: "2023-12-31"},
		}

		got := Build(it, "пеня 3% річних")

		want := []WhereClause{
			{Field: FieldDatePubl, Operator: OpGTE, Value: "2022-01-01"},
			{Field: FieldDatePubl, Operator: OpLTE, Value: "2023-12-31"},
		}
		if !reflect.DeepEqual(got.Where, want) {
			t.Errorf("where = %+v, want %+v", got.Where, want)
		}
	})

	t.Run("no time range means no where clauses", func(t *testing.T) {
		got := Build(intent.Intent{}, "запит")

		if len(got.Where) != 0 {
			t.Errorf("where = %+v, want empty", got.Where)
		}
	})

	t.Run("meta carries search text, entities, and ordering", func(t *testing.T) {
		it := intent.Intent{
			RequiredEntities: []string{"ЄДРПОУ", "бенефіціар"},
		}

		got := Build(it, "реєстраційні дані")

		if got.Meta.Search != "реєстраційні дані" {
			t.Errorf("meta.search = %q", got.Meta.Search)
		}
		if !reflect.DeepEqual(got.Meta.SearchEntities, []string{"ЄДРПОУ", "бенефіціар"}) {
			t.Errorf("meta.search_entities = %v", got.Meta.SearchEntities)
		}
		if got.Meta.Order[FieldDatePubl] != OrderDesc {
			t.Errorf("order = %v, want %s desc", got.Meta.Order, FieldDatePubl)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		got := Build(intent.Intent{}, "")

		if got.Limit != DefaultLimit {
			t.Errorf("limit = %d, want %d", got.Limit, DefaultLimit)
		}
		if got.Offset != 0 {
			t.Errorf("offset = %d, want 0", got.Offset)
		}
		if got.Meta.Search != "" {
			t.Errorf("meta.search = %q, want empty", got.Meta.Search)
		}
	})

	t.Run("pure for equal inputs", func(t *testing.T) {
		it := intent.Intent{
			RequiredEntities: []string{"стаття 625"},
			TimeRange:        &intent.TimeRange{From: "2020-01-01", To: "2020-12-31"},
		}

		a := Build(it, "борг")
		b := Build(it, "борг")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Build is not deterministic: %+v vs %+v", a, b)
		}
	})
}
