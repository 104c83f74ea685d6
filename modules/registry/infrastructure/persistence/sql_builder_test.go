package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilder(t *testing.T) {
	var b updateBuilder
	assert.True(t, b.Empty())

	b.Set("name", "Ravi")
	b.Set("status", "found")
	assert.False(t, b.Empty())

	query, args := b.Build("missing_persons", "id", int64(7))
	assert.Equal(t,
		"UPDATE missing_persons SET name = $1, status = $2, updated_at = NOW() WHERE id = $3 RETURNING *",
		query,
	)
	assert.Equal(t, []any{"Ravi", "found", int64(7)}, args)
}

func TestUpdateBuilder_SingleColumn(t *testing.T) {
	var b updateBuilder
	b.Set("star", 3)

	query, args := b.Build("criminals", "id", int64(1))
	assert.Equal(t,
		"UPDATE criminals SET star = $1, updated_at = NOW() WHERE id = $2 RETURNING *",
		query,
	)
	assert.Equal(t, []any{3, int64(1)}, args)
}

func TestPredicateBuilder_NoConditions(t *testing.T) {
	var b predicateBuilder
	query, args := b.Build("SELECT * FROM leads WHERE 1=1", "ORDER BY incident_datetime DESC")
	assert.Equal(t, "SELECT * FROM leads WHERE 1=1 ORDER BY incident_datetime DESC", query)
	assert.Empty(t, args)
}

func TestPredicateBuilder_NumbersConditionsInOrder(t *testing.T) {
	var b predicateBuilder
	b.Where("title = $%d", "Robbery")
	b.Where("town ILIKE $%d", "%jaipur%")
	b.Where("pincode = $%d", "302001")

	query, args := b.Build("SELECT * FROM leads WHERE 1=1", "")
	assert.Equal(t,
		"SELECT * FROM leads WHERE 1=1 AND title = $1 AND town ILIKE $2 AND pincode = $3",
		query,
	)
	assert.Equal(t, []any{"Robbery", "%jaipur%", "302001"}, args)
}
