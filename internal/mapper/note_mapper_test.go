package mapper

import (
	"testing"
	"time"

	"notes-api/internal/entity"
	"notes-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNoteMapperRoundTrip(t *testing.T) {
	m := NewNoteMapper()
	created := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	e := m.ToEntity(&model.Note{Id: 7, Content: "buy milk", CreatedAt: created})
	assert.Equal(t, int64(7), e.Id)
	assert.Equal(t, "buy milk", e.Content)
	assert.Equal(t, created, e.CreatedAt)

	back := m.ToModel(e)
	assert.Equal(t, int64(7), back.Id)
	assert.Equal(t, "buy milk", back.Content)
}

func TestNoteMapperNil(t *testing.T) {
	m := NewNoteMapper()

	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}

func TestNoteMapperToEntitiesKeepsOrder(t *testing.T) {
	m := NewNoteMapper()
	models := []*model.Note{
		{Id: 2, Content: "second"},
		{Id: 1, Content: "first"},
	}

	entities := m.ToEntities(models)

	assert.Len(t, entities, 2)
	assert.Equal(t, &entity.Note{Id: 2, Content: "second"}, entities[0])
	assert.Equal(t, &entity.Note{Id: 1, Content: "first"}, entities[1])
}
