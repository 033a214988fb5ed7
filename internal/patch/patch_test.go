package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicvilla/villa-api/internal/api/dto"
)

func baseVilla() *dto.VillaDTO {
	return &dto.VillaDTO{
		Id:        5,
		Name:      "Sunset",
		Details:   "Sea view",
		Amenity:   "Pool",
		ImageUrl:  "https://example.com/sunset.jpg",
		Occupancy: 4,
		Rate:      100,
		Sqft:      550,
	}
}

func TestApply_ReplaceSingleField(t *testing.T) {
	villa := baseVilla()
	doc := Document{
		{Op: OpReplace, Path: "/Rate", Value: json.RawMessage(`150.5`)},
	}

	require.NoError(t, doc.Apply(villa))

	assert.Equal(t, 150.5, villa.Rate)
	// everything else untouched
	assert.Equal(t, "Sunset", villa.Name)
	assert.Equal(t, "Sea view", villa.Details)
	assert.Equal(t, 4, villa.Occupancy)
	assert.Equal(t, 550, villa.Sqft)
}

func TestApply_OperationsRunInOrder(t *testing.T) {
	villa := baseVilla()
	doc := Document{
		{Op: OpReplace, Path: "/Name", Value: json.RawMessage(`"First"`)},
		{Op: OpReplace, Path: "/Name", Value: json.RawMessage(`"Second"`)},
		{Op: OpAdd, Path: "/Occupancy", Value: json.RawMessage(`6`)},
	}

	require.NoError(t, doc.Apply(villa))

	assert.Equal(t, "Second", villa.Name)
	assert.Equal(t, 6, villa.Occupancy)
}

func TestApply_PathsMatchCaseInsensitively(t *testing.T) {
	villa := baseVilla()
	doc := Document{
		{Op: OpReplace, Path: "/imageUrl", Value: json.RawMessage(`"https://example.com/new.jpg"`)},
	}

	require.NoError(t, doc.Apply(villa))

	assert.Equal(t, "https://example.com/new.jpg", villa.ImageUrl)
}

func TestApply_RemoveZeroesField(t *testing.T) {
	villa := baseVilla()
	doc := Document{
		{Op: OpRemove, Path: "/Details"},
		{Op: OpRemove, Path: "/Sqft"},
	}

	require.NoError(t, doc.Apply(villa))

	assert.Empty(t, villa.Details)
	assert.Zero(t, villa.Sqft)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
	}{
		{"unknown field", Operation{Op: OpReplace, Path: "/Color", Value: json.RawMessage(`"blue"`)}},
		{"missing slash", Operation{Op: OpReplace, Path: "Name", Value: json.RawMessage(`"x"`)}},
		{"unsupported op", Operation{Op: "move", Path: "/Name", Value: json.RawMessage(`"x"`)}},
		{"id not patchable", Operation{Op: OpReplace, Path: "/Id", Value: json.RawMessage(`9`)}},
		{"created date not patchable", Operation{Op: OpRemove, Path: "/CreatedDate"}},
		{"wrong value type for string", Operation{Op: OpReplace, Path: "/Name", Value: json.RawMessage(`12`)}},
		{"wrong value type for int", Operation{Op: OpReplace, Path: "/Occupancy", Value: json.RawMessage(`"four"`)}},
		{"fractional value for int", Operation{Op: OpReplace, Path: "/Sqft", Value: json.RawMessage(`1.5`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			villa := baseVilla()
			err := Document{tt.op}.Apply(villa)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.op.Path, fieldErr.Path)
		})
	}
}

func TestApply_StopsAtFirstFailure(t *testing.T) {
	villa := baseVilla()
	doc := Document{
		{Op: OpReplace, Path: "/Name", Value: json.RawMessage(`"Changed"`)},
		{Op: OpReplace, Path: "/Nope", Value: json.RawMessage(`1`)},
		{Op: OpReplace, Path: "/Rate", Value: json.RawMessage(`999`)},
	}

	require.Error(t, doc.Apply(villa))

	// the first operation landed, the one after the failure did not
	assert.Equal(t, "Changed", villa.Name)
	assert.Equal(t, float64(100), villa.Rate)
}

func TestDocument_RoundTripsThroughJSON(t *testing.T) {
	raw := `[
		{"op":"replace","path":"/Rate","value":150},
		{"op":"remove","path":"/Amenity"}
	]`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.Len(t, doc, 2)

	villa := baseVilla()
	require.NoError(t, doc.Apply(villa))

	assert.Equal(t, float64(150), villa.Rate)
	assert.Empty(t, villa.Amenity)
}
