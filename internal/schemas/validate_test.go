package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTaxonomy_Valid(t *testing.T) {
	data := []byte(`{
		"categories": [
			{"name": "Languages", "keywords": ["go", "python"], "weight": 0.5}
		]
	}`)

	assert.NoError(t, ValidateTaxonomy(data))
}

func TestValidateTaxonomy_MissingWeight(t *testing.T) {
	data := []byte(`{"categories": [{"name": "Languages", "keywords": ["go"]}]}`)

	err := ValidateTaxonomy(data)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
	assert.Contains(t, err.Error(), "weight")
}

func TestValidateTaxonomy_WeightOutOfRange(t *testing.T) {
	data := []byte(`{"categories": [{"name": "Languages", "keywords": ["go"], "weight": 1.5}]}`)

	var verr *ValidationError
	require.ErrorAs(t, ValidateTaxonomy(data), &verr)
}

func TestValidateTaxonomy_EmptyCategories(t *testing.T) {
	var verr *ValidationError
	require.ErrorAs(t, ValidateTaxonomy([]byte(`{"categories": []}`)), &verr)
}

func TestValidateTaxonomy_UnknownTopLevelField(t *testing.T) {
	data := []byte(`{
		"categories": [{"name": "A", "keywords": [], "weight": 0.1}],
		"extra": true
	}`)

	assert.Error(t, ValidateTaxonomy(data))
}

func TestValidateTaxonomy_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateTaxonomy([]byte(`{not json`)))
}
