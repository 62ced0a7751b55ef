package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanhire/titanhire/internal/types"
)

func TestJobsCollectionSchema(t *testing.T) {
	t.Run("empty collection is valid", func(t *testing.T) {
		assert.NoError(t, ValidateJSONString(JobsCollection, `[]`))
	})

	t.Run("marshalled jobs are valid", func(t *testing.T) {
		jobs := []types.Job{{
			ID:              "a",
			Title:           "Backend Engineer",
			Status:          types.StatusAttract,
			CompletedStages: []types.Stage{types.StagePlan},
		}}
		data, err := json.Marshal(jobs)
		require.NoError(t, err)
		assert.NoError(t, ValidateJSONString(JobsCollection, string(data)))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		doc := `[{"id":"a","title":"x","status":"archived","inputs":{},"outputs":{},"completedStages":[]}]`
		err := ValidateJSONString(JobsCollection, doc)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.NotEmpty(t, ve.Errors)
	})

	t.Run("duplicate completed stages rejected", func(t *testing.T) {
		doc := `[{"id":"a","title":"x","status":"plan","inputs":{},"outputs":{},"completedStages":["plan","plan"]}]`
		assert.Error(t, ValidateJSONString(JobsCollection, doc))
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		assert.Error(t, ValidateJSONString(JobsCollection, `[{"id":"a"}]`))
	})

	t.Run("non-array document rejected", func(t *testing.T) {
		assert.Error(t, ValidateJSONString(JobsCollection, `{"id":"a"}`))
	})
}
