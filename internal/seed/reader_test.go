package seed

import (
	"encoding/json"
	"english_learning_backend/internal/model"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTopics(t *testing.T, src string) ([]model.Topic, error) {
	t.Helper()
	var out []model.Topic
	err := DecodeRecords(strings.NewReader(src), func(tp model.Topic) error {
		out = append(out, tp)
		return nil
	}, nil)
	return out, err
}

func TestDecodeRecords_TopLevelArray(t *testing.T) {
	topics, err := collectTopics(t, `[{"ID_CD":1,"Name":"Travel"},{"id_cd":2,"name":"Food"}]`)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "Travel", topics[0].Name)
	assert.Equal(t, 2, topics[1].TopicID)
	assert.Equal(t, "Food", topics[1].Name)
}

func TestDecodeRecords_WrappedArray(t *testing.T) {
	src := `{
		"version": 3,
		"meta": {"source": "editor", "tags": ["a", {"nested": [1, 2]}]},
		"topics": [{"ID_CD": 5, "Name": "Work"}],
		"later": [{"ID_CD": 6}]
	}`
	topics, err := collectTopics(t, src)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, 5, topics[0].TopicID)
}

func TestDecodeRecords_NoArray(t *testing.T) {
	_, err := collectTopics(t, `{"name": "nothing here", "count": 0}`)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = collectTopics(t, `"just a string"`)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestDecodeRecords_CallbackErrorStops(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := DecodeRecords(strings.NewReader(`[{"ID_CD":1},{"ID_CD":2},{"ID_CD":3}]`), func(model.Topic) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	}, nil)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
}

func TestDecodeRecords_Malformed(t *testing.T) {
	_, err := collectTopics(t, `[{"ID_CD":1},{"ID_CD":`)
	assert.Error(t, err)
}

func TestDecodeRecords_WrongFieldTypeSkipsRecord(t *testing.T) {
	var (
		ids     []int
		skipped []error
	)
	src := `[{"ID_CD":1,"Name":"Travel"},{"ID_CD":"two","Name":"Food"},{"ID_CD":3,"Name":"Work"}]`
	err := DecodeRecords(strings.NewReader(src), func(tp model.Topic) error {
		ids = append(ids, tp.TopicID)
		return nil
	}, func(err error) {
		skipped = append(skipped, err)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)
	require.Len(t, skipped, 1)

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, skipped[0], &typeErr)
}
