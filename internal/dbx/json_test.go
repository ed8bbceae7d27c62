package dbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func TestNullJSON(t *testing.T) {
	v, err := NullJSON[window](nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NullJSON(&window{Start: 2024, End: 2030})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":2024,"end":2030}`, string(v.([]byte)))
}

func TestScanNullJSON(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte("null")} {
		w, err := ScanNullJSON[window](raw)
		require.NoError(t, err)
		assert.Nil(t, w)
	}

	w, err := ScanNullJSON[window]([]byte(`{"start":1,"end":2}`))
	require.NoError(t, err)
	assert.Equal(t, &window{Start: 1, End: 2}, w)

	_, err = ScanNullJSON[window]([]byte(`{`))
	assert.Error(t, err)
}
