package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "value", input: "7\n", want: 7},
		{name: "default on empty", input: "\n", want: 3},
		{name: "not a number", input: "seven\n", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetInt(rdr(tc.input), "Rows", 3, &out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGetOptionalFloat(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalFloat(rdr("\n"), "Price", &out)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = GetOptionalFloat(rdr("42.5\n"), "Price", &out)
	require.NoError(t, err)
	require.InDelta(t, 42.5, *got, 1e-9)

	_, err = GetOptionalFloat(rdr("cheap\n"), "Price", &out)
	require.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "a\nb", got)
}

func TestGetMultiline_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("only line"), "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "only line", got)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword("Passphrase", &out)
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Equal(t, "Passphrase: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword("Passphrase", &out)
	require.Error(t, err)
}
