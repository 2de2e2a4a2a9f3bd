package parquetutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name  string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cents int64  `parquet:"name=cents, type=INT64"`
}

func TestWriteAllReadBytes(t *testing.T) {
	rows := []row{{Name: "Oak armoire", Cents: 120000}, {Name: "Brass lamp", Cents: 4550}}

	data, err := WriteAll(rows)
	require.NoError(t, err)
	assert.Equal(t, "PAR1", string(data[:4]))

	actual, err := ReadBytes[row](data)
	require.NoError(t, err)
	assert.Equal(t, rows, actual)
}
