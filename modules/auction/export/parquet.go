package export

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/pkg/parquetutils"
)

func EncodeParquet(rows []Row) ([]byte, error) {
	data, err := parquetutils.WriteAll(rows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode sales as parquet")
	}
	return data, nil
}

// Encode renders rows in the given format.
func Encode(format Format, rows []Row) ([]byte, error) {
	switch format {
	case FormatParquet:
		return EncodeParquet(rows)
	default:
		var buf bytes.Buffer
		if err := WriteCSV(&buf, rows); err != nil {
			return nil, errors.WithStack(err)
		}
		return buf.Bytes(), nil
	}
}
