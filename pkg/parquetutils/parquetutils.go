// Package parquetutils encodes and decodes whole parquet files in memory.
package parquetutils

import (
	"github.com/cockroachdb/errors"
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

var (
	// ReaderConcurrency parallel number of file readers.
	ReaderConcurrency int64 = 4

	// WriterConcurrency parallel number of row group writers.
	WriterConcurrency int64 = 4
)

// ReadAll reads all records from the parquet file.
func ReadAll[T any](sourceFile source.ParquetFile) ([]T, error) {
	r, err := reader.NewParquetReader(sourceFile, new(T), ReaderConcurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet reader")
	}
	defer r.ReadStop()

	data := make([]T, r.GetNumRows())
	if err = r.Read(&data); err != nil {
		return nil, errors.Wrap(err, "failed to read parquet data")
	}
	return data, nil
}

// ReadBytes decodes a parquet file held in data without copying it.
func ReadBytes[T any](data []byte) ([]T, error) {
	return ReadAll[T](parquetbuffer.NewBufferFileFromBytesNoAlloc(data))
}

// WriteAll encodes rows as a snappy-compressed parquet file. T must carry parquet struct tags.
func WriteAll[T any](rows []T) ([]byte, error) {
	buf := parquetbuffer.NewBufferFile()
	w, err := writer.NewParquetWriter(buf, new(T), WriterConcurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet writer")
	}
	w.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range rows {
		if err := w.Write(rows[i]); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i)
		}
	}
	if err := w.WriteStop(); err != nil {
		return nil, errors.Wrap(err, "failed to flush parquet file")
	}
	return buf.Bytes(), nil
}
