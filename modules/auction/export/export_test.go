package export

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gaze-network/auction-network/pkg/parquetutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows(t *testing.T) []Row {
	t.Helper()
	sales := []*entity.Sale{
		{ID: "s1", LotNumber: "1", Title: `Walnut "Eastlake" desk`, Category: "Furniture", BidderNumber: "101", BuyerName: "Ann Lee", SellerID: "c1", Price: settlement.MustParseMoney("500")},
		{ID: "s2", LotNumber: "2", Title: "Quilt, hand-stitched", Category: "Textiles", BidderNumber: "102", BuyerName: "Bo Park", SellerID: "c2", Price: settlement.MustParseMoney("45.50")},
	}
	rates := settlement.Rates{
		CommissionRate: decimal.NewFromInt(10),
		TaxRate:        decimal.NewFromInt(8),
		BuyersPremium:  decimal.NewFromInt(15),
	}
	result, err := settlement.Aggregate(entity.SaleLineItems(sales), rates, settlement.Policy{})
	require.NoError(t, err)
	rows, err := NewRows(sales, result.PerLine)
	require.NoError(t, err)
	return rows
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testRows(t)))

	expected := `"Lot","Title","Category","Bidder","Buyer","Seller","Price","Buyer Premium","Tax","Total","Commission","Payout"` + "\r\n" +
		`"1","Walnut ""Eastlake"" desk","Furniture","101","Ann Lee","c1","500.00","75.00","40.00","615.00","50.00","450.00"` + "\r\n" +
		`"2","Quilt, hand-stitched","Textiles","102","Bo Park","c2","45.50","6.83","3.64","55.97","4.55","40.95"` + "\r\n"
	assert.Equal(t, expected, buf.String())
}

func TestEncodeParquet(t *testing.T) {
	rows := testRows(t)
	data, err := Encode(FormatParquet, rows)
	require.NoError(t, err)

	decoded, err := parquetutils.ReadBytes[Row](data)
	require.NoError(t, err)
	assert.Equal(t, rows, decoded)
}

func TestNewRowsMismatch(t *testing.T) {
	_, err := NewRows([]*entity.Sale{{ID: "a"}}, []settlement.LineSettlement{{ID: "b"}})
	assert.Error(t, err)

	_, err = NewRows([]*entity.Sale{{ID: "a"}}, nil)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	format, err = ParseFormat("parquet")
	require.NoError(t, err)
	assert.Equal(t, FormatParquet, format)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, errs.Unsupported)
}

type fakeUploader struct {
	inputs []*s3.PutObjectInput
	bodies [][]byte
}

func (f *fakeUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &manager.UploadOutput{}, nil
}

func TestS3Archiver(t *testing.T) {
	uploader := &fakeUploader{}
	archiver := NewS3ArchiverWithUploader(uploader, "auction-archive", "exports")

	key, err := archiver.Archive(context.Background(), "event-1", FormatParquet, []byte("PAR1"))
	require.NoError(t, err)
	assert.Equal(t, "exports/event-1/sales.parquet", key)

	require.Len(t, uploader.inputs, 1)
	assert.Equal(t, "auction-archive", aws.ToString(uploader.inputs[0].Bucket))
	assert.Equal(t, key, aws.ToString(uploader.inputs[0].Key))
	assert.Equal(t, "application/vnd.apache.parquet", aws.ToString(uploader.inputs[0].ContentType))
	assert.Equal(t, []byte("PAR1"), uploader.bodies[0])
}
