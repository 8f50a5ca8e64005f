// Package export writes vendor pool snapshots to columnar files.
package export

import (
	"fmt"

	"github.com/rustyeddy/puestos/market"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// VendorRow is the parquet layout of one vendor's final state.
type VendorRow struct {
	RunID        string  `parquet:"name=run_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	ID           int64   `parquet:"name=id, type=INT64"`
	Price        float64 `parquet:"name=price, type=DOUBLE"`
	TotalSales   int64   `parquet:"name=total_sales, type=INT64"`
	RecentSales  int64   `parquet:"name=recent_sales, type=INT64"`
	TotalRevenue float64 `parquet:"name=total_revenue, type=DOUBLE"`
}

// parallelism passed to the parquet writer and reader
const np = 4

// WriteVendorsParquet writes every vendor in the pool to path as one
// row group stream, compressed with snappy.
func WriteVendorsParquet(path, runID string, p *market.Pool) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(VendorRow), np)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range p.Vendors {
		v := &p.Vendors[i]
		row := VendorRow{
			RunID:        runID,
			ID:           int64(v.ID),
			Price:        v.Price,
			TotalSales:   int64(v.TotalSales),
			RecentSales:  int64(v.RecentSales),
			TotalRevenue: v.TotalRevenue,
		}
		if err := pw.Write(row); err != nil {
			_ = fw.Close()
			return fmt.Errorf("write vendor %d: %w", v.ID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return fmt.Errorf("finish parquet file: %w", err)
	}
	return fw.Close()
}

// ReadVendorsParquet loads rows written by WriteVendorsParquet.
func ReadVendorsParquet(path string) ([]VendorRow, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(VendorRow), np)
	if err != nil {
		return nil, fmt.Errorf("create parquet reader: %w", err)
	}
	defer pr.ReadStop()

	rows := make([]VendorRow, int(pr.GetNumRows()))
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}
