package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/farmfeed/farmfeed/internal/encoding"
	"github.com/farmfeed/farmfeed/internal/listing"
)

// CommodityResolver turns free-text product names into commodities.
type CommodityResolver interface {
	Resolve(ctx context.Context, rawName string) (listing.Commodity, bool, error)
}

// Parser reads listing spreadsheets exported as CSV (';' or ',' separated) and
// produces listing params. The seller is filled in by the caller.
type Parser struct {
	resolver CommodityResolver
}

func NewParser(resolver CommodityResolver) *Parser {
	return &Parser{resolver: resolver}
}

type Result struct {
	Profile string
	Charset encoding.Charset
	Params  []listing.CreateParams
}

func (p *Parser) Parse(ctx context.Context, r io.Reader) (*Result, error) {
	utf8r, charset, err := encoding.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	for _, comma := range []rune{';', ','} {
		rows, err := readRows(data, comma)
		if err != nil {
			continue
		}

		profile, cols, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		params, err := p.parseRows(ctx, profile, cols, rows[headerIdx+1:], headerIdx)
		if err != nil {
			return nil, err
		}

		return &Result{Profile: profile.Name, Charset: charset, Params: params}, nil
	}

	return nil, fmt.Errorf("%w: no known column layout found (expected Title/Commodity/Price/Quantity or Product/Grade/Price (R/t)/Tons)", listing.ErrInvalid)
}

func readRows(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

// colIndex maps lower-cased column names to their index in the row.
type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows converts data rows; headerRowNum is the 0-based header index used for
// 1-based row numbers in error messages.
func (p *Parser) parseRows(ctx context.Context, prof *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]listing.CreateParams, error) {
	var params []listing.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2

		if isBlank(row) {
			continue
		}

		title := cellValue(row, colOf(cols, prof.TitleCol))
		if title == "" {
			return nil, fmt.Errorf("%w: row %d: missing %s", listing.ErrInvalid, rowNum, prof.TitleCol)
		}

		commodityName := title
		if prof.CommodityCol != "" {
			commodityName = cellValue(row, colOf(cols, prof.CommodityCol))
		}

		commodity, ok, err := p.resolver.Resolve(ctx, commodityName)
		if err != nil {
			return nil, fmt.Errorf("row %d: resolve commodity: %w", rowNum, err)
		}

		if !ok {
			return nil, fmt.Errorf("%w: row %d: unknown commodity %q", listing.ErrInvalid, rowNum, commodityName)
		}

		if grade := cellValue(row, colOf(cols, prof.GradeCol)); grade != "" {
			title = title + " " + grade
		}

		price, err := parseAmount(cellValue(row, colOf(cols, prof.PriceCol)))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid price", listing.ErrInvalid, rowNum)
		}

		quantity, err := parseAmount(cellValue(row, colOf(cols, prof.QuantityCol)))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid quantity", listing.ErrInvalid, rowNum)
		}

		params = append(params, listing.CreateParams{
			Title:       title,
			Description: cellValue(row, colOf(cols, prof.DescCol)),
			Commodity:   commodity,
			Price:       price,
			Quantity:    quantity,
		})
	}

	return params, nil
}

func colOf(cols colIndex, name string) int {
	if name == "" {
		return -1
	}

	idx, ok := cols[name]
	if !ok {
		return -1
	}

	return idx
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
