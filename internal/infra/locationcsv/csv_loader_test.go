package locationcsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookstore/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kigaliCSV = `code,name,type,parent_code
0102,Nyarugenge,DISTRICT,01
01,Kigali City,PROVINCE,
010201,Nyamirambo,sector,0102
01020101,Rugarama,CELL,010201
0102010101,Kiberinka,VILLAGE,01020101
`

func TestLoad(t *testing.T) {
	records, err := Load(strings.NewReader(kigaliCSV))
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, Record{Line: 2, Code: "0102", Name: "Nyarugenge", Type: entity.LocationDistrict, ParentCode: "01"}, records[0])
	assert.Equal(t, entity.LocationSector, records[2].Type)
	assert.Empty(t, records[1].ParentCode)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.csv")
	require.NoError(t, os.WriteFile(path, []byte(kigaliCSV), 0o644))

	records, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 5)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{"unknown type", "code,name,type,parent_code\n01,Kigali,COUNTY,\n", "unknown location type"},
		{"missing name", "code,name,type,parent_code\n01,,PROVINCE,\n", "code and name are required"},
		{"short row", "code,name,type\n01,Kigali,PROVINCE\n", "expected 4 columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.csv))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_HeaderOnly(t *testing.T) {
	records, err := Load(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOrder_ParentsFirst(t *testing.T) {
	records, err := Load(strings.NewReader(kigaliCSV))
	require.NoError(t, err)

	Order(records)

	codes := make([]string, 0, len(records))
	for _, r := range records {
		codes = append(codes, r.Code)
	}
	assert.Equal(t, []string{"01", "0102", "010201", "01020101", "0102010101"}, codes)
}

func TestValidate(t *testing.T) {
	records, err := Load(strings.NewReader(kigaliCSV))
	require.NoError(t, err)
	assert.Empty(t, Validate(records))

	broken := []Record{
		{Line: 2, Code: "01", Name: "Kigali City", Type: entity.LocationProvince, ParentCode: "99"},
		{Line: 3, Code: "0102", Name: "Nyarugenge", Type: entity.LocationDistrict},
		{Line: 4, Code: "010201", Name: "Nyamirambo", Type: entity.LocationCell, ParentCode: "01"},
		{Line: 5, Code: "01", Name: "Again", Type: entity.LocationProvince},
		// Parent not in the file: accepted, the database decides.
		{Line: 6, Code: "0201", Name: "Musanze", Type: entity.LocationDistrict, ParentCode: "02"},
	}

	problems := Validate(broken)

	require.Len(t, problems, 4)
	assert.Contains(t, problems[0].Error(), "already defined at line 2")
	assert.Contains(t, problems[1].Error(), "cannot have a parent")
	assert.Contains(t, problems[2].Error(), "needs a parent")
	assert.Contains(t, problems[3].Error(), "cannot sit under")
}
