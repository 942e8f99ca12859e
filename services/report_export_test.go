package services

import (
	"context"
	"errors"
	"testing"

	"brigadas_admin_go/services/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestInventoryWorkbook(t *testing.T) {
	require.NoError(t, i18n.Load())
	fake := seededFake()

	report, err := CollectInventoryReport(context.Background(), fake)
	require.NoError(t, err)
	require.Len(t, report.Details, 1)

	buf, err := BuildInventoryWorkbook(context.Background(), report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Brigadas", "Equipamiento"}, f.GetSheetList())

	name, _ := f.GetCellValue("Brigadas", "B5")
	assert.Equal(t, "Brigada Cuatro", name)
	ropa, _ := f.GetCellValue("Brigadas", "J5")
	assert.Equal(t, "3", ropa)
	botas, _ := f.GetCellValue("Brigadas", "K5")
	assert.Equal(t, "4", botas)

	rows, err := f.GetRows("Equipamiento")
	require.NoError(t, err)
	// header, clothing, boots, gloves, vehicle service, medicine
	require.Len(t, rows, 6)
	assert.Equal(t, "Categoría", rows[0][1])
	assert.Equal(t, "Ropa", rows[1][1])
	assert.Equal(t, "Servicios de Vehículos", rows[4][1])
	assert.Equal(t, "300", rows[4][4])
	assert.Equal(t, "Medicamentos", rows[5][1])
}

func TestCollectInventoryReport_Failure(t *testing.T) {
	fake := seededFake()
	fake.FailOn("GetGuantes", errors.New("timeout"))

	_, err := CollectInventoryReport(context.Background(), fake)
	assert.Error(t, err)
}
