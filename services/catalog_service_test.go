package services

import (
	"context"
	"errors"
	"testing"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogos(t *testing.T) {
	fake := apitest.New()
	fake.SetCatalogo(models.CatalogoTiposRopa, []models.CatalogoItem{{ID: 1, Nombre: "Camisa"}, {ID: 2, Nombre: "Pantalón"}})
	fake.SetCatalogo(models.CatalogoMedicamentos, []models.CatalogoItem{{ID: 7, Nombre: "Suero"}})

	cats, err := LoadCatalogos(context.Background(), fake)
	require.NoError(t, err)
	assert.Len(t, cats, len(models.AllCatalogos))
	assert.Len(t, cats.Items(models.CatalogoTiposRopa), 2)
	assert.Empty(t, cats.Items(models.CatalogoEquipoCampo))

	assert.Equal(t, "Pantalón", cats.Nombre(models.CatalogoTiposRopa, 2))
	assert.Equal(t, "Suero", cats.Nombre(models.CategoriaMedicamentos.Catalogo(), 7))
	assert.Empty(t, cats.Nombre(models.CatalogoTiposRopa, 99))

	assert.Len(t, fake.CallsWithPrefix("GetCatalogo/"), 10)
}

func TestLoadCatalogos_AnyFailureFails(t *testing.T) {
	fake := apitest.New()
	fake.FailOn("GetCatalogo/herramientas", errors.New("boom"))

	cats, err := LoadCatalogos(context.Background(), fake)
	assert.Error(t, err)
	assert.Nil(t, cats)
}
