package models

// Catalogo identifies one of the read-only reference catalogs by its path segment
type Catalogo string

const (
	CatalogoTiposRopa          Catalogo = "tipos-ropa"
	CatalogoEquipamientoEPP    Catalogo = "equipamiento-epp"
	CatalogoHerramientas       Catalogo = "herramientas"
	CatalogoServiciosVehiculos Catalogo = "servicios-vehiculos"
	CatalogoAlimentosBebidas   Catalogo = "alimentos-bebidas"
	CatalogoEquipoCampo        Catalogo = "equipo-campo"
	CatalogoLimpiezaPersonal   Catalogo = "limpieza-personal"
	CatalogoLimpiezaGeneral    Catalogo = "limpieza-general"
	CatalogoMedicamentos       Catalogo = "medicamentos"
	CatalogoAlimentosAnimales  Catalogo = "alimentos-animales"
)

// AllCatalogos lists every catalog fetched by the wizard
var AllCatalogos = []Catalogo{
	CatalogoTiposRopa,
	CatalogoEquipamientoEPP,
	CatalogoHerramientas,
	CatalogoServiciosVehiculos,
	CatalogoAlimentosBebidas,
	CatalogoEquipoCampo,
	CatalogoLimpiezaPersonal,
	CatalogoLimpiezaGeneral,
	CatalogoMedicamentos,
	CatalogoAlimentosAnimales,
}

// Categoria is one of the nine generic equipment categories
type Categoria int

const (
	CategoriaEPP Categoria = iota
	CategoriaHerramientas
	CategoriaServiciosVehiculos
	CategoriaAlimentosBebidas
	CategoriaEquipoCampo
	CategoriaLimpiezaPersonal
	CategoriaLimpiezaGeneral
	CategoriaMedicamentos
	CategoriaAlimentosAnimales
)

// AllCategorias is the fixed validation and submission order
var AllCategorias = []Categoria{
	CategoriaEPP,
	CategoriaHerramientas,
	CategoriaServiciosVehiculos,
	CategoriaAlimentosBebidas,
	CategoriaEquipoCampo,
	CategoriaLimpiezaPersonal,
	CategoriaLimpiezaGeneral,
	CategoriaMedicamentos,
	CategoriaAlimentosAnimales,
}

// categoriaInfo maps a category to its form key, backend route and wire field names
type categoriaInfo struct {
	key        string
	route      string
	catalogo   Catalogo
	requestID  string
	responseID string
	nameField  string
	label      string
	hasMonto   bool
}

func (c Categoria) info() categoriaInfo {
	switch c {
	case CategoriaEPP:
		return categoriaInfo{"epp", "epp", CatalogoEquipamientoEPP, "EquipoEPPID", "equipo_epp_id", "equipo_nombre", "EPP", false}
	case CategoriaHerramientas:
		return categoriaInfo{"herramientas", "herramientas", CatalogoHerramientas, "HerramientaID", "herramienta_id", "herramienta_nombre", "Herramientas", false}
	case CategoriaServiciosVehiculos:
		return categoriaInfo{"serviciosVehiculos", "logistica-vehiculos", CatalogoServiciosVehiculos, "ServicioVehiculoID", "servicio_vehiculo_id", "servicio_nombre", "Servicios de Vehículos", true}
	case CategoriaAlimentosBebidas:
		return categoriaInfo{"alimentosBebidas", "alimentacion", CatalogoAlimentosBebidas, "AlimentoBebidaID", "alimento_bebida_id", "alimento_nombre", "Alimentos y Bebidas", false}
	case CategoriaEquipoCampo:
		return categoriaInfo{"equipoCampo", "equipo-campo", CatalogoEquipoCampo, "EquipoCampoID", "equipo_campo_id", "equipo_nombre", "Equipo de Campo", false}
	case CategoriaLimpiezaPersonal:
		return categoriaInfo{"limpiezaPersonal", "limpieza-personal", CatalogoLimpiezaPersonal, "ProductoLimpiezaPersonalID", "producto_limpieza_personal_id", "producto_nombre", "Limpieza Personal", false}
	case CategoriaLimpiezaGeneral:
		return categoriaInfo{"limpiezaGeneral", "limpieza-general", CatalogoLimpiezaGeneral, "ProductoLimpiezaGeneralID", "producto_limpieza_general_id", "producto_nombre", "Limpieza General", false}
	case CategoriaMedicamentos:
		return categoriaInfo{"medicamentos", "medicamentos", CatalogoMedicamentos, "MedicamentoID", "medicamento_id", "medicamento_nombre", "Medicamentos", false}
	case CategoriaAlimentosAnimales:
		return categoriaInfo{"alimentosAnimales", "rescate-animal", CatalogoAlimentosAnimales, "AlimentoAnimalID", "alimento_animal_id", "alimento_nombre", "Alimentos para Animales", false}
	}
	return categoriaInfo{}
}

// Key is the form-side identifier (used in field names and draft JSON)
func (c Categoria) Key() string { return c.info().key }

// Route is the backend path segment under /equipamiento/:brigadaId/
func (c Categoria) Route() string { return c.info().route }

// Catalogo returns the reference catalog listing valid types for the category
func (c Categoria) Catalogo() Catalogo { return c.info().catalogo }

// RequestIDField is the type reference field name in create payloads
func (c Categoria) RequestIDField() string { return c.info().requestID }

// ResponseIDField is the type reference field name in read responses
func (c Categoria) ResponseIDField() string { return c.info().responseID }

// ResponseNameField is the resolved type name field in read responses
func (c Categoria) ResponseNameField() string { return c.info().nameField }

// Label is the human readable section title used in messages
func (c Categoria) Label() string { return c.info().label }

// HasMonto reports whether rows carry an approximate cost
func (c Categoria) HasMonto() bool { return c.info().hasMonto }

func (c Categoria) String() string { return c.Key() }

// Valid reports whether c is one of the declared categories
func (c Categoria) Valid() bool { return c.info().key != "" }

// ParseCategoria resolves a form-side key
func ParseCategoria(key string) (Categoria, bool) {
	for _, c := range AllCategorias {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}

func (c Categoria) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

func (c *Categoria) UnmarshalText(b []byte) error {
	parsed, ok := ParseCategoria(string(b))
	if !ok {
		return &UnknownCategoriaError{Key: string(b)}
	}
	*c = parsed
	return nil
}

// UnknownCategoriaError is returned when a key does not name a category
type UnknownCategoriaError struct {
	Key string
}

func (e *UnknownCategoriaError) Error() string {
	return "unknown equipment category: " + e.Key
}
