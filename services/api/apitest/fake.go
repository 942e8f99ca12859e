// Package apitest provides an in-memory api.Backend for tests.
package apitest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"
)

// Call is one recorded backend invocation
type Call struct {
	Op        string
	BrigadaID int
	Body      interface{}
}

// Fake stores brigades and equipment in memory and records every call.
// Operations named in Fail return the configured error.
type Fake struct {
	mu sync.Mutex

	nextID    int
	brigadas  map[int]models.Brigada
	ropa      map[int][]models.EquipamientoRopa
	botas     map[int][]models.EquipamientoBotas
	guantes   map[int][]models.EquipamientoGuantes
	genericos map[int]map[models.Categoria][]models.EquipamientoGenerico
	catalogos map[models.Catalogo][]models.CatalogoItem
	fail      map[string]error
	calls     []Call
}

var _ api.Backend = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		nextID:    1,
		brigadas:  make(map[int]models.Brigada),
		ropa:      make(map[int][]models.EquipamientoRopa),
		botas:     make(map[int][]models.EquipamientoBotas),
		guantes:   make(map[int][]models.EquipamientoGuantes),
		genericos: make(map[int]map[models.Categoria][]models.EquipamientoGenerico),
		catalogos: make(map[models.Catalogo][]models.CatalogoItem),
		fail:      make(map[string]error),
	}
}

// FailOn makes op (e.g. "DeleteRopa", "CreateGenerico/epp") return err; a nil err clears it
func (f *Fake) FailOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.fail, op)
		return
	}
	f.fail[op] = err
}

// Calls returns a copy of the recorded calls
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsWithPrefix returns the recorded calls whose op starts with prefix
func (f *Fake) CallsWithPrefix(prefix string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if strings.HasPrefix(c.Op, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets the recorded calls
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// AddBrigada stores b, assigning an id when it has none
func (f *Fake) AddBrigada(b models.Brigada) models.Brigada {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID == 0 {
		b.ID = f.nextID
	}
	if b.ID >= f.nextID {
		f.nextID = b.ID + 1
	}
	f.brigadas[b.ID] = b
	return b
}

// SetCatalogo replaces the items of a catalog
func (f *Fake) SetCatalogo(c models.Catalogo, items []models.CatalogoItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogos[c] = items
}

// AddRopa, AddBotas, AddGuantes and AddGenerico seed stored equipment
func (f *Fake) AddRopa(brigadaID int, r models.EquipamientoRopa) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.BrigadaID = brigadaID
	f.ropa[brigadaID] = append(f.ropa[brigadaID], r)
}

func (f *Fake) AddBotas(brigadaID int, b models.EquipamientoBotas) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.BrigadaID = brigadaID
	f.botas[brigadaID] = append(f.botas[brigadaID], b)
}

func (f *Fake) AddGuantes(brigadaID int, g models.EquipamientoGuantes) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g.BrigadaID = brigadaID
	f.guantes[brigadaID] = append(f.guantes[brigadaID], g)
}

func (f *Fake) AddGenerico(brigadaID int, item models.EquipamientoGenerico) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.BrigadaID = brigadaID
	if f.genericos[brigadaID] == nil {
		f.genericos[brigadaID] = make(map[models.Categoria][]models.EquipamientoGenerico)
	}
	f.genericos[brigadaID][item.Categoria] = append(f.genericos[brigadaID][item.Categoria], item)
}

// record stores the call and returns the injected failure, if any. Caller holds mu.
func (f *Fake) record(op string, brigadaID int, body interface{}) error {
	f.calls = append(f.calls, Call{Op: op, BrigadaID: brigadaID, Body: body})
	if err, ok := f.fail[op]; ok {
		return &api.Error{Op: op, Message: "injected", Err: err}
	}
	return nil
}

func notFound(op string, id int) error {
	return &api.Error{Op: op, StatusCode: 404, Message: fmt.Sprintf("brigada %d not found", id), Err: api.ErrUnsuccessful}
}

func (f *Fake) ListBrigadas(ctx context.Context) ([]models.Brigada, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListBrigadas", 0, nil); err != nil {
		return nil, err
	}
	out := make([]models.Brigada, 0, len(f.brigadas))
	for _, b := range f.brigadas {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Fake) GetBrigada(ctx context.Context, id int) (*models.Brigada, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetBrigada", id, nil); err != nil {
		return nil, err
	}
	b, ok := f.brigadas[id]
	if !ok {
		return nil, notFound("GetBrigada", id)
	}
	return &b, nil
}

func (f *Fake) CreateBrigada(ctx context.Context, req models.BrigadaRequest) (*models.Brigada, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateBrigada", 0, req); err != nil {
		return nil, err
	}
	b := brigadaFromRequest(f.nextID, req)
	b.FechaRegistro = models.RemoteTime{Time: time.Now().UTC()}
	b.Activo = true
	f.brigadas[b.ID] = b
	f.nextID++
	return &b, nil
}

func (f *Fake) UpdateBrigada(ctx context.Context, id int, req models.BrigadaRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateBrigada", id, req); err != nil {
		return err
	}
	old, ok := f.brigadas[id]
	if !ok {
		return notFound("UpdateBrigada", id)
	}
	b := brigadaFromRequest(id, req)
	b.FechaRegistro = old.FechaRegistro
	b.Activo = old.Activo
	f.brigadas[id] = b
	return nil
}

func (f *Fake) DeleteBrigada(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteBrigada", id, nil); err != nil {
		return err
	}
	if _, ok := f.brigadas[id]; !ok {
		return notFound("DeleteBrigada", id)
	}
	delete(f.brigadas, id)
	return nil
}

func brigadaFromRequest(id int, req models.BrigadaRequest) models.Brigada {
	return models.Brigada{
		ID:                        id,
		NombreBrigada:             req.NombreBrigada,
		CantidadBomberosActivos:   req.CantidadBomberosActivos,
		ContactoCelularComandante: req.ContactoCelularComandante,
		EncargadoLogistica:        req.EncargadoLogistica,
		ContactoCelularLogistica:  req.ContactoCelularLogistica,
		NumeroEmergenciaPublico:   req.NumeroEmergenciaPublico,
	}
}

func (f *Fake) GetCatalogo(ctx context.Context, c models.Catalogo) ([]models.CatalogoItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetCatalogo/"+string(c), 0, nil); err != nil {
		return nil, err
	}
	return append([]models.CatalogoItem(nil), f.catalogos[c]...), nil
}

func (f *Fake) GetRopa(ctx context.Context, brigadaID int) ([]models.EquipamientoRopa, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetRopa", brigadaID, nil); err != nil {
		return nil, err
	}
	return append([]models.EquipamientoRopa(nil), f.ropa[brigadaID]...), nil
}

func (f *Fake) CreateRopa(ctx context.Context, brigadaID int, req models.RopaRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateRopa", brigadaID, req); err != nil {
		return err
	}
	f.ropa[brigadaID] = append(f.ropa[brigadaID], models.EquipamientoRopa{
		ID:            len(f.ropa[brigadaID]) + 1,
		BrigadaID:     brigadaID,
		TipoRopaID:    req.TipoRopaID,
		CantidadXS:    req.CantidadXS,
		CantidadS:     req.CantidadS,
		CantidadM:     req.CantidadM,
		CantidadL:     req.CantidadL,
		CantidadXL:    req.CantidadXL,
		Observaciones: req.Observaciones,
	})
	return nil
}

func (f *Fake) DeleteRopa(ctx context.Context, brigadaID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteRopa", brigadaID, nil); err != nil {
		return err
	}
	delete(f.ropa, brigadaID)
	return nil
}

func (f *Fake) GetBotas(ctx context.Context, brigadaID int) ([]models.EquipamientoBotas, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetBotas", brigadaID, nil); err != nil {
		return nil, err
	}
	return append([]models.EquipamientoBotas(nil), f.botas[brigadaID]...), nil
}

func (f *Fake) CreateBotas(ctx context.Context, brigadaID int, req models.BotasRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateBotas", brigadaID, req); err != nil {
		return err
	}
	f.botas[brigadaID] = append(f.botas[brigadaID], models.EquipamientoBotas{
		ID:                len(f.botas[brigadaID]) + 1,
		BrigadaID:         brigadaID,
		Talla37:           req.Talla37,
		Talla38:           req.Talla38,
		Talla39:           req.Talla39,
		Talla40:           req.Talla40,
		Talla41:           req.Talla41,
		Talla42:           req.Talla42,
		Talla43:           req.Talla43,
		OtraTalla:         req.OtraTalla,
		CantidadOtraTalla: req.CantidadOtraTalla,
		Observaciones:     req.Observaciones,
	})
	return nil
}

func (f *Fake) DeleteBotas(ctx context.Context, brigadaID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteBotas", brigadaID, nil); err != nil {
		return err
	}
	delete(f.botas, brigadaID)
	return nil
}

func (f *Fake) GetGuantes(ctx context.Context, brigadaID int) ([]models.EquipamientoGuantes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetGuantes", brigadaID, nil); err != nil {
		return nil, err
	}
	return append([]models.EquipamientoGuantes(nil), f.guantes[brigadaID]...), nil
}

func (f *Fake) CreateGuantes(ctx context.Context, brigadaID int, req models.GuantesRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateGuantes", brigadaID, req); err != nil {
		return err
	}
	f.guantes[brigadaID] = append(f.guantes[brigadaID], models.EquipamientoGuantes{
		ID:                len(f.guantes[brigadaID]) + 1,
		BrigadaID:         brigadaID,
		TallaXS:           req.TallaXS,
		TallaS:            req.TallaS,
		TallaM:            req.TallaM,
		TallaL:            req.TallaL,
		TallaXL:           req.TallaXL,
		TallaXXL:          req.TallaXXL,
		OtraTalla:         req.OtraTalla,
		CantidadOtraTalla: req.CantidadOtraTalla,
		Observaciones:     req.Observaciones,
	})
	return nil
}

func (f *Fake) DeleteGuantes(ctx context.Context, brigadaID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteGuantes", brigadaID, nil); err != nil {
		return err
	}
	delete(f.guantes, brigadaID)
	return nil
}

func (f *Fake) GetGenerico(ctx context.Context, brigadaID int, cat models.Categoria) ([]models.EquipamientoGenerico, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetGenerico/"+cat.Key(), brigadaID, nil); err != nil {
		return nil, err
	}
	return append([]models.EquipamientoGenerico(nil), f.genericos[brigadaID][cat]...), nil
}

func (f *Fake) CreateGenerico(ctx context.Context, brigadaID int, cat models.Categoria, row models.GenericoRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateGenerico/"+cat.Key(), brigadaID, row); err != nil {
		return err
	}
	if f.genericos[brigadaID] == nil {
		f.genericos[brigadaID] = make(map[models.Categoria][]models.EquipamientoGenerico)
	}
	f.genericos[brigadaID][cat] = append(f.genericos[brigadaID][cat], models.EquipamientoGenerico{
		ID:              len(f.genericos[brigadaID][cat]) + 1,
		BrigadaID:       brigadaID,
		Categoria:       cat,
		TipoID:          row.TipoID,
		Cantidad:        row.Cantidad,
		Observaciones:   row.Observaciones,
		MontoAproximado: row.MontoAproximado,
	})
	return nil
}

func (f *Fake) DeleteGenerico(ctx context.Context, brigadaID int, cat models.Categoria) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteGenerico/"+cat.Key(), brigadaID, nil); err != nil {
		return err
	}
	if f.genericos[brigadaID] != nil {
		delete(f.genericos[brigadaID], cat)
	}
	return nil
}
