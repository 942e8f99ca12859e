package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/api"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotOnFinalStep is returned when Submit is called before the last step
	ErrNotOnFinalStep = errors.New("submit is only allowed on the last step")
)

const (
	MsgCreateFailed    = "Error al crear la brigada"
	MsgUpdateFailed    = "Error al actualizar la brigada"
	MsgCreatedComplete = "Brigada creada exitosamente con todo su equipamiento"
	MsgUpdatedComplete = "Brigada actualizada exitosamente con todo su equipamiento"
)

// Next advances when the current step validates
func Next(f *FormState) error {
	if err := ValidateStep(f, f.Step); err != nil {
		return err
	}
	if f.Step < StepGeneralEquipment {
		f.Step++
	}
	return nil
}

// Back goes to the previous step unconditionally
func Back(f *FormState) {
	if f.Step > StepBrigadeInfo {
		f.Step--
	}
}

// SubmitError is a persistence failure with the message shown to the user
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Result describes a completed submission
type Result struct {
	BrigadaID      int
	Created        bool
	Message        string
	EquipmentCalls int
	DeleteFailures int
}

// Submitter persists a validated form through the remote service
type Submitter struct {
	backend api.Backend
	logger  *zap.Logger
}

func NewSubmitter(backend api.Backend, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{backend: backend, logger: logger}
}

// Submit upserts the brigade and replaces its whole equipment set.
// Equipment already committed is not rolled back when a later call fails.
func (s *Submitter) Submit(ctx context.Context, f *FormState) (*Result, error) {
	if f.Step != StepGeneralEquipment {
		return nil, ErrNotOnFinalStep
	}
	if err := ValidateAll(f); err != nil {
		return nil, err
	}

	res := &Result{}

	if f.IsEditing() {
		if err := s.backend.UpdateBrigada(ctx, f.BrigadaID, f.Brigada); err != nil {
			s.logger.Error("Failed to update brigada", zap.String("op", "wizard.Submit"), zap.Int("brigada_id", f.BrigadaID), zap.Error(err))
			return nil, &SubmitError{Message: MsgUpdateFailed, Err: err}
		}
		res.BrigadaID = f.BrigadaID
		res.DeleteFailures = s.deleteEquipment(ctx, f.BrigadaID)
		res.Message = MsgUpdatedComplete
	} else {
		created, err := s.backend.CreateBrigada(ctx, f.Brigada)
		if err != nil {
			s.logger.Error("Failed to create brigada", zap.String("op", "wizard.Submit"), zap.Error(err))
			return nil, &SubmitError{Message: MsgCreateFailed, Err: err}
		}
		res.BrigadaID = created.ID
		res.Created = true
		res.Message = MsgCreatedComplete
	}

	calls := BuildEquipmentCalls(f)
	res.EquipmentCalls = len(calls)
	if err := s.runCalls(ctx, res.BrigadaID, calls); err != nil {
		return res, err
	}

	s.logger.Info("Brigada saved",
		zap.Int("brigada_id", res.BrigadaID),
		zap.Bool("created", res.Created),
		zap.Int("equipment_calls", res.EquipmentCalls),
		zap.Int("delete_failures", res.DeleteFailures),
	)
	return res, nil
}

// deleteEquipment clears the twelve sub-resources concurrently. Failures are
// logged and counted but never stop the submission.
func (s *Submitter) deleteEquipment(ctx context.Context, brigadaID int) int {
	type deletion struct {
		name string
		do   func(context.Context) error
	}

	deletions := []deletion{
		{"ropa", func(ctx context.Context) error { return s.backend.DeleteRopa(ctx, brigadaID) }},
		{"botas", func(ctx context.Context) error { return s.backend.DeleteBotas(ctx, brigadaID) }},
		{"guantes", func(ctx context.Context) error { return s.backend.DeleteGuantes(ctx, brigadaID) }},
	}
	for _, cat := range models.AllCategorias {
		cat := cat
		deletions = append(deletions, deletion{cat.Route(), func(ctx context.Context) error {
			return s.backend.DeleteGenerico(ctx, brigadaID, cat)
		}})
	}

	var (
		mu       sync.Mutex
		failures int
		g        errgroup.Group
	)
	for _, d := range deletions {
		d := d
		g.Go(func() error {
			if err := d.do(ctx); err != nil {
				s.logger.Warn("Failed to delete existing equipment, continuing",
					zap.String("op", "wizard.deleteEquipment"),
					zap.Int("brigada_id", brigadaID),
					zap.String("equipamiento", d.name),
					zap.Error(err),
				)
				mu.Lock()
				failures++
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failures
}

// runCalls issues every creation call concurrently and joins all failures
func (s *Submitter) runCalls(ctx context.Context, brigadaID int, calls []EquipmentCall) error {
	var (
		mu     sync.Mutex
		errs   []error
		labels []string
		g      errgroup.Group
	)
	for _, call := range calls {
		call := call
		g.Go(func() error {
			err := call.Do(ctx, s.backend, brigadaID)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", call.Label, err))
				labels = append(labels, call.Label)
				mu.Unlock()
			}
			return err
		})
	}
	if g.Wait() == nil {
		return nil
	}

	joined := errors.Join(errs...)
	s.logger.Error("Failed to create equipment",
		zap.String("op", "wizard.runCalls"),
		zap.Int("brigada_id", brigadaID),
		zap.Strings("calls", labels),
		zap.Error(joined),
	)
	return &SubmitError{
		Message: fmt.Sprintf("Error al crear equipamiento: %d de %d registros fallaron", len(errs), len(calls)),
		Err:     joined,
	}
}
