package sync

import (
	"context"
	"errors"
	"time"

	"travel-admin/core/errs"
	"travel-admin/core/slug"
	"travel-admin/feature/catalog/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Input is a create or update payload for one parent kind.
type Input interface {
	// Columns returns the scalar columns present in the payload.
	Columns() map[string]any
	// Collections returns the owned collections present in the payload, keyed by collection name.
	Collections() map[string][]models.Row
	// References returns the shared reference names present in the payload, keyed by reference set name.
	References() map[string][]string
	// Validate checks the payload. On create every required field must be present.
	Validate(create bool) error
}

// Synchronizer creates, replaces and deletes a parent of type T together with everything it owns.
// Every call runs in a single transaction.
type Synchronizer[T any] struct {
	db       *gorm.DB
	kind     Kind
	slugger  *slug.Generator
	logger   *zap.Logger
	replacer Replacer
	resolver Resolver
	now      func() time.Time
}

// NewSynchronizer creates a synchronizer for kind.
func NewSynchronizer[T any](db *gorm.DB, kind Kind, slugger *slug.Generator, logger *zap.Logger) *Synchronizer[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if slugger == nil {
		slugger = slug.MustNew(slug.Config{})
	}
	return &Synchronizer[T]{
		db:      db,
		kind:    kind,
		slugger: slugger,
		logger:  logger.With(zap.String("kind", kind.Name)),
		now:     time.Now,
	}
}

// Kind returns the descriptor the synchronizer works on.
func (s *Synchronizer[T]) Kind() Kind {
	return s.kind
}

// Create inserts a new parent with its collections and references. Absent collections are created empty.
func (s *Synchronizer[T]) Create(ctx context.Context, in Input) (*T, error) {
	op := s.kind.Name + ".create"
	if err := in.Validate(true); err != nil {
		return nil, errs.Wrap(errs.ValidationFailed, op, err)
	}

	cols := in.Columns()
	id, err := s.deriveID(op, cols)
	if err != nil {
		return nil, err
	}

	var written int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return errs.New(errs.ValidationFailed, op, "%s %q already exists", s.kind.Name, id)
		}

		now := s.now()
		cols["id"] = id
		cols["created_at"] = now
		cols["updated_at"] = now
		if err := tx.Model(new(T)).Create(cols).Error; err != nil {
			return err
		}

		collections := in.Collections()
		for _, c := range s.kind.Collections {
			n, err := s.replacer.Replace(tx, c, id, collections[c.Name])
			if err != nil {
				return err
			}
			written += n
		}
		return s.link(tx, id, in.References())
	})
	if err != nil {
		s.logger.Warn("Create failed", zap.String("id", id), zap.Error(err))
		return nil, errs.FromStorage(op, err)
	}

	s.logger.Info("Created", zap.String("id", id), zap.Int("children", written))
	return s.Get(ctx, id)
}

// Update replaces the present scalar fields, collections and references of an existing parent.
// A present collection is replaced in full, even when empty; absent ones are kept.
func (s *Synchronizer[T]) Update(ctx context.Context, id string, in Input) (*T, error) {
	op := s.kind.Name + ".update"
	if err := in.Validate(false); err != nil {
		return nil, errs.Wrap(errs.ValidationFailed, op, err)
	}

	var written int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lock(tx, op, id); err != nil {
			return err
		}

		cols := in.Columns()
		delete(cols, "id")
		cols["updated_at"] = s.now()
		if err := tx.Model(new(T)).Where("id = ?", id).Updates(cols).Error; err != nil {
			return err
		}

		collections := in.Collections()
		for _, c := range s.kind.Collections {
			rows, present := collections[c.Name]
			if !present {
				continue
			}
			n, err := s.replacer.Replace(tx, c, id, rows)
			if err != nil {
				return err
			}
			written += n
		}
		return s.link(tx, id, in.References())
	})
	if err != nil {
		s.logger.Warn("Update failed", zap.String("id", id), zap.Error(err))
		return nil, errs.FromStorage(op, err)
	}

	s.logger.Info("Updated", zap.String("id", id), zap.Int("children", written))
	return s.Get(ctx, id)
}

// Delete removes a parent and everything it owns, and severs its reference links.
func (s *Synchronizer[T]) Delete(ctx context.Context, id string) error {
	op := s.kind.Name + ".delete"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.lock(tx, op, id); err != nil {
			return err
		}
		for _, c := range s.kind.Collections {
			if err := s.replacer.Clear(tx, c, id); err != nil {
				return err
			}
		}
		for _, ref := range s.kind.References {
			if err := s.resolver.Unlink(tx, ref, id); err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.New(errs.NotFound, op, "%s %q not found", s.kind.Name, id)
		}
		return nil
	})
	if err != nil {
		if !errs.Is(err, errs.NotFound) {
			s.logger.Warn("Delete failed", zap.String("id", id), zap.Error(err))
		}
		return errs.FromStorage(op, err)
	}

	s.logger.Info("Deleted", zap.String("id", id))
	return nil
}

// Get returns the materialized parent: children ordered by position, references by their order column.
func (s *Synchronizer[T]) Get(ctx context.Context, id string) (*T, error) {
	op := s.kind.Name + ".get"
	out := new(T)
	err := s.preload(s.db.WithContext(ctx)).Where("id = ?", id).First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.New(errs.NotFound, op, "%s %q not found", s.kind.Name, id)
	}
	if err != nil {
		return nil, errs.FromStorage(op, err)
	}
	return out, nil
}

// List returns every parent, newest first.
func (s *Synchronizer[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := s.preload(s.db.WithContext(ctx)).Order("created_at DESC").Order("id").Find(&out).Error
	if err != nil {
		return nil, errs.FromStorage(s.kind.Name+".list", err)
	}
	return out, nil
}

// deriveID slugs the configured source column, or falls back to a random uuid.
func (s *Synchronizer[T]) deriveID(op string, cols map[string]any) (string, error) {
	if s.kind.IDFrom == "" {
		return uuid.NewString(), nil
	}
	src, _ := cols[s.kind.IDFrom].(string)
	id := s.slugger.Slug(src)
	if id == "" {
		return "", errs.New(errs.ValidationFailed, op, "%s yields an empty id", s.kind.IDFrom)
	}
	return id, nil
}

// lock takes a row lock on the parent for the rest of the transaction.
func (s *Synchronizer[T]) lock(tx *gorm.DB, op, id string) error {
	var ids []string
	err := tx.Model(new(T)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errs.New(errs.NotFound, op, "%s %q not found", s.kind.Name, id)
	}
	return nil
}

// link resolves and re-links every reference set present in refs.
func (s *Synchronizer[T]) link(tx *gorm.DB, id string, refs map[string][]string) error {
	for _, ref := range s.kind.References {
		names, present := refs[ref.Name]
		if !present {
			continue
		}
		resolved, err := s.resolver.Resolve(tx, ref, names)
		if err != nil {
			return err
		}
		if err := s.resolver.Link(tx, ref, id, resolved); err != nil {
			return err
		}
	}
	return nil
}

func (s *Synchronizer[T]) preload(db *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position") }
	for _, path := range s.kind.Preloads() {
		db = db.Preload(path, byPosition)
	}
	for _, ref := range s.kind.References {
		order := ref.Order
		db = db.Preload(ref.Field, func(db *gorm.DB) *gorm.DB { return db.Order(order) })
	}
	return db
}
