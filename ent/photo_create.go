// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/xiangce-app/ent/album"
	"github.com/anzhiyu-c/xiangce-app/ent/photo"
)

// PhotoCreate is the builder for creating a Photo entity.
type PhotoCreate struct {
	config
	mutation *PhotoMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (pc *PhotoCreate) SetCreatedAt(t time.Time) *PhotoCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *PhotoCreate) SetNillableCreatedAt(t *time.Time) *PhotoCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *PhotoCreate) SetUpdatedAt(t time.Time) *PhotoCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *PhotoCreate) SetNillableUpdatedAt(t *time.Time) *PhotoCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// SetImageURL sets the "image_url" field.
func (pc *PhotoCreate) SetImageURL(s string) *PhotoCreate {
	pc.mutation.SetImageURL(s)
	return pc
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (pc *PhotoCreate) SetNillableImageURL(s *string) *PhotoCreate {
	if s != nil {
		pc.SetImageURL(*s)
	}
	return pc
}

// SetCaption sets the "caption" field.
func (pc *PhotoCreate) SetCaption(s string) *PhotoCreate {
	pc.mutation.SetCaption(s)
	return pc
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (pc *PhotoCreate) SetNillableCaption(s *string) *PhotoCreate {
	if s != nil {
		pc.SetCaption(*s)
	}
	return pc
}

// SetLocation sets the "location" field.
func (pc *PhotoCreate) SetLocation(s string) *PhotoCreate {
	pc.mutation.SetLocation(s)
	return pc
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (pc *PhotoCreate) SetNillableLocation(s *string) *PhotoCreate {
	if s != nil {
		pc.SetLocation(*s)
	}
	return pc
}

// SetWidth sets the "width" field.
func (pc *PhotoCreate) SetWidth(i int) *PhotoCreate {
	pc.mutation.SetWidth(i)
	return pc
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (pc *PhotoCreate) SetNillableWidth(i *int) *PhotoCreate {
	if i != nil {
		pc.SetWidth(*i)
	}
	return pc
}

// SetHeight sets the "height" field.
func (pc *PhotoCreate) SetHeight(i int) *PhotoCreate {
	pc.mutation.SetHeight(i)
	return pc
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (pc *PhotoCreate) SetNillableHeight(i *int) *PhotoCreate {
	if i != nil {
		pc.SetHeight(*i)
	}
	return pc
}

// SetAlbumID sets the "album_id" field.
func (pc *PhotoCreate) SetAlbumID(u uint) *PhotoCreate {
	pc.mutation.SetAlbumID(u)
	return pc
}

// SetID sets the "id" field.
func (pc *PhotoCreate) SetID(u uint) *PhotoCreate {
	pc.mutation.SetID(u)
	return pc
}

// SetAlbum sets the "album" edge to the Album entity.
func (pc *PhotoCreate) SetAlbum(a *Album) *PhotoCreate {
	return pc.SetAlbumID(a.ID)
}

// Mutation returns the PhotoMutation object of the builder.
func (pc *PhotoCreate) Mutation() *PhotoMutation {
	return pc.mutation
}

// Save creates the Photo in the database.
func (pc *PhotoCreate) Save(ctx context.Context) (*Photo, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PhotoCreate) SaveX(ctx context.Context) *Photo {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PhotoCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PhotoCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PhotoCreate) defaults() {
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := photo.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := photo.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PhotoCreate) check() error {
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Photo.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Photo.updated_at"`)}
	}
	if v, ok := pc.mutation.ImageURL(); ok {
		if err := photo.ImageURLValidator(v); err != nil {
			return &ValidationError{Name: "image_url", err: fmt.Errorf(`ent: validator failed for field "Photo.image_url": %w`, err)}
		}
	}
	if v, ok := pc.mutation.Caption(); ok {
		if err := photo.CaptionValidator(v); err != nil {
			return &ValidationError{Name: "caption", err: fmt.Errorf(`ent: validator failed for field "Photo.caption": %w`, err)}
		}
	}
	if v, ok := pc.mutation.Location(); ok {
		if err := photo.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Photo.location": %w`, err)}
		}
	}
	if _, ok := pc.mutation.AlbumID(); !ok {
		return &ValidationError{Name: "album_id", err: errors.New(`ent: missing required field "Photo.album_id"`)}
	}
	if len(pc.mutation.AlbumIDs()) == 0 {
		return &ValidationError{Name: "album", err: errors.New(`ent: missing required edge "Photo.album"`)}
	}
	return nil
}

func (pc *PhotoCreate) sqlSave(ctx context.Context) (*Photo, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PhotoCreate) createSpec() (*Photo, *sqlgraph.CreateSpec) {
	var (
		_node = &Photo{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(photo.Table, sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUint))
	)
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(photo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(photo.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pc.mutation.ImageURL(); ok {
		_spec.SetField(photo.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := pc.mutation.Caption(); ok {
		_spec.SetField(photo.FieldCaption, field.TypeString, value)
		_node.Caption = value
	}
	if value, ok := pc.mutation.Location(); ok {
		_spec.SetField(photo.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := pc.mutation.Width(); ok {
		_spec.SetField(photo.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := pc.mutation.Height(); ok {
		_spec.SetField(photo.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if nodes := pc.mutation.AlbumIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   photo.AlbumTable,
			Columns: []string{photo.AlbumColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(album.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AlbumID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PhotoCreateBulk is the builder for creating many Photo entities in bulk.
type PhotoCreateBulk struct {
	config
	err      error
	builders []*PhotoCreate
}

// Save creates the Photo entities in the database.
func (pcb *PhotoCreateBulk) Save(ctx context.Context) ([]*Photo, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Photo, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhotoMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PhotoCreateBulk) SaveX(ctx context.Context) []*Photo {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PhotoCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PhotoCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
