// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/xiangce-app/ent/album"
	"github.com/anzhiyu-c/xiangce-app/ent/photo"
	"github.com/anzhiyu-c/xiangce-app/ent/predicate"
)

// PhotoUpdate is the builder for updating Photo entities.
type PhotoUpdate struct {
	config
	hooks    []Hook
	mutation *PhotoMutation
}

// Where appends a list predicates to the PhotoUpdate builder.
func (pu *PhotoUpdate) Where(ps ...predicate.Photo) *PhotoUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *PhotoUpdate) SetUpdatedAt(t time.Time) *PhotoUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// SetCaption sets the "caption" field.
func (pu *PhotoUpdate) SetCaption(s string) *PhotoUpdate {
	pu.mutation.SetCaption(s)
	return pu
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (pu *PhotoUpdate) SetNillableCaption(s *string) *PhotoUpdate {
	if s != nil {
		pu.SetCaption(*s)
	}
	return pu
}

// ClearCaption clears the value of the "caption" field.
func (pu *PhotoUpdate) ClearCaption() *PhotoUpdate {
	pu.mutation.ClearCaption()
	return pu
}

// SetLocation sets the "location" field.
func (pu *PhotoUpdate) SetLocation(s string) *PhotoUpdate {
	pu.mutation.SetLocation(s)
	return pu
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (pu *PhotoUpdate) SetNillableLocation(s *string) *PhotoUpdate {
	if s != nil {
		pu.SetLocation(*s)
	}
	return pu
}

// ClearLocation clears the value of the "location" field.
func (pu *PhotoUpdate) ClearLocation() *PhotoUpdate {
	pu.mutation.ClearLocation()
	return pu
}

// SetWidth sets the "width" field.
func (pu *PhotoUpdate) SetWidth(i int) *PhotoUpdate {
	pu.mutation.ResetWidth()
	pu.mutation.SetWidth(i)
	return pu
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (pu *PhotoUpdate) SetNillableWidth(i *int) *PhotoUpdate {
	if i != nil {
		pu.SetWidth(*i)
	}
	return pu
}

// AddWidth adds i to the "width" field.
func (pu *PhotoUpdate) AddWidth(i int) *PhotoUpdate {
	pu.mutation.AddWidth(i)
	return pu
}

// ClearWidth clears the value of the "width" field.
func (pu *PhotoUpdate) ClearWidth() *PhotoUpdate {
	pu.mutation.ClearWidth()
	return pu
}

// SetHeight sets the "height" field.
func (pu *PhotoUpdate) SetHeight(i int) *PhotoUpdate {
	pu.mutation.ResetHeight()
	pu.mutation.SetHeight(i)
	return pu
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (pu *PhotoUpdate) SetNillableHeight(i *int) *PhotoUpdate {
	if i != nil {
		pu.SetHeight(*i)
	}
	return pu
}

// AddHeight adds i to the "height" field.
func (pu *PhotoUpdate) AddHeight(i int) *PhotoUpdate {
	pu.mutation.AddHeight(i)
	return pu
}

// ClearHeight clears the value of the "height" field.
func (pu *PhotoUpdate) ClearHeight() *PhotoUpdate {
	pu.mutation.ClearHeight()
	return pu
}

// SetAlbumID sets the "album_id" field.
func (pu *PhotoUpdate) SetAlbumID(u uint) *PhotoUpdate {
	pu.mutation.SetAlbumID(u)
	return pu
}

// SetNillableAlbumID sets the "album_id" field if the given value is not nil.
func (pu *PhotoUpdate) SetNillableAlbumID(u *uint) *PhotoUpdate {
	if u != nil {
		pu.SetAlbumID(*u)
	}
	return pu
}

// SetAlbum sets the "album" edge to the Album entity.
func (pu *PhotoUpdate) SetAlbum(a *Album) *PhotoUpdate {
	return pu.SetAlbumID(a.ID)
}

// Mutation returns the PhotoMutation object of the builder.
func (pu *PhotoUpdate) Mutation() *PhotoMutation {
	return pu.mutation
}

// ClearAlbum clears the "album" edge to the Album entity.
func (pu *PhotoUpdate) ClearAlbum() *PhotoUpdate {
	pu.mutation.ClearAlbum()
	return pu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PhotoUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PhotoUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PhotoUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PhotoUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *PhotoUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := photo.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *PhotoUpdate) check() error {
	if v, ok := pu.mutation.Caption(); ok {
		if err := photo.CaptionValidator(v); err != nil {
			return &ValidationError{Name: "caption", err: fmt.Errorf(`ent: validator failed for field "Photo.caption": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Location(); ok {
		if err := photo.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Photo.location": %w`, err)}
		}
	}
	if pu.mutation.AlbumCleared() && len(pu.mutation.AlbumIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Photo.album"`)
	}
	return nil
}

func (pu *PhotoUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(photo.Table, photo.Columns, sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUint))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(photo.FieldUpdatedAt, field.TypeTime, value)
	}
	if pu.mutation.ImageURLCleared() {
		_spec.ClearField(photo.FieldImageURL, field.TypeString)
	}
	if value, ok := pu.mutation.Caption(); ok {
		_spec.SetField(photo.FieldCaption, field.TypeString, value)
	}
	if pu.mutation.CaptionCleared() {
		_spec.ClearField(photo.FieldCaption, field.TypeString)
	}
	if value, ok := pu.mutation.Location(); ok {
		_spec.SetField(photo.FieldLocation, field.TypeString, value)
	}
	if pu.mutation.LocationCleared() {
		_spec.ClearField(photo.FieldLocation, field.TypeString)
	}
	if value, ok := pu.mutation.Width(); ok {
		_spec.SetField(photo.FieldWidth, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedWidth(); ok {
		_spec.AddField(photo.FieldWidth, field.TypeInt, value)
	}
	if pu.mutation.WidthCleared() {
		_spec.ClearField(photo.FieldWidth, field.TypeInt)
	}
	if value, ok := pu.mutation.Height(); ok {
		_spec.SetField(photo.FieldHeight, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedHeight(); ok {
		_spec.AddField(photo.FieldHeight, field.TypeInt, value)
	}
	if pu.mutation.HeightCleared() {
		_spec.ClearField(photo.FieldHeight, field.TypeInt)
	}
	if pu.mutation.AlbumCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.AlbumIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{photo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PhotoUpdateOne is the builder for updating a single Photo entity.
type PhotoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhotoMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *PhotoUpdateOne) SetUpdatedAt(t time.Time) *PhotoUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// SetCaption sets the "caption" field.
func (puo *PhotoUpdateOne) SetCaption(s string) *PhotoUpdateOne {
	puo.mutation.SetCaption(s)
	return puo
}

// SetNillableCaption sets the "caption" field if the given value is not nil.
func (puo *PhotoUpdateOne) SetNillableCaption(s *string) *PhotoUpdateOne {
	if s != nil {
		puo.SetCaption(*s)
	}
	return puo
}

// ClearCaption clears the value of the "caption" field.
func (puo *PhotoUpdateOne) ClearCaption() *PhotoUpdateOne {
	puo.mutation.ClearCaption()
	return puo
}

// SetLocation sets the "location" field.
func (puo *PhotoUpdateOne) SetLocation(s string) *PhotoUpdateOne {
	puo.mutation.SetLocation(s)
	return puo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (puo *PhotoUpdateOne) SetNillableLocation(s *string) *PhotoUpdateOne {
	if s != nil {
		puo.SetLocation(*s)
	}
	return puo
}

// ClearLocation clears the value of the "location" field.
func (puo *PhotoUpdateOne) ClearLocation() *PhotoUpdateOne {
	puo.mutation.ClearLocation()
	return puo
}

// SetWidth sets the "width" field.
func (puo *PhotoUpdateOne) SetWidth(i int) *PhotoUpdateOne {
	puo.mutation.ResetWidth()
	puo.mutation.SetWidth(i)
	return puo
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (puo *PhotoUpdateOne) SetNillableWidth(i *int) *PhotoUpdateOne {
	if i != nil {
		puo.SetWidth(*i)
	}
	return puo
}

// AddWidth adds i to the "width" field.
func (puo *PhotoUpdateOne) AddWidth(i int) *PhotoUpdateOne {
	puo.mutation.AddWidth(i)
	return puo
}

// ClearWidth clears the value of the "width" field.
func (puo *PhotoUpdateOne) ClearWidth() *PhotoUpdateOne {
	puo.mutation.ClearWidth()
	return puo
}

// SetHeight sets the "height" field.
func (puo *PhotoUpdateOne) SetHeight(i int) *PhotoUpdateOne {
	puo.mutation.ResetHeight()
	puo.mutation.SetHeight(i)
	return puo
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (puo *PhotoUpdateOne) SetNillableHeight(i *int) *PhotoUpdateOne {
	if i != nil {
		puo.SetHeight(*i)
	}
	return puo
}

// AddHeight adds i to the "height" field.
func (puo *PhotoUpdateOne) AddHeight(i int) *PhotoUpdateOne {
	puo.mutation.AddHeight(i)
	return puo
}

// ClearHeight clears the value of the "height" field.
func (puo *PhotoUpdateOne) ClearHeight() *PhotoUpdateOne {
	puo.mutation.ClearHeight()
	return puo
}

// SetAlbumID sets the "album_id" field.
func (puo *PhotoUpdateOne) SetAlbumID(u uint) *PhotoUpdateOne {
	puo.mutation.SetAlbumID(u)
	return puo
}

// SetNillableAlbumID sets the "album_id" field if the given value is not nil.
func (puo *PhotoUpdateOne) SetNillableAlbumID(u *uint) *PhotoUpdateOne {
	if u != nil {
		puo.SetAlbumID(*u)
	}
	return puo
}

// SetAlbum sets the "album" edge to the Album entity.
func (puo *PhotoUpdateOne) SetAlbum(a *Album) *PhotoUpdateOne {
	return puo.SetAlbumID(a.ID)
}

// Mutation returns the PhotoMutation object of the builder.
func (puo *PhotoUpdateOne) Mutation() *PhotoMutation {
	return puo.mutation
}

// ClearAlbum clears the "album" edge to the Album entity.
func (puo *PhotoUpdateOne) ClearAlbum() *PhotoUpdateOne {
	puo.mutation.ClearAlbum()
	return puo
}

// Where appends a list predicates to the PhotoUpdate builder.
func (puo *PhotoUpdateOne) Where(ps ...predicate.Photo) *PhotoUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PhotoUpdateOne) Select(field string, fields ...string) *PhotoUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Photo entity.
func (puo *PhotoUpdateOne) Save(ctx context.Context) (*Photo, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PhotoUpdateOne) SaveX(ctx context.Context) *Photo {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PhotoUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PhotoUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *PhotoUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := photo.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *PhotoUpdateOne) check() error {
	if v, ok := puo.mutation.Caption(); ok {
		if err := photo.CaptionValidator(v); err != nil {
			return &ValidationError{Name: "caption", err: fmt.Errorf(`ent: validator failed for field "Photo.caption": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Location(); ok {
		if err := photo.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`ent: validator failed for field "Photo.location": %w`, err)}
		}
	}
	if puo.mutation.AlbumCleared() && len(puo.mutation.AlbumIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Photo.album"`)
	}
	return nil
}

func (puo *PhotoUpdateOne) sqlSave(ctx context.Context) (_node *Photo, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(photo.Table, photo.Columns, sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUint))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Photo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, photo.FieldID)
		for _, f := range fields {
			if !photo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != photo.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(photo.FieldUpdatedAt, field.TypeTime, value)
	}
	if puo.mutation.ImageURLCleared() {
		_spec.ClearField(photo.FieldImageURL, field.TypeString)
	}
	if value, ok := puo.mutation.Caption(); ok {
		_spec.SetField(photo.FieldCaption, field.TypeString, value)
	}
	if puo.mutation.CaptionCleared() {
		_spec.ClearField(photo.FieldCaption, field.TypeString)
	}
	if value, ok := puo.mutation.Location(); ok {
		_spec.SetField(photo.FieldLocation, field.TypeString, value)
	}
	if puo.mutation.LocationCleared() {
		_spec.ClearField(photo.FieldLocation, field.TypeString)
	}
	if value, ok := puo.mutation.Width(); ok {
		_spec.SetField(photo.FieldWidth, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedWidth(); ok {
		_spec.AddField(photo.FieldWidth, field.TypeInt, value)
	}
	if puo.mutation.WidthCleared() {
		_spec.ClearField(photo.FieldWidth, field.TypeInt)
	}
	if value, ok := puo.mutation.Height(); ok {
		_spec.SetField(photo.FieldHeight, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedHeight(); ok {
		_spec.AddField(photo.FieldHeight, field.TypeInt, value)
	}
	if puo.mutation.HeightCleared() {
		_spec.ClearField(photo.FieldHeight, field.TypeInt)
	}
	if puo.mutation.AlbumCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.AlbumIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Photo{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{photo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
