// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/xiangce-app/ent/album"
	"github.com/anzhiyu-c/xiangce-app/ent/photo"
	"github.com/anzhiyu-c/xiangce-app/ent/predicate"
)

// PhotoQuery is the builder for querying Photo entities.
type PhotoQuery struct {
	config
	ctx        *QueryContext
	order      []photo.OrderOption
	inters     []Interceptor
	predicates []predicate.Photo
	withAlbum  *AlbumQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PhotoQuery builder.
func (pq *PhotoQuery) Where(ps ...predicate.Photo) *PhotoQuery {
	pq.predicates = append(pq.predicates, ps...)
	return pq
}

// Limit the number of records to be returned by this query.
func (pq *PhotoQuery) Limit(limit int) *PhotoQuery {
	pq.ctx.Limit = &limit
	return pq
}

// Offset to start from.
func (pq *PhotoQuery) Offset(offset int) *PhotoQuery {
	pq.ctx.Offset = &offset
	return pq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (pq *PhotoQuery) Unique(unique bool) *PhotoQuery {
	pq.ctx.Unique = &unique
	return pq
}

// Order specifies how the records should be ordered.
func (pq *PhotoQuery) Order(o ...photo.OrderOption) *PhotoQuery {
	pq.order = append(pq.order, o...)
	return pq
}

// QueryAlbum chains the current query on the "album" edge.
func (pq *PhotoQuery) QueryAlbum() *AlbumQuery {
	query := (&AlbumClient{config: pq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := pq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := pq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(photo.Table, photo.FieldID, selector),
			sqlgraph.To(album.Table, album.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, photo.AlbumTable, photo.AlbumColumn),
		)
		fromU = sqlgraph.SetNeighbors(pq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Photo entity from the query.
// Returns a *NotFoundError when no Photo was found.
func (pq *PhotoQuery) First(ctx context.Context) (*Photo, error) {
	nodes, err := pq.Limit(1).All(setContextOp(ctx, pq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{photo.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (pq *PhotoQuery) FirstX(ctx context.Context) *Photo {
	node, err := pq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Photo ID from the query.
// Returns a *NotFoundError when no Photo ID was found.
func (pq *PhotoQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = pq.Limit(1).IDs(setContextOp(ctx, pq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{photo.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (pq *PhotoQuery) FirstIDX(ctx context.Context) uint {
	id, err := pq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Photo entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Photo entity is found.
// Returns a *NotFoundError when no Photo entities are found.
func (pq *PhotoQuery) Only(ctx context.Context) (*Photo, error) {
	nodes, err := pq.Limit(2).All(setContextOp(ctx, pq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{photo.Label}
	default:
		return nil, &NotSingularError{photo.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (pq *PhotoQuery) OnlyX(ctx context.Context) *Photo {
	node, err := pq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Photo ID in the query.
// Returns a *NotSingularError when more than one Photo ID is found.
// Returns a *NotFoundError when no entities are found.
func (pq *PhotoQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = pq.Limit(2).IDs(setContextOp(ctx, pq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{photo.Label}
	default:
		err = &NotSingularError{photo.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (pq *PhotoQuery) OnlyIDX(ctx context.Context) uint {
	id, err := pq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Photos.
func (pq *PhotoQuery) All(ctx context.Context) ([]*Photo, error) {
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryAll)
	if err := pq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Photo, *PhotoQuery]()
	return withInterceptors[[]*Photo](ctx, pq, qr, pq.inters)
}

// AllX is like All, but panics if an error occurs.
func (pq *PhotoQuery) AllX(ctx context.Context) []*Photo {
	nodes, err := pq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Photo IDs.
func (pq *PhotoQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if pq.ctx.Unique == nil && pq.path != nil {
		pq.Unique(true)
	}
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryIDs)
	if err = pq.Select(photo.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (pq *PhotoQuery) IDsX(ctx context.Context) []uint {
	ids, err := pq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (pq *PhotoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryCount)
	if err := pq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, pq, querierCount[*PhotoQuery](), pq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (pq *PhotoQuery) CountX(ctx context.Context) int {
	count, err := pq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (pq *PhotoQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryExist)
	switch _, err := pq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (pq *PhotoQuery) ExistX(ctx context.Context) bool {
	exist, err := pq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PhotoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (pq *PhotoQuery) Clone() *PhotoQuery {
	if pq == nil {
		return nil
	}
	return &PhotoQuery{
		config:     pq.config,
		ctx:        pq.ctx.Clone(),
		order:      append([]photo.OrderOption{}, pq.order...),
		inters:     append([]Interceptor{}, pq.inters...),
		predicates: append([]predicate.Photo{}, pq.predicates...),
		withAlbum:  pq.withAlbum.Clone(),
		// clone intermediate query.
		sql:  pq.sql.Clone(),
		path: pq.path,
	}
}

// WithAlbum tells the query-builder to eager-load the nodes that are connected to
// the "album" edge. The optional arguments are used to configure the query builder of the edge.
func (pq *PhotoQuery) WithAlbum(opts ...func(*AlbumQuery)) *PhotoQuery {
	query := (&AlbumClient{config: pq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	pq.withAlbum = query
	return pq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Photo.Query().
//		GroupBy(photo.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (pq *PhotoQuery) GroupBy(field string, fields ...string) *PhotoGroupBy {
	pq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PhotoGroupBy{build: pq}
	grbuild.flds = &pq.ctx.Fields
	grbuild.label = photo.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Photo.Query().
//		Select(photo.FieldCreatedAt).
//		Scan(ctx, &v)
func (pq *PhotoQuery) Select(fields ...string) *PhotoSelect {
	pq.ctx.Fields = append(pq.ctx.Fields, fields...)
	sbuild := &PhotoSelect{PhotoQuery: pq}
	sbuild.label = photo.Label
	sbuild.flds, sbuild.scan = &pq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PhotoSelect configured with the given aggregations.
func (pq *PhotoQuery) Aggregate(fns ...AggregateFunc) *PhotoSelect {
	return pq.Select().Aggregate(fns...)
}

func (pq *PhotoQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range pq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, pq); err != nil {
				return err
			}
		}
	}
	for _, f := range pq.ctx.Fields {
		if !photo.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if pq.path != nil {
		prev, err := pq.path(ctx)
		if err != nil {
			return err
		}
		pq.sql = prev
	}
	return nil
}

func (pq *PhotoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Photo, error) {
	var (
		nodes       = []*Photo{}
		_spec       = pq.querySpec()
		loadedTypes = [1]bool{
			pq.withAlbum != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Photo).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Photo{config: pq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, pq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := pq.withAlbum; query != nil {
		if err := pq.loadAlbum(ctx, query, nodes, nil,
			func(n *Photo, e *Album) { n.Edges.Album = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (pq *PhotoQuery) loadAlbum(ctx context.Context, query *AlbumQuery, nodes []*Photo, init func(*Photo), assign func(*Photo, *Album)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*Photo)
	for i := range nodes {
		fk := nodes[i].AlbumID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(album.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "album_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (pq *PhotoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := pq.querySpec()
	_spec.Node.Columns = pq.ctx.Fields
	if len(pq.ctx.Fields) > 0 {
		_spec.Unique = pq.ctx.Unique != nil && *pq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, pq.driver, _spec)
}

func (pq *PhotoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(photo.Table, photo.Columns, sqlgraph.NewFieldSpec(photo.FieldID, field.TypeUint))
	_spec.From = pq.sql
	if unique := pq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if pq.path != nil {
		_spec.Unique = true
	}
	if fields := pq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, photo.FieldID)
		for i := range fields {
			if fields[i] != photo.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if pq.withAlbum != nil {
			_spec.Node.AddColumnOnce(photo.FieldAlbumID)
		}
	}
	if ps := pq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := pq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := pq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := pq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (pq *PhotoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(pq.driver.Dialect())
	t1 := builder.Table(photo.Table)
	columns := pq.ctx.Fields
	if len(columns) == 0 {
		columns = photo.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if pq.sql != nil {
		selector = pq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if pq.ctx.Unique != nil && *pq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range pq.predicates {
		p(selector)
	}
	for _, p := range pq.order {
		p(selector)
	}
	if offset := pq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := pq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PhotoGroupBy is the group-by builder for Photo entities.
type PhotoGroupBy struct {
	selector
	build *PhotoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pgb *PhotoGroupBy) Aggregate(fns ...AggregateFunc) *PhotoGroupBy {
	pgb.fns = append(pgb.fns, fns...)
	return pgb
}

// Scan applies the selector query and scans the result into the given value.
func (pgb *PhotoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pgb.build.ctx, ent.OpQueryGroupBy)
	if err := pgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhotoQuery, *PhotoGroupBy](ctx, pgb.build, pgb, pgb.build.inters, v)
}

func (pgb *PhotoGroupBy) sqlScan(ctx context.Context, root *PhotoQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pgb.fns))
	for _, fn := range pgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pgb.flds)+len(pgb.fns))
		for _, f := range *pgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PhotoSelect is the builder for selecting fields of Photo entities.
type PhotoSelect struct {
	*PhotoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ps *PhotoSelect) Aggregate(fns ...AggregateFunc) *PhotoSelect {
	ps.fns = append(ps.fns, fns...)
	return ps
}

// Scan applies the selector query and scans the result into the given value.
func (ps *PhotoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ps.ctx, ent.OpQuerySelect)
	if err := ps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhotoQuery, *PhotoSelect](ctx, ps.PhotoQuery, ps, ps.inters, v)
}

func (ps *PhotoSelect) sqlScan(ctx context.Context, root *PhotoQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ps.fns))
	for _, fn := range ps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
