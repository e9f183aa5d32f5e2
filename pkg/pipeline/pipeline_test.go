package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/erdgraph/pkg/cache"
	"github.com/matzehuels/erdgraph/pkg/diagram"
	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/layout"
)

func shop() *diagram.Diagram {
	return &diagram.Diagram{
		Title: "shop",
		Tables: []diagram.Table{
			{Name: "users", Columns: []diagram.Column{
				{Name: "id", Type: "uuid", Key: diagram.KeyPrimary},
				{Name: "email", Type: "text"},
			}},
			{Name: "orders", Columns: []diagram.Column{
				{Name: "user_id", Type: "uuid", Key: diagram.KeyForeign},
			}},
		},
		Relations: []diagram.Relation{
			{From: diagram.ParseEndpoint("orders.user_id"), To: diagram.ParseEndpoint("users.id")},
		},
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	assert.Equal(t, layout.DefaultConfig(), opts.Layout)
	assert.NotNil(t, opts.Logger)
	assert.False(t, opts.SkipJunctions)
}

func TestOptionsDefaultsKeepOverrides(t *testing.T) {
	opts := Options{Layout: layout.Config{RowHeight: 20, RecordWidth: 200}}
	opts.SetDefaults()

	assert.Equal(t, 20.0, opts.Layout.RowHeight)
	assert.Equal(t, 200.0, opts.Layout.RecordWidth)
	assert.Equal(t, layout.DefaultOriginX, opts.Layout.OriginX)
	assert.Equal(t, layout.DefaultRecordSpace, opts.Layout.RecordSpace)
}

func TestOptionsValidate(t *testing.T) {
	opts := Options{Layout: layout.Config{RowHeight: -1}}
	err := opts.ValidateAndSetDefaults()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestGenerateLayoutRejectsNonFiniteSpacing(t *testing.T) {
	for _, cfg := range []layout.Config{
		{RowHeight: math.NaN()},
		{RecordWidth: math.Inf(1)},
		{OriginY: math.Inf(-1)},
	} {
		_, _, err := GenerateLayout(context.Background(), shop(), Options{Layout: cfg})
		require.Error(t, err, "config %+v", cfg)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	var opts Options
	require.NoError(t, opts.ValidateAndSetDefaults())
	first := opts.Layout

	require.NoError(t, opts.ValidateAndSetDefaults())
	assert.Equal(t, first, opts.Layout)
}

func TestLayoutKeyOpts(t *testing.T) {
	opts := Options{SkipJunctions: true}
	opts.SetDefaults()
	k := opts.LayoutKeyOpts()

	assert.False(t, k.Junctions)
	assert.Equal(t, layout.DefaultRowHeight, k.RowHeight)

	keyer := cache.NewDefaultKeyer()
	other := opts
	other.SkipJunctions = false
	assert.NotEqual(t, keyer.LayoutKey("h", k), keyer.LayoutKey("h", other.LayoutKeyOpts()))
}

func TestGenerateLayout(t *testing.T) {
	l, stats, err := GenerateLayout(context.Background(), shop(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "shop", l.Title)
	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 3, stats.Fields)
	assert.Equal(t, 1, stats.Edges)
	assert.Equal(t, 18, stats.ConnectionPoints)
	assert.Positive(t, stats.Junctions)
	assert.Len(t, l.Junctions, stats.Junctions)

	users, ok := l.Record("users")
	require.True(t, ok)
	assert.Equal(t, 50.0, users.X)
	assert.Equal(t, 70.0, users.Height)

	orders, ok := l.Record("orders")
	require.True(t, ok)
	assert.Equal(t, 430.0, orders.X)

	require.Len(t, l.Edges, 1)
	assert.Len(t, l.Edges[0].Commands, 6)
	assert.Equal(t, "M", l.Edges[0].Commands[0].Op)
	require.NoError(t, l.Validate())
}

func TestGenerateLayoutSkipJunctions(t *testing.T) {
	l, stats, err := GenerateLayout(context.Background(), shop(), Options{SkipJunctions: true})
	require.NoError(t, err)
	assert.Zero(t, stats.Junctions)
	assert.Empty(t, l.Junctions)
	assert.Len(t, l.Edges, 1)
}

func TestGenerateLayoutInvalidDiagram(t *testing.T) {
	d := shop()
	d.Relations = append(d.Relations, diagram.Relation{
		From: diagram.ParseEndpoint("orders"),
		To:   diagram.ParseEndpoint("invoices"),
	})

	_, _, err := GenerateLayout(context.Background(), d, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownReference))
}

func TestGenerateLayoutCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := GenerateLayout(ctx, shop(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerCaches(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil)
	defer r.Close()

	ctx := context.Background()
	first, err := r.Execute(ctx, shop(), Options{})
	require.NoError(t, err)
	assert.False(t, first.CacheHit)
	assert.NotEmpty(t, first.DiagramHash)

	second, err := r.Execute(ctx, shop(), Options{})
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.DiagramHash, second.DiagramHash)
	assert.Equal(t, first.Layout, second.Layout)
	assert.Equal(t, first.Stats.ConnectionPoints, second.Stats.ConnectionPoints)
	assert.Equal(t, first.Stats.Fields, second.Stats.Fields)

	refreshed, err := r.Execute(ctx, shop(), Options{Refresh: true})
	require.NoError(t, err)
	assert.False(t, refreshed.CacheHit)
}

func TestRunnerKeysOnOptions(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	r := NewRunner(c, nil, nil)

	ctx := context.Background()
	_, err = r.Execute(ctx, shop(), Options{})
	require.NoError(t, err)

	res, err := r.Execute(ctx, shop(), Options{Layout: layout.Config{RecordWidth: 200}})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	users, _ := res.Layout.Record("users")
	assert.Equal(t, 200.0, users.Width)
}

func TestRunnerNilDiagram(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
