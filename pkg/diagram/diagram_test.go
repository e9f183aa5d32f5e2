package diagram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

func shop() *Diagram {
	return &Diagram{
		Title: "shop",
		Tables: []Table{
			{Name: "users", Columns: []Column{
				{Name: "id", Type: "uuid", Key: KeyPrimary},
				{Name: "email", Type: "text", Key: KeyUnique},
			}},
			{Name: "orders", Columns: []Column{
				{Name: "user_id", Type: "uuid", Key: KeyForeign},
			}},
		},
		Relations: []Relation{
			{From: ParseEndpoint("orders.user_id"), To: ParseEndpoint("users.id")},
			{From: ParseEndpoint("orders"), To: ParseEndpoint("users")},
		},
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want Endpoint
	}{
		{"users", Endpoint{Table: "users"}},
		{"users.id", Endpoint{Table: "users", Column: "id"}},
		{"a.b.c", Endpoint{Table: "a", Column: "b.c"}},
	}
	for _, tt := range tests {
		got := ParseEndpoint(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.in, got.String())
	}
}

func TestEndpointJSON(t *testing.T) {
	var r Relation
	require.NoError(t, json.Unmarshal([]byte(`{"from":"orders.user_id","to":"users"}`), &r))
	assert.Equal(t, Endpoint{Table: "orders", Column: "user_id"}, r.From)
	assert.Equal(t, Endpoint{Table: "users"}, r.To)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"orders.user_id","to":"users"}`, string(data))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Diagram)
		code   errors.Code
	}{
		{"valid", func(*Diagram) {}, ""},
		{"empty table name", func(d *Diagram) { d.Tables[0].Name = "" }, errors.ErrCodeInvalidName},
		{"dotted table name", func(d *Diagram) { d.Tables[1].Name = "orders.v2" }, errors.ErrCodeInvalidName},
		{"bad column name", func(d *Diagram) { d.Tables[0].Columns[0].Name = "i\nd" }, errors.ErrCodeInvalidName},
		{"duplicate table", func(d *Diagram) { d.Tables[1].Name = "users" }, errors.ErrCodeInvalidDiagram},
		{"duplicate column", func(d *Diagram) { d.Tables[0].Columns[1].Name = "id" }, errors.ErrCodeInvalidDiagram},
		{"unknown key", func(d *Diagram) { d.Tables[0].Columns[0].Key = "XX" }, errors.ErrCodeInvalidDiagram},
		{"unknown table", func(d *Diagram) { d.Relations[0].To = ParseEndpoint("accounts.id") }, errors.ErrCodeUnknownReference},
		{"unknown column", func(d *Diagram) { d.Relations[0].From = ParseEndpoint("orders.nope") }, errors.ErrCodeUnknownReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := shop()
			tt.mutate(d)
			err := d.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestToScene(t *testing.T) {
	doc, refs, err := shop().ToScene()
	require.NoError(t, err)

	records := doc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "users", records[0].Label())
	assert.Equal(t, "orders", records[1].Label())
	assert.True(t, records[0].Record.Rounded)
	assert.True(t, records[0].Record.Header.Bold)

	children := records[0].Children()
	require.Len(t, children, 2)
	id, _ := doc.Node(children[0])
	assert.Equal(t, scene.KindField, id.Kind)
	assert.Equal(t, "id", id.Field.Name.Text)
	assert.Equal(t, "uuid", id.Field.Subtitle.Text)
	assert.Equal(t, "PK", id.Field.Badge)

	edges := doc.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, refs.Columns[ParseEndpoint("orders.user_id")], edges[0].Start)
	assert.Equal(t, children[0], edges[0].End)
	assert.Equal(t, records[1].ID, edges[1].Start)
	assert.Equal(t, records[0].ID, edges[1].End)
}

func TestToSceneRejectsInvalid(t *testing.T) {
	d := shop()
	d.Relations = append(d.Relations, Relation{From: ParseEndpoint("users"), To: ParseEndpoint("ghosts")})

	doc, _, err := d.ToScene()
	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownReference))
}

func TestColumnlessTable(t *testing.T) {
	d := &Diagram{Tables: []Table{{Name: "audit"}}}
	doc, _, err := d.ToScene()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Records()[0].ChildCount())
}

func TestDottedTableCannotShadowColumn(t *testing.T) {
	d := &Diagram{
		Tables: []Table{
			{Name: "a", Columns: []Column{{Name: "b"}}},
			{Name: "a.b", Columns: []Column{{Name: "x"}}},
			{Name: "c", Columns: []Column{{Name: "y"}}},
		},
		Relations: []Relation{{From: ParseEndpoint("a.b"), To: ParseEndpoint("c")}},
	}

	doc, _, err := d.ToScene()
	assert.Nil(t, doc)
	assert.Equal(t, errors.ErrCodeInvalidName, errors.GetCode(err))
}
