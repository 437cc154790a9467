package types

import "encoding/json"

// Row is one record of table data. Rows are identified by reference: the
// snapshot a table pipes over holds the same *Row values as its source, so
// selection flags set through a table are visible to every holder of the row.
type Row struct {
	Fields   map[string]any // Application data, keyed by field name.
	Selected bool           // Selection flag owned by Table.Select.
}

// NewRow wraps fields in a Row. A nil map is replaced by an empty one.
func NewRow(fields map[string]any) *Row {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Row{Fields: fields}
}

// NewRows wraps each field map in a Row, preserving order.
func NewRows(fields ...map[string]any) []*Row {
	rows := make([]*Row, len(fields))
	for i, f := range fields {
		rows[i] = NewRow(f)
	}
	return rows
}

// Get returns the value stored under a top-level field name.
func (r *Row) Get(field string) (any, bool) {
	if r == nil || r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[field]
	return v, ok
}

// MarshalJSON encodes the row as its field map. A selected row carries an
// extra "isSelected": true member.
func (r *Row) MarshalJSON() ([]byte, error) {
	if !r.Selected {
		return json.Marshal(r.Fields)
	}
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["isSelected"] = true
	return json.Marshal(out)
}

// UnmarshalJSON decodes a JSON object into the row's fields.
func (r *Row) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if sel, ok := fields["isSelected"].(bool); ok {
		r.Selected = sel
		delete(fields, "isSelected")
	}
	if fields == nil {
		fields = make(map[string]any)
	}
	r.Fields = fields
	return nil
}

// Source is an upstream collection a Table snapshots. Rows must return the
// current slice; a Table detects changes by comparing the slice it saw last
// against the one Rows returns (same backing array and length means
// unchanged).
type Source interface {
	Rows() []*Row
}
