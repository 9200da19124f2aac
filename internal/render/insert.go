package render

import "github.com/zoobzio/sqlbuild/internal/types"

// ConflictWriter writes a dialect's upsert clause.
type ConflictWriter func(w *Writer, ins *types.Insert, c *types.OnConflict) error

// Insert writes "INSERT INTO t (cols) VALUES ... | SELECT ...", the upsert
// clause through conflict, then RETURNING. The caller validates ins first.
func (w *Writer) Insert(ins *types.Insert, conflict ConflictWriter) error {
	w.WriteString("INSERT INTO ")
	w.Table(ins.Table())
	if cols := ins.ColumnList(); len(cols) > 0 {
		w.WriteString(" (")
		w.ColumnList(cols)
		w.WriteString(")")
	}

	if sub := ins.Source().Subquery(); sub != nil {
		w.WriteString(" ")
		if err := w.Select(sub); err != nil {
			return err
		}
	} else {
		rows, _ := ins.GetValues()
		w.WriteString(" VALUES ")
		for i, row := range rows {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteString("(")
			for j, v := range row {
				if j > 0 {
					w.WriteString(", ")
				}
				w.Bind(v)
			}
			w.WriteString(")")
		}
	}

	if c := ins.Conflict(); c != nil {
		if conflict == nil {
			return w.Unsupported("upsert")
		}
		if err := conflict(w, ins, c); err != nil {
			return err
		}
	}

	w.Returning(ins.ReturningClause())
	return nil
}

// OnConflict writes the ON CONFLICT clause used by PostgreSQL and SQLite.
func OnConflict(w *Writer, _ *types.Insert, c *types.OnConflict) error {
	w.WriteString(" ON CONFLICT")
	if len(c.Columns) > 0 {
		w.WriteString(" (")
		w.ColumnList(c.Columns)
		w.WriteString(")")
	}
	if c.Action != types.DoUpdate {
		w.WriteString(" DO NOTHING")
		return nil
	}
	if len(c.Columns) == 0 {
		return w.Unsupported("ON CONFLICT DO UPDATE without a conflict target")
	}
	w.WriteString(" DO UPDATE SET ")
	w.Assignments(c.Updates)
	for i, col := range c.Excluded {
		if i > 0 || len(c.Updates) > 0 {
			w.WriteString(", ")
		}
		w.Column(col)
		w.WriteString(" = EXCLUDED.")
		w.Column(col)
	}
	return nil
}
